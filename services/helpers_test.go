package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"nfckart.link/dto"
	"nfckart.link/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Tek bağlantı: :memory: veritabanı bağlantı başına ayrıdır
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&models.Admin{}, &models.Card{}, &models.Order{}, &models.Consent{}))
	return db
}

func validCreateRequest() dto.CreateCardRequest {
	return dto.CreateCardRequest{
		CardData: dto.CardData{
			FirstName: "John",
			LastName:  "Doe",
			Title:     "CTO",
			Company:   "Acme",
			Phone:     "+90 555 123 4567",
			Instagram: "@john",
		},
		OrderData: dto.OrderData{
			Quantity:        1,
			CardType:        "standard",
			CustomerName:    "John Doe",
			CustomerEmail:   "john@example.com",
			ShippingAddress: "Kadıköy, İstanbul",
		},
	}
}

// sequentialSuffix 0001, 0002, ... üretir.
func sequentialSuffix() func() (string, error) {
	n := 0
	return func() (string, error) {
		n++
		return fmtSuffix(n), nil
	}
}

func fmtSuffix(n int) string {
	const digits = "0123456789"
	b := []byte("0000")
	for i := 3; i >= 0 && n > 0; i-- {
		b[i] = digits[n%10]
		n /= 10
	}
	return string(b)
}
