package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nfckart.link/dto"
	"nfckart.link/models"
	"nfckart.link/repositories"
)

func TestCreateCardWithOrder_Success(t *testing.T) {
	db := newTestDB(t)
	svc := NewCardService(db)

	req := validCreateRequest()
	req.OrderData.CardType = "premium"
	req.OrderData.Quantity = 3

	res, err := svc.CreateCardWithOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Regexp(t, `^john-doe-[0-9a-z]{4}$`, res.Slug)
	assert.NotEmpty(t, res.CardID)
	assert.NotEmpty(t, res.OrderID)

	var card models.Card
	require.NoError(t, db.Where("id = ?", res.CardID).First(&card).Error)
	assert.Equal(t, res.Slug, card.Slug)
	assert.True(t, card.IsActive)
	assert.EqualValues(t, 0, card.ViewCount)
	assert.Equal(t, "@john", card.Instagram)

	var order models.Order
	require.NoError(t, db.Where("id = ?", res.OrderID).First(&order).Error)
	assert.Equal(t, res.CardID, order.CardID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.CardTypePremium, order.CardType)
	assert.Equal(t, "TRY", order.Currency)
	assert.True(t, decimal.NewFromInt(750).Equal(order.TotalPrice), order.TotalPrice.String())
}

func TestCreateCardWithOrder_PriceTable(t *testing.T) {
	db := newTestDB(t)
	svc := NewCardService(db)
	unit := map[string]int64{"standard": 150, "premium": 250, "metal": 500}

	for cardType, price := range unit {
		for _, qty := range []int{1, 4, 25, 20000} {
			t.Run(fmt.Sprintf("%s x %d", cardType, qty), func(t *testing.T) {
				req := validCreateRequest()
				req.OrderData.CardType = cardType
				req.OrderData.Quantity = qty

				res, err := svc.CreateCardWithOrder(context.Background(), req)
				require.NoError(t, err)

				var order models.Order
				require.NoError(t, db.Where("id = ?", res.OrderID).First(&order).Error)
				assert.True(t, decimal.NewFromInt(price*int64(qty)).Equal(order.TotalPrice))
			})
		}
	}
}

func TestCreateCardWithOrder_Defaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewCardService(db)

	req := validCreateRequest()
	req.OrderData.Quantity = 0
	req.OrderData.CardType = ""
	res, err := svc.CreateCardWithOrder(context.Background(), req)
	require.NoError(t, err)

	var order models.Order
	require.NoError(t, db.Where("id = ?", res.OrderID).First(&order).Error)
	assert.Equal(t, 1, order.Quantity)
	assert.Equal(t, models.CardTypeStandard, order.CardType)
	assert.True(t, decimal.NewFromInt(150).Equal(order.TotalPrice))

	// Bilinmeyen tip standard fiyatıyla ve standard olarak kaydedilir
	req = validCreateRequest()
	req.OrderData.CardType = "Gold"
	req.OrderData.Quantity = 2
	res, err = svc.CreateCardWithOrder(context.Background(), req)
	require.NoError(t, err)
	var unknownTypeOrder models.Order
	require.NoError(t, db.Where("id = ?", res.OrderID).First(&unknownTypeOrder).Error)
	assert.Equal(t, models.CardTypeStandard, unknownTypeOrder.CardType)
	assert.True(t, decimal.NewFromInt(300).Equal(unknownTypeOrder.TotalPrice))
}

func TestCreateCardWithOrder_TrimsInput(t *testing.T) {
	db := newTestDB(t)
	svc := NewCardService(db)

	req := validCreateRequest()
	req.CardData.FirstName = "  Çağrı "
	req.CardData.LastName = " Şimşek  "
	req.OrderData.CustomerName = "  Çağrı Şimşek "

	res, err := svc.CreateCardWithOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Regexp(t, `^cagri-simsek-[0-9a-z]{4}$`, res.Slug)

	var card models.Card
	require.NoError(t, db.Where("id = ?", res.CardID).First(&card).Error)
	assert.Equal(t, "Çağrı", card.FirstName)
	assert.Equal(t, "Şimşek", card.LastName)
}

func TestCreateCardWithOrder_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *dto.CreateCardRequest)
		field  string
	}{
		{"empty first name", func(r *dto.CreateCardRequest) { r.CardData.FirstName = "" }, "firstName"},
		{"blank last name", func(r *dto.CreateCardRequest) { r.CardData.LastName = "   " }, "lastName"},
		{"empty customer name", func(r *dto.CreateCardRequest) { r.OrderData.CustomerName = "" }, "customerName"},
		{"empty customer email", func(r *dto.CreateCardRequest) { r.OrderData.CustomerEmail = " " }, "customerEmail"},
		{"empty shipping address", func(r *dto.CreateCardRequest) { r.OrderData.ShippingAddress = "" }, "shippingAddress"},
		{"negative quantity", func(r *dto.CreateCardRequest) { r.OrderData.Quantity = -1 }, "quantity"},
		{"gradient above 100", func(r *dto.CreateCardRequest) { r.CardData.GradientIntensity = 101 }, "gradientIntensity"},
		{"first name longer than column", func(r *dto.CreateCardRequest) { r.CardData.FirstName = strings.Repeat("a", 101) }, "firstName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			svc := NewCardService(db)
			req := validCreateRequest()
			tt.mutate(&req)

			_, err := svc.CreateCardWithOrder(context.Background(), req)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)

			var cards, orders int64
			db.Model(&models.Card{}).Count(&cards)
			db.Model(&models.Order{}).Count(&orders)
			assert.Zero(t, cards)
			assert.Zero(t, orders)
		})
	}
}

func TestCreateCardWithOrder_NoFormatValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewCardService(db)

	req := validCreateRequest()
	req.OrderData.CustomerEmail = "not-an-email"
	req.CardData.Website = "::::"
	req.CardData.Phone = "call me"

	_, err := svc.CreateCardWithOrder(context.Background(), req)
	require.NoError(t, err)
}

func seedSlugs(t *testing.T, svc *CardService, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		require.NoError(t, svc.db.Create(&models.Card{
			Slug:      "john-doe-" + fmtSuffix(i),
			FirstName: "John",
			LastName:  "Doe",
			IsActive:  true,
		}).Error)
	}
}

func TestCreateCardWithOrder_SlugCollisionsRetry(t *testing.T) {
	for collisions := 0; collisions <= 9; collisions++ {
		t.Run(fmt.Sprintf("%d collisions", collisions), func(t *testing.T) {
			db := newTestDB(t)
			svc := &CardService{db: db, repo: repositories.NewCardRepository(db), slugSuffix: sequentialSuffix()}
			seedSlugs(t, svc, collisions)

			res, err := svc.CreateCardWithOrder(context.Background(), validCreateRequest())
			require.NoError(t, err)
			assert.Equal(t, "john-doe-"+fmtSuffix(collisions+1), res.Slug)

			var count int64
			db.Model(&models.Card{}).Where("slug = ?", res.Slug).Count(&count)
			assert.EqualValues(t, 1, count)
		})
	}
}

func TestCreateCardWithOrder_TenCollisionsFailAtomically(t *testing.T) {
	db := newTestDB(t)
	svc := &CardService{db: db, repo: repositories.NewCardRepository(db), slugSuffix: sequentialSuffix()}
	seedSlugs(t, svc, 10)

	// Tüm denemeler çakışınca son aday döner; unique index yazmayı reddeder ve
	// sipariş de oluşmaz.
	_, err := svc.CreateCardWithOrder(context.Background(), validCreateRequest())
	require.ErrorIs(t, err, ErrCardCreationFailed)

	var cards, orders int64
	db.Model(&models.Card{}).Count(&cards)
	db.Model(&models.Order{}).Count(&orders)
	assert.EqualValues(t, 10, cards)
	assert.Zero(t, orders)
}

func TestGetPublicCard(t *testing.T) {
	db := newTestDB(t)
	svc := NewCardService(db)
	ctx := context.Background()

	res, err := svc.CreateCardWithOrder(ctx, validCreateRequest())
	require.NoError(t, err)

	card, err := svc.GetPublicCard(ctx, res.Slug)
	require.NoError(t, err)
	assert.True(t, card.IsActive)
	assert.EqualValues(t, 1, card.ViewCount)

	card, err = svc.GetPublicCard(ctx, res.Slug)
	require.NoError(t, err)
	assert.EqualValues(t, 2, card.ViewCount)

	_, err = svc.GetPublicCard(ctx, "no-such-slug")
	assert.ErrorIs(t, err, ErrCardNotFound)

	_, err = svc.SetCardActive(ctx, res.CardID, false)
	require.NoError(t, err)
	_, err = svc.GetPublicCard(ctx, res.Slug)
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestGetCardForVCardAndSetActive(t *testing.T) {
	db := newTestDB(t)
	svc := NewCardService(db)
	ctx := context.Background()

	res, err := svc.CreateCardWithOrder(ctx, validCreateRequest())
	require.NoError(t, err)

	card, err := svc.GetCardForVCard(ctx, res.CardID)
	require.NoError(t, err)
	assert.Equal(t, res.Slug, card.Slug)

	updated, err := svc.SetCardActive(ctx, res.CardID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	_, err = svc.GetCardForVCard(ctx, res.CardID)
	assert.ErrorIs(t, err, ErrCardNotFound)

	updated, err = svc.SetCardActive(ctx, res.CardID, true)
	require.NoError(t, err)
	assert.True(t, updated.IsActive)

	_, err = svc.GetCardForVCard(ctx, "missing")
	assert.ErrorIs(t, err, ErrCardNotFound)
	_, err = svc.SetCardActive(ctx, "missing", true)
	assert.ErrorIs(t, err, ErrCardNotFound)
}
