package migrations

import (
	"nfckart.link/configs/configslog"
	"nfckart.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateOrdersTable cards tablosundan sonra çalışmalı (card_id yabancı anahtarı).
func MigrateOrdersTable(db *gorm.DB) error {
	configslog.SLog.Info("orders tablosu migrate ediliyor...")
	if err := db.AutoMigrate(&models.Order{}); err != nil {
		configslog.Log.Error("orders tablosu migrate edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info("orders tablosu başarıyla migrate edildi")
	return nil
}
