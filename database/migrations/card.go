package migrations

import (
	"nfckart.link/configs/configslog"
	"nfckart.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateCardsTable(db *gorm.DB) error {
	configslog.SLog.Info("cards tablosu migrate ediliyor...")
	if err := db.AutoMigrate(&models.Card{}); err != nil {
		configslog.Log.Error("cards tablosu migrate edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info("cards tablosu başarıyla migrate edildi")
	return nil
}
