package migrations

import (
	"nfckart.link/configs/configslog"
	"nfckart.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateConsentsTable(db *gorm.DB) error {
	configslog.SLog.Info("consents tablosu migrate ediliyor...")
	if err := db.AutoMigrate(&models.Consent{}); err != nil {
		configslog.Log.Error("consents tablosu migrate edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info("consents tablosu başarıyla migrate edildi")
	return nil
}
