package migrations

import (
	"nfckart.link/configs/configslog"
	"nfckart.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateAdminsTable(db *gorm.DB) error {
	configslog.SLog.Info("admins tablosu migrate ediliyor...")
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		configslog.Log.Error("admins tablosu migrate edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info("admins tablosu başarıyla migrate edildi")
	return nil
}
