package seeders

import (
	"errors"
	"strings"

	"nfckart.link/configs/configslog"
	"nfckart.link/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MinSeedPasswordLength seed edilen yönetici parolasının en kısa uzunluğu.
const MinSeedPasswordLength = 8

// SeedAdmin verilen kullanıcı adıyla bir yönetici yoksa oluşturur. Varsa parolasına dokunmaz.
func SeedAdmin(db *gorm.DB, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errors.New("seed için yönetici kullanıcı adı boş olamaz")
	}

	var existing models.Admin
	result := db.Where("username = ?", username).First(&existing)
	if result.Error == nil {
		configslog.SLog.Debugf("Yönetici '%s' zaten mevcut, oluşturma atlanıyor.", username)
		return nil
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Yönetici kontrol edilirken veritabanı hatası",
			zap.String("username", username),
			zap.Error(result.Error),
		)
		return result.Error
	}

	if len(password) < MinSeedPasswordLength {
		return errors.New("seed için yönetici parolası en az 8 karakter olmalı (ADMIN_SEED_PASSWORD)")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.Admin{Username: username, PasswordHash: string(hash)}
	if err := db.Create(&admin).Error; err != nil {
		configslog.Log.Error("Yönetici oluşturulamadı", zap.String("username", username), zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Yönetici '%s' başarıyla oluşturuldu (ID: %s).", username, admin.ID)
	return nil
}
