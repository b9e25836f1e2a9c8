package database

import (
	"errors"

	"nfckart.link/configs/configslog"
	"nfckart.link/database/migrations"
	"nfckart.link/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedOptions seed adımının ihtiyaç duyduğu değerler.
type SeedOptions struct {
	AdminUsername string
	AdminPassword string
}

// Initialize migrasyonları ve/veya seeder'ları tek bir transaction içinde çalıştırır.
// Herhangi bir adım hata verirse tüm işlem geri alınır.
func Initialize(db *gorm.DB, migrate bool, seed bool, opts SeedOptions) (err error) {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Error("Veritabanı transaction başlatılamadı", zap.Error(tx.Error))
		return tx.Error
	}

	committed := false
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Error("Veritabanı başlatma işlemi başarısız oldu (panic)", zap.Any("panic_info", r))
			err = errors.New("veritabanı başlatma sırasında panic oluştu")
			return
		}
		if !committed {
			configslog.SLog.Warn("Başlatma sırasında hata oluştuğu için işlem geri alınıyor.")
			if rbErr := tx.Rollback().Error; rbErr != nil && !errors.Is(rbErr, gorm.ErrInvalidTransaction) {
				configslog.Log.Error("Rollback sırasında ek hata oluştu", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if migrate {
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
			return err
		}
	} else {
		configslog.SLog.Info("Migrate bayrağı belirtilmedi, migrasyon adımı atlanıyor.")
	}

	if seed {
		if err := CheckAndRunSeeders(tx, opts); err != nil {
			configslog.Log.Error("Seeding başarısız oldu", zap.Error(err))
			return err
		}
	} else {
		configslog.SLog.Info("Seed bayrağı belirtilmedi, seeder adımı atlanıyor.")
	}

	if err := tx.Commit().Error; err != nil {
		configslog.Log.Error("Commit başarısız oldu", zap.Error(err))
		return err
	}
	committed = true

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
	return nil
}

// RunMigrationsInOrder tabloları yabancı anahtar sırasına göre migrate eder.
func RunMigrationsInOrder(db *gorm.DB) error {
	steps := []struct {
		name string
		fn   func(*gorm.DB) error
	}{
		{"admins", migrations.MigrateAdminsTable},
		{"cards", migrations.MigrateCardsTable},
		{"orders", migrations.MigrateOrdersTable},
		{"consents", migrations.MigrateConsentsTable},
	}

	for _, step := range steps {
		configslog.SLog.Infof(" -> %s migrasyonu çalıştırılıyor...", step.name)
		if err := step.fn(db); err != nil {
			return err
		}
	}

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

func CheckAndRunSeeders(db *gorm.DB, opts SeedOptions) error {
	configslog.SLog.Info(" -> Yönetici seeder çalıştırılıyor...")
	if err := seeders.SeedAdmin(db, opts.AdminUsername, opts.AdminPassword); err != nil {
		configslog.Log.Error("Yönetici seed edilemedi", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Tüm seeder'lar başarıyla kontrol edildi/çalıştırıldı.")
	return nil
}
