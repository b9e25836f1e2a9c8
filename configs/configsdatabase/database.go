package configsdatabase

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"nfckart.link/configs/configsapp"
	"nfckart.link/configs/configslog"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB yapılandırmaya göre veritabanı bağlantısını açar ve global olarak saklar.
func InitDB(cfg configsapp.DBConfig) error {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		dialector = postgres.Open(cfg.DSN())
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return fmt.Errorf("veritabanına bağlanılamadı: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return fmt.Errorf("sql.DB alınamadı: %w", err)
	}
	configurePool(sqlDB, cfg.Driver)

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return fmt.Errorf("veritabanı ping başarısız: %w", err)
	}

	db = conn
	configslog.Log.Info("Veritabanı bağlantısı kuruldu", zap.String("driver", cfg.Driver))
	return nil
}

func configurePool(sqlDB *sql.DB, driver string) {
	if driver == "sqlite" {
		// sqlite tek yazıcıya izin verir
		sqlDB.SetMaxOpenConns(1)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
}

// GetDB aktif bağlantıyı döndürür. InitDB çağrılmadıysa nil'dir.
func GetDB() *gorm.DB {
	return db
}

// SetDB global bağlantıyı değiştirir (testler ve CLI için).
func SetDB(conn *gorm.DB) {
	db = conn
}

// CloseDB bağlantı havuzunu kapatır.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Veritabanı kapatılırken sql.DB alınamadı", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
		return
	}
	configslog.SLog.Info("Veritabanı bağlantısı kapatıldı")
}
