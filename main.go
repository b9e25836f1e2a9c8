package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nfckart.link/configs/configsapp"
	"nfckart.link/configs/configsdatabase"
	"nfckart.link/configs/configslog"
	"nfckart.link/database"
	"nfckart.link/routes"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	appName         = "nfckart"
	shutdownTimeout = 15 * time.Second
)

// Version derleme sırasında -ldflags ile değiştirilir.
var Version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Hata: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "NFC kartvizit vitrini ve yönetim API'si",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(serveCmd(), dbCmd(), versionCmd())
	return cmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "HTTP sunucusunu başlatır",
		RunE: func(cmd *cobra.Command, args []string) error {
			return bootstrap(func(cfg *configsapp.AppConfig) error {
				return serve(cmd.Context(), cfg)
			})
		},
	}
}

func dbCmd() *cobra.Command {
	var migrate, seed bool
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Veritabanı migrasyonlarını ve/veya seeder'ları çalıştırır",
		RunE: func(cmd *cobra.Command, args []string) error {
			return bootstrap(func(cfg *configsapp.AppConfig) error {
				configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
				opts := database.SeedOptions{
					AdminUsername: cfg.Admin.SeedUsername,
					AdminPassword: cfg.Admin.SeedPassword,
				}
				if err := database.Initialize(configsdatabase.GetDB(), migrate, seed, opts); err != nil {
					return err
				}
				configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Veritabanı başlatma işlemini çalıştır (migrasyonları içerir)")
	cmd.Flags().BoolVar(&seed, "seed", false, "Veritabanı başlatma işlemini çalıştır (seederları içerir)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Sürüm bilgisini yazdırır",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s %s\n", appName, Version)
		},
	}
}

// bootstrap config, logger ve veritabanını kurar; fn bittikten sonra kaynakları kapatır.
func bootstrap(fn func(cfg *configsapp.AppConfig) error) error {
	cfg, err := configsapp.Load()
	if err != nil {
		return err
	}

	configslog.InitLogger(cfg.Env, cfg.LogLevel)
	defer configslog.SyncLogger()

	if err := configsdatabase.InitDB(cfg.DB); err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kurulamadı", zap.Error(err))
		return err
	}
	defer configsdatabase.CloseDB()

	return fn(cfg)
}

func serve(ctx context.Context, cfg *configsapp.AppConfig) error {
	app := routes.NewApp(cfg)
	routes.SetupRoutes(app, configsdatabase.GetDB(), cfg)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		configslog.SLog.Infof("HTTP sunucusu başlatılıyor: %s", cfg.HTTP.Addr())
		errCh <- app.Listen(cfg.HTTP.Addr())
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP sunucusu durdu: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	configslog.SLog.Info("Kapatma sinyali alındı, sunucu kapatılıyor...")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("sunucu düzgün kapatılamadı: %w", err)
	}
	configslog.SLog.Info("Sunucu kapatıldı.")
	return nil
}
