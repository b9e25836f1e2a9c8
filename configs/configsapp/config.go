package configsapp

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// AppConfig uygulamanın tüm ortam değişkeni tabanlı ayarlarını tutar.
type AppConfig struct {
	Env           string `env:"APP_ENV" envDefault:"development"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:3000"`

	HTTP  HTTPConfig  `envPrefix:"HTTP_"`
	DB    DBConfig    `envPrefix:"DB_"`
	Admin AdminConfig `envPrefix:"ADMIN_"`
}

type HTTPConfig struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port string `env:"PORT" envDefault:"3000"`
}

// Addr Fiber Listen için host:port döndürür.
func (h HTTPConfig) Addr() string {
	return h.Host + ":" + h.Port
}

type DBConfig struct {
	Driver     string `env:"DRIVER" envDefault:"postgres"` // postgres | sqlite
	Host       string `env:"HOST" envDefault:"localhost"`
	Port       string `env:"PORT" envDefault:"5432"`
	User       string `env:"USER" envDefault:"postgres"`
	Password   string `env:"PASSWORD"`
	Name       string `env:"NAME" envDefault:"nfckart"`
	SSLMode    string `env:"SSLMODE" envDefault:"disable"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"nfckart.db"`
}

// DSN postgres bağlantı dizesini üretir.
func (d DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type AdminConfig struct {
	APIKey       string        `env:"API_KEY"`    // x-admin-key başlığı ile karşılaştırılır
	JWTSecret    string        `env:"JWT_SECRET"` // oturum çerezi imzası
	SessionTTL   time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"false"`
	SeedUsername string        `env:"SEED_USERNAME" envDefault:"admin"`
	SeedPassword string        `env:"SEED_PASSWORD"`
}

// Load .env dosyasını (varsa) yükler ve ortam değişkenlerini AppConfig'e ayrıştırır.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf(".env okunamadı: %w", err)
	}

	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("ortam değişkenleri ayrıştırılamadı: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsDevelopment geliştirme ortamında mıyız?
func (c *AppConfig) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// Validate production ortamında zorunlu gizli değerlerin varlığını kontrol eder.
func (c *AppConfig) Validate() error {
	switch c.DB.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("desteklenmeyen DB_DRIVER: %q", c.DB.Driver)
	}
	if c.IsDevelopment() {
		return nil
	}
	var missing []string
	if c.Admin.APIKey == "" {
		missing = append(missing, "ADMIN_API_KEY")
	}
	if c.Admin.JWTSecret == "" {
		missing = append(missing, "ADMIN_JWT_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("zorunlu ortam değişkenleri eksik: %s", strings.Join(missing, ", "))
	}
	return nil
}
