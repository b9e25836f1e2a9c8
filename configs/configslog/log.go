package configslog

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log yapılandırılmış (structured) loglama için ana logger.
// SLog printf tarzı kısa mesajlar için sugared logger.
// InitLogger çağrılana kadar ikisi de no-op'tur (testlerde güvenli).
var (
	Log  = zap.NewNop()
	SLog = Log.Sugar()
)

// InitLogger ortam ve seviyeye göre global logger'ları kurar.
func InitLogger(env string, level string) {
	var cfg zap.Config
	if strings.EqualFold(env, "development") {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))

	logger, err := cfg.Build(zap.AddCaller())
	if err != nil {
		// Logger kurulamazsa en azından production varsayılanıyla devam et
		logger = zap.Must(zap.NewProduction())
		logger.Error("Logger yapılandırması başarısız, varsayılan kullanılıyor", zap.Error(err))
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger tamponlanmış logları boşaltır. main içinde defer ile çağrılır.
func SyncLogger() {
	_ = Log.Sync() // stderr/stdout üzerinde Sync hata verebilir, yoksay
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
