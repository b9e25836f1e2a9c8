package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"nfckart.link/configs/configslog"
	"nfckart.link/dto"
	"nfckart.link/models"
	"nfckart.link/pkg/metrics"
	"nfckart.link/repositories"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminServiceError özel servis hataları
type AdminServiceError string

func (e AdminServiceError) Error() string { return string(e) }

const (
	ErrInvalidCredentials   AdminServiceError = "kullanıcı adı veya parola hatalı"
	ErrInvalidSession       AdminServiceError = "oturum geçersiz veya süresi dolmuş"
	ErrAdminNotFound        AdminServiceError = "yönetici bulunamadı"
	ErrPasswordUpdateFailed AdminServiceError = "parola güncellenemedi"
	ErrSessionSignFailed    AdminServiceError = "oturum anahtarı imzalanamadı"
)

// DefaultSessionTTL yönetici oturum çerezinin geçerlilik süresi.
const DefaultSessionTTL = 24 * time.Hour

// Kullanıcı bulunamadığında da bcrypt karşılaştırması yapılsın diye kullanılan sabit hash.
var dummyPasswordHash, _ = bcrypt.GenerateFromPassword([]byte("nfckart-dummy-password"), bcrypt.DefaultCost)

// AdminClaims oturum çerezindeki JWT içeriği. Subject yönetici ID'sidir.
type AdminClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// LoginResult başarılı girişin sonucu.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Admin     *models.Admin
}

// IAdminService yönetici oturum işlemleri için arayüz.
type IAdminService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	ParseToken(token string) (*AdminClaims, error)
	ChangePassword(ctx context.Context, adminID, currentPassword, newPassword string) error
}

// AdminService IAdminService arayüzünü uygular.
type AdminService struct {
	repo       repositories.IAdminRepository
	jwtSecret  []byte
	sessionTTL time.Duration
	now        func() time.Time
}

// NewAdminService yeni bir AdminService örneği oluşturur.
func NewAdminService(db *gorm.DB, jwtSecret string, sessionTTL time.Duration) IAdminService {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &AdminService{
		repo:       repositories.NewAdminRepository(db),
		jwtSecret:  []byte(jwtSecret),
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

// Login kullanıcı adı ve parolayı doğrular, imzalı oturum anahtarı üretir.
func (s *AdminService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if err := validateStruct(&dto.LoginRequest{Username: strings.TrimSpace(username), Password: password}); err != nil {
		return nil, err
	}

	admin, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(password))
			metrics.AdminLogins.WithLabelValues("failure").Inc()
			configslog.Log.Warn("Bilinmeyen kullanıcı adıyla giriş denemesi", zap.String("username", username))
			return nil, ErrInvalidCredentials
		}
		configslog.Log.Error("Login: Repo error", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		metrics.AdminLogins.WithLabelValues("failure").Inc()
		configslog.Log.Warn("Hatalı parola ile giriş denemesi", zap.String("username", admin.Username))
		return nil, ErrInvalidCredentials
	}

	now := s.now().UTC()
	expiresAt := now.Add(s.sessionTTL)
	token, err := s.signToken(admin, now, expiresAt)
	if err != nil {
		configslog.Log.Error("Oturum anahtarı imzalanamadı", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrSessionSignFailed, err)
	}

	if err := s.repo.UpdateFields(ctx, admin.ID, map[string]interface{}{"last_login_at": now}); err != nil {
		configslog.Log.Warn("Son giriş zamanı güncellenemedi", zap.String("admin_id", admin.ID), zap.Error(err))
	} else {
		admin.LastLoginAt = &now
	}

	metrics.AdminLogins.WithLabelValues("success").Inc()
	configslog.SLog.Infof("Yönetici girişi başarılı: %s", admin.Username)
	return &LoginResult{Token: token, ExpiresAt: expiresAt, Admin: admin}, nil
}

func (s *AdminService) signToken(admin *models.Admin, issuedAt, expiresAt time.Time) (string, error) {
	claims := AdminClaims{
		Name: admin.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

// ParseToken çerezdeki anahtarı doğrular. Her türlü hata ErrInvalidSession olarak döner.
func (s *AdminService) ParseToken(token string) (*AdminClaims, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}
	claims := &AdminClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("beklenmeyen imza yöntemi: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

// ChangePassword mevcut parolayı hash karşılaştırmasıyla doğrular ve yenisini kaydeder.
func (s *AdminService) ChangePassword(ctx context.Context, adminID, currentPassword, newPassword string) error {
	req := dto.ChangePasswordRequest{CurrentPassword: currentPassword, NewPassword: newPassword}
	if err := validateStruct(&req); err != nil {
		return err
	}

	admin, err := s.repo.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAdminNotFound
		}
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(currentPassword)); err != nil {
		configslog.Log.Warn("Parola değişikliğinde mevcut parola hatalı", zap.String("admin_id", adminID))
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPasswordUpdateFailed, err)
	}
	if err := s.repo.UpdateFields(ctx, adminID, map[string]interface{}{"password_hash": string(hash)}); err != nil {
		configslog.Log.Error("Parola güncellenemedi", zap.String("admin_id", adminID), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPasswordUpdateFailed, err)
	}

	configslog.SLog.Infof("Yönetici parolası değiştirildi: %s", admin.Username)
	return nil
}

var _ IAdminService = (*AdminService)(nil)
