package repositories

import (
	"context"
	"errors"

	"nfckart.link/configs/configslog"
	"nfckart.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ICardRepository kartvizit veritabanı işlemleri için arayüz.
type ICardRepository interface {
	Create(ctx context.Context, card *models.Card) error // İç içe Orders da aynı yazmada oluşturulur
	FindByID(ctx context.Context, id string) (*models.Card, error)
	FindBySlug(ctx context.Context, slug string) (*models.Card, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	IncrementViewCount(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
}

// CardRepository ICardRepository arayüzünü uygular.
type CardRepository struct {
	base *BaseRepository[models.Card]
	db   *gorm.DB
}

// NewCardRepository yeni bir CardRepository örneği oluşturur.
func NewCardRepository(db *gorm.DB) ICardRepository {
	return &CardRepository{base: NewBaseRepository[models.Card](db), db: db}
}

// NewCardRepositoryTx transaction'a bağlı bir CardRepository döndürür.
func NewCardRepositoryTx(tx *gorm.DB) ICardRepository {
	return NewCardRepository(tx)
}

func (r *CardRepository) Create(ctx context.Context, card *models.Card) error {
	return r.base.Create(ctx, card)
}

func (r *CardRepository) FindByID(ctx context.Context, id string) (*models.Card, error) {
	return r.base.FindByID(ctx, id)
}

// FindBySlug slug ile kartviziti bulur. Aktiflik kontrolü servis katmanındadır.
func (r *CardRepository) FindBySlug(ctx context.Context, slug string) (*models.Card, error) {
	if slug == "" {
		return nil, ErrNotFound
	}
	var card models.Card
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CardRepository.FindBySlug: DB error", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &card, nil
}

// SlugExists slug'ın zaten kullanılıp kullanılmadığını kontrol eder.
func (r *CardRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Card{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		configslog.Log.Error("CardRepository.SlugExists: DB error", zap.String("slug", slug), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

// IncrementViewCount sayacı tek bir UPDATE ile artırır (oku-yaz yarışı yok).
func (r *CardRepository) IncrementViewCount(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&models.Card{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CardRepository) SetActive(ctx context.Context, id string, active bool) error {
	return r.base.UpdateFields(ctx, id, map[string]interface{}{"is_active": active})
}

// Arayüz uyumluluğu kontrolü
var _ ICardRepository = (*CardRepository)(nil)
