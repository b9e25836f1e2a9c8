package repositories

import (
	"context"
	"errors"

	"nfckart.link/models"

	"gorm.io/gorm"
)

// IConsentRepository onay kayıtları için arayüz. Kayıtlar sadece eklenir.
type IConsentRepository interface {
	CreateBatch(ctx context.Context, consents []models.Consent) error
	FindByOrderID(ctx context.Context, orderID string) ([]models.Consent, error)
}

type ConsentRepository struct {
	db *gorm.DB
}

func NewConsentRepository(db *gorm.DB) IConsentRepository {
	return &ConsentRepository{db: db}
}

func NewConsentRepositoryTx(tx *gorm.DB) IConsentRepository {
	return &ConsentRepository{db: tx}
}

func (r *ConsentRepository) CreateBatch(ctx context.Context, consents []models.Consent) error {
	if len(consents) == 0 {
		return errors.New("eklenecek onay kaydı yok")
	}
	return r.db.WithContext(ctx).Create(&consents).Error
}

func (r *ConsentRepository) FindByOrderID(ctx context.Context, orderID string) ([]models.Consent, error) {
	var consents []models.Consent
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("accepted_at ASC").
		Find(&consents).Error
	return consents, err
}

var _ IConsentRepository = (*ConsentRepository)(nil)
