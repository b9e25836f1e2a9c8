package repositories

import (
	"context"
	"errors"

	"nfckart.link/models"

	"gorm.io/gorm"
)

// IAdminRepository yönetici kayıtları için arayüz.
type IAdminRepository interface {
	FindByID(ctx context.Context, id string) (*models.Admin, error)
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
	UpdateFields(ctx context.Context, id string, data map[string]interface{}) error
}

type AdminRepository struct {
	base *BaseRepository[models.Admin]
	db   *gorm.DB
}

func NewAdminRepository(db *gorm.DB) IAdminRepository {
	return &AdminRepository{base: NewBaseRepository[models.Admin](db), db: db}
}

func (r *AdminRepository) FindByID(ctx context.Context, id string) (*models.Admin, error) {
	return r.base.FindByID(ctx, id)
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	if username == "" {
		return nil, ErrNotFound
	}
	var admin models.Admin
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) UpdateFields(ctx context.Context, id string, data map[string]interface{}) error {
	return r.base.UpdateFields(ctx, id, data)
}

var _ IAdminRepository = (*AdminRepository)(nil)
