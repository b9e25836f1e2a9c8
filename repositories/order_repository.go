package repositories

import (
	"context"
	"errors"

	"nfckart.link/models"
	"nfckart.link/pkg/queryparams"
	"nfckart.link/pkg/turkishsearch"

	"gorm.io/gorm"
)

// IOrderRepository sipariş veritabanı işlemleri için arayüz.
type IOrderRepository interface {
	// FindByID siparişi kartı ve onaylarıyla birlikte getirir.
	FindByID(ctx context.Context, id string) (*models.Order, error)
	Exists(ctx context.Context, id string) (bool, error)
	UpdateFields(ctx context.Context, id string, data map[string]interface{}) error
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Order, int64, error)
}

// OrderRepository IOrderRepository arayüzünü uygular.
type OrderRepository struct {
	base *BaseRepository[models.Order]
	db   *gorm.DB
}

// NewOrderRepository yeni bir OrderRepository örneği oluşturur.
func NewOrderRepository(db *gorm.DB) IOrderRepository {
	base := NewBaseRepository[models.Order](db)
	base.SetAllowedSortColumns([]string{
		"created_at", "updated_at", "status", "total_price", "quantity", "customer_name",
	})
	return &OrderRepository{base: base, db: db}
}

func NewOrderRepositoryTx(tx *gorm.DB) IOrderRepository {
	return NewOrderRepository(tx)
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	var order models.Order
	q := r.db.WithContext(ctx).
		Preload("Card").
		Preload("Consents", func(db *gorm.DB) *gorm.DB { return db.Order("accepted_at ASC") })
	if err := q.Where("id = ?", id).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) Exists(ctx context.Context, id string) (bool, error) {
	return r.base.Exists(ctx, id)
}

func (r *OrderRepository) UpdateFields(ctx context.Context, id string, data map[string]interface{}) error {
	return r.base.UpdateFields(ctx, id, data)
}

// FindAllPaginated siparişleri durum ve müşteri adı/e-postası filtresiyle sayfalayarak listeler.
// params önceden Validate edilmiş olmalı.
func (r *OrderRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Order, int64, error) {
	var results []models.Order
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.Order{})

	if params.Name != "" {
		nameSQL, nameArgs := turkishsearch.SQLFilter("customer_name", params.Name)
		emailSQL, emailArgs := turkishsearch.SQLFilter("customer_email", params.Name)
		query = query.Where("("+nameSQL+" OR "+emailSQL+")", nameArgs[0], emailArgs[0])
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	query = query.Session(&gorm.Session{}) // Count ve Find aynı filtreleri ayrı statement'larla kullanır

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return results, 0, nil
	}

	orderColumn := r.base.SortColumn(params.SortBy)
	err := query.
		Preload("Card").
		Order(orderColumn + " " + params.OrderBy).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&results).Error
	return results, totalCount, err
}

// Arayüz uyumluluğu kontrolü
var _ IOrderRepository = (*OrderRepository)(nil)
