package repositories

import (
	"context"
	"errors"

	"nfckart.link/pkg/queryparams"

	"gorm.io/gorm"
)

// ErrNotFound repository katmanının "kayıt yok" hatası. Servisler bunu kendi hatalarına çevirir.
var ErrNotFound = errors.New("kayıt bulunamadı")

// IBaseRepository tüm modeller için ortak CRUD işlemleri.
type IBaseRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id string, preloads ...string) (*T, error)
	Exists(ctx context.Context, id string) (bool, error)
	UpdateFields(ctx context.Context, id string, data map[string]interface{}) error
	GetCount(ctx context.Context) (int64, error)
	SetAllowedSortColumns(columns []string)
	SortColumn(sortBy string) string
}

// BaseRepository IBaseRepository'nin gorm ile generik uygulaması.
type BaseRepository[T any] struct {
	db                 *gorm.DB
	allowedSortColumns map[string]bool
}

// NewBaseRepository verilen bağlantı (veya transaction) ile yeni bir base repository döndürür.
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{
		db:                 db,
		allowedSortColumns: map[string]bool{"created_at": true},
	}
}

func (r *BaseRepository[T]) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("oluşturulacak kayıt nil olamaz")
	}
	return r.getDB(ctx).Create(entity).Error
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id string, preloads ...string) (*T, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	var entity T
	q := r.getDB(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	err := q.Where("id = ?", id).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *BaseRepository[T]) Exists(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, nil
	}
	var count int64
	err := r.getDB(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// UpdateFields verilen kolonları günceller; kayıt yoksa ErrNotFound döner.
func (r *BaseRepository[T]) UpdateFields(ctx context.Context, id string, data map[string]interface{}) error {
	if id == "" {
		return ErrNotFound
	}
	if len(data) == 0 {
		return errors.New("güncellenecek veri boş olamaz")
	}
	result := r.getDB(ctx).Model(new(T)).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		exists, err := r.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}
	}
	return nil
}

func (r *BaseRepository[T]) GetCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(new(T)).Count(&count).Error
	return count, err
}

// SetAllowedSortColumns sıralamada kullanılabilecek kolonları belirler (SQL enjeksiyonuna karşı izin listesi).
func (r *BaseRepository[T]) SetAllowedSortColumns(columns []string) {
	r.allowedSortColumns = make(map[string]bool, len(columns))
	for _, c := range columns {
		r.allowedSortColumns[c] = true
	}
}

// SortColumn izin listesinde olmayan sütunlar için varsayılanı döndürür.
func (r *BaseRepository[T]) SortColumn(sortBy string) string {
	if r.allowedSortColumns[sortBy] {
		return sortBy
	}
	return queryparams.DefaultSortBy
}

var _ IBaseRepository[struct{}] = (*BaseRepository[struct{}])(nil)
