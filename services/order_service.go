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
	"nfckart.link/pkg/queryparams"
	"nfckart.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrderServiceError özel servis hataları
type OrderServiceError string

func (e OrderServiceError) Error() string { return string(e) }

const (
	ErrOrderNotFound       OrderServiceError = "sipariş bulunamadı"
	ErrOrderUpdateFailed   OrderServiceError = "sipariş güncellenemedi"
	ErrConsentRecordFailed OrderServiceError = "onay kaydı oluşturulamadı"
)

const maxUserAgentLength = 255

// IOrderService sipariş işlemleri için arayüz.
type IOrderService interface {
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, req dto.UpdateOrderStatusRequest) (*models.Order, error)
	ListOrders(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	RecordConsents(ctx context.Context, orderID string, req dto.RecordConsentsRequest, ip, userAgent string) ([]models.Consent, error)
	ListConsents(ctx context.Context, orderID string) ([]models.Consent, error)
}

// OrderService IOrderService arayüzünü uygular.
type OrderService struct {
	db          *gorm.DB
	repo        repositories.IOrderRepository
	consentRepo repositories.IConsentRepository
}

// NewOrderService yeni bir OrderService örneği oluşturur.
func NewOrderService(db *gorm.DB) IOrderService {
	return &OrderService{
		db:          db,
		repo:        repositories.NewOrderRepository(db),
		consentRepo: repositories.NewConsentRepository(db),
	}
}

// GetOrder siparişi kartı ve onaylarıyla birlikte getirir.
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		configslog.Log.Error("GetOrder: Repo error", zap.String("order_id", orderID), zap.Error(err))
		return nil, err
	}
	return order, nil
}

// UpdateOrderStatus sipariş durumunu tek satırlık bir güncellemeyle değiştirir.
// Hedef durumun bilinen altı değerden biri olması dışında geçiş kuralı uygulanmaz;
// örneğin PENDING -> SHIPPED veya DELIVERED -> PENDING kabul edilir. Bildirim gönderilmez.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID string, req dto.UpdateOrderStatusRequest) (*models.Order, error) {
	req.Status = strings.TrimSpace(req.Status)
	if err := validateStruct(&req); err != nil {
		return nil, err
	}
	status := models.OrderStatus(req.Status)

	data := map[string]interface{}{"status": status}
	if req.TrackingNumber != nil {
		data["tracking_number"] = strings.TrimSpace(*req.TrackingNumber)
	}
	if req.DeliveryMethod != nil {
		data["delivery_method"] = strings.TrimSpace(*req.DeliveryMethod)
	}

	if err := s.repo.UpdateFields(ctx, orderID, data); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		configslog.Log.Error("Sipariş durumu güncellenemedi", zap.String("order_id", orderID), zap.String("status", string(status)), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrOrderUpdateFailed, err)
	}

	metrics.OrderStatusUpdates.WithLabelValues(string(status)).Inc()
	configslog.SLog.Infof("Sipariş durumu güncellendi: ID %s, yeni durum: %s", orderID, status)
	return s.GetOrder(ctx, orderID)
}

// ListOrders siparişleri sayfalayarak listeler (admin).
func (s *OrderService) ListOrders(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()

	orders, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		configslog.Log.Error("Siparişler listelenirken hata", zap.Error(err))
		return nil, err
	}

	return &queryparams.PaginatedResult{
		Data: orders,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// RecordConsents mevcut bir siparişe yasal metin onaylarını ekler. Kayıtlar güncellenmez.
func (s *OrderService) RecordConsents(ctx context.Context, orderID string, req dto.RecordConsentsRequest, ip, userAgent string) ([]models.Consent, error) {
	for i := range req.Consents {
		req.Consents[i].DocumentType = strings.TrimSpace(req.Consents[i].DocumentType)
		req.Consents[i].DocumentVersion = strings.TrimSpace(req.Consents[i].DocumentVersion)
	}
	if err := validateStruct(&req); err != nil {
		return nil, err
	}
	if len(userAgent) > maxUserAgentLength {
		userAgent = userAgent[:maxUserAgentLength]
	}

	var consents []models.Consent
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := repositories.NewOrderRepositoryTx(tx).Exists(ctx, orderID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrOrderNotFound
		}

		now := time.Now().UTC()
		consents = make([]models.Consent, 0, len(req.Consents))
		for _, item := range req.Consents {
			consents = append(consents, models.Consent{
				OrderID:         orderID,
				DocumentType:    models.ConsentDocument(item.DocumentType),
				DocumentVersion: item.DocumentVersion,
				AcceptedAt:      now,
				IPAddress:       ip,
				UserAgent:       userAgent,
			})
		}
		return repositories.NewConsentRepositoryTx(tx).CreateBatch(ctx, consents)
	})
	if txErr != nil {
		if errors.Is(txErr, ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		configslog.Log.Error("Onay kayıtları oluşturulamadı", zap.String("order_id", orderID), zap.Error(txErr))
		return nil, fmt.Errorf("%w: %v", ErrConsentRecordFailed, txErr)
	}

	configslog.SLog.Infof("%d onay kaydı eklendi: OrderID %s", len(consents), orderID)
	return consents, nil
}

// ListConsents siparişe ait onayları kabul sırasıyla döndürür.
func (s *OrderService) ListConsents(ctx context.Context, orderID string) ([]models.Consent, error) {
	exists, err := s.repo.Exists(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrOrderNotFound
	}
	return s.consentRepo.FindByOrderID(ctx, orderID)
}

var _ IOrderService = (*OrderService)(nil)
