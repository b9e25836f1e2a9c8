package services

import (
	"context"
	"errors"
	"fmt"

	"nfckart.link/configs/configslog"
	"nfckart.link/dto"
	"nfckart.link/models"
	"nfckart.link/pkg/metrics"
	"nfckart.link/pkg/slugify"
	"nfckart.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CardServiceError özel servis hataları
type CardServiceError string

func (e CardServiceError) Error() string { return string(e) }

const (
	ErrCardNotFound       CardServiceError = "kartvizit bulunamadı"
	ErrCardCreationFailed CardServiceError = "kartvizit oluşturulamadı"
	ErrCardUpdateFailed   CardServiceError = "kartvizit güncellenemedi"
)

// CreateCardResult oluşturma akışının başarılı sonucu.
type CreateCardResult struct {
	CardID  string `json:"cardId"`
	Slug    string `json:"slug"`
	OrderID string `json:"orderId"`
}

// ICardService kartvizit işlemleri için arayüz.
type ICardService interface {
	CreateCardWithOrder(ctx context.Context, req dto.CreateCardRequest) (*CreateCardResult, error)
	GetPublicCard(ctx context.Context, slug string) (*models.Card, error)
	GetCardForVCard(ctx context.Context, cardID string) (*models.Card, error)
	SetCardActive(ctx context.Context, cardID string, active bool) (*models.Card, error)
}

// CardService ICardService arayüzünü uygular.
type CardService struct {
	db         *gorm.DB
	repo       repositories.ICardRepository
	slugSuffix func() (string, error) // nil ise slugify varsayılanı
}

// NewCardService yeni bir CardService örneği oluşturur.
func NewCardService(db *gorm.DB) ICardService {
	return &CardService{db: db, repo: repositories.NewCardRepository(db)}
}

// CreateCardWithOrder kartviziti ve siparişini TEK BİR TRANSACTION içinde oluşturur.
// İki kayıttan biri yazılamazsa hiçbiri kalmaz.
func (s *CardService) CreateCardWithOrder(ctx context.Context, req dto.CreateCardRequest) (*CreateCardResult, error) {
	// 1. Kırp, varsayılanları uygula, doğrula
	req.Normalize()
	if err := validateStruct(&req); err != nil {
		return nil, err
	}

	// 2. Fiyat: bilinmeyen tip standard fiyatıyla ve standard olarak kaydedilir
	cardType := models.CardType(req.OrderData.CardType).Normalize()
	total := models.TotalPrice(cardType, req.OrderData.Quantity)

	card := newCardFromData(req.CardData)
	order := models.Order{
		Quantity:        req.OrderData.Quantity,
		CardType:        cardType,
		Status:          models.OrderStatusPending,
		TotalPrice:      total,
		Currency:        models.DefaultCurrency,
		CustomerName:    req.OrderData.CustomerName,
		CustomerEmail:   req.OrderData.CustomerEmail,
		CustomerPhone:   req.OrderData.CustomerPhone,
		ShippingAddress: req.OrderData.ShippingAddress,
		Notes:           req.OrderData.Notes,
		DeliveryMethod:  req.OrderData.DeliveryMethod,
	}

	// 3. Transaction
	var result *CreateCardResult
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cardRepoTx := repositories.NewCardRepositoryTx(tx)

		// a. Benzersiz slug (varlık kontrolleri transaction içinde)
		collisions := 0
		alloc := slugify.NewAllocator(func(ctx context.Context, slug string) (bool, error) {
			exists, err := cardRepoTx.SlugExists(ctx, slug)
			if exists {
				collisions++
				configslog.Log.Warn("Slug çakışması, yeniden deneniyor...", zap.String("slug", slug))
			}
			return exists, err
		})
		alloc.Suffix = s.slugSuffix

		slug, err := alloc.Allocate(ctx, card.FirstName, card.LastName)
		if err != nil {
			configslog.Log.Error("Slug ayrılamadı", zap.Error(err))
			return fmt.Errorf("%w: slug ayrılamadı: %v", ErrCardCreationFailed, err)
		}
		if collisions > 0 {
			metrics.SlugCollisions.Add(float64(collisions))
		}

		// b. Card + Order tek yazma
		card.Slug = slug
		card.Orders = []models.Order{order}
		if err := cardRepoTx.Create(ctx, card); err != nil {
			configslog.Log.Error("Kartvizit ve sipariş oluşturulurken transaction hatası", zap.String("slug", slug), zap.Error(err))
			return fmt.Errorf("%w: %v", ErrCardCreationFailed, err)
		}

		result = &CreateCardResult{CardID: card.ID, Slug: card.Slug, OrderID: card.Orders[0].ID}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, ErrCardCreationFailed) {
			return nil, txErr
		}
		configslog.Log.Error("Kartvizit oluşturma transaction'ı başarısız", zap.Error(txErr))
		return nil, fmt.Errorf("%w: %v", ErrCardCreationFailed, txErr)
	}

	metrics.CardsCreated.WithLabelValues(string(cardType)).Inc()
	configslog.SLog.Infof("Kartvizit ve sipariş başarıyla oluşturuldu: CardID %s, Slug: %s, OrderID: %s", result.CardID, result.Slug, result.OrderID)
	return result, nil
}

// GetPublicCard aktif kartviziti slug ile getirir ve görüntülenme sayacını artırır.
func (s *CardService) GetPublicCard(ctx context.Context, slug string) (*models.Card, error) {
	card, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	if !card.IsActive {
		configslog.Log.Info("Pasif kartvizit erişim denemesi", zap.String("slug", slug), zap.String("card_id", card.ID))
		return nil, ErrCardNotFound
	}

	// Sayaç hatası sayfayı engellemez
	if err := s.repo.IncrementViewCount(ctx, card.ID); err != nil {
		configslog.Log.Warn("Görüntülenme sayacı artırılamadı", zap.String("card_id", card.ID), zap.Error(err))
	} else {
		card.ViewCount++
		metrics.CardViews.Inc()
	}
	return card, nil
}

// GetCardForVCard vCard dışa aktarımı için aktif kartviziti getirir.
func (s *CardService) GetCardForVCard(ctx context.Context, cardID string) (*models.Card, error) {
	card, err := s.repo.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		configslog.Log.Error("GetCardForVCard: Repo error", zap.String("card_id", cardID), zap.Error(err))
		return nil, err
	}
	if !card.IsActive {
		return nil, ErrCardNotFound
	}
	return card, nil
}

// SetCardActive kartvizitin herkese açık sayfasını açar/kapatır (admin).
func (s *CardService) SetCardActive(ctx context.Context, cardID string, active bool) (*models.Card, error) {
	if err := s.repo.SetActive(ctx, cardID, active); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		configslog.Log.Error("Kartvizit aktiflik durumu güncellenemedi", zap.String("card_id", cardID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrCardUpdateFailed, err)
	}
	configslog.SLog.Infof("Kartvizit aktiflik durumu güncellendi: ID %s, aktif: %t", cardID, active)
	return s.repo.FindByID(ctx, cardID)
}

func newCardFromData(d dto.CardData) *models.Card {
	return &models.Card{
		FirstName:         d.FirstName,
		LastName:          d.LastName,
		Title:             d.Title,
		Company:           d.Company,
		Email:             d.Email,
		Phone:             d.Phone,
		Website:           d.Website,
		Address:           d.Address,
		Bio:               d.Bio,
		LinkedIn:          d.LinkedIn,
		Twitter:           d.Twitter,
		Instagram:         d.Instagram,
		WhatsApp:          d.WhatsApp,
		Telegram:          d.Telegram,
		VKontakte:         d.VKontakte,
		TikTok:            d.TikTok,
		WeChat:            d.WeChat,
		YouTube:           d.YouTube,
		Facebook:          d.Facebook,
		Snapchat:          d.Snapchat,
		Wildberries:       d.Wildberries,
		Ozon:              d.Ozon,
		YandexMarket:      d.YandexMarket,
		Theme:             d.Theme,
		PrimaryColor:      d.PrimaryColor,
		BackgroundColor:   d.BackgroundColor,
		GradientIntensity: d.GradientIntensity,
		Layout:            d.Layout,
		Photo:             d.Photo,
		IsActive:          true,
	}
}

var _ ICardService = (*CardService)(nil)
