package models

import "github.com/shopspring/decimal"

// OrderStatus sipariş durumlarını tanımlar.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"    // Yeni sipariş
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"  // Onaylandı
	OrderStatusProcessing OrderStatus = "PROCESSING" // Baskı/kodlama aşamasında
	OrderStatusShipped    OrderStatus = "SHIPPED"    // Kargoya verildi
	OrderStatusDelivered  OrderStatus = "DELIVERED"  // Teslim edildi
	OrderStatusCancelled  OrderStatus = "CANCELLED"  // İptal (son durum)
)

// orderFlow takip ekranındaki doğrusal ilerleme sırası. CANCELLED bu akışın dışındadır.
var orderFlow = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
}

// OrderStatuses bilinen tüm durumlar.
func OrderStatuses() []OrderStatus {
	return append(append([]OrderStatus{}, orderFlow...), OrderStatusCancelled)
}

// Valid durum bilinen altı değerden biri mi? Geçiş sırası KONTROL EDİLMEZ:
// admin herhangi bir durumdan herhangi birine geçebilir (örn. DELIVERED -> PENDING).
func (s OrderStatus) Valid() bool {
	if s == OrderStatusCancelled {
		return true
	}
	return s.Step() >= 0
}

// Step doğrusal akıştaki sırayı döndürür (PENDING=0 ... DELIVERED=4). CANCELLED ve
// bilinmeyen durumlar için -1.
func (s OrderStatus) Step() int {
	for i, st := range orderFlow {
		if st == s {
			return i
		}
	}
	return -1
}

// IsTerminal DELIVERED ve CANCELLED son durumlardır.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// Order fiziksel kart siparişidir. Oluşturma akışında her kart için tam bir sipariş açılır.
type Order struct {
	BaseModel
	CardID string `gorm:"type:varchar(36);index;not null" json:"cardId"`

	Quantity   int             `gorm:"type:integer;not null;default:1" json:"quantity"`
	CardType   CardType        `gorm:"type:varchar(20);not null;default:'standard'" json:"cardType"`
	Status     OrderStatus     `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"totalPrice"`
	Currency   string          `gorm:"type:varchar(3);default:'TRY'" json:"currency"`

	// Müşteri
	CustomerName    string `gorm:"type:varchar(150);not null" json:"customerName"`
	CustomerEmail   string `gorm:"type:varchar(150);not null;index" json:"customerEmail"`
	CustomerPhone   string `gorm:"type:varchar(40)" json:"customerPhone"`
	ShippingAddress string `gorm:"type:text;not null" json:"shippingAddress"`
	Notes           string `gorm:"type:text" json:"notes"`

	// Teslimat (admin tarafından doldurulur)
	DeliveryMethod string `gorm:"type:varchar(50)" json:"deliveryMethod"`
	TrackingNumber string `gorm:"type:varchar(100)" json:"trackingNumber"`

	Card     *Card     `gorm:"foreignKey:CardID" json:"card,omitempty"`
	Consents []Consent `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"consents,omitempty"`
}
