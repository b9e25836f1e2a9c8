package models

import "time"

// ConsentDocument onay verilen yasal metin türü.
type ConsentDocument string

const (
	ConsentTerms         ConsentDocument = "terms"          // Kullanım koşulları
	ConsentPrivacy       ConsentDocument = "privacy"        // Gizlilik politikası
	ConsentDistanceSales ConsentDocument = "distance_sales" // Mesafeli satış sözleşmesi
	ConsentKVKK          ConsentDocument = "kvkk"           // Aydınlatma metni
)

// Consent bir siparişe ait yasal metin onayını kaydeder. Sadece eklenir, güncellenmez.
type Consent struct {
	BaseModel
	OrderID         string          `gorm:"type:varchar(36);index;not null" json:"orderId"`
	DocumentType    ConsentDocument `gorm:"type:varchar(30);not null" json:"documentType"`
	DocumentVersion string          `gorm:"type:varchar(20);not null" json:"documentVersion"`
	AcceptedAt      time.Time       `gorm:"not null" json:"acceptedAt"`
	IPAddress       string          `gorm:"type:varchar(64)" json:"ipAddress"`
	UserAgent       string          `gorm:"type:varchar(255)" json:"userAgent"`
}
