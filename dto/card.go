// Package dto HTTP isteklerinin gövdelerini ve doğrulama kurallarını tanımlar.
package dto

import "strings"

// CardData sihirbazdan gelen kartvizit tasarım alanları.
// E-posta, telefon ve URL biçimi burada doğrulanmaz (istemci formunda yapılır).
type CardData struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Title     string `json:"title" validate:"max=150"`
	Company   string `json:"company" validate:"max=150"`

	Email   string `json:"email" validate:"max=150"`
	Phone   string `json:"phone" validate:"max=40"`
	Website string `json:"website" validate:"max=255"`
	Address string `json:"address"`
	Bio     string `json:"bio"`

	LinkedIn     string `json:"linkedin" validate:"max=255"`
	Twitter      string `json:"twitter" validate:"max=255"`
	Instagram    string `json:"instagram" validate:"max=255"`
	WhatsApp     string `json:"whatsapp" validate:"max=255"`
	Telegram     string `json:"telegram" validate:"max=255"`
	VKontakte    string `json:"vkontakte" validate:"max=255"`
	TikTok       string `json:"tiktok" validate:"max=255"`
	WeChat       string `json:"wechat" validate:"max=255"`
	YouTube      string `json:"youtube" validate:"max=255"`
	Facebook     string `json:"facebook" validate:"max=255"`
	Snapchat     string `json:"snapchat" validate:"max=255"`
	Wildberries  string `json:"wildberries" validate:"max=255"`
	Ozon         string `json:"ozon" validate:"max=255"`
	YandexMarket string `json:"yandexmarket" validate:"max=255"`

	Theme             string `json:"theme" validate:"max=50"`
	PrimaryColor      string `json:"primaryColor" validate:"max=9"`
	BackgroundColor   string `json:"backgroundColor" validate:"max=9"`
	GradientIntensity int    `json:"gradientIntensity" validate:"min=0,max=100"`
	Layout            string `json:"layout" validate:"max=50"`
	Photo             string `json:"photo"`
}

// OrderData sipariş ve müşteri alanları.
type OrderData struct {
	Quantity        int    `json:"quantity" validate:"min=1"`
	CardType        string `json:"cardType"`
	CustomerName    string `json:"customerName" validate:"required,max=150"`
	CustomerEmail   string `json:"customerEmail" validate:"required,max=150"`
	CustomerPhone   string `json:"customerPhone" validate:"max=40"`
	ShippingAddress string `json:"shippingAddress" validate:"required"`
	Notes           string `json:"notes"`
	DeliveryMethod  string `json:"deliveryMethod" validate:"max=50"`
}

// CreateCardRequest POST /api/cards gövdesi.
type CreateCardRequest struct {
	CardData  CardData  `json:"cardData"`
	OrderData OrderData `json:"orderData"`
}

// Normalize tüm metin alanlarını kırpar ve varsayılanları uygular
// (adet 0 ise 1, kart tipi boşsa standard).
func (r *CreateCardRequest) Normalize() {
	c := &r.CardData
	for _, f := range []*string{
		&c.FirstName, &c.LastName, &c.Title, &c.Company,
		&c.Email, &c.Phone, &c.Website, &c.Address, &c.Bio,
		&c.LinkedIn, &c.Twitter, &c.Instagram, &c.WhatsApp, &c.Telegram, &c.VKontakte, &c.TikTok,
		&c.WeChat, &c.YouTube, &c.Facebook, &c.Snapchat, &c.Wildberries, &c.Ozon, &c.YandexMarket,
		&c.Theme, &c.PrimaryColor, &c.BackgroundColor, &c.Layout, &c.Photo,
	} {
		*f = strings.TrimSpace(*f)
	}

	o := &r.OrderData
	for _, f := range []*string{
		&o.CardType, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.ShippingAddress, &o.Notes, &o.DeliveryMethod,
	} {
		*f = strings.TrimSpace(*f)
	}
	o.CardType = strings.ToLower(o.CardType)
	if o.Quantity == 0 {
		o.Quantity = 1
	}
	if o.CardType == "" {
		o.CardType = "standard"
	}
}

// SetCardActiveRequest PATCH /api/admin/cards/:cardId gövdesi.
type SetCardActiveRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}
