package models

// Card dijital kartvizitin ana kaydıdır. Slug herkese açık adrestir (/c/{slug}).
type Card struct {
	BaseModel
	Slug string `gorm:"type:varchar(120);uniqueIndex;not null" json:"slug"`

	// Kişisel Bilgiler
	FirstName string `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName  string `gorm:"type:varchar(100);not null" json:"lastName"`
	Title     string `gorm:"type:varchar(150)" json:"title"`
	Company   string `gorm:"type:varchar(150)" json:"company"`

	// İletişim Bilgileri
	Email   string `gorm:"type:varchar(150)" json:"email"`
	Phone   string `gorm:"type:varchar(40)" json:"phone"`
	Website string `gorm:"type:varchar(255)" json:"website"`
	Address string `gorm:"type:text" json:"address"`
	Bio     string `gorm:"type:text" json:"bio"`

	// Sosyal medya: kullanıcı adı veya tam URL olabilir, gösterimde sociallinks ile biçimlenir
	LinkedIn     string `gorm:"type:varchar(255)" json:"linkedin"`
	Twitter      string `gorm:"type:varchar(255)" json:"twitter"`
	Instagram    string `gorm:"type:varchar(255)" json:"instagram"`
	WhatsApp     string `gorm:"type:varchar(255)" json:"whatsapp"`
	Telegram     string `gorm:"type:varchar(255)" json:"telegram"`
	VKontakte    string `gorm:"type:varchar(255)" json:"vkontakte"`
	TikTok       string `gorm:"type:varchar(255)" json:"tiktok"`
	WeChat       string `gorm:"type:varchar(255)" json:"wechat"`
	YouTube      string `gorm:"type:varchar(255)" json:"youtube"`
	Facebook     string `gorm:"type:varchar(255)" json:"facebook"`
	Snapchat     string `gorm:"type:varchar(255)" json:"snapchat"`
	Wildberries  string `gorm:"type:varchar(255)" json:"wildberries"`
	Ozon         string `gorm:"type:varchar(255)" json:"ozon"`
	YandexMarket string `gorm:"type:varchar(255)" json:"yandexmarket"`

	// Görünüm
	Theme             string `gorm:"type:varchar(50)" json:"theme"`
	PrimaryColor      string `gorm:"type:varchar(9)" json:"primaryColor"`
	BackgroundColor   string `gorm:"type:varchar(9)" json:"backgroundColor"`
	GradientIntensity int    `gorm:"type:integer;default:0" json:"gradientIntensity"` // 0-100
	Layout            string `gorm:"type:varchar(50)" json:"layout"`
	Photo             string `gorm:"type:text" json:"photo"` // data URL (data:image/jpeg;base64,...)

	IsActive  bool  `gorm:"default:true;index" json:"isActive"`
	ViewCount int64 `gorm:"default:0" json:"viewCount"`

	Orders []Order `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"orders,omitempty"`
}

// FullName ad ve soyadı birleştirir.
func (c *Card) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// SocialHandles platform adı -> ham değer eşlemesini sabit sırayla döndürür.
// Boş değerler atlanır.
func (c *Card) SocialHandles() []SocialHandle {
	all := []SocialHandle{
		{"linkedin", c.LinkedIn},
		{"twitter", c.Twitter},
		{"instagram", c.Instagram},
		{"whatsapp", c.WhatsApp},
		{"telegram", c.Telegram},
		{"vkontakte", c.VKontakte},
		{"tiktok", c.TikTok},
		{"wechat", c.WeChat},
		{"youtube", c.YouTube},
		{"facebook", c.Facebook},
		{"snapchat", c.Snapchat},
		{"wildberries", c.Wildberries},
		{"ozon", c.Ozon},
		{"yandexmarket", c.YandexMarket},
	}
	handles := make([]SocialHandle, 0, len(all))
	for _, h := range all {
		if h.Value != "" {
			handles = append(handles, h)
		}
	}
	return handles
}

// SocialHandle tek bir sosyal medya girdisi.
type SocialHandle struct {
	Platform string
	Value    string
}
