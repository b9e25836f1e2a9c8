// Package sociallinks serbest metin kullanıcı adlarını veya URL'leri platforma özgü
// kanonik profil adreslerine çevirir (vCard ve kart sayfası için).
package sociallinks

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	phoneLikeRe = regexp.MustCompile(`^[\d+\s()-]+$`)
	phoneKeepRe = regexp.MustCompile(`[^\d+]`)
	digitsRe    = regexp.MustCompile(`^\d+$`)
)

// Platform başına profil şablonu. %s normalize edilmiş değerdir.
var profileTemplates = map[string]string{
	"linkedin":  "https://linkedin.com/in/%s",
	"twitter":   "https://x.com/%s",
	"x":         "https://x.com/%s",
	"instagram": "https://instagram.com/%s",
	"telegram":  "https://t.me/%s",
	"tiktok":    "https://tiktok.com/@%s",
	"vkontakte": "https://vk.com/%s",
	"vk":        "https://vk.com/%s",
	"wechat":    "weixin://dl/chat?%s",
	"youtube":   "https://youtube.com/@%s",
	"facebook":  "https://facebook.com/%s",
	"snapchat":  "https://snapchat.com/add/%s",
}

// Pazar yerleri: sadece rakamdan oluşan değer satıcı/mağaza ID'si, diğerleri arama.
type marketplace struct {
	seller string
	search string
}

var marketplaces = map[string]marketplace{
	"wildberries":  {seller: "https://www.wildberries.ru/seller/%s", search: "https://www.wildberries.ru/catalog/0/search.aspx?search=%s"},
	"ozon":         {seller: "https://www.ozon.ru/seller/%s/", search: "https://www.ozon.ru/search/?text=%s"},
	"yandexmarket": {seller: "https://market.yandex.ru/business--%s", search: "https://market.yandex.ru/search?text=%s"},
}

// IsURL değer zaten tam bir http(s) adresi mi?
func IsURL(value string) bool {
	v := strings.ToLower(value)
	return strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://")
}

// Normalize baştaki/sondaki boşlukları ve baştaki @ işaretini temizler.
func Normalize(value string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(value), "@"))
}

// Format bir platform için girilen değeri kanonik URL'ye çevirir.
// Tam URL olarak girilen değerler olduğu gibi döner; boş değer boş döner.
// Ulaşılabilirlik kontrolü yapılmaz, sadece şablon doldurulur.
func Format(platform, value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	if v := strings.TrimSpace(value); IsURL(v) {
		return v
	}

	p := strings.ToLower(strings.TrimSpace(platform))
	handle := Normalize(value)
	if handle == "" {
		return ""
	}

	if p == "whatsapp" {
		return formatWhatsApp(handle)
	}
	if m, ok := marketplaces[p]; ok {
		if digitsRe.MatchString(handle) {
			return fill(m.seller, handle)
		}
		return fill(m.search, url.QueryEscape(handle))
	}
	if tmpl, ok := profileTemplates[p]; ok {
		return fill(tmpl, handle)
	}
	// website ve bilinmeyen platformlar
	return "https://" + handle
}

func formatWhatsApp(handle string) string {
	if phoneLikeRe.MatchString(handle) {
		return "https://wa.me/" + phoneKeepRe.ReplaceAllString(handle, "")
	}
	return "https://wa.me/" + handle
}

func fill(tmpl, v string) string {
	return strings.Replace(tmpl, "%s", v, 1)
}
