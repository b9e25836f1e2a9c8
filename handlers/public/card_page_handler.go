package handlers

import (
	"errors"
	"html/template"
	"strings"

	"nfckart.link/configs/configslog"
	"nfckart.link/models"
	"nfckart.link/pkg/sociallinks"
	"nfckart.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SocialLink kart sayfasında gösterilen tek bir bağlantı.
type SocialLink struct {
	Platform string
	URL      string
}

// CardPageHandler herkese açık kartvizit sayfasını (/c/:slug) render eder.
type CardPageHandler struct {
	cardService services.ICardService
}

// NewCardPageHandler yeni bir CardPageHandler örneği oluşturur.
func NewCardPageHandler(cardService services.ICardService) *CardPageHandler {
	return &CardPageHandler{cardService: cardService}
}

// ShowCard slug'a ait aktif kartvizit sayfasını gösterir.
func (h *CardPageHandler) ShowCard(c *fiber.Ctx) error {
	slug := c.Params("slug")
	card, err := h.cardService.GetPublicCard(c.UserContext(), slug)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return RenderNotFound(c, "Kartvizit Bulunamadı")
		}
		configslog.Log.Error("ShowCard: GetPublicCard error", zap.String("slug", slug), zap.Error(err))
		return renderError(c, "Kartvizit yüklenirken bir sorun oluştu.")
	}

	return c.Render("public/card", fiber.Map{
		"Title":       card.FullName(),
		"Card":        card,
		"FullName":    card.FullName(),
		"Photo":       photoURL(card.Photo),
		"WebsiteURL":  websiteURL(card.Website),
		"SocialLinks": socialLinks(card),
		"VCardURL":    "/api/vcard/" + card.ID,
	}, "layouts/public")
}

// RenderNotFound standart 404 sayfasını render eder.
func RenderNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
		"Title":   "Bulunamadı",
		"Message": message,
	}, "layouts/public")
}

func renderError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{
		"Title":   "Sunucu Hatası",
		"Message": message,
	}, "layouts/public")
}

func socialLinks(card *models.Card) []SocialLink {
	handles := card.SocialHandles()
	links := make([]SocialLink, 0, len(handles))
	for _, sh := range handles {
		if u := sociallinks.Format(sh.Platform, sh.Value); u != "" {
			links = append(links, SocialLink{Platform: sh.Platform, URL: u})
		}
	}
	return links
}

func websiteURL(website string) string {
	if strings.TrimSpace(website) == "" {
		return ""
	}
	return sociallinks.Format("website", website)
}

// photoURL html/template data: adreslerini varsayılan olarak "#ZgotmplZ" ile değiştirir;
// sadece resim data URL'leri güvenli olarak işaretlenir.
func photoURL(photo string) template.URL {
	if strings.HasPrefix(photo, "data:image/") || sociallinks.IsURL(photo) {
		return template.URL(photo)
	}
	return ""
}
