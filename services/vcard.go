package services

import (
	"bytes"
	"strings"

	"nfckart.link/models"
	"nfckart.link/pkg/sociallinks"

	"github.com/emersion/go-vcard"
)

// VCardContentType vCard yanıtlarının içerik tipi.
const VCardContentType = "text/vcard; charset=utf-8"

// BuildVCard kartvizitten vCard 3.0 çıktısı üretir. Sosyal medya girdileri
// sociallinks ile kanonik URL'ye çevrilir ve TYPE=<platform> ile eklenir.
func BuildVCard(card *models.Card) ([]byte, error) {
	c := make(vcard.Card)
	c.SetValue(vcard.FieldVersion, "3.0")
	c.AddName(&vcard.Name{
		FamilyName: card.LastName,
		GivenName:  card.FirstName,
	})
	c.SetValue(vcard.FieldFormattedName, card.FullName())

	if card.Company != "" {
		c.SetValue(vcard.FieldOrganization, card.Company)
	}
	if card.Title != "" {
		c.SetValue(vcard.FieldTitle, card.Title)
	}
	if card.Phone != "" {
		c.Add(vcard.FieldTelephone, &vcard.Field{
			Value:  card.Phone,
			Params: vcard.Params{vcard.ParamType: {vcard.TypeCell}},
		})
	}
	if card.Email != "" {
		c.Add(vcard.FieldEmail, &vcard.Field{
			Value:  card.Email,
			Params: vcard.Params{vcard.ParamType: {"INTERNET"}},
		})
	}
	if card.Address != "" {
		c.AddAddress(&vcard.Address{StreetAddress: card.Address})
	}
	if card.Bio != "" {
		c.SetValue(vcard.FieldNote, card.Bio)
	}
	if card.Website != "" {
		c.AddValue(vcard.FieldURL, sociallinks.Format("website", card.Website))
	}
	for _, h := range card.SocialHandles() {
		link := sociallinks.Format(h.Platform, h.Value)
		if link == "" {
			continue
		}
		c.Add(vcard.FieldURL, &vcard.Field{
			Value:  link,
			Params: vcard.Params{vcard.ParamType: {h.Platform}},
		})
	}
	if mediaType, data, ok := parseDataURL(card.Photo); ok {
		c.Add(vcard.FieldPhoto, &vcard.Field{
			Value: data,
			Params: vcard.Params{
				"ENCODING":      {"b"},
				vcard.ParamType: {mediaType},
			},
		})
	}

	var buf bytes.Buffer
	if err := vcard.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// VCardFilename indirme için dosya adı.
func VCardFilename(card *models.Card) string {
	return card.Slug + ".vcf"
}

// parseDataURL "data:image/jpeg;base64,...." biçimindeki fotoğrafı vCard PHOTO alanına uygun
// tipe (JPEG) ve base64 veriye ayırır.
func parseDataURL(s string) (mediaType, data string, ok bool) {
	const prefix = "data:image/"
	if !strings.HasPrefix(s, prefix) {
		return "", "", false
	}
	meta, payload, found := strings.Cut(s[len(prefix):], ",")
	if !found || payload == "" {
		return "", "", false
	}
	subtype, encoding, _ := strings.Cut(meta, ";")
	if encoding != "base64" || subtype == "" {
		return "", "", false
	}
	return strings.ToUpper(subtype), payload, true
}
