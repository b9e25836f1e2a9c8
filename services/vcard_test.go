package services

import (
	"bytes"
	"testing"

	"github.com/emersion/go-vcard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nfckart.link/models"
)

func TestBuildVCard(t *testing.T) {
	card := &models.Card{
		Slug:      "john-doe-ab12",
		FirstName: "John",
		LastName:  "Doe",
		Title:     "CTO",
		Company:   "Acme",
		Email:     "john@example.com",
		Phone:     "+90 555 123 4567",
		Website:   "example.com",
		Bio:       "Merhaba",
		Instagram: "@john",
		WhatsApp:  "+90 555 123 4567",
		Photo:     "data:image/jpeg;base64,QUJD",
	}

	out, err := BuildVCard(card)
	require.NoError(t, err)

	decoded, err := vcard.NewDecoder(bytes.NewReader(out)).Decode()
	require.NoError(t, err)

	assert.Equal(t, "3.0", decoded.Value(vcard.FieldVersion))
	assert.Equal(t, "John Doe", decoded.Value(vcard.FieldFormattedName))
	assert.Equal(t, "Acme", decoded.Value(vcard.FieldOrganization))
	assert.Equal(t, "CTO", decoded.Value(vcard.FieldTitle))
	assert.Equal(t, "john@example.com", decoded.Value(vcard.FieldEmail))
	assert.Equal(t, "+90 555 123 4567", decoded.Value(vcard.FieldTelephone))
	assert.Equal(t, "Merhaba", decoded.Value(vcard.FieldNote))

	name := decoded.Name()
	require.NotNil(t, name)
	assert.Equal(t, "Doe", name.FamilyName)
	assert.Equal(t, "John", name.GivenName)

	var urls []string
	for _, f := range decoded[vcard.FieldURL] {
		urls = append(urls, f.Value)
	}
	assert.Contains(t, urls, "https://example.com")
	assert.Contains(t, urls, "https://instagram.com/john")
	assert.Contains(t, urls, "https://wa.me/+905551234567")

	photo := decoded.Get(vcard.FieldPhoto)
	require.NotNil(t, photo)
	assert.Equal(t, "QUJD", photo.Value)
	assert.Equal(t, "JPEG", photo.Params.Get(vcard.ParamType))
}

func TestBuildVCard_MinimalCard(t *testing.T) {
	out, err := BuildVCard(&models.Card{FirstName: "Иван", LastName: "Петров", Slug: "ab12"})
	require.NoError(t, err)

	decoded, err := vcard.NewDecoder(bytes.NewReader(out)).Decode()
	require.NoError(t, err)
	assert.Equal(t, "Иван Петров", decoded.Value(vcard.FieldFormattedName))
	assert.Empty(t, decoded[vcard.FieldURL])
	assert.Nil(t, decoded.Get(vcard.FieldPhoto))
	assert.Equal(t, "ab12.vcf", VCardFilename(&models.Card{Slug: "ab12"}))
}

func TestParseDataURL(t *testing.T) {
	mt, data, ok := parseDataURL("data:image/png;base64,iVBOR")
	require.True(t, ok)
	assert.Equal(t, "PNG", mt)
	assert.Equal(t, "iVBOR", data)

	for _, bad := range []string{"", "https://x/y.png", "data:image/png,raw", "data:text/plain;base64,QQ==", "data:image/png;base64,"} {
		_, _, ok := parseDataURL(bad)
		assert.False(t, ok, bad)
	}
}
