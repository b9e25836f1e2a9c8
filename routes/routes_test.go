package routes

import (
	"encoding/json"
	"html"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"nfckart.link/configs/configsapp"
	"nfckart.link/database"
	"nfckart.link/database/seeders"
	"nfckart.link/models"
)

const (
	testAdminKey      = "test-admin-key"
	testAdminUser     = "admin"
	testAdminPassword = "password123"
)

const validCardPayload = `{
	"cardData": {"firstName": "John", "lastName": "Doe", "title": "CTO", "company": "Acme",
		"phone": "+90 555 123 4567", "email": "john@example.com", "instagram": "@john", "whatsapp": "+90 555 123 4567"},
	"orderData": {"quantity": 2, "cardType": "premium", "customerName": "John Doe",
		"customerEmail": "john@example.com", "shippingAddress": "Kadıköy, İstanbul"}
}`

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.RunMigrationsInOrder(db))
	require.NoError(t, seeders.SeedAdmin(db, testAdminUser, testAdminPassword))

	cfg := &configsapp.AppConfig{
		Env: "test",
		Admin: configsapp.AdminConfig{
			APIKey:     testAdminKey,
			JWTSecret:  "test-jwt-secret",
			SessionTTL: time.Hour,
		},
	}
	app := NewApp(cfg)
	SetupRoutes(app, db, cfg)
	return app, db
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string, headers map[string]string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createCard(t *testing.T, app *fiber.App) map[string]any {
	t.Helper()
	resp := doRequest(t, app, http.MethodPost, "/api/cards", validCardPayload, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decodeBody(t, resp)
}

func loginCookie(t *testing.T, app *fiber.App, password string) *http.Cookie {
	t.Helper()
	body := `{"username":"` + testAdminUser + `","password":"` + password + `"}`
	resp := doRequest(t, app, http.MethodPost, "/api/admin/login", body, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, c := range resp.Cookies() {
		if c.Name == "admin_session" {
			return c
		}
	}
	t.Fatal("admin_session çerezi bulunamadı")
	return nil
}

func TestCreateCard(t *testing.T) {
	app, db := newTestApp(t)

	t.Run("valid payload returns ids and slug", func(t *testing.T) {
		body := createCard(t, app)
		assert.Equal(t, true, body["success"])
		assert.NotEmpty(t, body["cardId"])
		assert.NotEmpty(t, body["orderId"])
		assert.Regexp(t, `^john-doe-[0-9a-z]{4}$`, body["slug"])

		var order models.Order
		require.NoError(t, db.First(&order, "id = ?", body["orderId"]).Error)
		assert.Equal(t, models.OrderStatusPending, order.Status)
		assert.Equal(t, "500", order.TotalPrice.String())
	})

	t.Run("empty first name is a validation error", func(t *testing.T) {
		payload := strings.Replace(validCardPayload, `"firstName": "John"`, `"firstName": "  "`, 1)
		resp := doRequest(t, app, http.MethodPost, "/api/cards", payload, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "VALIDATION_ERROR", body["error"])
		assert.Equal(t, "firstName", body["field"])
	})

	t.Run("malformed json is a validation error", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/api/cards", `{"cardData":`, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "VALIDATION_ERROR", body["error"])
		assert.Equal(t, "body", body["field"])
	})
}

func TestGetCardBySlug(t *testing.T) {
	app, _ := newTestApp(t)
	created := createCard(t, app)

	resp := doRequest(t, app, http.MethodGet, "/api/cards/"+created["slug"].(string), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	card := decodeBody(t, resp)
	assert.Equal(t, created["cardId"], card["id"])
	assert.Equal(t, true, card["isActive"])
	assert.Equal(t, float64(1), card["viewCount"])
	assert.NotContains(t, card, "orders")

	resp = doRequest(t, app, http.MethodGet, "/api/cards/nobody-here-0000", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeBody(t, resp)["error"])
}

func TestOrderTracking(t *testing.T) {
	app, _ := newTestApp(t)
	created := createCard(t, app)
	orderURL := "/api/orders/" + created["orderId"].(string)

	resp := doRequest(t, app, http.MethodGet, orderURL, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	order := decodeBody(t, resp)
	assert.Equal(t, "PENDING", order["status"])
	assert.Equal(t, float64(0), order["progressStep"])
	require.Contains(t, order, "card")
	assert.Equal(t, created["slug"], order["card"].(map[string]any)["slug"])

	resp = doRequest(t, app, http.MethodGet, "/api/orders/00000000-0000-0000-0000-000000000000", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateOrderStatus(t *testing.T) {
	app, db := newTestApp(t)
	created := createCard(t, app)
	orderID := created["orderId"].(string)
	orderURL := "/api/orders/" + orderID
	shipped := `{"status":"SHIPPED","trackingNumber":"TR123456"}`

	t.Run("bogus admin key leaves order unchanged", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPatch, orderURL, shipped, map[string]string{"x-admin-key": "wrong"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "UNAUTHORIZED", decodeBody(t, resp)["error"])

		resp = doRequest(t, app, http.MethodPatch, orderURL, shipped, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var order models.Order
		require.NoError(t, db.First(&order, "id = ?", orderID).Error)
		assert.Equal(t, models.OrderStatusPending, order.Status)
		assert.Empty(t, order.TrackingNumber)
	})

	t.Run("lowercase status is rejected", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPatch, orderURL, `{"status":"shipped"}`, map[string]string{"x-admin-key": testAdminKey})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "status", decodeBody(t, resp)["field"])
	})

	t.Run("unknown order", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPatch, "/api/orders/00000000-0000-0000-0000-000000000000", shipped,
			map[string]string{"x-admin-key": testAdminKey})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("pending to shipped", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPatch, orderURL, shipped, map[string]string{"x-admin-key": testAdminKey})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "SHIPPED", body["status"])
		assert.Equal(t, "TR123456", body["trackingNumber"])
		assert.Equal(t, float64(3), body["progressStep"])

		var order models.Order
		require.NoError(t, db.First(&order, "id = ?", orderID).Error)
		assert.Equal(t, models.OrderStatusShipped, order.Status)
	})
}

func TestVCardDownload(t *testing.T) {
	app, _ := newTestApp(t)
	created := createCard(t, app)

	resp := doRequest(t, app, http.MethodGet, "/api/vcard/"+created["cardId"].(string), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/vcard")
	assert.Equal(t, `attachment; filename="`+created["slug"].(string)+`.vcf"`, resp.Header.Get(fiber.HeaderContentDisposition))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "BEGIN:VCARD")
	assert.Contains(t, string(raw), "FN:John Doe")

	resp = doRequest(t, app, http.MethodGet, "/api/vcard/00000000-0000-0000-0000-000000000000", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRecordConsents(t *testing.T) {
	app, _ := newTestApp(t)
	created := createCard(t, app)
	orderID := created["orderId"].(string)

	payload := `{"consents":[{"documentType":"terms","documentVersion":"1.0"},{"documentType":"kvkk","documentVersion":"2024-01"}]}`
	resp := doRequest(t, app, http.MethodPost, "/api/orders/"+orderID+"/consents", payload,
		map[string]string{fiber.HeaderUserAgent: "test-agent"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/orders/"+orderID+"/consents", `{"consents":[]}`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	cookie := loginCookie(t, app, testAdminPassword)
	resp = doRequest(t, app, http.MethodGet, "/api/admin/orders/"+orderID+"/consents", "",
		map[string]string{"Cookie": cookie.Name + "=" + cookie.Value})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := decodeBody(t, resp)["data"].([]any)
	require.Len(t, data, 2)
	assert.Equal(t, "test-agent", data[0].(map[string]any)["userAgent"])
}

func TestAdminSession(t *testing.T) {
	app, _ := newTestApp(t)
	created := createCard(t, app)

	t.Run("wrong password", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/api/admin/login", `{"username":"admin","password":"nope-nope"}`, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Empty(t, resp.Cookies())
	})

	t.Run("protected routes need the cookie", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/api/admin/orders", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		resp = doRequest(t, app, http.MethodGet, "/api/admin/orders", "", map[string]string{"Cookie": "admin_session=garbage"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	cookie := loginCookie(t, app, testAdminPassword)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	auth := map[string]string{"Cookie": cookie.Name + "=" + cookie.Value}

	t.Run("list orders", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/api/admin/orders?status=pending&name=JOHN", "", auth)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		meta := body["meta"].(map[string]any)
		assert.Equal(t, float64(1), meta["totalItems"])
		data := body["data"].([]any)
		require.Len(t, data, 1)
		assert.Equal(t, created["orderId"], data[0].(map[string]any)["id"])
	})

	t.Run("update status with cookie", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPatch, "/api/admin/orders/"+created["orderId"].(string), `{"status":"CONFIRMED"}`, auth)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "CONFIRMED", decodeBody(t, resp)["status"])
	})

	t.Run("deactivate card hides public page", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPatch, "/api/admin/cards/"+created["cardId"].(string), `{"isActive":false}`, auth)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, false, decodeBody(t, resp)["isActive"])

		resp = doRequest(t, app, http.MethodGet, "/api/cards/"+created["slug"].(string), "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp = doRequest(t, app, http.MethodPatch, "/api/admin/cards/"+created["cardId"].(string), `{}`, auth)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("logout clears the cookie", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/api/admin/logout", "", auth)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var cleared *http.Cookie
		for _, c := range resp.Cookies() {
			if c.Name == "admin_session" {
				cleared = c
			}
		}
		require.NotNil(t, cleared)
		assert.Empty(t, cleared.Value)
	})
}

func TestAdminChangePassword(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := loginCookie(t, app, testAdminPassword)
	auth := map[string]string{"Cookie": cookie.Name + "=" + cookie.Value}

	resp := doRequest(t, app, http.MethodPost, "/api/admin/change-password",
		`{"currentPassword":"wrong-password","newPassword":"new-password-1"}`, auth)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "currentPassword", decodeBody(t, resp)["field"])

	resp = doRequest(t, app, http.MethodPost, "/api/admin/change-password",
		`{"currentPassword":"`+testAdminPassword+`","newPassword":"short"}`, auth)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "newPassword", decodeBody(t, resp)["field"])

	resp = doRequest(t, app, http.MethodPost, "/api/admin/change-password",
		`{"currentPassword":"`+testAdminPassword+`","newPassword":"new-password-1"}`, auth)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/admin/login", `{"username":"admin","password":"`+testAdminPassword+`"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	loginCookie(t, app, "new-password-1")
}

func TestPublicCardPage(t *testing.T) {
	app, _ := newTestApp(t)
	created := createCard(t, app)

	resp := doRequest(t, app, http.MethodGet, "/c/"+created["slug"].(string), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(raw)
	assert.Contains(t, page, "John Doe")
	assert.Contains(t, page, "https://instagram.com/john")
	assert.Contains(t, html.UnescapeString(page), `href="https://wa.me/+905551234567"`)
	assert.Contains(t, page, "/api/vcard/"+created["cardId"].(string))

	resp = doRequest(t, app, http.MethodGet, "/c/missing-slug-0000", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
}

func TestSystemRoutes(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decodeBody(t, resp)["status"])

	resp = doRequest(t, app, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "nfckart_")

	resp = doRequest(t, app, http.MethodGet, "/api/does-not-exist", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeBody(t, resp)["error"])
}
