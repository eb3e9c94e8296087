package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerly/backoffice-api/internal/application/documents"
	"github.com/ledgerly/backoffice-api/internal/infrastructure/docx"
	"github.com/ledgerly/backoffice-api/internal/infrastructure/memory"
	infrapdf "github.com/ledgerly/backoffice-api/internal/infrastructure/pdf"
	httpiface "github.com/ledgerly/backoffice-api/internal/interfaces/http"
	"github.com/ledgerly/backoffice-api/pkg/jwt"
	"github.com/ledgerly/backoffice-api/pkg/logger"
)

const testSecret = "test-secret-for-document-routes"

// newTestApp wires the full stack against the seeded in-memory store, the
// same way cmd/api does, and returns the seeded IDs for route building.
func newTestApp(t *testing.T) (*fiber.App, memory.SeedResult) {
	t.Helper()

	store := memory.NewStore()
	seeded, err := memory.SeedDemoData(store)
	require.NoError(t, err)

	uc := documents.NewRenderUseCase(
		store.Quotations(), store.Invoices(), store.Challans(), store.Businesses(),
		infrapdf.NewRenderer(), docx.NewRenderer(),
	)

	app := fiber.New()
	httpiface.Router(app, httpiface.RouterDeps{
		Render:    uc,
		Log:       logger.New(logger.Config{Env: "test", Level: "error"}),
		JWTSecret: testSecret,
	})
	return app, seeded
}

func bearerFor(t *testing.T, businessID string) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, "user-1", businessID, "backoffice-api", 5)
	require.NoError(t, err)
	return "Bearer " + token
}

func get(t *testing.T, app *fiber.App, path, auth string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Code
}

// ──────────────────────────────────────────────────────────────────────────────
// Authentication
// ──────────────────────────────────────────────────────────────────────────────

func TestDocumentRoute_RequiresToken(t *testing.T) {
	app, seeded := newTestApp(t)

	resp := get(t, app, "/api/invoices/"+seeded.InvoiceID+"/document", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", errorCode(t, resp))
}

func TestDocumentRoute_RejectsMalformedAuthHeader(t *testing.T) {
	app, seeded := newTestApp(t)

	resp := get(t, app, "/api/invoices/"+seeded.InvoiceID+"/document", "Token abc")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, resp))
}

func TestDocumentRoute_RejectsWrongSecret(t *testing.T) {
	app, seeded := newTestApp(t)

	forged, err := jwt.Generate("other-secret", "user-1", seeded.BusinessID, "backoffice-api", 5)
	require.NoError(t, err)

	resp := get(t, app, "/api/invoices/"+seeded.InvoiceID+"/document", "Bearer "+forged)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, resp))
}

func TestDocumentRoute_RejectsExpiredToken(t *testing.T) {
	app, seeded := newTestApp(t)

	expired, err := jwt.Generate(testSecret, "user-1", seeded.BusinessID, "backoffice-api", -5)
	require.NoError(t, err)

	resp := get(t, app, "/api/invoices/"+seeded.InvoiceID+"/document", "Bearer "+expired)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Downloads
// ──────────────────────────────────────────────────────────────────────────────

func TestDocumentRoute_PDFDownload(t *testing.T) {
	app, seeded := newTestApp(t)
	auth := bearerFor(t, seeded.BusinessID)

	resp := get(t, app, "/api/invoices/"+seeded.InvoiceID+"/document", auth)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="invoice-INV-2024-0112.pdf"`,
		resp.Header.Get(fiber.HeaderContentDisposition))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))
}

func TestDocumentRoute_WordDownload(t *testing.T) {
	app, seeded := newTestApp(t)
	auth := bearerFor(t, seeded.BusinessID)

	resp := get(t, app, "/api/quotations/"+seeded.QuotationID+"/document?format=word", auth)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="quotation-QUO-2024-0007.docx"`,
		resp.Header.Get(fiber.HeaderContentDisposition))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "PK"), "docx downloads are zip packages")
}

func TestDocumentRoute_ChallanDownload(t *testing.T) {
	app, seeded := newTestApp(t)
	auth := bearerFor(t, seeded.BusinessID)

	resp := get(t, app, "/api/challans/"+seeded.ChallanID+"/document", auth)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `attachment; filename="challan-CHL-2024-0031.pdf"`,
		resp.Header.Get(fiber.HeaderContentDisposition))
}

func TestDocumentRoute_TogglesPassThrough(t *testing.T) {
	app, seeded := newTestApp(t)
	auth := bearerFor(t, seeded.BusinessID)

	// Only the literal "false" disables a section; anything else keeps it.
	for _, query := range []string{
		"?includeHeader=false&includeFooter=false",
		"?includeHeader=0&includeFooter=no",
		"",
	} {
		resp := get(t, app, "/api/invoices/"+seeded.InvoiceID+"/document"+query, auth)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, "query %q", query)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Failure mapping
// ──────────────────────────────────────────────────────────────────────────────

func TestDocumentRoute_InvalidFormat(t *testing.T) {
	app, seeded := newTestApp(t)
	auth := bearerFor(t, seeded.BusinessID)

	resp := get(t, app, "/api/invoices/"+seeded.InvoiceID+"/document?format=csv", auth)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, resp))
}

func TestDocumentRoute_UnknownRecord(t *testing.T) {
	app, seeded := newTestApp(t)
	auth := bearerFor(t, seeded.BusinessID)

	resp := get(t, app, "/api/invoices/no-such-id/document", auth)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, resp))
}

func TestDocumentRoute_CrossBusinessAccess(t *testing.T) {
	app, seeded := newTestApp(t)
	auth := bearerFor(t, "another-business")

	resp := get(t, app, "/api/invoices/"+seeded.InvoiceID+"/document", auth)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", errorCode(t, resp))
}
