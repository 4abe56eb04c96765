package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/fotosvit/fotosvit-api/internal/interfaces/http"
	pkgjwt "github.com/fotosvit/fotosvit-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Хелпери
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testAdmin     = "admin@fotosvit.ua"
	testJWTIssuer = "fotosvit-test"
)

// buildProtectedApp мінімальний Fiber-застосунок із AuthMiddleware та
// dummy-handler, що віддає 200 і email адміністратора.
func buildProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"email": apphttp.GetAdminEmail(c)})
		},
	)
	return app
}

func adminToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testAdmin, testJWTIssuer, 24)
	require.NoError(t, err, "має генеруватися валідний JWT")
	return "Bearer " + tok
}

func doProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Валідний токен -> 200, email витягнуто у locals.
func TestAuthMiddleware_ValidnyiToken_Propuskaie(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtected(t, app, adminToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testAdmin, body["email"])
}

// Без заголовка Authorization -> 401 MISSING_TOKEN.
func TestAuthMiddleware_BezZagolovka_401(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtected(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Хибний формат (без Bearer) -> 401 INVALID_TOKEN.
func TestAuthMiddleware_HybnyiFormat_401(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtected(t, app, "Token abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Зламаний токен -> 401.
func TestAuthMiddleware_ZlamanyiToken_401(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtected(t, app, "Bearer токен.зламаний.тут")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Токен, підписаний іншим секретом, -> 401.
func TestAuthMiddleware_ChuzhyiSecret_401(t *testing.T) {
	tok, err := pkgjwt.Generate("inshyi-secret", testAdmin, testJWTIssuer, 24)
	require.NoError(t, err)

	app := buildProtectedApp()
	resp := doProtected(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Протермінований токен -> 401.
func TestAuthMiddleware_ProterminovanyiToken_401(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testAdmin, testJWTIssuer, -1)
	require.NoError(t, err)

	app := buildProtectedApp()
	resp := doProtected(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// pkg/jwt: generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testAdmin, testJWTIssuer, 24)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	email, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testAdmin, email)
}

func TestJWT_PorozhniySecret_Pomylka(t *testing.T) {
	_, err := pkgjwt.Generate("", testAdmin, testJWTIssuer, 24)
	assert.Error(t, err)
}
