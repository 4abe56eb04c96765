package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fotosvit/fotosvit-api/internal/application/auth"
	"github.com/fotosvit/fotosvit-api/internal/application/dto"
	"github.com/fotosvit/fotosvit-api/internal/domain"
	"github.com/fotosvit/fotosvit-api/internal/infrastructure/jsonstore"
	"github.com/fotosvit/fotosvit-api/pkg/jwt"
)

const (
	testEmail    = "admin@fotosvit.ua"
	testPassword = "secret123"
	testSecret   = "test-jwt-secret"
	testIssuer   = "fotosvit-test"
)

func newAuthUC(t *testing.T) (*auth.AuthUseCase, string) {
	t.Helper()
	dir := t.TempDir()
	creds, err := jsonstore.NewFileCredentialStore(dir, testEmail, testPassword)
	require.NoError(t, err)
	uc := auth.NewAuthUseCase(creds, auth.JWTConfig{Secret: testSecret, ExpHours: 24, Issuer: testIssuer})
	return uc, dir
}

// reopenedAuthUC емулює рестарт процесу: нове сховище над тим самим файлом.
func reopenedAuthUC(t *testing.T, dir string) *auth.AuthUseCase {
	t.Helper()
	creds, err := jsonstore.NewFileCredentialStore(dir, testEmail, testPassword)
	require.NoError(t, err)
	return auth.NewAuthUseCase(creds, auth.JWTConfig{Secret: testSecret, ExpHours: 24, Issuer: testIssuer})
}

// ──────────────────────────────────────────────────────────────────────────────
// Логін
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ViddaieChynnyiToken(t *testing.T) {
	uc, _ := newAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	email, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, testEmail, email)
}

func TestLogin_NevirnyiParol_Unauthorized(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: testEmail, Password: "hibnyi"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_NevirnyiEmail_Unauthorized(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "xto-zavgodno@example.com", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Зміна пароля
// ──────────────────────────────────────────────────────────────────────────────

func TestChangePassword_NevirnyiPotochnyi_CredentialNezminnyi(t *testing.T) {
	uc, _ := newAuthUC(t)

	err := uc.ChangePassword(dto.ChangePasswordRequest{CurrentPassword: "hibnyi", NewPassword: "noviy-parol"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Старий пароль досі чинний.
	_, err = uc.Login(dto.LoginRequest{Email: testEmail, Password: testPassword})
	assert.NoError(t, err)
}

func TestChangePassword_ZakorotkyiNovyi_ErrInvalidInput(t *testing.T) {
	uc, _ := newAuthUC(t)

	err := uc.ChangePassword(dto.ChangePasswordRequest{CurrentPassword: testPassword, NewPassword: "12345"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(dto.LoginRequest{Email: testEmail, Password: testPassword})
	assert.NoError(t, err)
}

// Успішна зміна: старий пароль перестає діяти, новий працює, і після
// "рестарту" теж.
func TestChangePassword_UspishnaZmina_PerezhyvaieRestart(t *testing.T) {
	uc, dir := newAuthUC(t)

	require.NoError(t, uc.ChangePassword(dto.ChangePasswordRequest{
		CurrentPassword: testPassword,
		NewPassword:     "noviy-parol",
	}))

	_, err := uc.Login(dto.LoginRequest{Email: testEmail, Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "старий пароль має перестати діяти")

	_, err = uc.Login(dto.LoginRequest{Email: testEmail, Password: "noviy-parol"})
	assert.NoError(t, err)

	// Після рестарту процесу зміна досі чинна.
	restarted := reopenedAuthUC(t, dir)
	_, err = restarted.Login(dto.LoginRequest{Email: testEmail, Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = restarted.Login(dto.LoginRequest{Email: testEmail, Password: "noviy-parol"})
	assert.NoError(t, err)
}
