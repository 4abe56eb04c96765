package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/fotosvit/fotosvit-api/internal/application/dto"
	"github.com/fotosvit/fotosvit-api/internal/domain"
	"github.com/fotosvit/fotosvit-api/internal/domain/entity"
	"github.com/fotosvit/fotosvit-api/internal/domain/repository"
	"github.com/fotosvit/fotosvit-api/pkg/jwt"
)

// MinPasswordLen мінімальна довжина нового пароля адміністратора.
const MinPasswordLen = 6

// JWTConfig конфігурація генерації токенів.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// AuthUseCase кейси автентифікації єдиного адміністратора: логін і зміна
// пароля. Сесій та відкликання токенів немає; токен чинний до закінчення
// терміну дії.
type AuthUseCase struct {
	creds  repository.CredentialStore
	jwtCfg JWTConfig
}

// NewAuthUseCase будує кейс автентифікації.
func NewAuthUseCase(creds repository.CredentialStore, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{creds: creds, jwtCfg: jwtCfg}
}

// Login звіряє email і пароль зі сховищем облікових даних та видає JWT на
// 24 години. Невірні дані -> ErrUnauthorized без уточнення, що саме не так.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	cred := uc.creds.Get()
	if in.Email != cred.Email {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, cred.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Message: "Успішний вхід"}, nil
}

// ChangePassword міняє пароль адміністратора. Невірний поточний пароль ->
// ErrUnauthorized, закороткий новий -> ErrInvalidInput. Успішна зміна
// переживає рестарт процесу (сховище переписує файл синхронно).
func (uc *AuthUseCase) ChangePassword(in dto.ChangePasswordRequest) error {
	cred := uc.creds.Get()
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	if len(in.NewPassword) < MinPasswordLen {
		return domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := uc.creds.Set(entity.AdminCredential{Email: cred.Email, PasswordHash: string(hash)}); err != nil {
		return domain.ErrStorage
	}
	return nil
}
