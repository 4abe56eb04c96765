package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims стандартні JWT-клейми плюс email адміністратора.
// Окремих ролей немає: адмін єдиний, сам факт валідного токена і є
// авторизацією.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Generate генерує підписаний JWT для адміністратора. Термін дії — expHours
// годин (за замовчуванням 24).
func Generate(secret, email, issuer string, expHours int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: порожній secret")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expHours) * time.Hour)),
		},
		Email: email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse валідує токен і повертає email адміністратора.
// Повертає помилку, якщо токен невалідний, протермінований або має хибний підпис.
func Parse(secret, tokenString string) (email string, err error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: порожній secret")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неочікуваний метод підпису: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("невалідні клейми")
	}
	return claims.Email, nil
}
