package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config конфігурація застосунку (читається через Viper з env та опційно з файлу).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Admin   AdminConfig
	SMTP    SMTPConfig
	Storage StorageConfig
	Upload  UploadConfig
}

// AppConfig загальні налаштування застосунку.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig налаштування HTTP-сервера.
type HTTPConfig struct {
	Host      string
	Port      int
	PublicDir string // каталог зі статикою фронтенду
}

// Addr повертає адресу прослуховування (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig налаштування JWT.
type JWTConfig struct {
	Secret   string
	ExpHours int // токен адміна живе 24 години
	Issuer   string
}

// AdminConfig стартові облікові дані адміністратора.
// Використовуються лише для посіву сховища облікових даних при першому
// запуску; далі джерело істини — файл, який переписує change-password.
type AdminConfig struct {
	Email    string
	Password string
}

// SMTPConfig налаштування відправки замовлень поштою.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	To       string // адреса, на яку приходять замовлення
}

// StorageConfig каталоги даних.
type StorageConfig struct {
	DataDir    string // JSON-документи каталогу
	UploadsDir string // файли портфоліо (публічний /uploads)
}

// UploadConfig ліміти масового завантаження фото.
type UploadConfig struct {
	MaxFiles      int // частин у одному батчі
	MaxFileSizeMB int // на одну частину
}

// MaxFileSizeBytes ліміт розміру однієї частини в байтах.
func (c UploadConfig) MaxFileSizeBytes() int64 {
	return int64(c.MaxFileSizeMB) * 1024 * 1024
}

// Load читає конфігурацію зі змінних середовища (та опційно з файлу).
// Env-змінні мають пріоритет. Очікувані імена: APP_ENV, HTTP_PORT, JWT_SECRET,
// ADMIN_EMAIL, SMTP_HOST тощо.
func Load() (*Config, error) {
	v := viper.New()

	// Опційно: файл конфігурації (.env або config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ігноруємо помилку, якщо файлу немає

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ігноруємо помилку, якщо файлу немає

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "fotosvit-api"),
		},
		HTTP: HTTPConfig{
			Host:      getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:      getInt(v, "HTTP_PORT", 2711),
			PublicDir: getString(v, "PUBLIC_DIR", "./public"),
		},
		JWT: JWTConfig{
			Secret:   getString(v, "JWT_SECRET", ""),
			ExpHours: getInt(v, "JWT_EXPIRATION_HOURS", 24),
			Issuer:   getString(v, "JWT_ISSUER", "fotosvit-api"),
		},
		Admin: AdminConfig{
			Email:    getString(v, "ADMIN_EMAIL", ""),
			Password: getString(v, "ADMIN_PASSWORD", ""),
		},
		SMTP: SMTPConfig{
			Host:     getString(v, "SMTP_HOST", "smtp.gmail.com"),
			Port:     getInt(v, "SMTP_PORT", 587),
			User:     getString(v, "EMAIL_USER", ""),
			Password: getString(v, "EMAIL_PASS", ""),
			To:       getString(v, "EMAIL_TO", ""),
		},
		Storage: StorageConfig{
			DataDir:    getString(v, "DATA_DIR", "./data"),
			UploadsDir: getString(v, "UPLOADS_DIR", "./public/uploads"),
		},
		Upload: UploadConfig{
			MaxFiles:      getInt(v, "UPLOAD_MAX_FILES", 20),
			MaxFileSizeMB: getInt(v, "UPLOAD_MAX_FILE_MB", 50),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
