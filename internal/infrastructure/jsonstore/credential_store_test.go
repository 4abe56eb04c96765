package jsonstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fotosvit/fotosvit-api/internal/domain/entity"
	"github.com/fotosvit/fotosvit-api/internal/infrastructure/jsonstore"
)

// Перший запуск: сховище сіється з конфігурації, пароль — лише bcrypt-хеш.
func TestCredentialStore_PosivPryPershomuZapusku(t *testing.T) {
	dir := t.TempDir()

	store, err := jsonstore.NewFileCredentialStore(dir, "admin@fotosvit.ua", "secret123")
	require.NoError(t, err)

	cred := store.Get()
	assert.Equal(t, "admin@fotosvit.ua", cred.Email)
	assert.NotEqual(t, "secret123", cred.PasswordHash, "пароль не має зберігатися відкритим текстом")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte("secret123")))
}

// Set переживає "рестарт": нове сховище над тим самим файлом бачить зміну,
// стартові дані з конфігурації більше не застосовуються.
func TestCredentialStore_SetPerezhyvaieRestart(t *testing.T) {
	dir := t.TempDir()
	store, err := jsonstore.NewFileCredentialStore(dir, "admin@fotosvit.ua", "secret123")
	require.NoError(t, err)

	newHash, err := bcrypt.GenerateFromPassword([]byte("noviy-parol"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, store.Set(entity.AdminCredential{Email: "admin@fotosvit.ua", PasswordHash: string(newHash)}))

	// "Рестарт процесу": файл — джерело істини, seed ігнорується.
	reopened, err := jsonstore.NewFileCredentialStore(dir, "admin@fotosvit.ua", "secret123")
	require.NoError(t, err)

	cred := reopened.Get()
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte("secret123")), "старий пароль має перестати діяти")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte("noviy-parol")))
}
