package repository

import "github.com/fotosvit/fotosvit-api/internal/domain/entity"

// CredentialStore порт сховища облікових даних адміністратора.
// Файл — джерело істини при старті, після цього авторитетна копія в пам'яті;
// Set синхронно й атомарно переписує файл, тому зміна переживає рестарт.
type CredentialStore interface {
	Get() entity.AdminCredential
	Set(cred entity.AdminCredential) error
}
