package domain

import "errors"

// Помилки домену (без зовнішніх залежностей).
var (
	ErrNotFound     = errors.New("ресурс не знайдено")
	ErrUnauthorized = errors.New("не авторизовано")
	ErrInvalidInput = errors.New("некоректні вхідні дані")
	ErrStorage      = errors.New("помилка збереження даних")
	ErrMailSend     = errors.New("помилка відправки листа")
)
