package dto

// ErrorResponse тіло HTTP-помилки.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse тіло успішної відповіді з людським повідомленням.
type MessageResponse struct {
	Message string `json:"message"`
}

// FieldError помилка валідації конкретного поля.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse список помилок валідації (замовлення).
type ValidationErrorResponse struct {
	Code   string       `json:"code"`
	Errors []FieldError `json:"errors"`
}
