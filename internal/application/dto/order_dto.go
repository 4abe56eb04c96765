package dto

// OrderRequest замовлення фотосесії з публічної форми.
// Phone валідується як український мобільний номер (кастомний тег uamobile).
type OrderRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Phone   string `json:"phone" validate:"required,uamobile"`
	Email   string `json:"email" validate:"required,email"`
	Service string `json:"service" validate:"required"`
	Message string `json:"message" validate:"max=500"`
	Date    string `json:"date" validate:"omitempty"`
}
