package dto

// LoginRequest вхід для логіну адміністратора.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse токен на 24 години плюс повідомлення.
type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// ChangePasswordRequest вхід для зміни пароля адміністратора.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}
