package entity

// AdminCredential обліковий запис єдиного адміністратора.
// Пароль зберігається лише як bcrypt-хеш.
type AdminCredential struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}
