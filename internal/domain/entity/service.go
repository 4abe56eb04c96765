package entity

// Service послуга фотостудії з прайс-листа.
// Створюється лише при першому запуску (seed); жодна операція її не видаляє,
// змінюється тільки Price через адмін-панель.
type Service struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"` // грн, невід'ємне ціле
	Icon        string `json:"icon"`  // CSS-клас іконки для фронтенду
}
