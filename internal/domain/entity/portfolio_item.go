package entity

import "time"

// Канонічні категорії портфоліо. Нерозпізнана категорія при завантаженні
// зводиться до CategoryIndividual.
const (
	CategoryIndividual = "individual"
	CategoryFamily     = "family"
	CategoryCreative   = "creative"
	CategoryBrand      = "brand"
)

// CanonicalCategory повертає категорію з канонічного набору;
// порожнє або невідоме значення зводиться до individual.
func CanonicalCategory(s string) string {
	switch s {
	case CategoryIndividual, CategoryFamily, CategoryCreative, CategoryBrand:
		return s
	default:
		return CategoryIndividual
	}
}

// PortfolioItem фотографія з галереї портфоліо.
// Image — публічний шлях (/uploads/...), а не шлях у файловій системі;
// файл за цим шляхом має існувати весь час життя запису.
type PortfolioItem struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}
