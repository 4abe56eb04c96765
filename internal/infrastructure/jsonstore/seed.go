package jsonstore

import (
	"fmt"
	"os"

	"github.com/fotosvit/fotosvit-api/internal/domain/entity"
)

// defaultServices стартовий прайс-лист студії.
func defaultServices() []entity.Service {
	return []entity.Service{
		{
			ID:          1,
			Name:        "Індивідуальні фотосесії",
			Description: "Персональні фотосесії для розкриття вашої індивідуальності та стилю",
			Price:       1500,
			Icon:        "fas fa-user",
		},
		{
			ID:          2,
			Name:        "Сімейні фотосесії",
			Description: "Теплі та щирі сімейні портрети, які передають ваші стосунки",
			Price:       2000,
			Icon:        "fas fa-users",
		},
		{
			ID:          3,
			Name:        "Творчі зйомки",
			Description: "Концептуальні та художні фотосесії для втілення ваших ідей",
			Price:       2500,
			Icon:        "fas fa-palette",
		},
		{
			ID:          4,
			Name:        "Зйомки для брендів",
			Description: "Професійні фото для вашого бізнесу, товарів та послуг",
			Price:       3000,
			Icon:        "fas fa-briefcase",
		},
	}
}

// EnsureDefaults готує каталоги даних та сіє початкові документи:
// прайс-лист із чотирьох послуг і порожнє портфоліо. Наявні документи
// не чіпає.
func EnsureDefaults(store *Store, dataDir, uploadsDir string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("створення %s: %w", dataDir, err)
	}
	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		return fmt.Errorf("створення %s: %w", uploadsDir, err)
	}
	if !store.Exists(CollectionServices) {
		if err := store.Save(CollectionServices, defaultServices()); err != nil {
			return fmt.Errorf("посів послуг: %w", err)
		}
	}
	if !store.Exists(CollectionPortfolio) {
		if err := store.Save(CollectionPortfolio, []entity.PortfolioItem{}); err != nil {
			return fmt.Errorf("посів портфоліо: %w", err)
		}
	}
	return nil
}
