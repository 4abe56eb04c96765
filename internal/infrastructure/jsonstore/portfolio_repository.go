package jsonstore

import (
	"github.com/fotosvit/fotosvit-api/internal/domain/entity"
	"github.com/fotosvit/fotosvit-api/internal/domain/repository"
)

// CollectionPortfolio ім'я документа портфоліо.
const CollectionPortfolio = "portfolio"

var _ repository.PortfolioRepository = (*PortfolioRepo)(nil)

// PortfolioRepo реалізація порту PortfolioRepository над JSON-документом.
// Порядок вставки зберігається і є єдиним сигналом впорядкування.
type PortfolioRepo struct {
	store *Store
}

// NewPortfolioRepository створює адаптер персистентності для портфоліо.
func NewPortfolioRepository(store *Store) *PortfolioRepo {
	return &PortfolioRepo{store: store}
}

// Load читає все портфоліо; fail-soft — порожній слайс при будь-якій проблемі.
func (r *PortfolioRepo) Load() []entity.PortfolioItem {
	items := []entity.PortfolioItem{}
	r.store.Load(CollectionPortfolio, &items)
	return items
}

// Save перезаписує документ портфоліо цілком.
func (r *PortfolioRepo) Save(items []entity.PortfolioItem) error {
	return r.store.Save(CollectionPortfolio, items)
}
