package repository

import "github.com/fotosvit/fotosvit-api/internal/domain/entity"

// ServiceRepository порт персистентності для послуг (DIP).
// Load не повертає помилку: відсутній або пошкоджений документ читається як
// порожня послідовність (fail-soft), перший запуск і пошкодження нерозрізненні
// для викликача.
type ServiceRepository interface {
	Load() []entity.Service
	Save(services []entity.Service) error
}

// PortfolioRepository порт персистентності для портфоліо.
// Save перезаписує весь документ цілком; пара Load→Save не атомарна;
// при конкурентних мутаціях перемагає останній запис (єдиний адмін).
type PortfolioRepository interface {
	Load() []entity.PortfolioItem
	Save(items []entity.PortfolioItem) error
}
