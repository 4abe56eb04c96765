package jsonstore

import (
	"github.com/fotosvit/fotosvit-api/internal/domain/entity"
	"github.com/fotosvit/fotosvit-api/internal/domain/repository"
)

// CollectionServices ім'я документа послуг.
const CollectionServices = "services"

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo реалізація порту ServiceRepository над JSON-документом.
type ServiceRepo struct {
	store *Store
}

// NewServiceRepository створює адаптер персистентності для послуг.
func NewServiceRepository(store *Store) *ServiceRepo {
	return &ServiceRepo{store: store}
}

// Load читає всі послуги; fail-soft — порожній слайс при будь-якій проблемі.
func (r *ServiceRepo) Load() []entity.Service {
	services := []entity.Service{}
	r.store.Load(CollectionServices, &services)
	return services
}

// Save перезаписує документ послуг цілком.
func (r *ServiceRepo) Save(services []entity.Service) error {
	return r.store.Save(CollectionServices, services)
}
