package usecase

import (
	"github.com/fotosvit/fotosvit-api/internal/application/dto"
	"github.com/fotosvit/fotosvit-api/internal/domain"
	"github.com/fotosvit/fotosvit-api/internal/domain/repository"
)

// ServiceUseCase кейси прайс-листа: публічний перелік і адмінське оновлення
// ціни. Послуги ніколи не створюються і не видаляються через API.
type ServiceUseCase struct {
	repo repository.ServiceRepository
}

// NewServiceUseCase будує кейс.
func NewServiceUseCase(repo repository.ServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

// List повертає повну впорядковану послідовність послуг.
func (uc *ServiceUseCase) List() []dto.ServiceResponse {
	services := uc.repo.Load()
	out := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, dto.ToServiceResponse(s))
	}
	return out
}

// UpdatePrice міняє ціну послуги за id і переписує колекцію цілком.
// Від'ємна ціна -> ErrInvalidInput, відсутній id -> ErrNotFound,
// невдалий запис -> ErrStorage (зміна в пам'яті не видима читачам).
func (uc *ServiceUseCase) UpdatePrice(id int64, price int) error {
	if price < 0 {
		return domain.ErrInvalidInput
	}
	services := uc.repo.Load()
	idx := -1
	for i := range services {
		if services[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.ErrNotFound
	}
	services[idx].Price = price
	if err := uc.repo.Save(services); err != nil {
		return domain.ErrStorage
	}
	return nil
}
