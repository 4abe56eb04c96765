package usecase

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fotosvit/fotosvit-api/internal/application/dto"
	"github.com/fotosvit/fotosvit-api/internal/domain"
	"github.com/fotosvit/fotosvit-api/internal/domain/repository"
	"github.com/fotosvit/fotosvit-api/pkg/logger"
)

// PortfolioUseCase кейси галереї: публічний перелік і адмінське видалення.
// Масове завантаження живе окремо в application/ingest.
type PortfolioUseCase struct {
	repo       repository.PortfolioRepository
	uploadsDir string
	log        *logger.Logger
}

// NewPortfolioUseCase будує кейс. uploadsDir — каталог, куди мапиться
// публічний шлях /uploads.
func NewPortfolioUseCase(repo repository.PortfolioRepository, uploadsDir string, log *logger.Logger) *PortfolioUseCase {
	return &PortfolioUseCase{repo: repo, uploadsDir: uploadsDir, log: log}
}

// List повертає повну впорядковану послідовність записів портфоліо.
func (uc *PortfolioUseCase) List() []dto.PortfolioItemResponse {
	items := uc.repo.Load()
	out := make([]dto.PortfolioItemResponse, 0, len(items))
	for _, p := range items {
		out = append(out, dto.ToPortfolioItemResponse(p))
	}
	return out
}

// Delete видаляє запис портфоліо за id разом із файлом зображення.
// Відсутній файл не блокує видалення запису (лише лог), інакше запис із
// втраченим файлом неможливо було б прибрати. Невдалий запис колекції ->
// ErrStorage.
func (uc *PortfolioUseCase) Delete(id int64) error {
	items := uc.repo.Load()
	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.ErrNotFound
	}

	if path := uc.assetPath(items[idx].Image); path != "" {
		if err := os.Remove(path); err != nil {
			uc.log.Warn().Err(err).Str("path", path).Msg("не вдалося видалити файл зображення")
		}
	}

	items = append(items[:idx], items[idx+1:]...)
	if err := uc.repo.Save(items); err != nil {
		return domain.ErrStorage
	}
	return nil
}

// assetPath мапить публічний шлях /uploads/<name> у файловий шлях під
// uploadsDir. Чужі або підозрілі шляхи ігноруються.
func (uc *PortfolioUseCase) assetPath(image string) string {
	name := strings.TrimPrefix(image, "/uploads/")
	if name == image || name == "" {
		return ""
	}
	// Тільки базове ім'я: запис каталогу не може вивести видалення за межі
	// каталогу завантажень.
	return filepath.Join(uc.uploadsDir, filepath.Base(name))
}
