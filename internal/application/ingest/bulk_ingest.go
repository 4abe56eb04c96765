package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"

	"github.com/fotosvit/fotosvit-api/internal/domain"
	"github.com/fotosvit/fotosvit-api/internal/domain/entity"
	"github.com/fotosvit/fotosvit-api/internal/domain/repository"
	"github.com/fotosvit/fotosvit-api/pkg/logger"
)

// MaxBatchSize максимум файлів у одному батчі завантаження.
const MaxBatchSize = 20

// publicPrefix публічний шлях, під яким фронтенд бачить файли портфоліо.
const publicPrefix = "/uploads/"

// BatchInput вхід конвеєра: непорожній батч файлів плюс метадані.
type BatchInput struct {
	Uploads     []Upload
	Category    string // зводиться до канонічного набору, за замовчуванням individual
	TitlePrefix string // опційний префікс заголовків ("Зима" -> "Зима 1", "Зима 2", ...)
}

// BatchResult створені записи каталогу. Повертається і при помилці фінального
// збереження: записи вже в пам'яті, викликач може повторити save без
// повторного завантаження файлів.
type BatchResult struct {
	Items []entity.PortfolioItem
}

// BulkIngestUseCase конвеєр масового завантаження портфоліо:
// зберегти оригінал -> нормалізувати -> сконструювати запис -> один save
// усієї колекції наприкінці батча. Скасування посеред батча немає: всі файли
// обробляються до кінця перед збереженням.
type BulkIngestUseCase struct {
	repo       repository.PortfolioRepository
	normalizer Normalizer
	node       *snowflake.Node
	uploadsDir string
	log        *logger.Logger
}

// NewBulkIngestUseCase будує конвеєр завантаження.
func NewBulkIngestUseCase(repo repository.PortfolioRepository, normalizer Normalizer, node *snowflake.Node, uploadsDir string, log *logger.Logger) *BulkIngestUseCase {
	return &BulkIngestUseCase{repo: repo, normalizer: normalizer, node: node, uploadsDir: uploadsDir, log: log}
}

// Ingest обробляє батч. Невдала нормалізація окремого файлу не валить батч:
// файл деградує до "збережено без конвертації" (доступність важливіша за
// однорідність форматів). Батч фейлиться цілком лише якщо фінальний save
// колекції не вдався: файли на диску вже існують, це прийняте вікно
// неконсистентності.
func (uc *BulkIngestUseCase) Ingest(in BatchInput) (*BatchResult, error) {
	if len(in.Uploads) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Uploads) > MaxBatchSize {
		return nil, domain.ErrInvalidInput
	}

	category := entity.CanonicalCategory(in.Category)
	added := make([]entity.PortfolioItem, 0, len(in.Uploads))

	for i, up := range in.Uploads {
		asset, err := uc.processOne(up)
		if err != nil {
			return nil, err
		}

		item := entity.PortfolioItem{
			ID:          uc.node.Generate().Int64(),
			Title:       fmt.Sprintf("%s %d", titleBase(in.TitlePrefix, in.Category), i+1),
			Description: "Фотографія з категорії " + categoryLabel(in.Category),
			Image:       publicPrefix + filepath.Base(asset.Path),
			Category:    category,
			CreatedAt:   time.Now(),
		}
		added = append(added, item)

		if asset.Kind == AssetStoredRaw {
			uc.log.Warn().Int64("id", item.ID).Str("image", item.Image).Msg("файл збережено без конвертації")
		}
	}

	portfolio := append(uc.repo.Load(), added...)
	if err := uc.repo.Save(portfolio); err != nil {
		uc.log.Error().Err(err).Int("items", len(added)).Msg("не вдалося зберегти портфоліо після батча")
		return &BatchResult{Items: added}, domain.ErrStorage
	}
	return &BatchResult{Items: added}, nil
}

// processOne зберігає оригінал у каталозі завантажень під гарантовано
// унікальним ім'ям і пробує нормалізацію. Повертає актив запису каталогу.
func (uc *BulkIngestUseCase) processOne(up Upload) (Asset, error) {
	ext := strings.ToLower(filepath.Ext(up.OriginalName))
	rawPath := filepath.Join(uc.uploadsDir, "images-"+uuid.New().String()+ext)

	if err := writeFile(rawPath, up.Content); err != nil {
		return Asset{}, fmt.Errorf("збереження %s: %w", up.OriginalName, err)
	}

	normalizedPath, err := uc.normalizer.Normalize(rawPath)
	if err != nil {
		// Деградація: оригінал стає активом запису, файл не відкидається.
		uc.log.Warn().Err(err).Str("file", up.OriginalName).Msg("нормалізація не вдалася, лишаємо оригінал")
		return Asset{Kind: AssetStoredRaw, Path: rawPath}, nil
	}
	if normalizedPath != rawPath {
		if err := os.Remove(rawPath); err != nil {
			uc.log.Warn().Err(err).Str("path", rawPath).Msg("не вдалося видалити оригінал після конвертації")
		}
	}
	return Asset{Kind: AssetConverted, Path: normalizedPath}, nil
}

func writeFile(path string, r io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// titleBase база заголовка: префікс, або категорія як її подав адмін,
// або загальний підпис.
func titleBase(prefix, rawCategory string) string {
	if prefix != "" {
		return prefix
	}
	if rawCategory != "" {
		return rawCategory
	}
	return "Фото"
}

func categoryLabel(rawCategory string) string {
	if rawCategory != "" {
		return rawCategory
	}
	return "загальна"
}
