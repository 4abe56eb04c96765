package usecase_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fotosvit/fotosvit-api/internal/application/usecase"
	"github.com/fotosvit/fotosvit-api/internal/domain"
	"github.com/fotosvit/fotosvit-api/internal/domain/entity"
	"github.com/fotosvit/fotosvit-api/internal/infrastructure/jsonstore"
	"github.com/fotosvit/fotosvit-api/pkg/logger"
)

type portfolioEnv struct {
	uc         *usecase.PortfolioUseCase
	repo       *jsonstore.PortfolioRepo
	uploadsDir string
}

func newPortfolioEnv(t *testing.T, items []entity.PortfolioItem) *portfolioEnv {
	t.Helper()
	dir := t.TempDir()
	uploads := filepath.Join(dir, "uploads")
	require.NoError(t, os.MkdirAll(uploads, 0o755))

	store := jsonstore.NewStore(dir, logger.Nop())
	repo := jsonstore.NewPortfolioRepository(store)
	require.NoError(t, repo.Save(items))

	return &portfolioEnv{
		uc:         usecase.NewPortfolioUseCase(repo, uploads, logger.Nop()),
		repo:       repo,
		uploadsDir: uploads,
	}
}

func (e *portfolioEnv) writeAsset(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(e.uploadsDir, name)
	require.NoError(t, os.WriteFile(path, []byte("jpeg-байти"), 0o644))
	return path
}

func testItem(id int64, image string) entity.PortfolioItem {
	return entity.PortfolioItem{
		ID:        id,
		Title:     "Фото 1",
		Image:     image,
		Category:  entity.CategoryIndividual,
		CreatedAt: time.Now(),
	}
}

// Видалення прибирає рівно один запис і файл зображення.
func TestPortfolioDelete_PrybyraieZapysIFail(t *testing.T) {
	env := newPortfolioEnv(t, []entity.PortfolioItem{
		testItem(1, "/uploads/a.jpg"),
		testItem(2, "/uploads/b.jpg"),
	})
	pathA := env.writeAsset(t, "a.jpg")
	env.writeAsset(t, "b.jpg")

	require.NoError(t, env.uc.Delete(1))

	left := env.repo.Load()
	require.Len(t, left, 1)
	assert.Equal(t, int64(2), left[0].ID)
	assert.NoFileExists(t, pathA, "файл видаленого запису має зникнути")
	assert.FileExists(t, filepath.Join(env.uploadsDir, "b.jpg"), "чужі файли недоторкані")
}

// Відсутній файл не блокує видалення запису (лог, не фатально).
func TestPortfolioDelete_VidsutniyFail_ZapysOdnakovoVydaleno(t *testing.T) {
	env := newPortfolioEnv(t, []entity.PortfolioItem{testItem(1, "/uploads/zagubleniy.jpg")})

	require.NoError(t, env.uc.Delete(1))
	assert.Empty(t, env.repo.Load())
}

func TestPortfolioDelete_NevidomyiID_NotFound(t *testing.T) {
	env := newPortfolioEnv(t, []entity.PortfolioItem{testItem(1, "/uploads/a.jpg")})

	assert.ErrorIs(t, env.uc.Delete(42), domain.ErrNotFound)
	assert.Len(t, env.repo.Load(), 1)
}

func TestPortfolioList_ZberigaiePoryadok(t *testing.T) {
	env := newPortfolioEnv(t, []entity.PortfolioItem{
		testItem(5, "/uploads/a.jpg"),
		testItem(3, "/uploads/b.jpg"),
	})

	list := env.uc.List()
	require.Len(t, list, 2)
	assert.Equal(t, int64(5), list[0].ID, "порядок вставки зберігається")
	assert.Equal(t, int64(3), list[1].ID)
}

// Запис із шляхом поза /uploads не може вивести видалення за межі каталогу.
func TestPortfolioDelete_ChuzhyiShliakh_FailNeChipaietsya(t *testing.T) {
	outside := filepath.Join(t.TempDir(), "vazhlyvyi.txt")
	require.NoError(t, os.WriteFile(outside, []byte("дані"), 0o644))

	env := newPortfolioEnv(t, []entity.PortfolioItem{testItem(1, outside)})

	require.NoError(t, env.uc.Delete(1))
	assert.FileExists(t, outside, "шлях поза /uploads ігнорується")
	assert.Empty(t, env.repo.Load())
}
