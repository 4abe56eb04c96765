// Package imaging адаптер нормалізації зображень портфоліо поверх
// disintegration/imaging.
package imaging

import (
	"fmt"
	"path/filepath"
	"strings"

	img "github.com/disintegration/imaging"

	"github.com/fotosvit/fotosvit-api/internal/application/ingest"
)

// Цільові габарити та якість перекодування.
const (
	maxWidth  = 1200
	maxHeight = 800
	quality   = 80
)

var _ ingest.Normalizer = (*JPEGNormalizer)(nil)

// JPEGNormalizer вписує зображення у 1200x800 (без збільшення менших) і
// перекодовує у JPEG з якістю 80. WebP свідомо не використовується: його
// кодування в Go вимагає cgo, а контракт вимагає лише компактний lossy-формат.
type JPEGNormalizer struct{}

// NewJPEGNormalizer створює нормалізатор.
func NewJPEGNormalizer() *JPEGNormalizer {
	return &JPEGNormalizer{}
}

// Normalize декодує srcPath, масштабує зі збереженням пропорцій і записує
// поруч файл із тим самим базовим ім'ям та розширенням .jpg. Повертає шлях
// результату; видалення оригіналу — відповідальність викликача.
func (n *JPEGNormalizer) Normalize(srcPath string) (string, error) {
	src, err := img.Open(srcPath, img.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("декодування %s: %w", filepath.Base(srcPath), err)
	}

	// Fit зменшує до вписування в рамку і ніколи не збільшує менше джерело.
	resized := img.Fit(src, maxWidth, maxHeight, img.Lanczos)

	dstPath := strings.TrimSuffix(srcPath, filepath.Ext(srcPath)) + ".jpg"
	if err := img.Save(resized, dstPath, img.JPEGQuality(quality)); err != nil {
		return "", fmt.Errorf("кодування %s: %w", filepath.Base(dstPath), err)
	}
	return dstPath, nil
}
