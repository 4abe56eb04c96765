package http

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"

	"github.com/fotosvit/fotosvit-api/internal/application/dto"
	"github.com/fotosvit/fotosvit-api/internal/application/ingest"
	"github.com/fotosvit/fotosvit-api/internal/application/usecase"
	"github.com/fotosvit/fotosvit-api/internal/domain"
)

// PortfolioHandler публічна галерея, масове завантаження та видалення фото.
type PortfolioHandler struct {
	uc          *usecase.PortfolioUseCase
	ingestUC    *ingest.BulkIngestUseCase
	maxFiles    int
	maxFileSize int64
}

// NewPortfolioHandler будує handler портфоліо.
func NewPortfolioHandler(uc *usecase.PortfolioUseCase, ingestUC *ingest.BulkIngestUseCase, maxFiles int, maxFileSize int64) *PortfolioHandler {
	return &PortfolioHandler{uc: uc, ingestUC: ingestUC, maxFiles: maxFiles, maxFileSize: maxFileSize}
}

// List godoc
// @Summary      Галерея портфоліо
// @Tags         public
// @Produce      json
// @Success      200  {array}  dto.PortfolioItemResponse
// @Router       /api/portfolio [get]
func (h *PortfolioHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// BulkUpload godoc
// @Summary      Масове завантаження фото
// @Tags         admin
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        images       formData  file    true   "до 20 зображень, по 50 МБ"
// @Param        category     formData  string  false  "individual|family|creative|brand"
// @Param        titlePrefix  formData  string  false  "префікс заголовків"
// @Success      200  {object}  dto.BulkUploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      413  {object}  dto.ErrorResponse
// @Router       /api/admin/portfolio/bulk [post]
func (h *PortfolioHandler) BulkUpload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Файли не завантажено"})
	}
	files := form.File["images"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Файли не завантажено"})
	}
	// Усі перевірки батча — до першого запису на диск.
	if len(files) > h.maxFiles {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TOO_MANY_FILES", Message: fmt.Sprintf("не більше %d файлів за раз", h.maxFiles)})
	}
	for _, f := range files {
		if f.Size > h.maxFileSize {
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "PAYLOAD_TOO_LARGE", Message: "файл перевищує 50 МБ"})
		}
	}

	uploads := make([]ingest.Upload, 0, len(files))
	var openFiles []multipart.File
	defer func() {
		for _, f := range openFiles {
			f.Close()
		}
	}()
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Помилка сервера"})
		}
		openFiles = append(openFiles, f)
		if !isImage(f) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NOT_IMAGE", Message: "дозволені лише зображення"})
		}
		uploads = append(uploads, ingest.Upload{OriginalName: fh.Filename, Content: f})
	}

	out, err := h.ingestUC.Ingest(ingest.BatchInput{
		Uploads:     uploads,
		Category:    c.FormValue("category"),
		TitlePrefix: c.FormValue("titlePrefix"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "некоректний батч"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE", Message: "Помилка збереження"})
	}
	return c.JSON(dto.BulkUploadResponse{
		Message: fmt.Sprintf("Завантажено %d фото", len(out.Items)),
		Items:   out.Items,
	})
}

// Delete godoc
// @Summary      Видалити фото з портфоліо
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID фото"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/portfolio/{id} [delete]
func (h *PortfolioHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "некоректний id"})
	}
	if err := h.uc.Delete(id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Фото не знайдено"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE", Message: "Помилка видалення"})
		}
	}
	return c.JSON(dto.MessageResponse{Message: "Фото видалено"})
}

// isImage сніфить медіа-тип вмісту (а не довіряє заголовку частини)
// і повертає курсор на початок файлу.
func isImage(f multipart.File) bool {
	mt, err := mimetype.DetectReader(f)
	if _, serr := f.Seek(0, 0); serr != nil {
		return false
	}
	return err == nil && strings.HasPrefix(mt.String(), "image/")
}
