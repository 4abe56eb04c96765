package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/fotosvit/fotosvit-api/internal/application/dto"
	"github.com/fotosvit/fotosvit-api/internal/application/usecase"
)

// OrderHandler приймання замовлень з публічної форми.
type OrderHandler struct {
	uc       *usecase.OrderUseCase
	validate *validator.Validate
}

// NewOrderHandler будує handler замовлень.
func NewOrderHandler(uc *usecase.OrderUseCase, validate *validator.Validate) *OrderHandler {
	return &OrderHandler{uc: uc, validate: validate}
}

// Submit godoc
// @Summary      Відправити замовлення фотосесії
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OrderRequest  true  "name, phone, email, service, message, date?"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/order [post]
func (h *OrderHandler) Submit(c *fiber.Ctx) error {
	var in dto.OrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "некоректне тіло запиту"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Code:   "VALIDATION",
			Errors: fieldErrors(err),
		})
	}
	if err := h.uc.Submit(in); err != nil {
		// Причина збою пошти лише в логах, клієнту — загальне повідомлення.
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "MAIL", Message: "Помилка відправки замовлення"})
	}
	return c.JSON(dto.MessageResponse{Message: "Замовлення успішно відправлено!"})
}
