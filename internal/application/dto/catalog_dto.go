package dto

import (
	"time"

	"github.com/fotosvit/fotosvit-api/internal/domain/entity"
)

// UpdatePriceRequest вхід для оновлення ціни послуги.
type UpdatePriceRequest struct {
	Price int `json:"price" validate:"min=0"`
}

// BulkUploadResponse результат масового завантаження портфоліо.
type BulkUploadResponse struct {
	Message string                 `json:"message"`
	Items   []entity.PortfolioItem `json:"items"`
}

// ServiceResponse публічне подання послуги (збігається з entity, окремий тип
// тримає wire-формат незалежним від домену).
type ServiceResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Icon        string `json:"icon"`
}

// PortfolioItemResponse публічне подання запису портфоліо.
type PortfolioItemResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToServiceResponse конвертує entity у wire-подання.
func ToServiceResponse(s entity.Service) ServiceResponse {
	return ServiceResponse{ID: s.ID, Name: s.Name, Description: s.Description, Price: s.Price, Icon: s.Icon}
}

// ToPortfolioItemResponse конвертує entity у wire-подання.
func ToPortfolioItemResponse(p entity.PortfolioItem) PortfolioItemResponse {
	return PortfolioItemResponse{ID: p.ID, Title: p.Title, Description: p.Description, Image: p.Image, Category: p.Category, CreatedAt: p.CreatedAt}
}
