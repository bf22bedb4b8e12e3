package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/caja-pos/internal/domain/entity"
)

// CreateProductRequest alta de producto en el catálogo.
type CreateProductRequest struct {
	Name     string                  `json:"name" validate:"required"`
	Code     string                  `json:"code" validate:"required"`
	Category string                  `json:"category"`
	Price    decimal.Decimal         `json:"price"`
	Stock    int                     `json:"stock" validate:"min=0"`
	MinStock int                     `json:"minStock" validate:"min=0"`
	Variants []entity.ProductVariant `json:"variants"`
	IsActive *bool                   `json:"isActive"` // nil = activo por defecto
}

// UpdateProductRequest actualización parcial (nil = sin cambio).
type UpdateProductRequest struct {
	Name     *string                  `json:"name"`
	Code     *string                  `json:"code"`
	Category *string                  `json:"category"`
	Price    *decimal.Decimal         `json:"price"`
	Stock    *int                     `json:"stock" validate:"omitempty,min=0"`
	MinStock *int                     `json:"minStock" validate:"omitempty,min=0"`
	Variants *[]entity.ProductVariant `json:"variants"`
	IsActive *bool                    `json:"isActive"`
}

// StockUpdateRequest ajuste manual de stock.
type StockUpdateRequest struct {
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Direction string `json:"direction" validate:"required,oneof=add subtract"`
}
