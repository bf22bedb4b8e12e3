package dto

import (
	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de venta dentro de un RecordSaleRequest.
type SaleItemRequest struct {
	ProductID string          `json:"productId" validate:"required"`
	VariantID string          `json:"variantId"`
	Name      string          `json:"name" validate:"required"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	Total     decimal.Decimal `json:"total"`
}

// RecordSaleRequest borrador de venta completada: todo menos id, timestamp y
// fecha, que los genera la capa de datos al registrarla.
type RecordSaleRequest struct {
	Items         []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	Subtotal      decimal.Decimal   `json:"subtotal"`
	Tax           decimal.Decimal   `json:"tax"`
	Discount      decimal.Decimal   `json:"discount"`
	Total         decimal.Decimal   `json:"total"`
	PaymentMethod string            `json:"paymentMethod" validate:"required,oneof=cash card other"`
	AmountPaid    decimal.Decimal   `json:"amountPaid"`
}
