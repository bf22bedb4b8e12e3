package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direcciones válidas para ajustes de stock.
const (
	StockAdd      = "add"
	StockSubtract = "subtract"
)

// Product representa un producto del catálogo. Stock nunca queda negativo:
// un decremento que cruzaría cero se rechaza sin efecto parcial.
// UpdatedAt se refresca en cada mutación.
type Product struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Code      string           `json:"code"` // único por convención, no lo impone el repositorio
	Category  string           `json:"category"`
	Price     decimal.Decimal  `json:"price"`
	Stock     int              `json:"stock"`
	MinStock  int              `json:"minStock"`
	Variants  []ProductVariant `json:"variants,omitempty"`
	IsActive  bool             `json:"isActive"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// ProductVariant variante de precio/stock usada al agregar una línea de venta.
// Nunca se persiste sola; vive anidada dentro del producto.
type ProductVariant struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// ProductPatch campos opcionales para actualización parcial (nil = sin cambio).
type ProductPatch struct {
	Name     *string
	Code     *string
	Category *string
	Price    *decimal.Decimal
	Stock    *int
	MinStock *int
	Variants *[]ProductVariant
	IsActive *bool
}
