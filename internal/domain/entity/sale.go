package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago válidos para Sale.
const (
	PaymentCash  = "cash"
	PaymentCard  = "card"
	PaymentOther = "other"
)

// Sale es un registro inmutable del libro de ventas; el único campo que puede
// mutar después de creado es ReceiptPrinted.
//
// Invariantes: Total = Subtotal + Tax - Discount; Subtotal = Σ Items[i].Total;
// Date es el día calendario UTC de Timestamp (los cortes de reporte dependen
// de esta zona, ver DESIGN.md).
type Sale struct {
	ID             string          `json:"id"`
	Items          []CartItem      `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Tax            decimal.Decimal `json:"tax"`
	Discount       decimal.Decimal `json:"discount"`
	Total          decimal.Decimal `json:"total"`
	PaymentMethod  string          `json:"paymentMethod"` // cash, card, other
	AmountPaid     decimal.Decimal `json:"amountPaid"`
	Change         decimal.Decimal `json:"change"`
	CashierID      string          `json:"cashierId"`
	CashierName    string          `json:"cashierName"`
	ReceiptPrinted bool            `json:"receiptPrinted"`
	Timestamp      time.Time       `json:"timestamp"`
	Date           string          `json:"date"` // YYYY-MM-DD, derivado de Timestamp en UTC
}

// CartItem línea de venta: producto (y variante opcional) con cantidad.
// Transitorio; solo se persiste embebido en Sale.
type CartItem struct {
	ProductID string          `json:"productId"`
	VariantID string          `json:"variantId,omitempty"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"` // Price * Quantity
}

// SaleDateLayout formato del campo Date.
const SaleDateLayout = "2006-01-02"

// DateOf proyecta un instante al día calendario UTC usado por Sale.Date.
func DateOf(t time.Time) string {
	return t.UTC().Format(SaleDateLayout)
}
