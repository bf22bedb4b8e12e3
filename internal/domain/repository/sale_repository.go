package repository

import "github.com/jhoicas/caja-pos/internal/domain/entity"

// SaleRepository define el puerto de persistencia para el libro de ventas.
// Las ventas son inmutables una vez creadas; la única mutación permitida es
// marcar el recibo como impreso.
type SaleRepository interface {
	GetAll() ([]entity.Sale, error)
	Save(sales []entity.Sale) error
	Add(sale entity.Sale) (entity.Sale, error)
	Delete(id string) (bool, error)
	// GetByDateRange filtra inclusivamente por el campo Date usando comparación
	// lexicográfica ISO (correcta para fechas del mismo formato).
	GetByDateRange(start, end string) ([]entity.Sale, error)
	// GetDailySummary agrega las ventas cuyo Date es exactamente el día dado.
	// AverageTransaction es 0 cuando no hay transacciones.
	GetDailySummary(date string) (entity.DailySummary, error)
	SetReceiptPrinted(id string) (bool, error)
}
