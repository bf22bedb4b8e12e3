package localstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/caja-pos/internal/domain/entity"
	"github.com/jhoicas/caja-pos/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre el sustrato local.
// El libro de ventas es de solo-agregar; la excepción es ReceiptPrinted.
type SaleRepo struct {
	kv KV
}

// NewSaleRepository construye el adaptador. Pasar el Store o el KV de un WithLock.
func NewSaleRepository(kv KV) *SaleRepo {
	return &SaleRepo{kv: kv}
}

// GetAll devuelve el libro de ventas completo en orden de inserción.
func (r *SaleRepo) GetAll() ([]entity.Sale, error) {
	var sales []entity.Sale
	if _, err := r.kv.Get(KeySales, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// Save sobreescribe el libro completo (usada por importación).
func (r *SaleRepo) Save(sales []entity.Sale) error {
	return r.kv.Set(KeySales, sales)
}

// Add asigna id, timestamp y fecha derivada (día UTC) y agrega al libro.
func (r *SaleRepo) Add(sale entity.Sale) (entity.Sale, error) {
	err := r.kv.WithLock(func(kv KV) error {
		var sales []entity.Sale
		if _, err := kv.Get(KeySales, &sales); err != nil {
			return err
		}
		sale.ID = uuid.New().String()
		sale.Timestamp = time.Now()
		sale.Date = entity.DateOf(sale.Timestamp)
		sales = append(sales, sale)
		return kv.Set(KeySales, sales)
	})
	if err != nil {
		return entity.Sale{}, err
	}
	return sale, nil
}

// Delete elimina una venta por id. Devuelve false si el id no existía.
func (r *SaleRepo) Delete(id string) (bool, error) {
	found := false
	err := r.kv.WithLock(func(kv KV) error {
		var sales []entity.Sale
		if _, err := kv.Get(KeySales, &sales); err != nil {
			return err
		}
		kept := sales[:0]
		for _, s := range sales {
			if s.ID == id {
				found = true
				continue
			}
			kept = append(kept, s)
		}
		if !found {
			return nil
		}
		return kv.Set(KeySales, kept)
	})
	return found, err
}

// GetByDateRange filtro inclusivo [start, end] sobre Date (comparación
// lexicográfica, correcta para el formato YYYY-MM-DD).
func (r *SaleRepo) GetByDateRange(start, end string) ([]entity.Sale, error) {
	sales, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	var inRange []entity.Sale
	for _, s := range sales {
		if s.Date >= start && s.Date <= end {
			inRange = append(inRange, s)
		}
	}
	return inRange, nil
}

// GetDailySummary agrega las ventas de un día calendario exacto.
func (r *SaleRepo) GetDailySummary(date string) (entity.DailySummary, error) {
	sales, err := r.GetAll()
	if err != nil {
		return entity.DailySummary{}, err
	}
	summary := entity.DailySummary{
		Date:               date,
		TotalSales:         decimal.Zero,
		AverageTransaction: decimal.Zero,
	}
	for _, s := range sales {
		if s.Date != date {
			continue
		}
		summary.TotalSales = summary.TotalSales.Add(s.Total)
		summary.TotalTransactions++
		for _, item := range s.Items {
			summary.TotalItems += item.Quantity
		}
	}
	if summary.TotalTransactions > 0 {
		summary.AverageTransaction = summary.TotalSales.
			Div(decimal.NewFromInt(int64(summary.TotalTransactions))).Round(2)
	}
	return summary, nil
}

// SetReceiptPrinted marca el recibo como impreso; única mutación permitida
// sobre una venta registrada. False si el id no existe.
func (r *SaleRepo) SetReceiptPrinted(id string) (bool, error) {
	found := false
	err := r.kv.WithLock(func(kv KV) error {
		var sales []entity.Sale
		if _, err := kv.Get(KeySales, &sales); err != nil {
			return err
		}
		for i := range sales {
			if sales[i].ID != id {
				continue
			}
			found = true
			sales[i].ReceiptPrinted = true
			return kv.Set(KeySales, sales)
		}
		return nil
	})
	return found, err
}
