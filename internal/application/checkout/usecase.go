// Package checkout contiene el coordinador de la transacción de venta:
// consumo de inventario y asiento en el libro de ventas como una sola
// operación atómica.
package checkout

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/caja-pos/internal/application/dto"
	"github.com/jhoicas/caja-pos/internal/domain"
	"github.com/jhoicas/caja-pos/internal/domain/entity"
	"github.com/jhoicas/caja-pos/internal/domain/repository"
)

// UseCase coordinador de venta. Política: validar todo, luego aplicar todo.
// Primero se proyecta el stock resultante de cada línea; si alguna proyección
// queda negativa la venta completa se rechaza sin haber escrito nada. Solo
// después se aplican los decrementos y el asiento, bajo un mismo bloqueo.
type UseCase struct {
	tx       TxRunner
	products repository.ProductRepository
}

// NewUseCase construye el coordinador.
func NewUseCase(tx TxRunner, products repository.ProductRepository) *UseCase {
	return &UseCase{tx: tx, products: products}
}

// RecordSale registra una venta completada: valida las líneas y la aritmética
// del borrador, consume inventario y agrega la venta al libro. Devuelve la
// venta almacenada con id, timestamp y fecha (día UTC) generados.
func (uc *UseCase) RecordSale(in dto.RecordSaleRequest, cashierID, cashierName string) (*entity.Sale, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	items, err := buildItems(in)
	if err != nil {
		return nil, err
	}
	if err := verifyTotals(in, items); err != nil {
		return nil, err
	}

	change := in.AmountPaid.Sub(in.Total)
	switch in.PaymentMethod {
	case entity.PaymentCash:
		if change.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	case entity.PaymentCard, entity.PaymentOther:
		change = decimal.Zero
	default:
		return nil, domain.ErrInvalidInput
	}

	var recorded entity.Sale
	err = uc.tx.Run(func(products repository.ProductRepository, sales repository.SaleRepository) error {
		catalog, err := products.GetAll()
		if err != nil {
			return err
		}

		// Fase 1: proyectar el stock resultante de todas las líneas; ninguna
		// escritura ocurre todavía.
		projected, err := projectCatalog(catalog, items)
		if err != nil {
			return err
		}

		// Fase 2: aplicar los decrementos y el asiento en el libro.
		if err := products.Save(projected); err != nil {
			return err
		}
		recorded, err = sales.Add(entity.Sale{
			Items:         items,
			Subtotal:      in.Subtotal,
			Tax:           in.Tax,
			Discount:      in.Discount,
			Total:         in.Total,
			PaymentMethod: in.PaymentMethod,
			AmountPaid:    in.AmountPaid,
			Change:        change,
			CashierID:     cashierID,
			CashierName:   cashierName,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return &recorded, nil
}

// LowStockAlerts expone las alertas derivadas del stock actual contra los
// umbrales, para revisarlas después de cada venta.
func (uc *UseCase) LowStockAlerts() ([]entity.InventoryAlert, error) {
	return uc.products.LowStockAlerts()
}

// buildItems convierte y valida las líneas del borrador.
func buildItems(in dto.RecordSaleRequest) ([]entity.CartItem, error) {
	items := make([]entity.CartItem, 0, len(in.Items))
	for _, li := range in.Items {
		if li.ProductID == "" || li.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		lineTotal := li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
		if !li.Total.Equal(lineTotal) {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.CartItem{
			ProductID: li.ProductID,
			VariantID: li.VariantID,
			Name:      li.Name,
			Price:     li.Price,
			Quantity:  li.Quantity,
			Total:     li.Total,
		})
	}
	return items, nil
}

// verifyTotals comprueba la aritmética del borrador:
// Subtotal = Σ líneas y Total = Subtotal + Tax - Discount.
func verifyTotals(in dto.RecordSaleRequest, items []entity.CartItem) error {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Total)
	}
	if !in.Subtotal.Equal(subtotal) {
		return domain.ErrInvalidInput
	}
	if !in.Total.Equal(in.Subtotal.Add(in.Tax).Sub(in.Discount)) {
		return domain.ErrInvalidInput
	}
	return nil
}

// projectCatalog devuelve una copia del catálogo con todas las líneas
// aplicadas, o error sin copia si alguna dejaría stock negativo. Varias
// líneas pueden consumir el mismo producto; el acumulado es lo que se valida.
func projectCatalog(catalog []entity.Product, items []entity.CartItem) ([]entity.Product, error) {
	index := make(map[string]int, len(catalog))
	projected := make([]entity.Product, len(catalog))
	copy(projected, catalog)
	for i := range projected {
		index[projected[i].ID] = i
	}

	now := time.Now()
	for _, item := range items {
		i, ok := index[item.ProductID]
		if !ok {
			return nil, domain.ErrNotFound
		}
		p := &projected[i]
		if p.Stock < item.Quantity {
			return nil, domain.ErrInsufficientStock
		}
		p.Stock -= item.Quantity
		p.UpdatedAt = now
		if item.VariantID != "" {
			// El stock del producto es el invariante; el de la variante se
			// descuenta como referencia y no baja de cero.
			for j := range p.Variants {
				if p.Variants[j].ID != item.VariantID {
					continue
				}
				p.Variants[j].Stock -= item.Quantity
				if p.Variants[j].Stock < 0 {
					p.Variants[j].Stock = 0
				}
				break
			}
		}
	}
	return projected, nil
}
