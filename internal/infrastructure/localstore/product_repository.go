package localstore

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/caja-pos/internal/domain"
	"github.com/jhoicas/caja-pos/internal/domain/entity"
	"github.com/jhoicas/caja-pos/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre el sustrato local.
type ProductRepo struct {
	kv KV
}

// NewProductRepository construye el adaptador. Pasar el Store o el KV de un WithLock.
func NewProductRepository(kv KV) *ProductRepo {
	return &ProductRepo{kv: kv}
}

// GetAll devuelve el catálogo completo en orden de inserción.
func (r *ProductRepo) GetAll() ([]entity.Product, error) {
	var products []entity.Product
	if _, err := r.kv.Get(KeyProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Save sobreescribe el catálogo completo (usada por importación).
func (r *ProductRepo) Save(products []entity.Product) error {
	return r.kv.Set(KeyProducts, products)
}

// Add asigna id y fechas, agrega al final y persiste.
func (r *ProductRepo) Add(product entity.Product) (entity.Product, error) {
	err := r.kv.WithLock(func(kv KV) error {
		var products []entity.Product
		if _, err := kv.Get(KeyProducts, &products); err != nil {
			return err
		}
		now := time.Now()
		product.ID = uuid.New().String()
		product.CreatedAt = now
		product.UpdatedAt = now
		for i := range product.Variants {
			if product.Variants[i].ID == "" {
				product.Variants[i].ID = uuid.New().String()
			}
		}
		products = append(products, product)
		return kv.Set(KeyProducts, products)
	})
	if err != nil {
		return entity.Product{}, err
	}
	return product, nil
}

// Update fusiona el patch y refresca UpdatedAt. False sin efecto si no existe.
func (r *ProductRepo) Update(id string, patch entity.ProductPatch) (bool, error) {
	found := false
	err := r.kv.WithLock(func(kv KV) error {
		var products []entity.Product
		if _, err := kv.Get(KeyProducts, &products); err != nil {
			return err
		}
		for i := range products {
			if products[i].ID != id {
				continue
			}
			found = true
			p := &products[i]
			if patch.Name != nil {
				p.Name = *patch.Name
			}
			if patch.Code != nil {
				p.Code = *patch.Code
			}
			if patch.Category != nil {
				p.Category = *patch.Category
			}
			if patch.Price != nil {
				p.Price = *patch.Price
			}
			if patch.Stock != nil {
				p.Stock = *patch.Stock
			}
			if patch.MinStock != nil {
				p.MinStock = *patch.MinStock
			}
			if patch.Variants != nil {
				p.Variants = *patch.Variants
				for j := range p.Variants {
					if p.Variants[j].ID == "" {
						p.Variants[j].ID = uuid.New().String()
					}
				}
			}
			if patch.IsActive != nil {
				p.IsActive = *patch.IsActive
			}
			p.UpdatedAt = time.Now()
			return kv.Set(KeyProducts, products)
		}
		return nil
	})
	return found, err
}

// Delete elimina por id. Devuelve false si el id no existía.
func (r *ProductRepo) Delete(id string) (bool, error) {
	found := false
	err := r.kv.WithLock(func(kv KV) error {
		var products []entity.Product
		if _, err := kv.Get(KeyProducts, &products); err != nil {
			return err
		}
		kept := products[:0]
		for _, p := range products {
			if p.ID == id {
				found = true
				continue
			}
			kept = append(kept, p)
		}
		if !found {
			return nil
		}
		return kv.Set(KeyProducts, kept)
	})
	return found, err
}

// UpdateStock ajusta el stock del producto. El decremento que dejaría stock
// negativo se rechaza con domain.ErrInsufficientStock sin mutación alguna.
func (r *ProductRepo) UpdateStock(id string, quantity int, direction string) error {
	return r.kv.WithLock(func(kv KV) error {
		var products []entity.Product
		if _, err := kv.Get(KeyProducts, &products); err != nil {
			return err
		}
		for i := range products {
			if products[i].ID != id {
				continue
			}
			newStock, err := projectStock(products[i].Stock, quantity, direction)
			if err != nil {
				return err
			}
			products[i].Stock = newStock
			products[i].UpdatedAt = time.Now()
			return kv.Set(KeyProducts, products)
		}
		return domain.ErrNotFound
	})
}

// projectStock calcula el stock resultante de un ajuste sin aplicarlo.
func projectStock(current, quantity int, direction string) (int, error) {
	switch direction {
	case entity.StockAdd:
		return current + quantity, nil
	case entity.StockSubtract:
		if current-quantity < 0 {
			return 0, domain.ErrInsufficientStock
		}
		return current - quantity, nil
	default:
		return 0, domain.ErrInvalidInput
	}
}

// LowStockAlerts deriva las alertas de productos activos con Stock <= MinStock.
func (r *ProductRepo) LowStockAlerts() ([]entity.InventoryAlert, error) {
	products, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	var alerts []entity.InventoryAlert
	for _, p := range products {
		if !p.IsActive || p.Stock > p.MinStock {
			continue
		}
		severity := entity.SeverityLow
		if p.Stock == 0 {
			severity = entity.SeverityCritical
		}
		alerts = append(alerts, entity.InventoryAlert{
			ProductID:    p.ID,
			ProductName:  p.Name,
			CurrentStock: p.Stock,
			MinStock:     p.MinStock,
			Severity:     severity,
		})
	}
	return alerts, nil
}

// Search filtra productos activos por subcadena en nombre, código o categoría.
// Mantiene el orden de inserción de la colección (estable, no por relevancia).
func (r *ProductRepo) Search(query string) ([]entity.Product, error) {
	products, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	var matches []entity.Product
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Code), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}
