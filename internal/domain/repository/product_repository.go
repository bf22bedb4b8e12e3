package repository

import "github.com/jhoicas/caja-pos/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	GetAll() ([]entity.Product, error)
	Save(products []entity.Product) error
	Add(product entity.Product) (entity.Product, error)
	Update(id string, patch entity.ProductPatch) (bool, error)
	Delete(id string) (bool, error)
	// UpdateStock ajusta el stock en quantity unidades según direction
	// (entity.StockAdd | entity.StockSubtract). Devuelve domain.ErrNotFound si
	// el producto no existe y domain.ErrInsufficientStock si el resultado
	// quedaría negativo; en ambos casos sin mutación alguna.
	UpdateStock(id string, quantity int, direction string) error
	// LowStockAlerts deriva alertas sobre productos activos con
	// Stock <= MinStock. Severity es critical con stock exactamente en cero.
	LowStockAlerts() ([]entity.InventoryAlert, error)
	// Search busca por subcadena (sin distinguir mayúsculas) en nombre, código
	// o categoría, solo productos activos, en el orden de inserción.
	Search(query string) ([]entity.Product, error)
}
