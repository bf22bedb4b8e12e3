package localstore

import (
	"github.com/jhoicas/caja-pos/internal/application/backup"
	"github.com/jhoicas/caja-pos/internal/application/checkout"
	"github.com/jhoicas/caja-pos/internal/domain/repository"
)

// Asegura que TxRunner implemente checkout.TxRunner y backup.TxRunner.
var _ checkout.TxRunner = (*TxRunner)(nil)
var _ backup.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks con el almacén bloqueado y repositorios atados a
// ese bloqueo: el análogo local de una transacción de base de datos bajo el
// modelo de escritor único.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner con el almacén.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con repos de productos y ventas bajo un mismo bloqueo.
// Usado por el coordinador de venta: decrementos y asiento en el libro quedan
// en un solo paso atómico frente a otros llamadores.
func (r *TxRunner) Run(fn func(
	products repository.ProductRepository,
	sales repository.SaleRepository,
) error) error {
	return r.store.WithLock(func(kv KV) error {
		return fn(NewProductRepository(kv), NewSaleRepository(kv))
	})
}

// RunFull ejecuta fn con las cuatro familias bajo un mismo bloqueo (respaldo
// e importación).
func (r *TxRunner) RunFull(fn func(
	users repository.UserRepository,
	products repository.ProductRepository,
	sales repository.SaleRepository,
	settings repository.SettingsStore,
) error) error {
	return r.store.WithLock(func(kv KV) error {
		return fn(
			NewUserRepository(kv),
			NewProductRepository(kv),
			NewSaleRepository(kv),
			NewSettingsStore(kv),
		)
	})
}
