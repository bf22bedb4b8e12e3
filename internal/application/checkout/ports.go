package checkout

import "github.com/jhoicas/caja-pos/internal/domain/repository"

// TxRunner ejecuta un callback con repos de productos y ventas atados a un
// mismo bloqueo del almacén, de modo que decrementos de stock y asiento en el
// libro de ventas se apliquen como una sola operación.
type TxRunner interface {
	Run(fn func(
		products repository.ProductRepository,
		sales repository.SaleRepository,
	) error) error
}
