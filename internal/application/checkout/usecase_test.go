package checkout_test

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/caja-pos/internal/application/checkout"
	"github.com/jhoicas/caja-pos/internal/application/dto"
	"github.com/jhoicas/caja-pos/internal/domain"
	"github.com/jhoicas/caja-pos/internal/domain/entity"
	"github.com/jhoicas/caja-pos/internal/infrastructure/localstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc       *checkout.UseCase
	products *localstore.ProductRepo
	sales    *localstore.SaleRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "caja-pos-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	products := localstore.NewProductRepository(store)
	return &fixture{
		uc:       checkout.NewUseCase(localstore.NewTxRunner(store), products),
		products: products,
		sales:    localstore.NewSaleRepository(store),
	}
}

func (f *fixture) addProduct(t *testing.T, name string, price float64, stock int) entity.Product {
	t.Helper()
	stored, err := f.products.Add(entity.Product{
		Name:     name,
		Code:     name,
		Price:    decimal.NewFromFloat(price),
		Stock:    stock,
		MinStock: 1,
		IsActive: true,
	})
	require.NoError(t, err)
	return stored
}

func (f *fixture) stockOf(t *testing.T, id string) int {
	t.Helper()
	all, err := f.products.GetAll()
	require.NoError(t, err)
	for _, p := range all {
		if p.ID == id {
			return p.Stock
		}
	}
	t.Fatalf("producto %s no encontrado", id)
	return 0
}

// line arma una línea de venta con Total = Price * Quantity correcto.
func line(p entity.Product, qty int) dto.SaleItemRequest {
	return dto.SaleItemRequest{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  qty,
		Total:     p.Price.Mul(decimal.NewFromInt(int64(qty))),
	}
}

// draft arma un borrador aritméticamente consistente a partir de las líneas.
func draft(method string, tax, discount float64, items ...dto.SaleItemRequest) dto.RecordSaleRequest {
	subtotal := decimal.Zero
	for _, li := range items {
		subtotal = subtotal.Add(li.Total)
	}
	taxD := decimal.NewFromFloat(tax)
	discountD := decimal.NewFromFloat(discount)
	total := subtotal.Add(taxD).Sub(discountD)
	return dto.RecordSaleRequest{
		Items:         items,
		Subtotal:      subtotal,
		Tax:           taxD,
		Discount:      discountD,
		Total:         total,
		PaymentMethod: method,
		AmountPaid:    total,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RecordSale — camino feliz
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_ConsumeStockYAsientaVenta(t *testing.T) {
	f := newFixture(t)
	cafe := f.addProduct(t, "Café", 25.50, 10)

	sale, err := f.uc.RecordSale(
		draft(entity.PaymentCash, 0, 0, line(cafe, 3)),
		"u1", "Cajero Uno",
	)
	require.NoError(t, err)
	require.NotNil(t, sale)

	assert.NotEmpty(t, sale.ID)
	assert.Equal(t, "u1", sale.CashierID)
	assert.Equal(t, "Cajero Uno", sale.CashierName)
	assert.True(t, sale.Total.Equal(decimal.NewFromFloat(76.50)),
		"total: 25.50 * 3 = 76.50, obtenido %s", sale.Total)
	assert.True(t, sale.Change.IsZero())

	assert.Equal(t, 7, f.stockOf(t, cafe.ID), "el stock baja de 10 a 7")

	book, err := f.sales.GetAll()
	require.NoError(t, err)
	require.Len(t, book, 1, "la venta queda asentada en el libro")
	assert.Equal(t, sale.ID, book[0].ID)
}

func TestRecordSale_EfectivoCalculaCambio(t *testing.T) {
	f := newFixture(t)
	cafe := f.addProduct(t, "Café", 30, 5)

	in := draft(entity.PaymentCash, 0, 0, line(cafe, 1))
	in.AmountPaid = decimal.NewFromInt(50)

	sale, err := f.uc.RecordSale(in, "u1", "Cajero Uno")
	require.NoError(t, err)
	assert.True(t, sale.Change.Equal(decimal.NewFromInt(20)),
		"cambio: 50 - 30 = 20, obtenido %s", sale.Change)
}

func TestRecordSale_TarjetaSinCambio(t *testing.T) {
	f := newFixture(t)
	cafe := f.addProduct(t, "Café", 30, 5)

	// En tarjeta el monto pagado siempre es exacto: el cambio queda en cero
	// aunque AmountPaid traiga un excedente.
	in := draft(entity.PaymentCard, 0, 0, line(cafe, 1))
	in.AmountPaid = decimal.NewFromInt(100)

	sale, err := f.uc.RecordSale(in, "u1", "Cajero Uno")
	require.NoError(t, err)
	assert.True(t, sale.Change.IsZero())
}

func TestRecordSale_ImpuestoYDescuento(t *testing.T) {
	f := newFixture(t)
	cafe := f.addProduct(t, "Café", 100, 5)

	// Subtotal 200, tax 24, descuento 10 → total 214.
	sale, err := f.uc.RecordSale(
		draft(entity.PaymentCash, 24, 10, line(cafe, 2)),
		"u1", "Cajero Uno",
	)
	require.NoError(t, err)
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(214)))
}

func TestRecordSale_VarianteDescuentaReferencia(t *testing.T) {
	f := newFixture(t)
	p := entity.Product{
		Name:     "Café",
		Code:     "CAF-01",
		Price:    decimal.NewFromInt(30),
		Stock:    10,
		MinStock: 1,
		IsActive: true,
		Variants: []entity.ProductVariant{
			{ID: "v1", Name: "Grande", Price: decimal.NewFromInt(35), Stock: 2},
		},
	}
	stored, err := f.products.Add(p)
	require.NoError(t, err)

	li := dto.SaleItemRequest{
		ProductID: stored.ID,
		VariantID: "v1",
		Name:      "Café Grande",
		Price:     decimal.NewFromInt(35),
		Quantity:  3,
		Total:     decimal.NewFromInt(105),
	}
	_, err = f.uc.RecordSale(draft(entity.PaymentCash, 0, 0, li), "u1", "Cajero Uno")
	require.NoError(t, err)

	all, err := f.products.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 7, all[0].Stock, "el stock del producto es el que gobierna")
	require.Len(t, all[0].Variants, 1)
	assert.Equal(t, 0, all[0].Variants[0].Stock,
		"el stock de la variante se descuenta como referencia sin bajar de cero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RecordSale — rechazos
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_SinLineas(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.RecordSale(draft(entity.PaymentCash, 0, 0), "u1", "Cajero Uno")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordSale_TotalDeLineaInconsistente(t *testing.T) {
	f := newFixture(t)
	cafe := f.addProduct(t, "Café", 30, 5)

	li := line(cafe, 2)
	li.Total = decimal.NewFromInt(999) // no es Price * Quantity
	in := draft(entity.PaymentCash, 0, 0, li)

	_, err := f.uc.RecordSale(in, "u1", "Cajero Uno")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 5, f.stockOf(t, cafe.ID), "el rechazo no toca el stock")
}

func TestRecordSale_TotalGeneralInconsistente(t *testing.T) {
	f := newFixture(t)
	cafe := f.addProduct(t, "Café", 30, 5)

	in := draft(entity.PaymentCash, 0, 0, line(cafe, 1))
	in.Total = decimal.NewFromInt(999)
	in.AmountPaid = decimal.NewFromInt(999)

	_, err := f.uc.RecordSale(in, "u1", "Cajero Uno")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordSale_EfectivoInsuficiente(t *testing.T) {
	f := newFixture(t)
	cafe := f.addProduct(t, "Café", 30, 5)

	in := draft(entity.PaymentCash, 0, 0, line(cafe, 1))
	in.AmountPaid = decimal.NewFromInt(10) // paga menos del total

	_, err := f.uc.RecordSale(in, "u1", "Cajero Uno")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordSale_MetodoDePagoDesconocido(t *testing.T) {
	f := newFixture(t)
	cafe := f.addProduct(t, "Café", 30, 5)

	in := draft("cheque", 0, 0, line(cafe, 1))
	_, err := f.uc.RecordSale(in, "u1", "Cajero Uno")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordSale_ProductoInexistente(t *testing.T) {
	f := newFixture(t)

	li := dto.SaleItemRequest{
		ProductID: "fantasma",
		Name:      "No existe",
		Price:     decimal.NewFromInt(10),
		Quantity:  1,
		Total:     decimal.NewFromInt(10),
	}
	_, err := f.uc.RecordSale(draft(entity.PaymentCash, 0, 0, li), "u1", "Cajero Uno")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El caso central de la política validar-todo-luego-aplicar-todo: si una sola
// línea no tiene stock, la venta completa se rechaza y NINGÚN producto cambia,
// incluido el que sí tenía stock suficiente.
func TestRecordSale_StockInsuficiente_RechazoTotal(t *testing.T) {
	f := newFixture(t)
	conStock := f.addProduct(t, "Café", 30, 5)
	sinStock := f.addProduct(t, "Té", 20, 0)

	in := draft(entity.PaymentCash, 0, 0, line(conStock, 2), line(sinStock, 1))
	_, err := f.uc.RecordSale(in, "u1", "Cajero Uno")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 5, f.stockOf(t, conStock.ID),
		"el producto con stock suficiente queda intacto")
	assert.Equal(t, 0, f.stockOf(t, sinStock.ID))

	book, err := f.sales.GetAll()
	require.NoError(t, err)
	assert.Empty(t, book, "nada entra al libro de ventas")
}

// Varias líneas del mismo producto consumen stock acumulado: 3 + 3 sobre un
// stock de 5 debe rechazarse aunque cada línea por separado quepa.
func TestRecordSale_LineasRepetidas_ValidaAcumulado(t *testing.T) {
	f := newFixture(t)
	cafe := f.addProduct(t, "Café", 30, 5)

	in := draft(entity.PaymentCash, 0, 0, line(cafe, 3), line(cafe, 3))
	_, err := f.uc.RecordSale(in, "u1", "Cajero Uno")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 5, f.stockOf(t, cafe.ID))
}

func TestRecordSale_LineasRepetidas_AcumuladoDentroDelStock(t *testing.T) {
	f := newFixture(t)
	cafe := f.addProduct(t, "Café", 30, 5)

	in := draft(entity.PaymentCash, 0, 0, line(cafe, 2), line(cafe, 3))
	_, err := f.uc.RecordSale(in, "u1", "Cajero Uno")
	require.NoError(t, err)
	assert.Equal(t, 0, f.stockOf(t, cafe.ID), "5 - 2 - 3 = 0 es válido")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests LowStockAlerts tras una venta
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStockAlerts_DespuesDeVenta(t *testing.T) {
	f := newFixture(t)
	cafe := f.addProduct(t, "Café", 30, 4) // MinStock 1

	_, err := f.uc.RecordSale(
		draft(entity.PaymentCash, 0, 0, line(cafe, 3)),
		"u1", "Cajero Uno",
	)
	require.NoError(t, err)

	alerts, err := f.uc.LowStockAlerts()
	require.NoError(t, err)
	require.Len(t, alerts, 1, "el stock cayó al umbral, debe haber alerta")
	assert.Equal(t, cafe.ID, alerts[0].ProductID)
	assert.Equal(t, entity.SeverityLow, alerts[0].Severity)
}
