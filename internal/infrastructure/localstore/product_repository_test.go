package localstore_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/caja-pos/internal/domain"
	"github.com/jhoicas/caja-pos/internal/domain/entity"
	"github.com/jhoicas/caja-pos/internal/infrastructure/localstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newProductRepo(t *testing.T) *localstore.ProductRepo {
	t.Helper()
	return localstore.NewProductRepository(newTestStore(t))
}

func addProduct(t *testing.T, repo *localstore.ProductRepo, p entity.Product) entity.Product {
	t.Helper()
	stored, err := repo.Add(p)
	require.NoError(t, err, "debe agregarse el producto de prueba")
	return stored
}

func sampleProduct(name, code string, stock, minStock int) entity.Product {
	return entity.Product{
		Name:     name,
		Code:     code,
		Category: "bebidas",
		Price:    decimal.NewFromFloat(25.50),
		Stock:    stock,
		MinStock: minStock,
		IsActive: true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepo_Add_AsignaIDyFechas(t *testing.T) {
	repo := newProductRepo(t)

	stored := addProduct(t, repo, sampleProduct("Café", "CAF-01", 10, 2))

	assert.NotEmpty(t, stored.ID, "Add debe asignar un id")
	assert.False(t, stored.CreatedAt.IsZero(), "Add debe asignar CreatedAt")
	assert.False(t, stored.UpdatedAt.IsZero(), "Add debe asignar UpdatedAt")

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, stored.ID, all[0].ID)
}

func TestProductRepo_Add_AsignaIDaVariantesSinID(t *testing.T) {
	repo := newProductRepo(t)

	p := sampleProduct("Café", "CAF-01", 10, 2)
	p.Variants = []entity.ProductVariant{
		{Name: "Grande", Price: decimal.NewFromFloat(30), Stock: 5},
	}
	stored := addProduct(t, repo, p)

	require.Len(t, stored.Variants, 1)
	assert.NotEmpty(t, stored.Variants[0].ID, "la variante sin id debe recibir uno")
}

func TestProductRepo_Update_FusionaPatch(t *testing.T) {
	repo := newProductRepo(t)
	stored := addProduct(t, repo, sampleProduct("Café", "CAF-01", 10, 2))

	newName := "Café Premium"
	newStock := 25
	found, err := repo.Update(stored.ID, entity.ProductPatch{Name: &newName, Stock: &newStock})
	require.NoError(t, err)
	assert.True(t, found)

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Café Premium", all[0].Name)
	assert.Equal(t, 25, all[0].Stock)
	assert.Equal(t, "CAF-01", all[0].Code, "los campos no incluidos en el patch no cambian")
}

func TestProductRepo_Update_IDInexistente(t *testing.T) {
	repo := newProductRepo(t)

	name := "nada"
	found, err := repo.Update("no-existe", entity.ProductPatch{Name: &name})
	require.NoError(t, err)
	assert.False(t, found, "actualizar un id ausente devuelve false sin error")
}

func TestProductRepo_Delete(t *testing.T) {
	repo := newProductRepo(t)
	a := addProduct(t, repo, sampleProduct("Café", "CAF-01", 10, 2))
	b := addProduct(t, repo, sampleProduct("Té", "TE-01", 5, 1))

	found, err := repo.Delete(a.ID)
	require.NoError(t, err)
	assert.True(t, found)

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, b.ID, all[0].ID, "solo debe quedar el producto no eliminado")

	found, err = repo.Delete(a.ID)
	require.NoError(t, err)
	assert.False(t, found, "borrar dos veces devuelve false la segunda")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepo_UpdateStock_AddYSubtract(t *testing.T) {
	repo := newProductRepo(t)
	stored := addProduct(t, repo, sampleProduct("Café", "CAF-01", 10, 2))

	require.NoError(t, repo.UpdateStock(stored.ID, 5, entity.StockAdd))
	require.NoError(t, repo.UpdateStock(stored.ID, 3, entity.StockSubtract))

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Equal(t, 12, all[0].Stock, "10 + 5 - 3 = 12")
}

func TestProductRepo_UpdateStock_NoPermiteNegativo(t *testing.T) {
	repo := newProductRepo(t)
	stored := addProduct(t, repo, sampleProduct("Café", "CAF-01", 2, 1))

	err := repo.UpdateStock(stored.ID, 3, entity.StockSubtract)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock,
		"el decremento que cruza cero debe rechazarse")

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Equal(t, 2, all[0].Stock, "el stock no debe haber cambiado tras el rechazo")
}

func TestProductRepo_UpdateStock_ProductoInexistente(t *testing.T) {
	repo := newProductRepo(t)

	err := repo.UpdateStock("no-existe", 1, entity.StockAdd)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductRepo_UpdateStock_DireccionInvalida(t *testing.T) {
	repo := newProductRepo(t)
	stored := addProduct(t, repo, sampleProduct("Café", "CAF-01", 10, 2))

	err := repo.UpdateStock(stored.ID, 1, "multiply")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de alertas y búsqueda
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepo_LowStockAlerts_Severidad(t *testing.T) {
	repo := newProductRepo(t)
	addProduct(t, repo, sampleProduct("Agotado", "AG-01", 0, 5))   // critical
	addProduct(t, repo, sampleProduct("Al límite", "AL-01", 3, 3)) // low (stock == min)
	addProduct(t, repo, sampleProduct("Sano", "SA-01", 50, 5))     // sin alerta

	inactive := sampleProduct("Inactivo", "IN-01", 0, 5)
	inactive.IsActive = false
	addProduct(t, repo, inactive) // inactivo: nunca alerta

	alerts, err := repo.LowStockAlerts()
	require.NoError(t, err)
	require.Len(t, alerts, 2, "solo productos activos bajo el umbral generan alerta")

	assert.Equal(t, "Agotado", alerts[0].ProductName)
	assert.Equal(t, entity.SeverityCritical, alerts[0].Severity, "stock cero es crítico")
	assert.Equal(t, "Al límite", alerts[1].ProductName)
	assert.Equal(t, entity.SeverityLow, alerts[1].Severity, "stock en el umbral es low")
}

func TestProductRepo_Search_NombreCodigoCategoria(t *testing.T) {
	repo := newProductRepo(t)
	addProduct(t, repo, sampleProduct("Café Molido", "CAF-01", 10, 2))
	addProduct(t, repo, sampleProduct("Té Verde", "TE-01", 5, 1))

	// Por nombre, sin distinguir mayúsculas.
	matches, err := repo.Search("café")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Café Molido", matches[0].Name)

	// Por código.
	matches, err = repo.Search("te-01")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Té Verde", matches[0].Name)

	// Por categoría (ambos son "bebidas").
	matches, err = repo.Search("bebidas")
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestProductRepo_Search_ExcluyeInactivos(t *testing.T) {
	repo := newProductRepo(t)
	inactive := sampleProduct("Descontinuado", "DES-01", 0, 0)
	inactive.IsActive = false
	addProduct(t, repo, inactive)

	matches, err := repo.Search("descontinuado")
	require.NoError(t, err)
	assert.Empty(t, matches, "los productos inactivos no aparecen en la búsqueda")
}
