package backup_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/caja-pos/internal/application/backup"
	"github.com/jhoicas/caja-pos/internal/domain"
	"github.com/jhoicas/caja-pos/internal/domain/entity"
	"github.com/jhoicas/caja-pos/internal/infrastructure/localstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc       *backup.UseCase
	users    *localstore.UserRepo
	products *localstore.ProductRepo
	sales    *localstore.SaleRepo
	settings *localstore.SettingsStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "caja-pos-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return &fixture{
		uc:       backup.NewUseCase(localstore.NewTxRunner(store)),
		users:    localstore.NewUserRepository(store),
		products: localstore.NewProductRepository(store),
		sales:    localstore.NewSaleRepository(store),
		settings: localstore.NewSettingsStore(store),
	}
}

// seed puebla las cuatro familias con un registro cada una.
func (f *fixture) seed(t *testing.T) {
	t.Helper()
	_, err := f.users.Add(entity.User{
		Username: "admin", PasswordHash: "$2a$10$hash", Role: entity.RoleAdmin, IsActive: true,
	})
	require.NoError(t, err)
	_, err = f.products.Add(entity.Product{
		Name: "Café", Code: "CAF-01", Price: decimal.NewFromInt(30), Stock: 10, IsActive: true,
	})
	require.NoError(t, err)
	_, err = f.sales.Add(entity.Sale{
		Items: []entity.CartItem{{
			ProductID: "p1", Name: "Café",
			Price: decimal.NewFromInt(30), Quantity: 1, Total: decimal.NewFromInt(30),
		}},
		Subtotal: decimal.NewFromInt(30), Total: decimal.NewFromInt(30),
		PaymentMethod: entity.PaymentCash, AmountPaid: decimal.NewFromInt(30),
	})
	require.NoError(t, err)
	require.NoError(t, f.settings.Save(entity.Settings{
		StoreName: "Tienda Central", TaxRate: decimal.NewFromFloat(0.19), Currency: "COP",
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Export
// ──────────────────────────────────────────────────────────────────────────────

func TestExport_IncluyeLasCuatroFamilias(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	snap, err := f.uc.Export()
	require.NoError(t, err)

	assert.Len(t, snap.Users, 1)
	assert.Len(t, snap.Products, 1)
	assert.Len(t, snap.Sales, 1)
	require.NotNil(t, snap.Settings)
	assert.Equal(t, "Tienda Central", snap.Settings.StoreName)
	assert.False(t, snap.ExportDate.IsZero(), "el respaldo lleva fecha de exportación")
}

func TestExportJSON_EsDeserializable(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	raw, err := f.uc.ExportJSON()
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	for _, key := range []string{"users", "products", "sales", "settings", "exportDate"} {
		assert.Contains(t, doc, key, "el documento exportado debe traer la clave %q", key)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Import
// ──────────────────────────────────────────────────────────────────────────────

func TestImport_RoundTrip(t *testing.T) {
	source := newFixture(t)
	source.seed(t)
	raw, err := source.uc.ExportJSON()
	require.NoError(t, err)

	// Restaurar en un almacén limpio.
	target := newFixture(t)
	require.NoError(t, target.uc.Import(raw))

	users, err := target.users.GetAll()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, "$2a$10$hash", users[0].PasswordHash,
		"el hash de contraseña viaja en el respaldo")

	products, err := target.products.GetAll()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "CAF-01", products[0].Code)

	sales, err := target.sales.GetAll()
	require.NoError(t, err)
	assert.Len(t, sales, 1)

	settings, err := target.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, "COP", settings.Currency)
}

// Una exportación completa debe traer las cuatro claves aunque una familia
// esté vacía: si la clave faltara, restaurar en otro almacén dejaría en pie
// los registros viejos de esa familia en el destino.
func TestExport_FamiliaVacia_EmiteListaVacia(t *testing.T) {
	source := newFixture(t)
	_, err := source.users.Add(entity.User{
		Username: "admin", PasswordHash: "$2a$10$hash", Role: entity.RoleAdmin, IsActive: true,
	})
	require.NoError(t, err)
	// Sin productos ni ventas.

	raw, err := source.uc.ExportJSON()
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	for _, key := range []string{"users", "products", "sales"} {
		require.Contains(t, doc, key, "la exportación completa siempre emite la clave %q", key)
		assert.NotEqual(t, "null", string(doc[key]),
			"la familia vacía viaja como lista vacía, no como null")
	}

	// Restaurar en un almacén con datos: las familias vacías del respaldo
	// deben sobreescribir, no quedar "intactas" por clave ausente.
	target := newFixture(t)
	target.seed(t)
	require.NoError(t, target.uc.Import(raw))

	sales, err := target.sales.GetAll()
	require.NoError(t, err)
	assert.Empty(t, sales, "el libro de ventas del destino queda vacío como en el origen")

	products, err := target.products.GetAll()
	require.NoError(t, err)
	assert.Empty(t, products)

	users, err := target.users.GetAll()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0].Username)
}

func TestImport_DocumentoParcial_SoloSobreescribeLoPresente(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	// Documento con solo productos: users, sales y settings quedan intactos.
	partial := []byte(`{"products": []}`)
	require.NoError(t, f.uc.Import(partial))

	products, err := f.products.GetAll()
	require.NoError(t, err)
	assert.Empty(t, products, "la familia presente se sobreescribe, incluso vacía")

	users, err := f.users.GetAll()
	require.NoError(t, err)
	assert.Len(t, users, 1, "la familia ausente en el documento no se toca")

	settings, err := f.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, "Tienda Central", settings.StoreName)
}

func TestImport_Malformado_CeroEscrituras(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	cases := []struct {
		name string
		raw  []byte
	}{
		{"json roto", []byte(`{"users": [`)},
		{"tipo incorrecto", []byte(`{"products": "no soy una lista"}`)},
		{"hoja con tipo incorrecto", []byte(`{"sales": [{"total": {}}]}`)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := f.uc.Import(tc.raw)
			require.ErrorIs(t, err, domain.ErrInvalidInput,
				"un documento malformado se rechaza completo")

			// Nada cambió.
			users, err := f.users.GetAll()
			require.NoError(t, err)
			assert.Len(t, users, 1)
			products, err := f.products.GetAll()
			require.NoError(t, err)
			assert.Len(t, products, 1)
		})
	}
}
