package usecase

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/jhoicas/caja-pos/internal/domain"
	"github.com/jhoicas/caja-pos/internal/domain/entity"
	"github.com/jhoicas/caja-pos/internal/domain/repository"
)

// SettingsUseCase lectura y actualización del documento de configuración.
type SettingsUseCase struct {
	store repository.SettingsStore
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(store repository.SettingsStore) *SettingsUseCase {
	return &SettingsUseCase{store: store}
}

// Get devuelve la configuración (con defaults si no hay nada guardado).
func (uc *SettingsUseCase) Get() (entity.Settings, error) {
	return uc.store.Get()
}

// Save valida y sobreescribe la configuración: TaxRate es una fracción en
// [0,1] y Currency debe ser un código ISO 4217 válido.
func (uc *SettingsUseCase) Save(in entity.Settings) error {
	if in.TaxRate.LessThan(decimal.Zero) || in.TaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return domain.ErrInvalidInput
	}
	if _, err := currency.ParseISO(in.Currency); err != nil {
		return domain.ErrInvalidInput
	}
	return uc.store.Save(in)
}
