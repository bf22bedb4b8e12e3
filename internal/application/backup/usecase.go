// Package backup exporta e importa el conjunto completo de datos como un
// documento transportable.
package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/caja-pos/internal/domain"
	"github.com/jhoicas/caja-pos/internal/domain/entity"
	"github.com/jhoicas/caja-pos/internal/domain/repository"
)

// TxRunner ejecuta un callback con las cuatro familias bajo un mismo bloqueo.
type TxRunner interface {
	RunFull(fn func(
		users repository.UserRepository,
		products repository.ProductRepository,
		sales repository.SaleRepository,
		settings repository.SettingsStore,
	) error) error
}

// UseCase exportación y restauración de respaldos.
type UseCase struct {
	tx TxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(tx TxRunner) *UseCase {
	return &UseCase{tx: tx}
}

// Export lee las cuatro familias bajo un mismo bloqueo y las envuelve con la
// fecha de exportación.
func (uc *UseCase) Export() (*entity.Snapshot, error) {
	snap := &entity.Snapshot{ExportDate: time.Now()}
	err := uc.tx.RunFull(func(
		users repository.UserRepository,
		products repository.ProductRepository,
		sales repository.SaleRepository,
		settings repository.SettingsStore,
	) error {
		var err error
		if snap.Users, err = users.GetAll(); err != nil {
			return err
		}
		if snap.Products, err = products.GetAll(); err != nil {
			return err
		}
		if snap.Sales, err = sales.GetAll(); err != nil {
			return err
		}
		current, err := settings.Get()
		if err != nil {
			return err
		}
		snap.Settings = &current
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Las familias vacías se emiten como listas vacías: un slice nil
	// serializa como null y el importador lo leería como clave ausente,
	// dejando registros viejos del destino en pie.
	if snap.Users == nil {
		snap.Users = []entity.User{}
	}
	if snap.Products == nil {
		snap.Products = []entity.Product{}
	}
	if snap.Sales == nil {
		snap.Sales = []entity.Sale{}
	}
	return snap, nil
}

// ExportJSON serializa el respaldo para descarga.
func (uc *UseCase) ExportJSON() ([]byte, error) {
	snap, err := uc.Export()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(snap, "", "  ")
}

// importDoc detecta presencia por clave: un puntero nil significa clave
// ausente en el documento, y esa familia queda intacta al importar.
type importDoc struct {
	Users    *[]entity.User    `json:"users"`
	Products *[]entity.Product `json:"products"`
	Sales    *[]entity.Sale    `json:"sales"`
	Settings *entity.Settings  `json:"settings"`
}

// Import restaura un respaldo: primero deserialización tipada completa (un
// documento malformado produce domain.ErrInvalidInput con cero escrituras),
// luego sobreescritura de cada familia presente bajo un mismo bloqueo.
func (uc *UseCase) Import(raw []byte) error {
	var doc importDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: respaldo malformado: %v", domain.ErrInvalidInput, err)
	}
	return uc.tx.RunFull(func(
		users repository.UserRepository,
		products repository.ProductRepository,
		sales repository.SaleRepository,
		settings repository.SettingsStore,
	) error {
		if doc.Users != nil {
			if err := users.Save(*doc.Users); err != nil {
				return err
			}
		}
		if doc.Products != nil {
			if err := products.Save(*doc.Products); err != nil {
				return err
			}
		}
		if doc.Sales != nil {
			if err := sales.Save(*doc.Sales); err != nil {
				return err
			}
		}
		if doc.Settings != nil {
			if err := settings.Save(*doc.Settings); err != nil {
				return err
			}
		}
		return nil
	})
}
