package repository

import "github.com/jhoicas/caja-pos/internal/domain/entity"

// SettingsStore define el puerto para el documento único de configuración.
type SettingsStore interface {
	// Get devuelve la configuración guardada, o el documento por defecto si no
	// hay nada guardado (o lo guardado no es deserializable).
	Get() (entity.Settings, error)
	Save(settings entity.Settings) error
}
