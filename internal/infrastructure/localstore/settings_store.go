package localstore

import (
	"github.com/jhoicas/caja-pos/internal/domain/entity"
	"github.com/jhoicas/caja-pos/internal/domain/repository"
)

var _ repository.SettingsStore = (*SettingsStore)(nil)

// SettingsStore adaptador del documento único de configuración.
type SettingsStore struct {
	kv KV
}

// NewSettingsStore construye el adaptador.
func NewSettingsStore(kv KV) *SettingsStore {
	return &SettingsStore{kv: kv}
}

// Get devuelve la configuración guardada o el documento por defecto cuando no
// hay nada guardado (o lo guardado no es deserializable).
func (s *SettingsStore) Get() (entity.Settings, error) {
	var settings entity.Settings
	ok, err := s.kv.Get(KeySettings, &settings)
	if err != nil {
		return entity.Settings{}, err
	}
	if !ok {
		return entity.DefaultSettings(), nil
	}
	return settings, nil
}

// Save sobreescribe el documento de configuración.
func (s *SettingsStore) Save(settings entity.Settings) error {
	return s.kv.Set(KeySettings, settings)
}
