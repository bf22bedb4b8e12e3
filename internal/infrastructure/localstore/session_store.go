package localstore

import (
	"github.com/jhoicas/caja-pos/internal/domain/entity"
	"github.com/jhoicas/caja-pos/internal/domain/repository"
)

var _ repository.SessionStore = (*SessionStore)(nil)

// SessionStore adaptador de la sesión del usuario autenticado (clave
// transitoria: se inicia en login y se limpia en logout; los respaldos no la
// incluyen).
type SessionStore struct {
	kv KV
}

// NewSessionStore construye el adaptador.
func NewSessionStore(kv KV) *SessionStore {
	return &SessionStore{kv: kv}
}

// Current devuelve el usuario en sesión, o nil si no hay sesión.
func (s *SessionStore) Current() (*entity.User, error) {
	var user entity.User
	ok, err := s.kv.Get(KeySession, &user)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// SetCurrent guarda el usuario en sesión (inicio de sesión).
func (s *SessionStore) SetCurrent(user entity.User) error {
	return s.kv.Set(KeySession, user)
}

// ClearCurrent elimina la sesión (cierre de sesión).
func (s *SessionStore) ClearCurrent() error {
	return s.kv.Remove(KeySession)
}
