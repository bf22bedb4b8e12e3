package repository

import "github.com/jhoicas/caja-pos/internal/domain/entity"

// SessionStore define el puerto para la sesión del usuario autenticado.
// Estado explícito con inicio en login y limpieza en logout; no es estado
// global ambiental.
type SessionStore interface {
	Current() (*entity.User, error) // nil si no hay sesión
	SetCurrent(user entity.User) error
	ClearCurrent() error
}
