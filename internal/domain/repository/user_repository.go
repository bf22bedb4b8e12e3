package repository

import "github.com/jhoicas/caja-pos/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
//
// Update y Delete devuelven false (sin efecto) si el id no existe; los fallos
// del medio se reportan como error, nunca se silencian.
type UserRepository interface {
	GetAll() ([]entity.User, error)
	Save(users []entity.User) error
	Add(user entity.User) (entity.User, error)
	Update(id string, patch entity.UserPatch) (bool, error)
	Delete(id string) (bool, error)
	// FindByCredentials devuelve el usuario activo cuyo username y password
	// coinciden. Cualquier fallo (usuario inexistente, password incorrecto,
	// usuario inactivo) devuelve nil de forma uniforme para no filtrar si el
	// username existe.
	FindByCredentials(username, password string) (*entity.User, error)
}
