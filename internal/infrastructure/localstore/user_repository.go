package localstore

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/caja-pos/internal/domain/entity"
	"github.com/jhoicas/caja-pos/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre el sustrato local.
// La colección completa vive bajo una sola clave, en orden de inserción.
type UserRepo struct {
	kv KV
}

// NewUserRepository construye el adaptador. Pasar el Store o el KV de un WithLock.
func NewUserRepository(kv KV) *UserRepo {
	return &UserRepo{kv: kv}
}

// GetAll devuelve la colección completa de usuarios.
func (r *UserRepo) GetAll() ([]entity.User, error) {
	var users []entity.User
	if _, err := r.kv.Get(KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Save sobreescribe la colección completa (usada por importación).
func (r *UserRepo) Save(users []entity.User) error {
	return r.kv.Set(KeyUsers, users)
}

// Add asigna id y fecha de creación, agrega al final y persiste.
func (r *UserRepo) Add(user entity.User) (entity.User, error) {
	err := r.kv.WithLock(func(kv KV) error {
		var users []entity.User
		if _, err := kv.Get(KeyUsers, &users); err != nil {
			return err
		}
		user.ID = uuid.New().String()
		user.CreatedAt = time.Now()
		users = append(users, user)
		return kv.Set(KeyUsers, users)
	})
	if err != nil {
		return entity.User{}, err
	}
	return user, nil
}

// Update fusiona los campos del patch en el usuario si existe.
// Devuelve false sin efecto cuando el id está ausente.
func (r *UserRepo) Update(id string, patch entity.UserPatch) (bool, error) {
	found := false
	err := r.kv.WithLock(func(kv KV) error {
		var users []entity.User
		if _, err := kv.Get(KeyUsers, &users); err != nil {
			return err
		}
		for i := range users {
			if users[i].ID != id {
				continue
			}
			found = true
			if patch.Username != nil {
				users[i].Username = *patch.Username
			}
			if patch.PasswordHash != nil {
				users[i].PasswordHash = *patch.PasswordHash
			}
			if patch.Role != nil {
				users[i].Role = *patch.Role
			}
			if patch.IsActive != nil {
				users[i].IsActive = *patch.IsActive
			}
			return kv.Set(KeyUsers, users)
		}
		return nil
	})
	return found, err
}

// Delete elimina por id. Devuelve false si el id no existía.
func (r *UserRepo) Delete(id string) (bool, error) {
	found := false
	err := r.kv.WithLock(func(kv KV) error {
		var users []entity.User
		if _, err := kv.Get(KeyUsers, &users); err != nil {
			return err
		}
		kept := users[:0]
		for _, u := range users {
			if u.ID == id {
				found = true
				continue
			}
			kept = append(kept, u)
		}
		if !found {
			return nil
		}
		return kv.Set(KeyUsers, kept)
	})
	return found, err
}

// Hash bcrypt válido sin contraseña que lo produzca en uso; contra él se
// compara cuando el username no corresponde a ningún usuario activo, para que
// el tiempo de respuesta no distinga username inexistente de password
// incorrecto.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// FindByCredentials compara username y password (bcrypt) sobre usuarios
// activos. Nil uniforme ante cualquier fallo: no revela si el username existe,
// ni por el valor de retorno ni por el tiempo de la comparación.
func (r *UserRepo) FindByCredentials(username, password string) (*entity.User, error) {
	users, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		u := users[i]
		if u.Username != username || !u.IsActive {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return nil, nil
		}
		return &u, nil
	}
	// Sin candidato: misma comparación de costo completo que el camino con
	// usuario encontrado.
	_ = bcrypt.CompareHashAndPassword([]byte(dummyPasswordHash), []byte(password))
	return nil, nil
}
