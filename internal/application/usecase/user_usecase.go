package usecase

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/caja-pos/internal/application/auth"
	"github.com/jhoicas/caja-pos/internal/application/dto"
	"github.com/jhoicas/caja-pos/internal/domain"
	"github.com/jhoicas/caja-pos/internal/domain/entity"
	"github.com/jhoicas/caja-pos/internal/domain/repository"
)

// UserUseCase gestión de usuarios (solo admin desde el router).
// La regla "nadie se borra ni se desactiva a sí mismo" vive aquí, en el
// llamador; el repositorio es incondicional.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve todos los usuarios sin hashes.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *auth.ToUserResponse(&users[i]))
	}
	return out, nil
}

// Create hashea el password con bcrypt y persiste. ErrDuplicate si el
// username ya existe.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	users, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == in.Username {
			return nil, domain.ErrDuplicate
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	user, err := uc.repo.Add(entity.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
		IsActive:     active,
	})
	if err != nil {
		return nil, err
	}
	return auth.ToUserResponse(&user), nil
}

// Update aplica una actualización parcial. Un cambio de password se rehashea.
// actorID es el usuario autenticado: desactivarse a sí mismo está prohibido.
func (uc *UserUseCase) Update(actorID, id string, in dto.UpdateUserRequest) (bool, error) {
	if actorID == id && in.IsActive != nil && !*in.IsActive {
		return false, domain.ErrForbidden
	}
	patch := entity.UserPatch{
		Username: in.Username,
		Role:     in.Role,
		IsActive: in.IsActive,
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return false, err
		}
		hashed := string(hash)
		patch.PasswordHash = &hashed
	}
	return uc.repo.Update(id, patch)
}

// Delete elimina un usuario. Borrarse a sí mismo está prohibido.
func (uc *UserUseCase) Delete(actorID, id string) (bool, error) {
	if actorID == id {
		return false, domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}
