// Package auth contiene el caso de uso de autenticación y el manejo explícito
// de la sesión (inicio en login, limpieza en logout).
package auth

import (
	"github.com/jhoicas/caja-pos/internal/application/dto"
	"github.com/jhoicas/caja-pos/internal/domain"
	"github.com/jhoicas/caja-pos/internal/domain/entity"
	"github.com/jhoicas/caja-pos/internal/domain/repository"
	"github.com/jhoicas/caja-pos/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación: login, logout y sesión actual.
type UseCase struct {
	userRepo repository.UserRepository
	session  repository.SessionStore
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, session repository.SessionStore, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, session: session, jwtCfg: jwtCfg}
}

// Login verifica credenciales, genera JWT, inicia la sesión y retorna token +
// usuario. Cualquier fallo de credenciales devuelve domain.ErrUnauthorized de
// forma uniforme: el llamador no puede distinguir usuario inexistente de
// password incorrecto.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByCredentials(in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	if err := uc.session.SetCurrent(*user); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// Logout limpia la sesión actual.
func (uc *UseCase) Logout() error {
	return uc.session.ClearCurrent()
}

// Current devuelve el usuario en sesión, o nil si no hay sesión iniciada.
func (uc *UseCase) Current() (*dto.UserResponse, error) {
	user, err := uc.session.Current()
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// ToUserResponse proyecta un usuario sin el hash de contraseña.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
