package dto

// CreateUserRequest alta de usuario (solo admin).
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin cashier"`
	IsActive *bool  `json:"isActive"` // nil = activo por defecto
}

// UpdateUserRequest actualización parcial (nil = sin cambio).
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin cashier"`
	IsActive *bool   `json:"isActive"`
}
