package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// User representa un usuario del punto de venta.
// El tag json de PasswordHash se mantiene como "password" por compatibilidad
// con el formato de respaldo; el valor almacenado es siempre un hash bcrypt.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"` // único en la colección
	PasswordHash string    `json:"password"`
	Role         string    `json:"role"` // admin, cashier
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserPatch campos opcionales para actualización parcial (nil = sin cambio).
type UserPatch struct {
	Username     *string
	PasswordHash *string
	Role         *string
	IsActive     *bool
}
