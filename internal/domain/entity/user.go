package entity

import "time"

// Roles válidos para User. El sistema solo distingue cliente y administrador;
// no existe endpoint de promoción, el rol es inmutable tras el registro.
const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

// ValidRole verifica que el rol sea uno de los dos valores cerrados.
func ValidRole(role string) bool {
	return role == RoleClient || role == RoleAdmin
}

// User representa un usuario del sistema (cliente o administrador).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // client, admin
	Company      string // opcional
	CreatedAt    time.Time
}
