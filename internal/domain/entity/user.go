package entity

import "time"

// User representa un usuario del sistema (acceso a las pantallas CRUD).
type User struct {
	ID           string
	Username     string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
}
