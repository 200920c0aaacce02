package entity

import "time"

// Location representa una ubicación de almacenamiento (bodega, tienda, estante).
type Location struct {
	ID          string // código corto opaco
	Name        string // único
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
