package entity

import "time"

// Product representa un producto rastreado por el sistema.
// El ID es legible (PI001, PI002, ...) y lo asigna el generador de
// identificadores al crear; es inmutable después.
type Product struct {
	ID          string
	Name        string // único
	Description string
	Qty         int // cantidad informativa; el saldo real se deriva de los movimientos
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
