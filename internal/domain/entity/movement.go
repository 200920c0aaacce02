package entity

import "time"

// Movement representa un movimiento dirigido de stock.
// FromLocation vacío = entrada desde el exterior; ToLocation vacío = salida
// hacia el exterior. Ambos vacíos es inválido. Un movimiento con ambos
// extremos es un traslado interno. Los movimientos son inmutables: se crean
// y se eliminan, nunca se editan.
type Movement struct {
	ID           string // código corto opaco
	Timestamp    time.Time
	ProductID    string
	FromLocation string // vacío si no aplica
	ToLocation   string // vacío si no aplica
	Qty          int    // siempre > 0
}
