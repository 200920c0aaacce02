package dto

import "time"

// CreateMovementRequest entrada para registrar un movimiento.
// from_location vacío = entrada externa; to_location vacío = salida externa.
type CreateMovementRequest struct {
	ProductID    string `json:"product_id" validate:"required"`
	FromLocation string `json:"from_location"`
	ToLocation   string `json:"to_location"`
	Qty          int    `json:"qty" validate:"required,gt=0"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	ProductID    string    `json:"product_id"`
	FromLocation string    `json:"from_location,omitempty"`
	ToLocation   string    `json:"to_location,omitempty"`
	Qty          int       `json:"qty"`
}

// MovementListResponse listado de movimientos, más recientes primero.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
}
