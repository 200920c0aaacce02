package dto

import "time"

// CreateProductRequest entrada para crear un producto.
// El ID no se acepta: lo asigna el generador de identificadores.
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=120"`
	Description string `json:"description" validate:"max=300"`
	InitialQty  int    `json:"initial_qty" validate:"min=0"`
}

// UpdateProductRequest entrada para editar nombre/descripción.
// El product_id es inmutable y la cantidad real se deriva de movimientos.
type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=120"`
	Description *string `json:"description" validate:"omitempty,max=300"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Qty         int       `json:"qty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductListResponse listado completo de productos ordenado por nombre.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
