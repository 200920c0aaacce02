package repository

import "github.com/jhoicas/Bodega-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// ListIDs devuelve todos los IDs de producto; insumo del generador PI<NNN>.
	ListIDs() ([]string, error)
	// List devuelve todos los productos ordenados por nombre.
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// Delete elimina por ID. Devuelve domain.ErrNotFound si no existe.
	Delete(id string) error
}
