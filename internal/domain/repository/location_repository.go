package repository

import "github.com/jhoicas/Bodega-api/internal/domain/entity"

// LocationRepository define el puerto de persistencia para Location (DIP).
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	// List devuelve todas las ubicaciones ordenadas por nombre.
	List() ([]*entity.Location, error)
	Update(location *entity.Location) error
	// Delete elimina por ID. Devuelve domain.ErrNotFound si no existe.
	Delete(id string) error
}
