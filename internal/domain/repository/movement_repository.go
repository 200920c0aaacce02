package repository

import "github.com/jhoicas/Bodega-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para Movement.
// Los movimientos son inmutables: no hay Update.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	// List devuelve todos los movimientos, los más recientes primero.
	// El motor de saldos recorre esta lista completa en cada consulta.
	List() ([]*entity.Movement, error)
	// Delete elimina por ID. Devuelve domain.ErrNotFound si no existe.
	Delete(id string) error
	// ExistsForProduct indica si algún movimiento referencia al producto.
	ExistsForProduct(productID string) (bool, error)
	// ExistsForLocation indica si algún movimiento referencia a la ubicación
	// como origen o destino.
	ExistsForLocation(locationID string) (bool, error)
}
