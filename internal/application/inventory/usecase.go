package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Bodega-api/internal/domain/inventory"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// shortIDRetries reintentos ante colisión del código corto aleatorio.
const shortIDRetries = 3

// MovementUseCase registra y elimina movimientos de stock de forma
// transaccional. La validación estructural corre antes de tocar la BD.
type MovementUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	movementRepo repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	movementRepo repository.MovementRepository,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		movementRepo: movementRepo,
	}
}

// RegisterMovement valida el candidato (cantidad > 0, al menos un extremo,
// producto y ubicaciones existentes) y lo persiste dentro de una transacción.
// Devuelve el ID asignado al movimiento.
func (uc *MovementUseCase) RegisterMovement(ctx context.Context, in dto.CreateMovementRequest) (string, error) {
	if err := domaininv.ValidateMovement(in.Qty, in.FromLocation, in.ToLocation); err != nil {
		return "", err
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return "", err
	}
	if product == nil {
		return "", domain.ErrUnknownProduct
	}
	for _, locID := range []string{in.FromLocation, in.ToLocation} {
		if locID == "" {
			continue
		}
		loc, err := uc.locationRepo.GetByID(locID)
		if err != nil {
			return "", err
		}
		if loc == nil {
			return "", domain.ErrUnknownLocation
		}
	}

	movement := &entity.Movement{
		Timestamp:    time.Now(),
		ProductID:    in.ProductID,
		FromLocation: in.FromLocation,
		ToLocation:   in.ToLocation,
		Qty:          in.Qty,
	}

	// Commit si todo ok, Rollback si algo falla (TxRunner.Run lo hace).
	// El código corto aleatorio puede chocar con uno existente; se reintenta
	// con un ID nuevo dentro de la misma operación lógica.
	err = uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		_ repository.LocationRepository,
		movementRepo repository.MovementRepository,
	) error {
		var createErr error
		for i := 0; i < shortIDRetries; i++ {
			movement.ID = domaininv.NewShortID()
			createErr = movementRepo.Create(movement)
			if !errors.Is(createErr, domain.ErrDuplicate) {
				return createErr
			}
		}
		return createErr
	})
	if err != nil {
		return "", err
	}
	return movement.ID, nil
}

// DeleteMovement elimina un movimiento por ID, sin condiciones: los
// movimientos no tienen dependientes. ErrNotFound si el ID no existe.
func (uc *MovementUseCase) DeleteMovement(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		_ repository.LocationRepository,
		movementRepo repository.MovementRepository,
	) error {
		return movementRepo.Delete(id)
	})
}

// List devuelve los movimientos registrados, más recientes primero.
func (uc *MovementUseCase) List() (*dto.MovementListResponse, error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, dto.MovementResponse{
			ID:           m.ID,
			Timestamp:    m.Timestamp,
			ProductID:    m.ProductID,
			FromLocation: m.FromLocation,
			ToLocation:   m.ToLocation,
			Qty:          m.Qty,
		})
	}
	return &dto.MovementListResponse{Items: items}, nil
}
