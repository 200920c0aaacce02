package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/inventory"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Bodega-api/internal/domain/inventory"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// shortIDRetries reintentos ante colisión del código corto aleatorio.
const shortIDRetries = 3

// LocationUseCase casos de uso CRUD para ubicaciones.
type LocationUseCase struct {
	txRunner     inventory.TxRunner
	locationRepo repository.LocationRepository
	movementRepo repository.MovementRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(
	txRunner inventory.TxRunner,
	locationRepo repository.LocationRepository,
	movementRepo repository.MovementRepository,
) *LocationUseCase {
	return &LocationUseCase{
		txRunner:     txRunner,
		locationRepo: locationRepo,
		movementRepo: movementRepo,
	}
}

// Create persiste una ubicación con código corto aleatorio, reintentando
// con otro código si choca con uno existente. Nombre duplicado devuelve
// ErrDuplicateName.
func (uc *LocationUseCase) Create(ctx context.Context, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	now := time.Now()
	location := &entity.Location{
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		locationRepo repository.LocationRepository,
		_ repository.MovementRepository,
	) error {
		var createErr error
		for i := 0; i < shortIDRetries; i++ {
			location.ID = domaininv.NewShortID()
			createErr = locationRepo.Create(location)
			if !errors.Is(createErr, domain.ErrDuplicate) {
				return createErr
			}
		}
		return createErr
	})
	if err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// GetByID obtiene una ubicación por ID. Devuelve nil si no existe.
func (uc *LocationUseCase) GetByID(id string) (*dto.LocationResponse, error) {
	location, err := uc.locationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	return toLocationResponse(location), nil
}

// List lista todas las ubicaciones ordenadas por nombre.
func (uc *LocationUseCase) List() (*dto.LocationListResponse, error) {
	locations, err := uc.locationRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		items = append(items, *toLocationResponse(l))
	}
	return &dto.LocationListResponse{Items: items}, nil
}

// Update edita nombre y/o descripción.
func (uc *LocationUseCase) Update(id string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	location, err := uc.locationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		location.Name = *in.Name
	}
	if in.Description != nil {
		location.Description = *in.Description
	}
	location.UpdatedAt = time.Now()
	if err := uc.locationRepo.Update(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// Delete elimina una ubicación solo si ningún movimiento la referencia como
// origen o destino; si tiene movimientos devuelve ErrHasDependents.
func (uc *LocationUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		locationRepo repository.LocationRepository,
		movementRepo repository.MovementRepository,
	) error {
		referenced, err := movementRepo.ExistsForLocation(id)
		if err != nil {
			return err
		}
		if referenced {
			return domain.ErrHasDependents
		}
		return locationRepo.Delete(id)
	})
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
