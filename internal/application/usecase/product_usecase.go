package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/inventory"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Bodega-api/internal/domain/inventory"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
//
// La asignación de IDs PI<NNN> es escanear-máximo-y-asignar, que no es
// atómica frente a creaciones concurrentes: mu serializa la sección crítica
// dentro del proceso y la PRIMARY KEY de la tabla actúa de respaldo.
type ProductUseCase struct {
	mu           sync.Mutex
	txRunner     inventory.TxRunner
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	txRunner inventory.TxRunner,
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) *ProductUseCase {
	return &ProductUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		movementRepo: movementRepo,
	}
}

// Create asigna el siguiente ID PI<NNN> y persiste el producto, todo dentro
// de la misma transacción. Nombre duplicado devuelve ErrDuplicateName.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := time.Now()
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Qty:         in.InitialQty,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.LocationRepository,
		_ repository.MovementRepository,
	) error {
		ids, err := productRepo.ListIDs()
		if err != nil {
			return err
		}
		product.ID = domaininv.NextProductID(ids)
		return productRepo.Create(product)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista todos los productos ordenados por nombre.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items}, nil
}

// Update edita nombre y/o descripción. El ID es inmutable.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto solo si ningún movimiento lo referencia;
// si tiene movimientos devuelve ErrHasDependents. Verificación y borrado
// comparten transacción.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.LocationRepository,
		movementRepo repository.MovementRepository,
	) error {
		referenced, err := movementRepo.ExistsForProduct(id)
		if err != nil {
			return err
		}
		if referenced {
			return domain.ErrHasDependents
		}
		return productRepo.Delete(id)
	})
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Qty:         p.Qty,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
