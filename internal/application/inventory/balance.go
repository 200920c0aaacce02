package inventory

import (
	"github.com/jhoicas/Bodega-api/internal/application/dto"
	domaininv "github.com/jhoicas/Bodega-api/internal/domain/inventory"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// BalanceUseCase calcula los saldos vigentes por (producto, ubicación)
// recorriendo el historial completo de movimientos en cada consulta.
type BalanceUseCase struct {
	movementRepo repository.MovementRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
}

// NewBalanceUseCase construye el caso de uso.
func NewBalanceUseCase(
	movementRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) *BalanceUseCase {
	return &BalanceUseCase{
		movementRepo: movementRepo,
		productRepo:  productRepo,
		locationRepo: locationRepo,
	}
}

// ComputeBalances devuelve los pares con saldo distinto de cero, ordenados
// por nombre de producto y ubicación. Los saldos en cero se omiten: stock
// totalmente drenado y "nunca hubo movimientos" colapsan en la misma ausencia.
func (uc *BalanceUseCase) ComputeBalances() (*dto.BalanceResponse, error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	productNames, locationNames, err := uc.nameIndexes()
	if err != nil {
		return nil, err
	}

	rows := domaininv.NonZeroRows(domaininv.Accumulate(movements), productNames, locationNames)
	items := make([]dto.BalanceRow, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.BalanceRow{
			ProductID:  r.ProductID,
			LocationID: r.LocationID,
			Product:    r.ProductName,
			Location:   r.LocationName,
			Qty:        r.Qty,
		})
	}
	return &dto.BalanceResponse{Items: items}, nil
}

// nameIndexes carga los nombres visibles con lookups explícitos (nada de
// asociaciones perezosas): dos lecturas completas, suficiente a esta escala.
func (uc *BalanceUseCase) nameIndexes() (productNames, locationNames map[string]string, err error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, nil, err
	}
	locations, err := uc.locationRepo.List()
	if err != nil {
		return nil, nil, err
	}
	productNames = make(map[string]string, len(products))
	for _, p := range products {
		productNames[p.ID] = p.Name
	}
	locationNames = make(map[string]string, len(locations))
	for _, l := range locations {
		locationNames[l.ID] = l.Name
	}
	return productNames, locationNames, nil
}
