package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	domaininv "github.com/jhoicas/Bodega-api/internal/domain/inventory"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// ExportUseCase genera el reporte de saldos en CSV.
//
// A diferencia de la vista de saldos (que omite ceros), el reporte es la
// matriz completa productos × ubicaciones con 0 en los pares sin historial:
// útil para detectar combinaciones sin stock.
type ExportUseCase struct {
	movementRepo repository.MovementRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	movementRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) *ExportUseCase {
	return &ExportUseCase{
		movementRepo: movementRepo,
		productRepo:  productRepo,
		locationRepo: locationRepo,
	}
}

// ExportBalanceCSV devuelve el CSV con cabecera Product,Location,Balance y
// una fila por cada par (producto, ubicación), agrupado por producto y luego
// ubicación en el orden de los listados (por nombre). Determinista.
func (uc *ExportUseCase) ExportBalanceCSV() ([]byte, error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	locations, err := uc.locationRepo.List()
	if err != nil {
		return nil, err
	}

	balances := domaininv.Accumulate(movements)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Product", "Location", "Balance"}); err != nil {
		return nil, fmt.Errorf("escribir cabecera CSV: %w", err)
	}
	for _, p := range products {
		for _, l := range locations {
			qty := balances[domaininv.PairKey{ProductID: p.ID, LocationID: l.ID}]
			if err := w.Write([]string{p.Name, l.Name, strconv.Itoa(qty)}); err != nil {
				return nil, fmt.Errorf("escribir fila CSV: %w", err)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("volcar CSV: %w", err)
	}
	return buf.Bytes(), nil
}
