package inventory

import "github.com/jhoicas/Bodega-api/internal/domain"

// ValidateMovement aplica las reglas estructurales de un movimiento candidato:
// cantidad positiva y al menos un extremo (origen o destino). Un movimiento
// de una ubicación hacia sí misma es estructuralmente válido aunque sea un
// no-op; se permite a propósito. La existencia de producto y ubicaciones la
// verifica el caso de uso contra los repositorios.
func ValidateMovement(qty int, fromLocation, toLocation string) error {
	if qty <= 0 {
		return domain.ErrInvalidQuantity
	}
	if fromLocation == "" && toLocation == "" {
		return domain.ErrMissingEndpoint
	}
	return nil
}
