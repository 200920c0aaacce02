package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ProductIDPrefix prefijo de los identificadores legibles de producto.
const ProductIDPrefix = "PI"

// NextProductID calcula el siguiente identificador de producto a partir de
// los existentes: toma el sufijo numérico máximo entre los que siguen el
// patrón PI<dígitos> y devuelve PI<max+1> con relleno a 3 dígitos (el ancho
// crece solo a partir de PI999 -> PI1000). IDs que no siguen el patrón
// (datos legados) se ignoran. Sin productos previos devuelve PI001.
//
// El escaneo no es atómico frente a creaciones concurrentes: el caso de uso
// que lo invoca debe serializar la asignación (ver ProductUseCase).
func NextProductID(existing []string) string {
	max := 0
	for _, id := range existing {
		suffix, ok := strings.CutPrefix(id, ProductIDPrefix)
		if !ok || suffix == "" {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil || n < 0 {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", ProductIDPrefix, max+1)
}

// NewShortID genera un código corto opaco para ubicaciones y movimientos:
// el primer segmento (8 caracteres) de un UUID v4. La probabilidad de
// colisión es despreciable para los volúmenes esperados; aun así el caller
// debe detectar la violación de unicidad y reintentar.
func NewShortID() string {
	return uuid.New().String()[:8]
}
