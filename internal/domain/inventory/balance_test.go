package inventory_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/inventory"
)

func mov(productID, from, to string, qty int) *entity.Movement {
	return &entity.Movement{
		ID:           inventory.NewShortID(),
		Timestamp:    time.Now(),
		ProductID:    productID,
		FromLocation: from,
		ToLocation:   to,
		Qty:          qty,
	}
}

// Escenario completo: entrada externa, traslado interno y salida externa.
func TestAccumulate_EscenarioCompleto(t *testing.T) {
	movements := []*entity.Movement{
		mov("PI001", "", "wh", 10),    // entrada a bodega
		mov("PI001", "wh", "shop", 4), // traslado bodega -> tienda
		mov("PI001", "shop", "", 1),   // salida desde tienda
	}

	balances := inventory.Accumulate(movements)

	assert.Equal(t, 6, balances[inventory.PairKey{ProductID: "PI001", LocationID: "wh"}])
	assert.Equal(t, 3, balances[inventory.PairKey{ProductID: "PI001", LocationID: "shop"}])
}

// La suma es conmutativa: cualquier permutación de los mismos movimientos
// produce exactamente el mismo conjunto de saldos.
func TestAccumulate_IndependienteDelOrden(t *testing.T) {
	movements := []*entity.Movement{
		mov("PI001", "", "wh", 10),
		mov("PI001", "wh", "shop", 4),
		mov("PI001", "shop", "", 1),
		mov("PI002", "", "shop", 5),
		mov("PI002", "shop", "wh", 5),
		mov("PI001", "wh", "wh", 2), // auto-traslado: no-op legal
	}
	expected := inventory.Accumulate(movements)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]*entity.Movement, len(movements))
		copy(shuffled, movements)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, expected, inventory.Accumulate(shuffled))
	}
}

// Un movimiento de una ubicación hacia sí misma suma y resta lo mismo: saldo neto cero.
func TestAccumulate_AutoTrasladoEsNeutro(t *testing.T) {
	balances := inventory.Accumulate([]*entity.Movement{mov("PI001", "wh", "wh", 7)})
	assert.Equal(t, 0, balances[inventory.PairKey{ProductID: "PI001", LocationID: "wh"}])
}

// Salida sin entrada previa: el motor no lo prohíbe, reporta el negativo tal cual.
func TestAccumulate_SaldoNegativoPermitido(t *testing.T) {
	balances := inventory.Accumulate([]*entity.Movement{mov("PI001", "wh", "", 3)})
	assert.Equal(t, -3, balances[inventory.PairKey{ProductID: "PI001", LocationID: "wh"}])
}

// Los pares drenados a cero desaparecen de la vista de saldos.
func TestNonZeroRows_OmiteSaldosEnCero(t *testing.T) {
	movements := []*entity.Movement{
		mov("PI001", "", "wh", 5),
		mov("PI001", "wh", "", 5), // drena por completo
		mov("PI002", "", "wh", 2),
	}
	balances := inventory.Accumulate(movements)

	rows := inventory.NonZeroRows(balances,
		map[string]string{"PI001": "Tornillos", "PI002": "Tuercas"},
		map[string]string{"wh": "Bodega Central"},
	)

	require.Len(t, rows, 1)
	assert.Equal(t, "PI002", rows[0].ProductID)
	assert.Equal(t, "Tuercas", rows[0].ProductName)
	assert.Equal(t, "Bodega Central", rows[0].LocationName)
	assert.Equal(t, 2, rows[0].Qty)
}

// Las filas salen ordenadas por nombre de producto y luego de ubicación.
func TestNonZeroRows_OrdenadoPorNombres(t *testing.T) {
	movements := []*entity.Movement{
		mov("p2", "", "l1", 1),
		mov("p1", "", "l2", 1),
		mov("p1", "", "l1", 1),
	}
	rows := inventory.NonZeroRows(inventory.Accumulate(movements),
		map[string]string{"p1": "Alfa", "p2": "Beta"},
		map[string]string{"l1": "Norte", "l2": "Sur"},
	)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Alfa", "Alfa", "Beta"}, []string{rows[0].ProductName, rows[1].ProductName, rows[2].ProductName})
	assert.Equal(t, []string{"Norte", "Sur", "Norte"}, []string{rows[0].LocationName, rows[1].LocationName, rows[2].LocationName})
}

// IDs sin nombre conocido (datos huérfanos) se muestran tal cual, sin fallar.
func TestNonZeroRows_NombreDesconocidoUsaID(t *testing.T) {
	rows := inventory.NonZeroRows(
		inventory.Accumulate([]*entity.Movement{mov("px", "", "lx", 1)}),
		map[string]string{}, map[string]string{},
	)
	require.Len(t, rows, 1)
	assert.Equal(t, "px", rows[0].ProductName)
	assert.Equal(t, "lx", rows[0].LocationName)
}
