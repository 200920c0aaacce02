package inventory

import (
	"sort"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// PairKey identifica un saldo: producto en una ubicación.
type PairKey struct {
	ProductID  string
	LocationID string
}

// BalanceRow es una fila del resumen de saldos con nombres resueltos.
type BalanceRow struct {
	ProductID    string
	LocationID   string
	ProductName  string
	LocationName string
	Qty          int
}

// Accumulate suma todos los movimientos y devuelve el saldo por par
// (producto, ubicación). La suma es conmutativa: el resultado no depende
// del orden de los movimientos. Recalcula desde cero en cada llamada;
// a la escala de este sistema no se necesita caché.
func Accumulate(movements []*entity.Movement) map[PairKey]int {
	balances := make(map[PairKey]int)
	for _, m := range movements {
		if m.ToLocation != "" {
			balances[PairKey{ProductID: m.ProductID, LocationID: m.ToLocation}] += m.Qty
		}
		if m.FromLocation != "" {
			balances[PairKey{ProductID: m.ProductID, LocationID: m.FromLocation}] -= m.Qty
		}
	}
	return balances
}

// NonZeroRows convierte el acumulado en filas visibles: descarta los saldos
// en cero (stock drenado por completo) y ordena por nombre de producto y
// luego nombre de ubicación (orden byte a byte). Si un ID no tiene nombre
// conocido se muestra el ID tal cual, igual que hace la vista de saldos
// con datos huérfanos.
func NonZeroRows(balances map[PairKey]int, productNames, locationNames map[string]string) []BalanceRow {
	rows := make([]BalanceRow, 0, len(balances))
	for key, qty := range balances {
		if qty == 0 {
			continue
		}
		rows = append(rows, BalanceRow{
			ProductID:    key.ProductID,
			LocationID:   key.LocationID,
			ProductName:  displayName(productNames, key.ProductID),
			LocationName: displayName(locationNames, key.LocationID),
			Qty:          qty,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ProductName != rows[j].ProductName {
			return rows[i].ProductName < rows[j].ProductName
		}
		return rows[i].LocationName < rows[j].LocationName
	})
	return rows
}

func displayName(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return id
}
