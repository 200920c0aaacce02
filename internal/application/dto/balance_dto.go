package dto

// BalanceRow fila del resumen de saldos (solo pares con saldo distinto de cero).
type BalanceRow struct {
	ProductID  string `json:"product_id"`
	LocationID string `json:"location_id"`
	Product    string `json:"product"`
	Location   string `json:"location"`
	Qty        int    `json:"qty"`
}

// BalanceResponse resumen de saldos ordenado por producto y ubicación.
type BalanceResponse struct {
	Items []BalanceRow `json:"items"`
}
