package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/inventory"
	"github.com/jhoicas/Bodega-api/internal/application/report"
)

// BalanceHandler maneja las consultas de saldos y el reporte CSV (protegido).
type BalanceHandler struct {
	balanceUC *inventory.BalanceUseCase
	exportUC  *report.ExportUseCase
}

// NewBalanceHandler construye el handler.
func NewBalanceHandler(balanceUC *inventory.BalanceUseCase, exportUC *report.ExportUseCase) *BalanceHandler {
	return &BalanceHandler{balanceUC: balanceUC, exportUC: exportUC}
}

// Balances godoc
// @Summary      Saldos por producto y ubicación (solo distintos de cero)
// @Tags         balances
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BalanceResponse
// @Router       /api/balances [get]
func (h *BalanceHandler) Balances(c *fiber.Ctx) error {
	out, err := h.balanceUC.ComputeBalances()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportCSV godoc
// @Summary      Descargar reporte CSV (matriz completa productos × ubicaciones)
// @Tags         balances
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string  "CSV con cabecera Product,Location,Balance"
// @Router       /api/reports/balance.csv [get]
func (h *BalanceHandler) ExportCSV(c *fiber.Ctx) error {
	data, err := h.exportUC.ExportBalanceCSV()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="balance.csv"`)
	return c.Send(data)
}
