package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain"
)

// respondError traduce un error de dominio a código HTTP + categoría de
// mensaje para la UI. Las fallas de almacenamiento se responden como
// INTERNAL sin filtrar detalles de SQL.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return reject(c, fiber.StatusBadRequest, "INVALID_QUANTITY", dto.CategoryDanger, err)
	case errors.Is(err, domain.ErrMissingEndpoint):
		return reject(c, fiber.StatusBadRequest, "MISSING_ENDPOINT", dto.CategoryDanger, err)
	case errors.Is(err, domain.ErrInvalidInput):
		return reject(c, fiber.StatusBadRequest, "VALIDATION", dto.CategoryDanger, err)
	case errors.Is(err, domain.ErrUnknownProduct):
		return reject(c, fiber.StatusNotFound, "UNKNOWN_PRODUCT", dto.CategoryDanger, err)
	case errors.Is(err, domain.ErrUnknownLocation):
		return reject(c, fiber.StatusNotFound, "UNKNOWN_LOCATION", dto.CategoryDanger, err)
	case errors.Is(err, domain.ErrNotFound):
		return reject(c, fiber.StatusNotFound, "NOT_FOUND", dto.CategoryWarning, err)
	case errors.Is(err, domain.ErrDuplicateName):
		return reject(c, fiber.StatusConflict, "DUPLICATE_NAME", dto.CategoryWarning, err)
	case errors.Is(err, domain.ErrDuplicate):
		// Colisión de ID que agotó los reintentos (o insert concurrente del
		// mismo PI<NNN> desde otro proceso): conflicto, no error interno.
		return reject(c, fiber.StatusConflict, "DUPLICATE", dto.CategoryWarning, err)
	case errors.Is(err, domain.ErrHasDependents):
		return reject(c, fiber.StatusConflict, "HAS_DEPENDENTS", dto.CategoryDanger, err)
	case errors.Is(err, domain.ErrUsernameTaken):
		return reject(c, fiber.StatusConflict, "USERNAME_TAKEN", dto.CategoryWarning, err)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return reject(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", dto.CategoryDanger, err)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:     "INTERNAL",
			Message:  "error interno",
			Category: dto.CategoryDanger,
		})
	}
}

func reject(c *fiber.Ctx, status int, code, category string, err error) error {
	return c.Status(status).JSON(dto.ErrorResponse{
		Code:     code,
		Message:  err.Error(),
		Category: category,
	})
}
