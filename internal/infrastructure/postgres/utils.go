package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation verifica si un error es una violación de constraint único
// (23505) y devuelve el nombre del constraint para distinguir colisión de PK
// (código corto repetido, se reintenta) de nombre duplicado (error de negocio).
func uniqueViolation(err error) (constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// isUniqueViolationOn reporta si err es un 23505 sobre un constraint con el
// sufijo dado (por convención: *_pkey o *_name_key).
func isUniqueViolationOn(err error, suffix string) bool {
	constraint, ok := uniqueViolation(err)
	return ok && strings.HasSuffix(constraint, suffix)
}
