package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/schartrand77/stockworks/internal/domain"
)

// Códigos SQLSTATE relevantes.
const (
	codeForeignKeyViolation  = "23503"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// translateError mapea errores de PostgreSQL a errores de dominio: fallos de
// serialización/deadlock son transitorios (el caller puede reintentar) y las
// violaciones de FK son conflictos de integridad referencial.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected:
			return fmt.Errorf("%w: %s", domain.ErrTransient, pgErr.Message)
		case codeForeignKeyViolation:
			return fmt.Errorf("%w: %s", domain.ErrEntityInUse, pgErr.Message)
		}
	}
	return err
}
