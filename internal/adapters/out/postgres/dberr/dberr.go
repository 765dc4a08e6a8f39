// Package dberr classifies PostgreSQL failures into the error taxonomy of package errs.
//
// Repositories pass every write error through Translate so that handlers can tell a
// duplicate service name or a still referenced service from an unreachable database.
package dberr

import (
	"errors"
	"fmt"

	"laundry/internal/pkg/errs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Translate returns a ConstraintViolationError for integrity violations reported by the
// server, an invalid-value error for numbers the columns cannot hold, and err unchanged
// otherwise. entity names the table owner in the message.
//
// Example:
//
//	if err := tx.Create(&dto).Error; err != nil {
//	    return dberr.Translate("service", err) // "constraint violation: service name already exists"
//	}
func Translate(entity string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return errs.NewConstraintViolationErrorWithCause(entity, describeUnique(pgErr), err)
	case pgerrcode.ForeignKeyViolation:
		return errs.NewConstraintViolationErrorWithCause(entity, describeForeignKey(entity, pgErr), err)
	case pgerrcode.NotNullViolation:
		return errs.NewConstraintViolationErrorWithCause(entity, fmt.Sprintf("%s is required", pgErr.ColumnName), err)
	case pgerrcode.CheckViolation:
		return errs.NewConstraintViolationErrorWithCause(entity, fmt.Sprintf("check %s failed", pgErr.ConstraintName), err)
	case pgerrcode.NumericValueOutOfRange:
		return errs.NewValueIsInvalidErrorWithCause(entity, err)
	default:
		return err
	}
}

func describeUnique(pgErr *pgconn.PgError) string {
	if column, ok := uniqueColumns[pgErr.ConstraintName]; ok {
		return column + " already exists"
	}
	return fmt.Sprintf("unique constraint %s", pgErr.ConstraintName)
}

// The server names the referencing table in both directions, so the writing entity
// decides: a parent being deleted is still referenced, a child being written points nowhere.
func describeForeignKey(entity string, pgErr *pgconn.PgError) string {
	fk, ok := foreignKeys[pgErr.ConstraintName]
	if !ok {
		return fmt.Sprintf("foreign key %s on %s", pgErr.ConstraintName, pgErr.TableName)
	}
	if entity == fk.parent {
		return "is still referenced by " + fk.child
	}
	return fk.parent + " does not exist"
}

var uniqueColumns = map[string]string{
	"idx_services_name": "name",
}

type foreignKey struct {
	child  string
	parent string
}

var foreignKeys = map[string]foreignKey{
	"fk_orders_customer": {child: "orders", parent: "customer"},
	"fk_orders_service":  {child: "orders", parent: "service"},
	"fk_orders_history":  {child: "order_status_history", parent: "order"},
}
