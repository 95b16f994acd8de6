package postgres

import (
	"errors"
	"regexp"

	"github.com/jackc/pgx/v5/pgconn"

	"salestrack/internal/core/apperror"
)

// PostgreSQL SQLSTATE codes handled at the store boundary.
const (
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
	codeNumericOutOfRange   = "22003"
)

// constraintFields maps constraint names from the migrations to API field names.
var constraintFields = map[string]string{
	"categories_display_name_key": "display_name",
	"articles_code_key":           "code",
	"articles_category_id_fkey":   "category",
	"sales_article_id_fkey":       "article",
	"sales_author_id_fkey":        "author",
	"users_email_key":             "email",
	"articles_cost_positive":      "manufacturing_cost",
	"sales_quantity_nonnegative":  "quantity",
	"sales_price_nonnegative":     "unit_selling_price",
}

// keyDetailRe extracts column and value from messages like
// "Key (code)=(ABC) already exists."
var keyDetailRe = regexp.MustCompile(`Key \(([^)]+)\)=\((.*)\)`)

// AsPgError extracts a *pgconn.PgError from the chain.
func AsPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// TranslateWriteError converts constraint violations raised by INSERT or UPDATE
// on entity into typed AppErrors. Other errors are returned unchanged.
func TranslateWriteError(err error, entity string) error {
	pgErr, ok := AsPgError(err)
	if !ok {
		return err
	}

	field, value := violationField(pgErr)

	switch pgErr.Code {
	case codeUniqueViolation:
		return apperror.NewDuplicate(entity, field, value).WithCause(err)
	case codeForeignKeyViolation:
		return apperror.NewInvalidReference(entity, field, value).WithCause(err)
	case codeCheckViolation, codeNotNullViolation:
		return apperror.NewFieldValidation(field, "value violates constraint "+pgErr.ConstraintName).WithCause(err)
	case codeNumericOutOfRange:
		return apperror.NewValidation("numeric value out of range").WithCause(err)
	}
	return err
}

// TranslateDeleteError converts a foreign key violation raised by DELETE into a
// PROTECTED_REFERENCE error. Other errors are returned unchanged.
func TranslateDeleteError(err error, entity string, entityID any) error {
	pgErr, ok := AsPgError(err)
	if !ok || pgErr.Code != codeForeignKeyViolation {
		return err
	}
	return apperror.NewProtectedReference(entity, entityID).
		WithDetail("constraint", pgErr.ConstraintName).
		WithCause(err)
}

func violationField(pgErr *pgconn.PgError) (field string, value any) {
	if m := keyDetailRe.FindStringSubmatch(pgErr.Detail); m != nil {
		field, value = m[1], m[2]
	}
	if mapped, ok := constraintFields[pgErr.ConstraintName]; ok {
		field = mapped
	}
	if field == "" {
		field = pgErr.ColumnName
	}
	return field, value
}
