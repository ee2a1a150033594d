package postgresql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestErrorCodeHelpers(t *testing.T) {
	unique := &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "employees_email_key"}
	fk := &pgconn.PgError{Code: codeForeignKeyViolation}
	badUUID := &pgconn.PgError{Code: codeInvalidTextRepresentation}

	assert.True(t, isUniqueViolation(unique))
	assert.True(t, isForeignKeyViolation(fk))
	assert.True(t, isInvalidTextRepresentation(badUUID))

	// Wrapped errors are still recognized.
	assert.True(t, isInvalidTextRepresentation(fmt.Errorf("scan: %w", badUUID)))

	assert.False(t, isInvalidTextRepresentation(unique))
	assert.False(t, isUniqueViolation(fk))
	assert.False(t, isInvalidTextRepresentation(errors.New("connection refused")))

	assert.Equal(t, "employees_email_key", constraintName(unique))
	assert.Equal(t, "", constraintName(errors.New("nope")))
}
