package fixtures

import (
	"context"
	"fmt"

	"github.com/staffhub-dev/hrm-backend-go/internal/pkg/database"
	"golang.org/x/crypto/bcrypt"
)

// AdminSeed parameterizes the bootstrap admin account. Credentials always
// come from the operator; nothing here carries a default password.
type AdminSeed struct {
	Email        string
	Password     string
	EmployeeCode string
	FirstName    string
	LastName     string
}

func (s AdminSeed) Validate() error {
	if s.Email == "" {
		return fmt.Errorf("admin email is required")
	}
	if s.Password == "" {
		return fmt.Errorf("admin password is required")
	}
	if s.EmployeeCode == "" {
		return fmt.Errorf("admin employee code is required")
	}
	return nil
}

// defaultDepartments are created once on an empty database. Names only;
// everything else is managed through the API afterwards.
var defaultDepartments = []string{
	"Human Resources",
	"Engineering",
	"Finance",
	"Operations",
}

// ApplySchema runs the DDL against the database. The statements are all
// IF NOT EXISTS, so applying an already current schema is a no-op. The whole
// script goes over the simple protocol in one call.
func ApplySchema(ctx context.Context, db *database.DB, ddl string) error {
	if _, err := db.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// SeedAdmin provisions (or repairs) the bootstrap admin: a superuser
// identity record plus a linked admin employee row. Running it twice is
// safe; both upserts converge on the same state, so a half-provisioned
// admin from an earlier failed run is fixed rather than duplicated.
func SeedAdmin(ctx context.Context, db *database.DB, seed AdminSeed) error {
	if err := seed.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	tx, err := db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var userID string
	err = tx.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, is_superuser)
		VALUES ($1, $2, TRUE)
		ON CONFLICT (email) DO UPDATE
		SET password_hash = EXCLUDED.password_hash,
		    is_superuser  = TRUE,
		    updated_at    = NOW()
		RETURNING id
	`, seed.Email, string(hash)).Scan(&userID)
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	firstName := seed.FirstName
	if firstName == "" {
		firstName = "System"
	}
	lastName := seed.LastName
	if lastName == "" {
		lastName = "Administrator"
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO employees (user_id, employee_code, first_name, last_name, email, role, is_admin, status)
		VALUES ($1, $2, $3, $4, $5, 'hr', TRUE, 'active')
		ON CONFLICT (email) DO UPDATE
		SET user_id    = EXCLUDED.user_id,
		    is_admin   = TRUE,
		    updated_at = NOW()
	`, userID, seed.EmployeeCode, firstName, lastName, seed.Email)
	if err != nil {
		return fmt.Errorf("failed to seed admin employee: %w", err)
	}

	return tx.Commit(ctx)
}

// SeedDepartments inserts the default departments, skipping any name that
// already exists.
func SeedDepartments(ctx context.Context, db *database.DB) error {
	for _, name := range defaultDepartments {
		_, err := db.Exec(ctx, `
			INSERT INTO departments (name)
			SELECT $1
			WHERE NOT EXISTS (SELECT 1 FROM departments WHERE name = $1)
		`, name)
		if err != nil {
			return fmt.Errorf("failed to seed department %q: %w", name, err)
		}
	}
	return nil
}
