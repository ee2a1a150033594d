package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/staffhub-dev/hrm-backend-go/internal/config"
	"github.com/staffhub-dev/hrm-backend-go/internal/fixtures"
	"github.com/staffhub-dev/hrm-backend-go/internal/pkg/database"
)

// seed applies the schema and provisions the bootstrap admin account and
// default departments. It is idempotent: rerunning it repairs a
// half-provisioned admin instead of creating duplicates. Credentials are
// taken from flags, falling back to environment variables; there are no
// built-in defaults.
func main() {
	schemaPath := flag.String("schema", "migrations/0001_init.sql", "DDL file to apply before seeding (empty to skip)")
	email := flag.String("email", os.Getenv("SEED_ADMIN_EMAIL"), "admin email (env SEED_ADMIN_EMAIL)")
	password := flag.String("password", os.Getenv("SEED_ADMIN_PASSWORD"), "admin password (env SEED_ADMIN_PASSWORD)")
	code := flag.String("employee-code", envOr("SEED_ADMIN_EMPLOYEE_CODE", "ADMIN001"), "admin employee code (env SEED_ADMIN_EMPLOYEE_CODE)")
	firstName := flag.String("first-name", os.Getenv("SEED_ADMIN_FIRST_NAME"), "admin first name (env SEED_ADMIN_FIRST_NAME)")
	lastName := flag.String("last-name", os.Getenv("SEED_ADMIN_LAST_NAME"), "admin last name (env SEED_ADMIN_LAST_NAME)")
	skipDepartments := flag.Bool("skip-departments", false, "do not seed default departments")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolConfig{
		MaxConns: int32(cfg.Database.MaxConns),
		MinConns: int32(cfg.Database.MinConns),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	if *schemaPath != "" {
		ddl, err := os.ReadFile(*schemaPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error reading schema file:", err)
			os.Exit(1)
		}
		if err := fixtures.ApplySchema(ctx, db, string(ddl)); err != nil {
			fmt.Fprintln(os.Stderr, "Applying schema failed:", err)
			os.Exit(1)
		}
		fmt.Println("Schema applied:", *schemaPath)
	}

	err = fixtures.SeedAdmin(ctx, db, fixtures.AdminSeed{
		Email:        *email,
		Password:     *password,
		EmployeeCode: *code,
		FirstName:    *firstName,
		LastName:     *lastName,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Seeding admin failed:", err)
		os.Exit(1)
	}
	fmt.Println("Admin account seeded:", *email)

	if !*skipDepartments {
		if err := fixtures.SeedDepartments(ctx, db); err != nil {
			fmt.Fprintln(os.Stderr, "Seeding departments failed:", err)
			os.Exit(1)
		}
		fmt.Println("Default departments seeded")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
