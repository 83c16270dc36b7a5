package postgres

import (
	"database/sql"
	"fmt"

	"github.com/aussiebroadwan/smartbank/internal/smartbank/store/drivers/postgres/migrations"
	"github.com/aussiebroadwan/smartbank/internal/smartbank/store/drivers/sqlrepo"

	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
)

func applyMigrations(db *sql.DB) error {
	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		return fmt.Errorf("postgres migration driver: %w", err)
	}
	return sqlrepo.Migrate(migrations.Migrations, "pgx5", driver)
}
