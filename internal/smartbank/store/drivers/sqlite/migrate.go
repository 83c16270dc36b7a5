package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/aussiebroadwan/smartbank/internal/smartbank/store/drivers/sqlite/migrations"
	"github.com/aussiebroadwan/smartbank/internal/smartbank/store/drivers/sqlrepo"

	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
)

func applyMigrations(db *sql.DB) error {
	driver, err := sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	if err != nil {
		return fmt.Errorf("sqlite migration driver: %w", err)
	}
	return sqlrepo.Migrate(migrations.Migrations, "sqlite", driver)
}
