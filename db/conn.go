// Package db opens the database and migrates the schema
package db

import (
	"barkwise/pet-api/internal/model"
	"errors"
	"fmt"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// New opens a connection with the given driver and DSN and migrates every
// model. An empty SQLite DSN means database.db in the working directory.
func New(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch driver {
	case DriverSQLite, "":
		if dsn == "" {
			dsn = "database.db"
		}

		// If running in a docker container don't allow the sqlite file to be created.
		// The host should instead mount it using volumes
		if inDocker() && dsn == "database.db" {
			if _, err := os.Stat(dsn); errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("SQLite database file not mounted, please use docker volumes to mount it to /app/database.db")
			}
		}

		// Foreign keys are off by default in SQLite
		dialector = sqlite.Open(dsn + pragma(dsn))
	case DriverPostgres:
		if dsn == "" {
			return nil, errors.New("postgres requires a dsn")
		}

		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database, %w", driver, err)
	}

	if err := db.AutoMigrate(model.All()...); err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}

func pragma(dsn string) string {
	if strings.Contains(dsn, "?") {
		return "&_foreign_keys=on"
	}

	return "?_foreign_keys=on"
}

func inDocker() bool {
	_, err := os.Stat("/.dockerenv")
	return err == nil
}
