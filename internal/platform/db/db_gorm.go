// Package db opens the application database used for durable key/value
// state. Postgres is used when DATABASE_URL is set; otherwise a local
// SQLite file keeps the dashboard usable without a database server.
package db

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	stateadapters "finboard/internal/feature/appstate/adapters"
)

// SQLitePath resolves the SQLite file used when no DATABASE_URL is set.
func SQLitePath() string {
	if path := os.Getenv("APP_DB_PATH"); path != "" {
		return path
	}
	return "finboard.db"
}

// Open opens the state database and ensures the app_state table exists.
// A nil DB with an error signals "run without a store"; callers degrade
// rather than abort.
func Open() (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		deadline := time.Now().Add(60 * time.Second)
		for {
			db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
			if err == nil {
				break
			}
			if time.Now().After(deadline) {
				return nil, fmt.Errorf("postgres connect failed after 60s: %w", err)
			}
			slog.Warn("postgres connect failed, retrying", "error", err)
			time.Sleep(3 * time.Second)
		}
	} else {
		db, err = gorm.Open(gsqlite.Open(SQLitePath()), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("sqlite open failed: %w", err)
		}
	}

	if err := db.AutoMigrate(&stateadapters.AppStateModel{}); err != nil {
		return nil, fmt.Errorf("migrate app_state: %w", err)
	}

	return db, nil
}
