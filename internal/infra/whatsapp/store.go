package whatsapp

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	"go.mau.fi/whatsmeow/store"
	"go.mau.fi/whatsmeow/store/sqlstore"
	waLog "go.mau.fi/whatsmeow/util/log"
)

// Dialect maps a database/sql driver name to the whatsmeow store dialect.
func Dialect(driver string) string {
	switch driver {
	case "postgres", "pgx":
		return "postgres"
	default:
		return "sqlite3"
	}
}

// OpenDevice runs the session store migrations on db and returns the first
// stored device, or a fresh one when the session was never paired.
func OpenDevice(ctx context.Context, db *sql.DB, driver string, logger zerolog.Logger) (*store.Device, error) {
	container := sqlstore.NewWithDB(db, Dialect(driver), waLog.Zerolog(logger.With().Str("module", "Database").Logger()))
	if err := container.Upgrade(ctx); err != nil {
		return nil, fmt.Errorf("falha ao migrar store de sessão: %w", err)
	}

	device, err := container.GetFirstDevice(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter device: %w", err)
	}
	return device, nil
}
