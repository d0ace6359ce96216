package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sealed-prefs/internal/config"
	"github.com/MKhiriev/go-sealed-prefs/internal/logger"
)

// Storage owns the backing store selected by configuration.
type Storage struct {
	Preferences Preferences
	db          *DB
}

// NewStorage connects to the configured driver, migrates its schema and
// returns the namespaced [Preferences].
func NewStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storage, error) {
	if cfg.Driver == config.DriverMemory {
		return &Storage{Preferences: NewMemoryPreferences()}, nil
	}

	var (
		db  *DB
		err error
	)
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorage").Msg("error migrating database")
		_ = db.Close()
		return nil, err
	}

	prefs, err := NewPreferencesRepository(db, cfg.Namespace, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storage{Preferences: prefs, db: db}, nil
}

// Close releases the database connection, if any.
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
