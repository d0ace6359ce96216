package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sealed-prefs/internal/logger"
)

// preferencesRepository is the SQL implementation of [Preferences]. Every
// row it touches carries its namespace.
type preferencesRepository struct {
	db      *DB
	queries preferenceQueries
	logger  *logger.Logger
}

// NewPreferencesRepository returns a [Preferences] over the "preferences"
// table of db, scoped to namespace.
func NewPreferencesRepository(db *DB, namespace string, logger *logger.Logger) (Preferences, error) {
	if namespace == "" {
		return nil, ErrEmptyNamespace
	}

	logger.Debug().Str("namespace", namespace).Msg("creating preferences repository")
	return &preferencesRepository{
		db:      db,
		queries: preferenceQueries{builder: db.builder, namespace: namespace},
		logger:  logger,
	}, nil
}

func (r *preferencesRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := r.queries.get(key)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		value string
		found bool
	)
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		scanErr := r.db.QueryRowContext(ctx, query, args...).Scan(&value)
		switch {
		case errors.Is(scanErr, sql.ErrNoRows):
			found = false
			return nil
		case scanErr != nil:
			return scanErr
		}
		found = true
		return nil
	})
	if err != nil {
		r.logger.Err(err).Str("func", "*preferencesRepository.Get").Str("pg_code", postgresError(err)).Msg("error reading preference")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, found, nil
}

func (r *preferencesRepository) Put(ctx context.Context, key, value string) error {
	query, args, err := r.queries.put(key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*preferencesRepository.Put", query, args)
}

func (r *preferencesRepository) Remove(ctx context.Context, key string) error {
	query, args, err := r.queries.remove(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*preferencesRepository.Remove", query, args)
}

func (r *preferencesRepository) Clear(ctx context.Context) error {
	query, args, err := r.queries.clear()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*preferencesRepository.Clear", query, args)
}

func (r *preferencesRepository) Keys(ctx context.Context) ([]string, error) {
	query, args, err := r.queries.keys()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var keys []string
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		keys = keys[:0]

		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var key string
			if err := rows.Scan(&key); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			keys = append(keys, key)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		r.logger.Err(err).Str("func", "*preferencesRepository.Keys").Msg("error listing preference keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return keys, nil
}

func (r *preferencesRepository) exec(ctx context.Context, funcName, query string, args []any) error {
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		r.logger.Err(err).Str("func", funcName).Str("pg_code", postgresError(err)).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
