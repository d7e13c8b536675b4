package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/duber-parra/minominapro/backend/internal/config"
	"github.com/duber-parra/minominapro/backend/internal/domain"
)

// PostgresStore implementa el almacén clave-valor sobre una sola tabla, para
// instalaciones que ya tienen Postgres y no quieren operar Redis.
type PostgresStore struct {
	cfg    *config.Config
	dbpool *sql.DB
}

func NewPostgresStore(cfg *config.Config, dbpool *sql.DB) *PostgresStore {
	return &PostgresStore{
		cfg:    cfg,
		dbpool: dbpool,
	}
}

// EnsureSchema crea la tabla si no existe; se llama una vez al arrancar.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS kv_entries (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`
	_, err := s.dbpool.ExecContext(ctx, query)
	return err
}

func (s *PostgresStore) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `SELECT value FROM kv_entries WHERE key = $1`

	var value string
	if err := s.dbpool.QueryRowContext(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNoValue
		}
		return "", err
	}
	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO kv_entries (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`
	_, err := s.dbpool.ExecContext(ctx, query, key, value)
	return err
}
