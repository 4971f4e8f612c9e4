package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/config"
)

// Storage owns the database handle. Reads go through Reader on the
// autocommit executor; writes go through a transactional Writer obtained
// from Write.
type Storage struct {
	DB     *sql.DB
	bobDB  bob.DB
	Reader *Reader
}

// NewStorage opens the Postgres connection described by the config.
func NewStorage(env *config.Config) (*Storage, error) {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	bobDB := bob.NewDB(db)
	return &Storage{
		DB:     db,
		bobDB:  bobDB,
		Reader: NewReader(bobDB),
	}, nil
}

// Write begins a transaction and returns a Writer scoped to it.
func (s *Storage) Write(ctx context.Context) (Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return Writer{}, err
	}
	return NewWriter(tx), nil
}
