package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresProvider implements DatabaseProvider over a single key-value table,
// for deployments that already run Postgres.
type PostgresProvider struct {
	db *sql.DB
}

const pgSchema = `CREATE TABLE IF NOT EXISTS sentinel_kv (
	key   BYTEA PRIMARY KEY,
	value BYTEA NOT NULL
)`

// NewPostgresProvider connects to Postgres and ensures the kv table exists
func NewPostgresProvider(dsn string) (DatabaseProvider, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open Postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}
	if _, err := db.Exec(pgSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}

	return &PostgresProvider{db: db}, nil
}

func (p *PostgresProvider) Get(key []byte) ([]byte, error) {
	var value []byte
	err := p.db.QueryRow(`SELECT value FROM sentinel_kv WHERE key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (p *PostgresProvider) Put(key, value []byte) error {
	_, err := p.db.Exec(
		`INSERT INTO sentinel_kv (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value,
	)
	return err
}

func (p *PostgresProvider) Delete(key []byte) error {
	_, err := p.db.Exec(`DELETE FROM sentinel_kv WHERE key = $1`, key)
	return err
}

func (p *PostgresProvider) Has(key []byte) (bool, error) {
	var exists bool
	err := p.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM sentinel_kv WHERE key = $1)`, key).Scan(&exists)
	return exists, err
}

func (p *PostgresProvider) Close() error {
	return p.db.Close()
}

func (p *PostgresProvider) Batch() DatabaseBatch {
	return &PostgresBatch{provider: p}
}

type pgBatchOp struct {
	key    []byte
	value  []byte
	delete bool
}

// PostgresBatch implements DatabaseBatch inside one SQL transaction
type PostgresBatch struct {
	provider *PostgresProvider
	ops      []pgBatchOp
}

func (b *PostgresBatch) Put(key, value []byte) {
	b.ops = append(b.ops, pgBatchOp{
		key:   append([]byte(nil), key...),
		value: append([]byte(nil), value...),
	})
}

func (b *PostgresBatch) Delete(key []byte) {
	b.ops = append(b.ops, pgBatchOp{key: append([]byte(nil), key...), delete: true})
}

func (b *PostgresBatch) Write() error {
	tx, err := b.provider.db.Begin()
	if err != nil {
		return err
	}
	for _, op := range b.ops {
		if op.delete {
			_, err = tx.Exec(`DELETE FROM sentinel_kv WHERE key = $1`, op.key)
		} else {
			_, err = tx.Exec(
				`INSERT INTO sentinel_kv (key, value) VALUES ($1, $2)
				 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
				op.key, op.value,
			)
		}
		if err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (b *PostgresBatch) Reset() {
	b.ops = b.ops[:0]
}

func (b *PostgresBatch) Close() {
	b.ops = nil
}
