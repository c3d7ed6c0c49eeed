package db_utils

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

func New(dsn string) (*sql.DB, error) {
	dbConn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	return dbConn, nil
}

// ReadOnly runs fn in a read only transaction that is always
// rolled back
func ReadOnly(dbConn *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := dbConn.BeginTx(context.Background(), &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	return fn(tx)
}

// Transaction runs fn in a transaction that is committed when fn
// succeeds
func Transaction(dbConn *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := dbConn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}
	return nil
}
