package db

import (
	"context"
	"database/sql"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Connect opens the database configured by DB_DRIVER and DB_SOURCE. A .env
// file is loaded first when present, so local runs and deployments share the
// same settings.
func Connect() (*sql.DB, error) {
	godotenv.Load()
	conn, err := sql.Open(os.Getenv("DB_DRIVER"), os.Getenv("DB_SOURCE"))
	if err != nil {
		return nil, err
	}
	if err = conn.Ping(); err != nil {
		return nil, err
	}
	return conn, nil
}

// GetLatestQuote returns the newest quote row for a pair, resolving the
// latest date and reading the row within one transaction.
func (store *SQLStore) GetLatestQuote(ctx context.Context, pair string) (Smilequote, error) {
	var quote Smilequote
	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		date, err := q.GetLatestQuoteDate(ctx, pair)
		if err != nil {
			return err
		}

		quote, err = q.GetQuote(ctx, GetQuoteParams{Pair: pair, Date: date})
		if err != nil {
			return err
		}

		return err
	})
	return quote, err
}
