package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLatestQuote(t *testing.T) {
	store := NewStore(testDB)
	quote := insertQuotes(t)

	n := 5
	errs := make(chan error)
	results := make(chan Smilequote)

	// run n concurrent reads
	for i := 0; i < n; i++ {
		go func() {
			result, err := store.GetLatestQuote(context.Background(), quote.Pair)
			errs <- err
			results <- result
		}()
	}
	for i := 0; i < n; i++ {
		err := <-errs
		require.NoError(t, err)
		result := <-results
		require.NotEmpty(t, result)
		require.Equal(t, quote.Pair, result.Pair)

		date, err := store.GetLatestQuoteDate(context.Background(), quote.Pair)
		require.NoError(t, err)
		require.Equal(t, date, result.Date)
	}
}
