package data

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	db "github.com/banachtech/fxsmile/db/sqlc"
	"github.com/banachtech/fxsmile/util"
)

// Roll re-marks the stored smiles at the live market. For each pair the
// newest quote row is read back, the spot is refreshed from polygon.io and a
// row for today is written with the vol quotes carried over. Pairs without
// stored quotes are skipped and reported.
func Roll(ctx context.Context, store db.Store, pairs []string) ([]db.Smilequote, error) {
	today := time.Now().Format(util.Layout)
	rolled := make([]db.Smilequote, 0, len(pairs))
	start := time.Now()
	bar := progressBar(len(pairs))
	for _, pair := range pairs {
		bar.Describe(fmt.Sprintf("Rolling %v\t", pair))
		row, err := store.GetLatestQuote(ctx, pair)
		if err == sql.ErrNoRows {
			fmt.Printf("no quotes for %v, skipped\n", pair)
			bar.Add(1)
			continue
		}
		if err != nil {
			return nil, err
		}

		spot, err := SpotRate(pair)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", pair, err)
		}

		row, err = store.InsertQuote(ctx, db.InsertQuoteParams{
			Date: today,
			Pair: pair,
			Spot: spot,
			Atm:  row.Atm,
			Rr25: row.Rr25,
			Rr10: row.Rr10,
			Bf25: row.Bf25,
			Bf10: row.Bf10,
			Texp: row.Texp,
		})
		if err != nil {
			return nil, err
		}
		rolled = append(rolled, row)
		bar.Add(1)
	}
	fmt.Printf("[%9.5fs] rolled %v quote(s) to %v\n", time.Since(start).Seconds(), len(rolled), today)
	return rolled, nil
}
