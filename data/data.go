package data

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	db "github.com/banachtech/fxsmile/db/sqlc"
	"github.com/banachtech/fxsmile/smile"
	"github.com/banachtech/fxsmile/spline"
)

// SpotRate fetches the live mid rate for a pair like EURUSD from polygon.io,
// falling back to the previous session close when the quote feed has no print.
func SpotRate(pair string) (float64, error) {
	if len(pair) != 6 {
		return 0, fmt.Errorf("malformed pair %v", pair)
	}

	url := fmt.Sprintf("https://api.polygon.io/v1/last_quote/currencies/%v/%v", pair[:3], pair[3:])
	last, err := getPolygon(url, PairQuote{})
	if err != nil {
		return 0, err
	}
	if strings.EqualFold(last.Status, "success") && last.Last.Bid > 0 && last.Last.Ask > 0 {
		return (last.Last.Bid + last.Last.Ask) / 2, nil
	}

	url = fmt.Sprintf("https://api.polygon.io/v2/aggs/ticker/C:%v/prev", pair)
	prev, err := getPolygon(url, PairAggs{})
	if err != nil {
		return 0, err
	}
	if prev.ResultsCount < 1 || len(prev.Results) == 0 {
		return 0, fmt.Errorf("no market data for %v", pair)
	}
	return prev.Results[0].Close, nil
}

// LatestQuotes reads the newest stored quote row for a pair as smile quotes.
func LatestQuotes(ctx context.Context, store db.Store, pair string) (smile.Quotes, error) {
	row, err := store.GetLatestQuote(ctx, pair)
	if err != nil {
		return smile.Quotes{}, err
	}
	return smile.Quotes{
		Spot: row.Spot,
		ATM:  row.Atm,
		RR25: row.Rr25,
		RR10: row.Rr10,
		BF25: row.Bf25,
		BF10: row.Bf10,
		Texp: row.Texp,
	}, nil
}

// BuildSmiles fits one curve per pair from the latest stored quotes. Pairs
// without stored quotes are skipped and reported.
func BuildSmiles(ctx context.Context, store db.Store, pairs []string, extrapFact float64) (map[string]*spline.Model, error) {
	smiles := make(map[string]*spline.Model, len(pairs))
	start := time.Now()
	bar := progressBar(len(pairs))
	for _, pair := range pairs {
		bar.Describe(fmt.Sprintf("Fitting %v\t", pair))
		q, err := LatestQuotes(ctx, store, pair)
		if err == sql.ErrNoRows {
			fmt.Printf("no quotes for %v, skipped\n", pair)
			bar.Add(1)
			continue
		}
		if err != nil {
			return nil, err
		}
		m, err := smile.Build(q, extrapFact)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", pair, err)
		}
		smiles[pair] = m
		bar.Add(1)
	}
	fmt.Printf("[%9.5fs] fitted %v smile curve(s)\n", time.Since(start).Seconds(), len(smiles))
	return smiles, nil
}
