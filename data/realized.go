package data

import (
	"fmt"
	"math"
	"time"

	"github.com/banachtech/fxsmile/util"
	"gonum.org/v1/gonum/stat"
)

// 260 trading days per year, weekends carry no vol in fx
const tradingDays = 260.0

// RealizedVol estimates the annualized vol of a pair from daily closes over
// the past days calendar days, from polygon.io ranged aggregates. Useful as a
// sanity check against the quoted ATM vol.
func RealizedVol(pair string, days int) (float64, error) {
	if len(pair) != 6 {
		return 0, fmt.Errorf("malformed pair %v", pair)
	}
	if days < 3 {
		return 0, fmt.Errorf("need at least 3 days of closes, got %v", days)
	}

	end := time.Now()
	start := end.AddDate(0, 0, -days)
	url := fmt.Sprintf("https://api.polygon.io/v2/aggs/ticker/C:%v/range/1/day/%v/%v?sort=asc&limit=5000",
		pair, start.Format(util.Layout), end.Format(util.Layout))
	aggs, err := getPolygon(url, PairAggs{})
	if err != nil {
		return 0, err
	}
	if aggs.ResultsCount < 3 || len(aggs.Results) < 3 {
		return 0, fmt.Errorf("not enough market data for %v", pair)
	}

	closes := make([]float64, len(aggs.Results))
	for i, r := range aggs.Results {
		closes[i] = r.Close
	}
	return realizedVol(closes), nil
}

// realizedVol is the annualized sample standard deviation of daily log
// returns of the close series.
func realizedVol(closes []float64) float64 {
	rets := make([]float64, len(closes)-1)
	for i := range rets {
		rets[i] = math.Log(closes[i+1] / closes[i])
	}
	return stat.StdDev(rets, nil) * math.Sqrt(tradingDays)
}
