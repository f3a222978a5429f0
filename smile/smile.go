// Package smile turns FX option market quotes into strike-vol anchors and
// fits a cubic spline volatility curve through them.
package smile

import (
	"math"

	"github.com/banachtech/fxsmile/spline"
	"gonum.org/v1/gonum/stat/distuv"
)

var stdNormal = distuv.Normal{Mu: 0.0, Sigma: 1.0}

// Quotes is one day of market quotes for a currency pair, in the usual FX
// convention: at-the-money vol plus 25 and 10 delta risk reversals and
// butterflies, all annualized.
type Quotes struct {
	Spot float64 `json:"spot"`
	ATM  float64 `json:"atm"`
	RR25 float64 `json:"rr25"`
	RR10 float64 `json:"rr10"`
	BF25 float64 `json:"bf25"`
	BF10 float64 `json:"bf10"`
	Texp float64 `json:"texp"`
}

// Vols recovers the five pillar vols from the quoted combinations, ordered
// 10-delta put, 25-delta put, at-the-money, 25-delta call, 10-delta call.
func (q Quotes) Vols() [5]float64 {
	return [5]float64{
		q.ATM - 0.5*q.RR10 + q.BF10,
		q.ATM - 0.5*q.RR25 + q.BF25,
		q.ATM,
		q.ATM + 0.5*q.RR25 + q.BF25,
		q.ATM + 0.5*q.RR10 + q.BF10,
	}
}

// Strikes converts the pillar deltas to strikes under the lognormal spot
// convention, each pillar at its own vol. Put strikes land below spot and
// call strikes above, so the result is increasing for any sane market.
func (q Quotes) Strikes() [5]float64 {
	v := q.Vols()
	st := math.Sqrt(q.Texp)
	z25 := stdNormal.Quantile(0.25)
	z10 := stdNormal.Quantile(0.10)
	return [5]float64{
		q.Spot * math.Exp(0.5*v[0]*v[0]*q.Texp+v[0]*st*z10),
		q.Spot * math.Exp(0.5*v[1]*v[1]*q.Texp+v[1]*st*z25),
		q.Spot * math.Exp(0.5*q.ATM*q.ATM*q.Texp),
		q.Spot * math.Exp(0.5*v[3]*v[3]*q.Texp-v[3]*st*z25),
		q.Spot * math.Exp(0.5*v[4]*v[4]*q.Texp-v[4]*st*z10),
	}
}

// Anchors pairs the pillar strikes with their vols in increasing strike order.
func (q Quotes) Anchors() []spline.Anchor {
	ks, vs := q.Strikes(), q.Vols()
	anchors := make([]spline.Anchor, len(ks))
	for i := range ks {
		anchors[i] = spline.Anchor{Strike: ks[i], Vol: vs[i]}
	}
	return anchors
}

// Build fits the spline curve implied by the quotes.
func Build(q Quotes, extrapFact float64) (*spline.Model, error) {
	return spline.New(q.Anchors(), extrapFact, q.Texp)
}
