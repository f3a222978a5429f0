package smile

import (
	"math"

	"gonum.org/v1/gonum/optimize"
)

// Get transformed quote parameters. ATM is log-mapped so the optimizer works
// on the domain (-Inf, Inf); risk reversals and butterflies are unconstrained.
func (q Quotes) get() []float64 {
	return []float64{math.Log(q.ATM), q.RR25, q.RR10, q.BF25, q.BF10}
}

// Create quotes for the given transformed parameters. Spot and Texp are
// market observables, not fit parameters, and carry over unchanged.
func (q Quotes) set(p []float64) Quotes {
	q.ATM = math.Exp(p[0])
	q.RR25, q.RR10, q.BF25, q.BF10 = p[1], p[2], p[3], p[4]
	return q
}

// Fit calibrates the quote combinations to observed (strike, vol) points,
// starting from q. obs is an Nx2 slice with strikes in the first column and
// market vols in the second.
func Fit(q Quotes, extrapFact float64, obs [][2]float64) (Quotes, error) {
	par := q.get()
	problem := optimize.Problem{
		Func: func(par []float64) float64 {
			return mse(q, par, extrapFact, obs)
		},
	}
	res, err := optimize.Minimize(problem, par, nil, &optimize.NelderMead{})
	if err != nil {
		return q, err
	}
	return q.set(res.X), nil
}

// Compute MSE between curve vols and observed vols. Parameter sets whose
// curve cannot be built get a flat penalty so the optimizer backs away.
func mse(q Quotes, par []float64, extrapFact float64, obs [][2]float64) float64 {
	q = q.set(par)
	m, err := Build(q, extrapFact)
	if err != nil {
		return 1e10
	}
	loss := 0.0
	for i := range obs {
		v := m.Volatility(obs[i][0])
		loss += math.Pow(v-obs[i][1], 2)
	}
	return loss / float64(len(obs))
}
