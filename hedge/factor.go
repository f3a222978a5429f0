package hedge

import (
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distmv"
)

// Strategy selects how the benchmark hedge notionals are set.
type Strategy int

const (
	// NoHedge leaves the forward position unhedged.
	NoHedge Strategy = iota
	// TriangleHedge splits the position across the benchmarks by linear
	// interpolation in tenor, flat outside [T1, T2].
	TriangleHedge
	// FactorHedge sets notionals so the portfolio is immune to both factor
	// shocks of the rate curve.
	FactorHedge
)

func (s Strategy) String() string {
	switch s {
	case NoHedge:
		return "none"
	case TriangleHedge:
		return "triangle"
	case FactorHedge:
		return "factor"
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// FactorSim measures how well two benchmark forwards hedge a single forward
// position when the asset currency rate curve moves under a two factor model,
//
//	dQ(T) = Sigma1 exp(-Beta1 T) dz1 + Sigma2 exp(-Beta2 T) dz2
//
// with correlated brownians. Each run shocks the curve over one step of
// length Dt and records the portfolio PNL.
type FactorSim struct {
	Spot     float64  `json:"spot"`
	Q        float64  `json:"q"`
	R        float64  `json:"r"`
	Sigma1   float64  `json:"sigma1"`
	Sigma2   float64  `json:"sigma2"`
	Beta1    float64  `json:"beta1"`
	Beta2    float64  `json:"beta2"`
	Rho      float64  `json:"rho"`
	T1       float64  `json:"t1"`
	T2       float64  `json:"t2"`
	Dt       float64  `json:"dt"`
	Tenor    float64  `json:"tenor"`
	Strategy Strategy `json:"strategy"`
	Runs     int      `json:"runs"`
	Seed     uint64   `json:"seed"`
}

// NewFactorSim returns a simulator for the toy market: spot 1, asset rate
// flat at 3%, factor vols 1% and 0.8% with mean reversions 0.5 and 0.1,
// correlation -0.4, benchmarks at 0.25y and 1y.
func NewFactorSim() *FactorSim {
	return &FactorSim{
		Spot:     1.0,
		Q:        0.03,
		R:        0.0,
		Sigma1:   0.01,
		Sigma2:   0.008,
		Beta1:    0.5,
		Beta2:    0.1,
		Rho:      -0.4,
		T1:       0.25,
		T2:       1.0,
		Dt:       1e-3,
		Tenor:    0.1,
		Strategy: NoHedge,
		Runs:     100000,
	}
}

// dQTdQ1 is the sensitivity of Q(Tenor) to a unit move in the T1 benchmark
// with the T2 benchmark held fixed, under the factor model.
func (s *FactorSim) dQTdQ1() float64 {
	d := 1 - math.Exp((s.Beta1-s.Beta2)*(s.T2-s.T1))
	z1 := -1 / s.Sigma1 * math.Exp(s.Beta1*s.T2-s.Beta2*(s.T2-s.T1)) / d
	z2 := 1 / s.Sigma2 * math.Exp(s.Beta2*s.T1) / d
	return s.Sigma1*math.Exp(-s.Beta1*s.Tenor)*z1 + s.Sigma2*math.Exp(-s.Beta2*s.Tenor)*z2
}

// dQTdQ2 is the matching sensitivity to the T2 benchmark.
func (s *FactorSim) dQTdQ2() float64 {
	d := 1 - math.Exp((s.Beta2-s.Beta1)*(s.T2-s.T1))
	z1 := -1 / s.Sigma1 * math.Exp(s.Beta1*s.T1+s.Beta2*(s.T2-s.T1)) / d
	z2 := 1 / s.Sigma2 * math.Exp(s.Beta2*s.T2) / d
	return s.Sigma1*math.Exp(-s.Beta1*s.Tenor)*z1 + s.Sigma2*math.Exp(-s.Beta2*s.Tenor)*z2
}

// Notionals computes the asset currency notionals of the two benchmark
// forwards under the configured strategy.
func (s *FactorSim) Notionals() (float64, float64, error) {
	switch s.Strategy {
	case NoHedge:
		return 0, 0, nil
	case TriangleHedge:
		var n1, n2 float64
		switch {
		case s.Tenor <= s.T1:
			n1 = s.Tenor / s.T1 * math.Exp(-s.Q*(s.Tenor-s.T1))
		case s.Tenor >= s.T2:
			n2 = s.Tenor / s.T2 * math.Exp(-s.Q*(s.Tenor-s.T2))
		default:
			n1 = (s.T2 - s.Tenor) / (s.T2 - s.T1) * s.Tenor / s.T1 * math.Exp(-s.Q*(s.Tenor-s.T1))
			n2 = (s.Tenor - s.T1) / (s.T2 - s.T1) * s.Tenor / s.T2 * math.Exp(s.Q*(s.T2-s.Tenor))
		}
		return n1, n2, nil
	case FactorHedge:
		n1 := s.dQTdQ1() * s.Tenor / s.T1 * math.Exp(-s.Q*(s.Tenor-s.T1))
		n2 := s.dQTdQ2() * s.Tenor / s.T2 * math.Exp(s.Q*(s.T2-s.Tenor))
		return n1, n2, nil
	}
	return 0, 0, fmt.Errorf("unknown hedging strategy %d", int(s.Strategy))
}

// Run draws correlated factor shocks, revalues the portfolio and hedges after
// one time step, and reports the PNL statistics.
func (s *FactorSim) Run() (Result, error) {
	n1, n2, err := s.Notionals()
	if err != nil {
		return Result{}, err
	}

	seed := s.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	cov := mat.NewSymDense(2, []float64{s.Dt, s.Rho * s.Dt, s.Rho * s.Dt, s.Dt})
	dist, ok := distmv.NewNormal([]float64{0, 0}, cov, rand.NewSource(seed))
	if !ok {
		return Result{}, errors.New("failed generate distribution")
	}

	wT1, wT2 := s.Sigma1*math.Exp(-s.Beta1*s.Tenor), s.Sigma2*math.Exp(-s.Beta2*s.Tenor)
	w11, w12 := s.Sigma1*math.Exp(-s.Beta1*s.T1), s.Sigma2*math.Exp(-s.Beta2*s.T1)
	w21, w22 := s.Sigma1*math.Exp(-s.Beta1*s.T2), s.Sigma2*math.Exp(-s.Beta2*s.T2)

	pnls := make([]float64, s.Runs)
	z := make([]float64, 2)
	for i := range pnls {
		z = dist.Rand(z)
		dqT := wT1*z[0] + wT2*z[1]
		dq1 := w11*z[0] + w12*z[1]
		dq2 := w21*z[0] + w22*z[1]

		pnl := s.Spot * (math.Exp(-(s.Q+dqT)*s.Tenor) - math.Exp(-s.Q*s.Tenor))
		pnl -= n1 * s.Spot * (math.Exp(-(s.Q+dq1)*s.T1) - math.Exp(-s.Q*s.T1))
		pnl -= n2 * s.Spot * (math.Exp(-(s.Q+dq2)*s.T2) - math.Exp(-s.Q*s.T2))
		pnls[i] = pnl
	}

	res := Result{Mean: stat.Mean(pnls, nil), Std: stat.StdDev(pnls, nil)}
	if res.Std > 0 {
		res.Sharpe = res.Mean / res.Std
	}
	return res, nil
}
