package hedge

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Result summarizes the PNL distribution across simulation runs.
type Result struct {
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Sharpe float64 `json:"sharpe"`
}

// FlowSim simulates an electronic market making book. Client trades arrive as
// a Poisson stream and pay half the client spread, the book hedges in the
// inter-dealer market whenever the net position breaches the delta limit, and
// the open position earns or loses on each lognormal spot move.
type FlowSim struct {
	Vol          float64 `json:"vol"`
	Lambda       float64 `json:"lambda"`
	SpreadClient float64 `json:"spreadClient"`
	SpreadDealer float64 `json:"spreadDealer"`
	DeltaLimit   float64 `json:"deltaLimit"`
	TimeStep     float64 `json:"timeStep"`
	// FullHedge true hedges to zero position, false hedges back to the limit.
	FullHedge bool `json:"fullHedge"`
	Steps     int  `json:"steps"`
	Runs      int  `json:"runs"`
	// Seed 0 seeds from the wall clock. Run i uses Seed+i, so results are
	// reproducible for any fixed non-zero seed.
	Seed uint64 `json:"seed"`
}

// NewFlowSim returns a simulator with the toy desk setup: 10% annual vol over
// 260 trading days, one client trade per second, 1bp client and 2bp dealer
// spreads, a delta limit of 3 units and a time step of 0.1/lambda.
func NewFlowSim() *FlowSim {
	lambda := float64(60 * 60 * 24)
	return &FlowSim{
		Vol:          0.1 * math.Sqrt(1.0/260.0),
		Lambda:       lambda,
		SpreadClient: 1e-4,
		SpreadDealer: 2e-4,
		DeltaLimit:   3.0,
		TimeStep:     0.1 / lambda,
		FullHedge:    true,
		Steps:        500,
		Runs:         10000,
	}
}

// Run simulates all paths concurrently and reports the PNL statistics.
func (s *FlowSim) Run() Result {
	seed := s.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	type runPNL struct {
		i   int
		pnl float64
	}
	ch := make(chan runPNL, s.Runs)
	for i := 0; i < s.Runs; i++ {
		go func(i int) {
			ch <- runPNL{i, s.path(seed + uint64(i))}
		}(i)
	}
	// Collect back into run order so the summary stats do not depend on
	// goroutine scheduling.
	pnls := make([]float64, s.Runs)
	for i := 0; i < s.Runs; i++ {
		r := <-ch
		pnls[r.i] = r.pnl
	}

	res := Result{Mean: stat.Mean(pnls, nil), Std: stat.StdDev(pnls, nil)}
	if res.Std > 0 {
		res.Sharpe = res.Mean / res.Std
	}
	return res
}

// path walks one spot path. Per step: a client trade arrives with probability
// 1-exp(-lambda*dt) and moves the position one unit either way, the book
// hedges if the position is outside the delta limit, then the post-hedge
// position rides the spot move.
func (s *FlowSim) path(seed uint64) float64 {
	src := rand.NewSource(seed)
	norm := distuv.Normal{Mu: 0.0, Sigma: math.Sqrt(s.TimeStep), Src: src}
	unif := distuv.Uniform{Min: 0.0, Max: 1.0, Src: src}
	coin := distuv.Bernoulli{P: 0.5, Src: src}
	tradeProb := 1 - math.Exp(-s.Lambda*s.TimeStep)

	spot, pos, pnl := 1.0, 0.0, 0.0
	for step := 0; step < s.Steps; step++ {
		if unif.Rand() < tradeProb {
			pos += 2*coin.Rand() - 1
			pnl += s.SpreadClient * spot / 2
		}
		if s.FullHedge {
			if pos >= s.DeltaLimit || pos <= -s.DeltaLimit {
				pnl -= math.Abs(pos) * s.SpreadDealer * spot / 2
				pos = 0
			}
		} else {
			if pos > s.DeltaLimit {
				pnl -= (pos - s.DeltaLimit) * s.SpreadDealer * spot / 2
				pos = s.DeltaLimit
			} else if pos < -s.DeltaLimit {
				pnl -= (-s.DeltaLimit - pos) * s.SpreadDealer * spot / 2
				pos = -s.DeltaLimit
			}
		}
		dspot := s.Vol * spot * norm.Rand()
		pnl += pos * dspot
		spot += dspot
	}
	return pnl
}
