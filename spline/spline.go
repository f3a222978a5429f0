package spline

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrInvalidInput is returned by New for malformed anchors or parameters.
	ErrInvalidInput = errors.New("invalid smile input")
	// ErrSingular is returned by New when the constraint system cannot be solved.
	ErrSingular = errors.New("singular spline system")
)

const (
	nAnchors  = 5
	nKnots    = 7
	nSegments = 6
	nParams   = 4 * nSegments
)

// Anchor is one (strike, vol) point the fitted curve must pass through.
type Anchor struct {
	Strike float64 `json:"strike"`
	Vol    float64 `json:"vol"`
}

// Model is a piecewise cubic volatility curve over seven knots: the five
// anchor strikes plus two synthetic outer knots where the curve turns flat.
// A Model is immutable once built and safe for concurrent evaluation.
type Model struct {
	knots  [nKnots]float64
	coeffs [nParams]float64
}

// New fits a cubic spline through exactly five (strike, vol) anchors with flat
// extrapolation. The outer knots sit extrapFact standard deviations beyond the
// outside strikes, scaled by that side's vol and sqrt of time to expiration,
// and the curve is forced to zero slope and curvature there so extrapolated
// vols saturate instead of blowing up.
func New(anchors []Anchor, extrapFact, texp float64) (*Model, error) {
	if err := validate(anchors, extrapFact, texp); err != nil {
		return nil, err
	}

	var m Model
	m.knots[0], m.knots[nKnots-1] = boundaries(anchors, extrapFact, texp)
	for i, a := range anchors {
		m.knots[i+1] = a.Strike
	}
	// Knots must stay strictly increasing. extrapFact or texp of zero collapses
	// an outer knot onto its neighbouring anchor and leaves segment 0 or 5
	// underdetermined, so reject before assembling the system.
	for i := 0; i+1 < nKnots; i++ {
		if !(m.knots[i] < m.knots[i+1]) {
			return nil, fmt.Errorf("%w: degenerate knot sequence at index %d", ErrInvalidInput, i)
		}
	}

	a, b := assemble(m.knots, anchors)
	var lu mat.LU
	lu.Factorize(a)
	var p mat.VecDense
	if err := lu.SolveVecTo(&p, false, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}
	for i := range m.coeffs {
		m.coeffs[i] = p.AtVec(i)
	}
	return &m, nil
}

func validate(anchors []Anchor, extrapFact, texp float64) error {
	if len(anchors) != nAnchors {
		return fmt.Errorf("%w: want %d anchors, got %d", ErrInvalidInput, nAnchors, len(anchors))
	}
	for i, a := range anchors {
		if !(a.Strike > 0) || !(a.Vol > 0) {
			return fmt.Errorf("%w: anchor %d must have positive strike and vol", ErrInvalidInput, i)
		}
		if i > 0 && !(a.Strike > anchors[i-1].Strike) {
			return fmt.Errorf("%w: strikes must be strictly increasing", ErrInvalidInput)
		}
	}
	if !(extrapFact >= 0) {
		return fmt.Errorf("%w: extrapolation factor must be non-negative", ErrInvalidInput)
	}
	if !(texp >= 0) {
		return fmt.Errorf("%w: time to expiration must be non-negative", ErrInvalidInput)
	}
	return nil
}

// boundaries places the synthetic outer knots extrapFact standard deviations
// beyond the outside strikes, each side scaled by its own vol.
func boundaries(anchors []Anchor, extrapFact, texp float64) (float64, float64) {
	w := extrapFact * math.Sqrt(texp)
	lo := anchors[0].Strike * math.Exp(-w*anchors[0].Vol)
	hi := anchors[nAnchors-1].Strike * math.Exp(w*anchors[nAnchors-1].Vol)
	return lo, hi
}

// assemble builds the 24x24 constraint system for the six cubic segments,
// unknowns (a_i, b_i, c_i, d_i) at offset 4i. Five rows pin the anchor values,
// fifteen rows tie value, slope and curvature across each interior knot, and
// the last four force zero slope and curvature at both outer knots.
func assemble(xs [nKnots]float64, anchors []Anchor) (*mat.Dense, *mat.VecDense) {
	var x2s, x3s [nKnots]float64
	for i, x := range xs {
		x2s[i], x3s[i] = x*x, x*x*x
	}

	a := mat.NewDense(nParams, nParams, nil)
	b := mat.NewVecDense(nParams, nil)

	for i := 0; i < nAnchors; i++ {
		x, x2, x3 := xs[i+1], x2s[i+1], x3s[i+1]
		l, r := 4*i, 4*(i+1)

		// anchor value, asserted on the right-adjoining segment
		a.Set(i, r, 1)
		a.Set(i, r+1, x)
		a.Set(i, r+2, x2)
		a.Set(i, r+3, x3)
		b.SetVec(i, anchors[i].Vol)

		// value continuity across the knot
		a.Set(i+5, l, 1)
		a.Set(i+5, l+1, x)
		a.Set(i+5, l+2, x2)
		a.Set(i+5, l+3, x3)
		a.Set(i+5, r, -1)
		a.Set(i+5, r+1, -x)
		a.Set(i+5, r+2, -x2)
		a.Set(i+5, r+3, -x3)

		// slope continuity
		a.Set(i+10, l+1, 1)
		a.Set(i+10, l+2, 2*x)
		a.Set(i+10, l+3, 3*x2)
		a.Set(i+10, r+1, -1)
		a.Set(i+10, r+2, -2*x)
		a.Set(i+10, r+3, -3*x2)

		// curvature continuity
		a.Set(i+15, l+2, 2)
		a.Set(i+15, l+3, 6*x)
		a.Set(i+15, r+2, -2)
		a.Set(i+15, r+3, -6*x)
	}

	// flat boundaries
	a.Set(20, 1, 1)
	a.Set(20, 2, 2*xs[0])
	a.Set(20, 3, 3*x2s[0])
	a.Set(21, 2, 2)
	a.Set(21, 3, 6*xs[0])
	a.Set(22, 4*(nSegments-1)+1, 1)
	a.Set(22, 4*(nSegments-1)+2, 2*xs[nKnots-1])
	a.Set(22, 4*(nSegments-1)+3, 3*x2s[nKnots-1])
	a.Set(23, 4*(nSegments-1)+2, 2)
	a.Set(23, 4*(nSegments-1)+3, 6*xs[nKnots-1])

	return a, b
}

// Volatility interpolates the fitted curve at the given strike. Queries
// outside [knot 0, knot 6] clamp to the nearest outer knot, where the flat
// boundary conditions make the returned vol constant. It never fails.
func (m *Model) Volatility(strike float64) float64 {
	x := strike
	if x < m.knots[0] {
		x = m.knots[0]
	}
	if x > m.knots[nKnots-1] {
		x = m.knots[nKnots-1]
	}
	// Segment index by insert-before search over the five anchor strikes. A
	// query on an anchor lands on the lower segment; value continuity makes
	// the two candidates agree there.
	ind := sort.SearchFloat64s(m.knots[1:nKnots-1], x)
	a, b, c, d := m.coeffs[4*ind], m.coeffs[4*ind+1], m.coeffs[4*ind+2], m.coeffs[4*ind+3]
	return a + b*x + c*x*x + d*x*x*x
}

// Bounds reports the curve domain, i.e. the two synthetic outer knots.
func (m *Model) Bounds() (float64, float64) {
	return m.knots[0], m.knots[nKnots-1]
}

// Knots returns a copy of the seven knot strikes in increasing order.
func (m *Model) Knots() []float64 {
	k := make([]float64, nKnots)
	copy(k, m.knots[:])
	return k
}
