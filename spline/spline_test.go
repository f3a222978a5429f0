package spline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func testAnchors() []Anchor {
	return []Anchor{
		{Strike: 0.8, Vol: 0.10},
		{Strike: 0.9, Vol: 0.09},
		{Strike: 1.0, Vol: 0.08},
		{Strike: 1.1, Vol: 0.09},
		{Strike: 1.2, Vol: 0.10},
	}
}

// seg evaluates segment i of the fitted curve directly from its coefficients,
// returning value, slope and curvature at x.
func seg(m *Model, i int, x float64) (float64, float64, float64) {
	a, b, c, d := m.coeffs[4*i], m.coeffs[4*i+1], m.coeffs[4*i+2], m.coeffs[4*i+3]
	v := a + b*x + c*x*x + d*x*x*x
	dv := b + 2*c*x + 3*d*x*x
	d2v := 2*c + 6*d*x
	return v, dv, d2v
}

func TestAnchorReproduction(t *testing.T) {
	m, err := New(testAnchors(), 1.0, 0.5)
	require.NoError(t, err)

	for _, a := range testAnchors() {
		require.InEpsilon(t, a.Vol, m.Volatility(a.Strike), 1e-9)
	}
}

func TestContinuity(t *testing.T) {
	m, err := New(testAnchors(), 1.0, 0.5)
	require.NoError(t, err)

	for j := 1; j <= 5; j++ {
		x := m.knots[j]
		vl, dl, cl := seg(m, j-1, x)
		vr, dr, cr := seg(m, j, x)
		require.InDelta(t, vl, vr, 1e-9)
		require.InDelta(t, dl, dr, 1e-8)
		require.InDelta(t, cl, cr, 1e-6)
	}
}

func TestFlatBoundaries(t *testing.T) {
	m, err := New(testAnchors(), 1.0, 0.5)
	require.NoError(t, err)

	_, dv, d2v := seg(m, 0, m.knots[0])
	require.InDelta(t, 0, dv, 1e-9)
	require.InDelta(t, 0, d2v, 1e-9)

	_, dv, d2v = seg(m, 5, m.knots[6])
	require.InDelta(t, 0, dv, 1e-9)
	require.InDelta(t, 0, d2v, 1e-9)
}

func TestSaturation(t *testing.T) {
	m, err := New(testAnchors(), 1.0, 0.5)
	require.NoError(t, err)

	lo, hi := m.Bounds()
	require.Equal(t, m.Volatility(lo), m.Volatility(lo/2))
	require.Equal(t, m.Volatility(lo), m.Volatility(1e-9))
	require.Equal(t, m.Volatility(hi), m.Volatility(hi*2))
	require.Equal(t, m.Volatility(hi), m.Volatility(1e9))
}

func TestDeterminism(t *testing.T) {
	m1, err := New(testAnchors(), 1.0, 0.5)
	require.NoError(t, err)
	m2, err := New(testAnchors(), 1.0, 0.5)
	require.NoError(t, err)

	require.Equal(t, m1.coeffs, m2.coeffs)
	require.Equal(t, m1.knots, m2.knots)
}

func TestBoundaryPlacement(t *testing.T) {
	m, err := New(testAnchors(), 1.0, 0.5)
	require.NoError(t, err)

	lo, hi := m.Bounds()
	require.InEpsilon(t, 0.8*math.Exp(-1.0*0.10*math.Sqrt(0.5)), lo, 1e-12)
	require.InEpsilon(t, 1.2*math.Exp(1.0*0.10*math.Sqrt(0.5)), hi, 1e-12)

	knots := m.Knots()
	require.Len(t, knots, 7)
	require.Equal(t, lo, knots[0])
	require.Equal(t, hi, knots[6])
	knots[3] = -1
	require.Equal(t, 1.0, m.knots[3])
}

func TestExtrapolationFactorWidensBounds(t *testing.T) {
	narrow, err := New(testAnchors(), 0.01, 0.5)
	require.NoError(t, err)
	wide, err := New(testAnchors(), 10, 0.5)
	require.NoError(t, err)

	nlo, nhi := narrow.Bounds()
	wlo, whi := wide.Bounds()
	require.Less(t, wlo, nlo)
	require.Greater(t, whi, nhi)

	for _, a := range testAnchors() {
		require.InEpsilon(t, a.Vol, narrow.Volatility(a.Strike), 1e-9)
		require.InEpsilon(t, a.Vol, wide.Volatility(a.Strike), 1e-9)
	}
}

func TestInvalidInput(t *testing.T) {
	valid := testAnchors()

	testCases := []struct {
		name       string
		anchors    []Anchor
		extrapFact float64
		texp       float64
	}{
		{
			name:       "TOO_FEW_ANCHORS",
			anchors:    valid[:4],
			extrapFact: 1.0,
			texp:       0.5,
		},
		{
			name:       "TOO_MANY_ANCHORS",
			anchors:    append(append([]Anchor{}, valid...), Anchor{Strike: 1.3, Vol: 0.11}),
			extrapFact: 1.0,
			texp:       0.5,
		},
		{
			name:       "NIL_ANCHORS",
			anchors:    nil,
			extrapFact: 1.0,
			texp:       0.5,
		},
		{
			name: "DECREASING_STRIKES",
			anchors: []Anchor{
				{Strike: 1.2, Vol: 0.10}, {Strike: 1.1, Vol: 0.09}, {Strike: 1.0, Vol: 0.08},
				{Strike: 0.9, Vol: 0.09}, {Strike: 0.8, Vol: 0.10},
			},
			extrapFact: 1.0,
			texp:       0.5,
		},
		{
			name: "DUPLICATE_STRIKE",
			anchors: []Anchor{
				{Strike: 0.8, Vol: 0.10}, {Strike: 0.9, Vol: 0.09}, {Strike: 0.9, Vol: 0.08},
				{Strike: 1.1, Vol: 0.09}, {Strike: 1.2, Vol: 0.10},
			},
			extrapFact: 1.0,
			texp:       0.5,
		},
		{
			name: "ZERO_STRIKE",
			anchors: []Anchor{
				{Strike: 0, Vol: 0.10}, {Strike: 0.9, Vol: 0.09}, {Strike: 1.0, Vol: 0.08},
				{Strike: 1.1, Vol: 0.09}, {Strike: 1.2, Vol: 0.10},
			},
			extrapFact: 1.0,
			texp:       0.5,
		},
		{
			name: "NEGATIVE_VOL",
			anchors: []Anchor{
				{Strike: 0.8, Vol: 0.10}, {Strike: 0.9, Vol: -0.09}, {Strike: 1.0, Vol: 0.08},
				{Strike: 1.1, Vol: 0.09}, {Strike: 1.2, Vol: 0.10},
			},
			extrapFact: 1.0,
			texp:       0.5,
		},
		{
			name: "NAN_VOL",
			anchors: []Anchor{
				{Strike: 0.8, Vol: 0.10}, {Strike: 0.9, Vol: math.NaN()}, {Strike: 1.0, Vol: 0.08},
				{Strike: 1.1, Vol: 0.09}, {Strike: 1.2, Vol: 0.10},
			},
			extrapFact: 1.0,
			texp:       0.5,
		},
		{
			name:       "NEGATIVE_FACTOR",
			anchors:    valid,
			extrapFact: -1.0,
			texp:       0.5,
		},
		{
			name:       "NAN_FACTOR",
			anchors:    valid,
			extrapFact: math.NaN(),
			texp:       0.5,
		},
		{
			name:       "NEGATIVE_TEXP",
			anchors:    valid,
			extrapFact: 1.0,
			texp:       -0.5,
		},
		{
			name:       "ZERO_FACTOR",
			anchors:    valid,
			extrapFact: 0,
			texp:       0.5,
		},
		{
			name:       "ZERO_TEXP",
			anchors:    valid,
			extrapFact: 1.0,
			texp:       0,
		},
	}

	for i := range testCases {
		tc := testCases[i]
		t.Run(tc.name, func(t *testing.T) {
			m, err := New(tc.anchors, tc.extrapFact, tc.texp)
			require.ErrorIs(t, err, ErrInvalidInput)
			require.Nil(t, m)
		})
	}
}
