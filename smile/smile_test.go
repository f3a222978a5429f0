package smile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func refQuotes() Quotes {
	return Quotes{
		Spot: 1.0,
		ATM:  0.08,
		RR25: 0.01,
		RR10: 0.018,
		BF25: 0.0025,
		BF10: 0.0080,
		Texp: 0.5,
	}
}

func TestVols(t *testing.T) {
	v := refQuotes().Vols()

	require.InDelta(t, 0.0790, v[0], 1e-15)
	require.InDelta(t, 0.0775, v[1], 1e-15)
	require.InDelta(t, 0.0800, v[2], 1e-15)
	require.InDelta(t, 0.0875, v[3], 1e-15)
	require.InDelta(t, 0.0970, v[4], 1e-15)
}

func TestStrikes(t *testing.T) {
	q := refQuotes()
	k := q.Strikes()

	for i := 0; i+1 < len(k); i++ {
		require.Less(t, k[i], k[i+1])
	}
	require.Less(t, k[1], q.Spot)
	require.Greater(t, k[3], q.Spot)
	require.InDelta(t, 1.00160128, k[2], 1e-8)
}

func TestBuild(t *testing.T) {
	q := refQuotes()
	m, err := Build(q, 1.0)
	require.NoError(t, err)

	lo, hi := m.Bounds()
	for _, a := range q.Anchors() {
		require.Greater(t, a.Strike, lo)
		require.Less(t, a.Strike, hi)
		require.InEpsilon(t, a.Vol, m.Volatility(a.Strike), 1e-9)
	}
}

func TestBuildExtrapolation(t *testing.T) {
	q := refQuotes()
	for _, f := range []float64{0.01, 1.0, 10.0} {
		m, err := Build(q, f)
		require.NoError(t, err)

		lo, hi := m.Bounds()
		require.Equal(t, m.Volatility(lo), m.Volatility(lo/2))
		require.Equal(t, m.Volatility(hi), m.Volatility(hi*2))
	}
}

func TestFit(t *testing.T) {
	target := refQuotes()
	m, err := Build(target, 1.0)
	require.NoError(t, err)

	ks := target.Strikes()
	var obs [][2]float64
	n := 21
	for i := 0; i < n; i++ {
		x := ks[0] + (ks[4]-ks[0])*float64(i)/float64(n-1)
		obs = append(obs, [2]float64{x, m.Volatility(x)})
	}

	start := target
	start.ATM, start.RR25, start.RR10, start.BF25, start.BF10 = 0.075, 0.008, 0.015, 0.002, 0.007

	fitted, err := Fit(start, 1.0, obs)
	require.NoError(t, err)
	require.Equal(t, target.Spot, fitted.Spot)
	require.Equal(t, target.Texp, fitted.Texp)

	before := mse(start, start.get(), 1.0, obs)
	after := mse(fitted, fitted.get(), 1.0, obs)
	require.Less(t, after, before)
	require.Less(t, after, 1e-6)
}
