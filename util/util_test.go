package util

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateKey(t *testing.T) {
	prefix, key, err := GenerateKey()
	require.NoError(t, err)
	require.Len(t, prefix, 8)
	require.True(t, strings.HasPrefix(key, prefix+"."))
	require.Len(t, key, 8+1+32)

	_, key2, err := GenerateKey()
	require.NoError(t, err)
	require.NotEqual(t, key, key2)
}

func TestYearFrac(t *testing.T) {
	t0, err := time.Parse(Layout, "2022-06-01")
	require.NoError(t, err)
	t1, err := time.Parse(Layout, "2022-12-01")
	require.NoError(t, err)

	require.InDelta(t, 183.0/365.0, YearFrac(t0, t1), 1e-12)
	require.InDelta(t, 1.0, YearFrac(t0, t0.AddDate(1, 0, 0)), 1e-12)
}
