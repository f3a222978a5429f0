package util

import "time"

const Layout = "2006-01-02"

// YearFrac is the ACT/365 year fraction between two dates.
func YearFrac(t0, t1 time.Time) float64 {
	return t1.Sub(t0).Hours() / 24.0 / 365.0
}
