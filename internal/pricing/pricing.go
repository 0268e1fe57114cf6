// Package pricing computes estimated construction costs from a package tier
// and a build area.
package pricing

import "fmt"

// Rates is the flat per-sq.ft rate table, in rupees.
var Rates = map[string]int64{
	"Silver":         1599,
	"Gold":           1999,
	"Platinum":       2700,
	"Custom Package": 2000,
}

// Estimate returns rate * area for the given package tier. Validation is
// expected to have restricted pkg to the known tiers already; an unknown
// tier here is an internal invariant violation, reported as an error rather
// than a silent zero cost.
func Estimate(pkg string, area int) (int64, error) {
	rate, ok := Rates[pkg]
	if !ok {
		return 0, fmt.Errorf("pricing: unknown package %q", pkg)
	}
	return rate * int64(area), nil
}
