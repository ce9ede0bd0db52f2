// Package maturity estimates days-to-maturity for a plant name. Purely
// advisory: a miss never blocks plant creation.
package maturity

import "strings"

type Estimator interface {
	// EstimateDays returns an estimate and whether one is known.
	EstimateDays(name string) (int, bool)
}

type tableEstimator struct {
	days map[string]int
}

// NewTable is the default estimator: a substring lookup over common garden
// crops. Unknown names report ok=false.
func NewTable() Estimator {
	return &tableEstimator{days: map[string]int{
		"tomato":   75,
		"pepper":   80,
		"cucumber": 55,
		"squash":   60,
		"zucchini": 50,
		"basil":    60,
		"lettuce":  50,
		"spinach":  45,
		"carrot":   70,
		"radish":   30,
		"bean":     55,
		"pea":      60,
		"mint":     90,
		"herb":     60,
	}}
}

func (t *tableEstimator) EstimateDays(name string) (int, bool) {
	n := strings.ToLower(name)
	for k, d := range t.days {
		if strings.Contains(n, k) {
			return d, true
		}
	}
	return 0, false
}
