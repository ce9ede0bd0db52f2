package maturity

import "testing"

func TestTableEstimator(t *testing.T) {
	est := NewTable()
	cases := []struct {
		name string
		days int
		ok   bool
	}{
		{"Tomato", 75, true},
		{"Roma tomato", 75, true},
		{"BASIL", 60, true},
		{"Cherry Radish", 30, true},
		{"Dragonfruit", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		days, ok := est.EstimateDays(tc.name)
		if days != tc.days || ok != tc.ok {
			t.Errorf("EstimateDays(%q) = (%d, %v), want (%d, %v)", tc.name, days, ok, tc.days, tc.ok)
		}
	}
}
