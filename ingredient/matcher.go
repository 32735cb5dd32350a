package ingredient

import (
	"strings"
)

// Candidate is a pantry item considered when satisfying a recipe ingredient.
type Candidate interface {
	Name() string
	Quantity() float64
}

type Filter[C Candidate] func(C) bool

func FilterMinimumQuantity[C Candidate](required float64) Filter[C] {
	return func(c C) bool {
		return c.Quantity() >= required
	}
}

// Matches reports whether an item name satisfies an ingredient name. The
// comparison is case insensitive and accepts a substring in either direction,
// so "chicken broth" matches an item named "Chicken Broth (Low Sodium)" and
// an ingredient "whole chicken" matches an item named "chicken".
func Matches(required string, candidate string) bool {
	r := strings.ToLower(strings.TrimSpace(required))
	c := strings.ToLower(strings.TrimSpace(candidate))
	if r == "" || c == "" {
		return false
	}
	return strings.Contains(c, r) || strings.Contains(r, c)
}

// Match returns the first candidate whose name satisfies the required
// ingredient name and which passes all supplied filters.
func Match[C Candidate](required string, candidates []C, filters ...Filter[C]) (C, bool) {
	for _, c := range candidates {
		if !Matches(required, c.Name()) {
			continue
		}
		ok := true
		for _, f := range filters {
			if !f(c) {
				ok = false
				break
			}
		}
		if ok {
			return c, true
		}
	}
	var zero C
	return zero, false
}
