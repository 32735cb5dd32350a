package ingredient

import "testing"

type fakeItem struct {
	name     string
	quantity float64
}

func (f fakeItem) Name() string {
	return f.name
}

func (f fakeItem) Quantity() float64 {
	return f.quantity
}

func TestMatches(t *testing.T) {
	cases := []struct {
		name      string
		required  string
		candidate string
		expected  bool
	}{
		{"exact", "milk", "milk", true},
		{"case insensitive", "Milk", "MILK", true},
		{"item contains ingredient", "chicken broth", "Chicken Broth (Low Sodium)", true},
		{"ingredient contains item", "whole chicken", "chicken", true},
		{"whitespace trimmed", "  flour ", "Flour", true},
		{"unrelated", "milk", "butter", false},
		{"empty required", "", "milk", false},
		{"empty candidate", "milk", "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if actual := Matches(c.required, c.candidate); actual != c.expected {
				t.Fatalf("Matches(%q, %q) = %t, expected %t.", c.required, c.candidate, actual, c.expected)
			}
		})
	}
}

func TestMatchFirstSatisfying(t *testing.T) {
	candidates := []fakeItem{
		{name: "Chicken Wings", quantity: 0},
		{name: "Chicken Broth", quantity: 32},
		{name: "Beef Broth", quantity: 64},
	}

	m, ok := Match[fakeItem]("chicken broth", candidates, FilterMinimumQuantity[fakeItem](16))
	if !ok {
		t.Fatalf("Expected a match for chicken broth.")
	}
	if m.Name() != "Chicken Broth" {
		t.Fatalf("Matched [%s], expected [Chicken Broth].", m.Name())
	}
}

func TestMatchSkipsFiltered(t *testing.T) {
	candidates := []fakeItem{
		{name: "Chicken Broth", quantity: 8},
	}

	if _, ok := Match[fakeItem]("chicken broth", candidates, FilterMinimumQuantity[fakeItem](16)); ok {
		t.Fatalf("Expected no match when quantity is below the requirement.")
	}
}

func TestMatchNoCandidates(t *testing.T) {
	if _, ok := Match[fakeItem]("saffron", nil); ok {
		t.Fatalf("Expected no match for an empty candidate set.")
	}
}
