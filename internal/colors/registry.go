// Package colors holds the resistor color-band table and its HTTP endpoints.
package colors

import (
	"errors"
	"fmt"
)

// ErrUnknownColor is returned when a name is not one of the registered colors.
var ErrUnknownColor = errors.New("unknown color")

// Band describes what a color means in each band position.
type Band struct {
	Name       string  `json:"-"`
	Digit      int     `json:"value"`      // significant-digit positions
	Multiplier float64 `json:"multiplier"` // multiplier position
	Tolerance  float64 `json:"tolerance"`  // tolerance position, in percent
}

// table is the standard color code in ascending digit order.
// grey and white share digit 8.
var table = []Band{
	{Name: "black", Digit: 0, Multiplier: 1, Tolerance: 0},
	{Name: "brown", Digit: 1, Multiplier: 10, Tolerance: 1},
	{Name: "red", Digit: 2, Multiplier: 100, Tolerance: 2},
	{Name: "orange", Digit: 3, Multiplier: 1000, Tolerance: 0},
	{Name: "yellow", Digit: 4, Multiplier: 10000, Tolerance: 0},
	{Name: "green", Digit: 5, Multiplier: 100000, Tolerance: 0.5},
	{Name: "blue", Digit: 6, Multiplier: 1000000, Tolerance: 0.25},
	{Name: "violet", Digit: 7, Multiplier: 10000000, Tolerance: 0.10},
	{Name: "grey", Digit: 8, Multiplier: 100000000, Tolerance: 0.05},
	{Name: "white", Digit: 8, Multiplier: 100000000, Tolerance: 0.05},
	{Name: "gold", Digit: 0, Multiplier: 0.1, Tolerance: 5},
	{Name: "silver", Digit: 0, Multiplier: 0.01, Tolerance: 10},
}

// Registry is a read-only name to Band lookup. It is built once and never
// mutated, so concurrent readers need no locking.
type Registry struct {
	names []string
	bands map[string]Band
}

// NewRegistry builds the registry from the standard color table.
func NewRegistry() *Registry {
	reg := &Registry{
		names: make([]string, 0, len(table)),
		bands: make(map[string]Band, len(table)),
	}
	for _, b := range table {
		reg.names = append(reg.names, b.Name)
		reg.bands[b.Name] = b
	}
	return reg
}

// Get returns the band registered under name. Matching is exact and
// case-sensitive.
func (r *Registry) Get(name string) (Band, error) {
	b, ok := r.bands[name]
	if !ok {
		return Band{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return b, nil
}

// Names returns every registered color name in table order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

func (r *Registry) Len() int {
	return len(r.names)
}
