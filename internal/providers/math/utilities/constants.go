package utilities

import (
	gomath "math"
	"sort"
)

// Physical constants (SI units)
const (
	// SpeedOfLight in m/s
	SpeedOfLight = 299792458.0
	// Planck constant in J·s
	Planck = 6.62607015e-34
	// ReducedPlanck (ħ = h/2π) in J·s
	ReducedPlanck = Planck / (2 * gomath.Pi)
)

// Constant describes a named value that can be pushed on the stack
type Constant struct {
	Name        string
	Value       float64
	Description string
}

var constants = map[string]Constant{
	"pi":    {Name: "pi", Value: gomath.Pi, Description: "Pi (π)"},
	"e":     {Name: "e", Value: gomath.E, Description: "Euler's number"},
	"c":     {Name: "c", Value: SpeedOfLight, Description: "Speed of light in vacuum (m/s)"},
	"h":     {Name: "h", Value: Planck, Description: "Planck constant (J·s)"},
	"h_bar": {Name: "h_bar", Value: ReducedPlanck, Description: "Reduced Planck constant (J·s)"},
}

// Lookup returns the value of a named constant
func Lookup(name string) (float64, bool) {
	c, ok := constants[name]
	return c.Value, ok
}

// Constants returns every known constant sorted by name
func Constants() []Constant {
	out := make([]Constant, 0, len(constants))
	for _, c := range constants {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
