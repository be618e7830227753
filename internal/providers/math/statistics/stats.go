package statistics

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Reduction collapses a whole stack into a single value
type Reduction uint8

const (
	ReduceInvalid Reduction = iota
	ReduceSum
	ReduceProd
	ReduceMean
	ReduceStdev
	ReduceMin
	ReduceMax
)

var reductionNames = map[Reduction]string{
	ReduceInvalid: "invalid",
	ReduceSum:     "sum",
	ReduceProd:    "prod",
	ReduceMean:    "mean",
	ReduceStdev:   "stdev",
	ReduceMin:     "min",
	ReduceMax:     "max",
}

// String returns the verb for the reduction
func (r Reduction) String() string {
	if name, ok := reductionNames[r]; ok {
		return name
	}
	return reductionNames[ReduceInvalid]
}

// MinOperands returns how many values the reduction needs
func (r Reduction) MinOperands() int {
	if r == ReduceStdev {
		return 2
	}
	return 1
}

// Reduce evaluates r over values using gonum. The caller checks MinOperands;
// Reduce still refuses short input rather than letting gonum panic.
func Reduce(r Reduction, values []float64) (float64, error) {
	if len(values) < r.MinOperands() {
		return 0, fmt.Errorf("%s needs at least %d values, got %d", r, r.MinOperands(), len(values))
	}

	switch r {
	case ReduceSum:
		return floats.Sum(values), nil
	case ReduceProd:
		return floats.Prod(values), nil
	case ReduceMean:
		return stat.Mean(values, nil), nil
	case ReduceStdev:
		// Sample standard deviation (n-1 denominator)
		return stat.StdDev(values, nil), nil
	case ReduceMin:
		return floats.Min(values), nil
	case ReduceMax:
		return floats.Max(values), nil
	default:
		return 0, fmt.Errorf("unknown reduction: %d", r)
	}
}
