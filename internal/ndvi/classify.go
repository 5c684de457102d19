package ndvi

import (
	"math"

	"github.com/vegwatch/vegwatch-analysis-poc/internal/raster"
)

// Class is a vegetation density category derived from NDVI.
type Class int

const (
	ClassNone Class = iota
	ClassDense
	ClassModerate
	ClassSparse
	ClassBuiltUp
)

// Thresholds dividing NDVI into classes. Each bound belongs to the class
// below it, so exactly 0.6 is Moderate and exactly 0.2 is BuiltUp.
const (
	DenseMin    = 0.6
	ModerateMin = 0.4
	SparseMin   = 0.2
)

func (c Class) String() string {
	switch c {
	case ClassDense:
		return "Dense Vegetation"
	case ClassModerate:
		return "Moderate Vegetation"
	case ClassSparse:
		return "Sparse Vegetation"
	case ClassBuiltUp:
		return "Built-up / Bare"
	}
	return "unknown"
}

// Classify maps an NDVI value to its class. No-data maps to ClassNone.
func Classify(v float64) Class {
	switch {
	case math.IsNaN(v):
		return ClassNone
	case v > DenseMin:
		return ClassDense
	case v > ModerateMin:
		return ClassModerate
	case v > SparseMin:
		return ClassSparse
	default:
		return ClassBuiltUp
	}
}

// Masks holds one boolean grid per class, aligned with the composite the
// masks were built from. A defined composite pixel is set in exactly one
// mask; no-data pixels are set in none.
type Masks struct {
	Spec     raster.Spec
	Dense    []bool
	Moderate []bool
	Sparse   []bool
	BuiltUp  []bool
}

func BuildMasks(composite *raster.Grid) Masks {
	n := len(composite.Values)
	masks := Masks{
		Spec:     composite.Spec,
		Dense:    make([]bool, n),
		Moderate: make([]bool, n),
		Sparse:   make([]bool, n),
		BuiltUp:  make([]bool, n),
	}
	for i, v := range composite.Values {
		switch Classify(v) {
		case ClassDense:
			masks.Dense[i] = true
		case ClassModerate:
			masks.Moderate[i] = true
		case ClassSparse:
			masks.Sparse[i] = true
		case ClassBuiltUp:
			masks.BuiltUp[i] = true
		}
	}
	return masks
}

// Class returns the class of cell (col, row), ClassNone for no-data.
func (m Masks) Class(col, row int) Class {
	i := row*m.Spec.Width + col
	switch {
	case m.Dense[i]:
		return ClassDense
	case m.Moderate[i]:
		return ClassModerate
	case m.Sparse[i]:
		return ClassSparse
	case m.BuiltUp[i]:
		return ClassBuiltUp
	}
	return ClassNone
}

// Counts tallies the pixels of each class.
type Counts struct {
	Dense    int
	Moderate int
	Sparse   int
	BuiltUp  int
}

func (m Masks) Counts() Counts {
	var counts Counts
	for i := range m.Dense {
		switch {
		case m.Dense[i]:
			counts.Dense++
		case m.Moderate[i]:
			counts.Moderate++
		case m.Sparse[i]:
			counts.Sparse++
		case m.BuiltUp[i]:
			counts.BuiltUp++
		}
	}
	return counts
}

func (c Counts) Total() int {
	return c.Dense + c.Moderate + c.Sparse + c.BuiltUp
}
