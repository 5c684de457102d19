package raster

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Spec describes the georeferencing of a north-up grid: the top-left corner
// in degrees, the pixel size in degrees (LatRes negative) and the grid
// dimensions. It is the in-memory equivalent of a GDAL geotransform.
type Spec struct {
	OriginLon float64
	OriginLat float64
	LonRes    float64
	LatRes    float64
	Width     int
	Height    int
}

// CellCenter returns the geographic coordinates of the centre of cell
// (col, row).
func (s Spec) CellCenter(col, row int) (lon, lat float64) {
	lon = s.OriginLon + (float64(col)+0.5)*s.LonRes
	lat = s.OriginLat + (float64(row)+0.5)*s.LatRes
	return lon, lat
}

// CellAt returns the cell containing the given point, or ok=false when the
// point falls outside the grid.
func (s Spec) CellAt(lon, lat float64) (col, row int, ok bool) {
	col = int(math.Floor((lon - s.OriginLon) / s.LonRes))
	row = int(math.Floor((lat - s.OriginLat) / s.LatRes))
	if col < 0 || col >= s.Width || row < 0 || row >= s.Height {
		return 0, 0, false
	}
	return col, row, true
}

func (s Spec) Bounds() (minLon, minLat, maxLon, maxLat float64) {
	minLon = s.OriginLon
	maxLon = s.OriginLon + float64(s.Width)*s.LonRes
	maxLat = s.OriginLat
	minLat = s.OriginLat + float64(s.Height)*s.LatRes
	return minLon, minLat, maxLon, maxLat
}

// Grid is a single-band raster. Cells with no value hold NaN.
type Grid struct {
	Spec   Spec
	Values []float64
}

// NewGrid allocates a grid with every cell set to no-data.
func NewGrid(spec Spec) *Grid {
	values := make([]float64, spec.Width*spec.Height)
	for i := range values {
		values[i] = math.NaN()
	}
	return &Grid{Spec: spec, Values: values}
}

func (g *Grid) Value(col, row int) float64 {
	return g.Values[row*g.Spec.Width+col]
}

func (g *Grid) SetValue(col, row int, v float64) {
	g.Values[row*g.Spec.Width+col] = v
}

// Defined reports whether cell (col, row) holds a value.
func (g *Grid) Defined(col, row int) bool {
	return !math.IsNaN(g.Values[row*g.Spec.Width+col])
}

// At returns the value at the cell containing the given point. ok is false
// when the point is outside the grid or the cell holds no-data.
func (g *Grid) At(lon, lat float64) (float64, bool) {
	col, row, ok := g.Spec.CellAt(lon, lat)
	if !ok {
		return 0, false
	}
	v := g.Value(col, row)
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func (g *Grid) DefinedCount() int {
	count := 0
	for _, v := range g.Values {
		if !math.IsNaN(v) {
			count++
		}
	}
	return count
}

func (g *Grid) Clone() *Grid {
	values := make([]float64, len(g.Values))
	copy(values, g.Values)
	return &Grid{Spec: g.Spec, Values: values}
}

// Stats summarizes the defined cells of a grid.
type Stats struct {
	Count int
	Min   float64
	Max   float64
	Mean  float64
}

// Stats computes summary statistics over the defined cells. ok is false when
// the grid holds no values at all.
func (g *Grid) Stats() (Stats, bool) {
	defined := make([]float64, 0, len(g.Values))
	for _, v := range g.Values {
		if !math.IsNaN(v) {
			defined = append(defined, v)
		}
	}
	if len(defined) == 0 {
		return Stats{}, false
	}
	return Stats{
		Count: len(defined),
		Min:   floats.Min(defined),
		Max:   floats.Max(defined),
		Mean:  stat.Mean(defined, nil),
	}, true
}

// Median returns the middle value of vals, averaging the two middle values
// when the count is even. It must not be called with an empty slice.
func Median(vals []float64) float64 {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// SameShape reports whether two specs describe the same pixel lattice.
func SameShape(a, b Spec) bool {
	return a == b
}

func (s Spec) String() string {
	return fmt.Sprintf("%dx%d@(%f,%f)", s.Width, s.Height, s.OriginLon, s.OriginLat)
}
