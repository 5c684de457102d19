package ndvi

import (
	"math"
	"math/rand"
	"time"

	"github.com/paulmach/orb"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/raster"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/region"
)

const metersPerDegree = 111_000.0

// LabeledPoint is a sampled composite pixel with its NDVI value and class.
type LabeledPoint struct {
	Point orb.Point
	Value float64
	Class Class
}

// Sampler draws up to Count random points from a composite at roughly
// ScaleM meters spacing. A zero Seed draws a fresh sequence every run;
// any other seed makes the draw reproducible.
type Sampler struct {
	Count  int
	ScaleM float64
	Seed   int64
}

// Sample picks candidate cells on a lattice anchored to the composite
// grid, keeps the ones inside the region, draws up to Count of them and
// labels each drawn cell that holds data. Draws that hit no-data are
// dropped, so fewer than Count points can come back.
func (s Sampler) Sample(composite *raster.Grid, reg region.Region) []LabeledPoint {
	spec := composite.Spec
	step := latticeStep(spec, s.ScaleM)

	var candidates []int
	for row := 0; row < spec.Height; row += step {
		for col := 0; col < spec.Width; col += step {
			lon, lat := spec.CellCenter(col, row)
			if reg.Contains(lon, lat) {
				candidates = append(candidates, row*spec.Width+col)
			}
		}
	}

	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	take := s.Count
	if take > len(candidates) {
		take = len(candidates)
	}

	points := make([]LabeledPoint, 0, take)
	for _, idx := range candidates[:take] {
		v := composite.Values[idx]
		if math.IsNaN(v) {
			continue
		}
		col := idx % spec.Width
		row := idx / spec.Width
		lon, lat := spec.CellCenter(col, row)
		points = append(points, LabeledPoint{
			Point: orb.Point{lon, lat},
			Value: v,
			Class: Classify(v),
		})
	}
	return points
}

func latticeStep(spec raster.Spec, scaleM float64) int {
	cellM := math.Abs(spec.LatRes) * metersPerDegree
	if cellM <= 0 {
		return 1
	}
	step := int(math.Round(scaleM / cellM))
	if step < 1 {
		step = 1
	}
	return step
}
