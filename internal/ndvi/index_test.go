package ndvi

import (
	"math"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/raster"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/region"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/sentinel"
)

var nan = math.NaN()

func testSpec(width, height int) raster.Spec {
	return raster.Spec{
		OriginLon: -47.0,
		OriginLat: -22.0,
		LonRes:    0.01,
		LatRes:    -0.01,
		Width:     width,
		Height:    height,
	}
}

func testScene(id string, day int, spec raster.Spec, red, nir []float64) sentinel.Scene {
	return sentinel.Scene{
		ID:         id,
		Time:       time.Date(2023, 6, day, 10, 30, 0, 0, time.UTC),
		CloudCover: 5,
		Red:        &raster.Grid{Spec: spec, Values: red},
		NIR:        &raster.Grid{Spec: spec, Values: nir},
	}
}

func coveringRegion(spec raster.Spec) region.Region {
	minLon, minLat, maxLon, maxLat := spec.Bounds()
	ring := orb.Ring{
		{minLon - 1, minLat - 1},
		{maxLon + 1, minLat - 1},
		{maxLon + 1, maxLat + 1},
		{minLon - 1, maxLat + 1},
		{minLon - 1, minLat - 1},
	}
	return region.Region{Name: "Test", Boundary: orb.MultiPolygon{{ring}}}
}

// squareRegionAt builds a square region from its top-left corner, extending
// east and south.
func squareRegionAt(lon, lat, size float64) region.Region {
	ring := orb.Ring{
		{lon, lat},
		{lon + size, lat},
		{lon + size, lat - size},
		{lon, lat - size},
		{lon, lat},
	}
	return region.Region{Name: "Square", Boundary: orb.MultiPolygon{{ring}}}
}

func TestSceneIndexNormalizedDifference(t *testing.T) {
	spec := testSpec(2, 1)
	scene := testScene("a", 1, spec, []float64{0.125, 0.1}, []float64{0.5, 0.3})

	index := SceneIndex(scene)
	assert.Equal(t, 0.6, index.Value(0, 0))
	assert.InDelta(t, 0.5, index.Value(1, 0), 1e-12)
}

func TestSceneIndexDegenerateDenominatorIsNoData(t *testing.T) {
	spec := testSpec(2, 1)
	scene := testScene("a", 1, spec, []float64{0, 0.2}, []float64{0, 0.8})

	index := SceneIndex(scene)
	assert.False(t, index.Defined(0, 0), "zero band sum must not classify as zero NDVI")
	assert.True(t, index.Defined(1, 0))
}

func TestSceneIndexMissingObservationIsNoData(t *testing.T) {
	spec := testSpec(3, 1)
	scene := testScene("a", 1, spec, []float64{nan, 0.2, 0.3}, []float64{0.8, nan, 0.9})

	index := SceneIndex(scene)
	assert.False(t, index.Defined(0, 0))
	assert.False(t, index.Defined(1, 0))
	assert.True(t, index.Defined(2, 0))
}

func TestSceneIndexStaysWithinRange(t *testing.T) {
	spec := testSpec(4, 1)
	scene := testScene("a", 1, spec, []float64{0.9, 0.0001, 0.5, 0.3}, []float64{0.0001, 0.9, 0.5, 0.31})

	index := SceneIndex(scene)
	for col := 0; col < spec.Width; col++ {
		v := index.Value(col, 0)
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}
