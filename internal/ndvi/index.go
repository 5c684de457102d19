package ndvi

import (
	"math"

	"github.com/vegwatch/vegwatch-analysis-poc/internal/raster"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/sentinel"
)

// SceneIndex derives the NDVI grid of a single scene from its red and NIR
// bands. Cells where either band is missing come out as no-data, as do
// cells where both reflectances are zero and the index is undefined.
func SceneIndex(scene sentinel.Scene) *raster.Grid {
	grid := raster.NewGrid(scene.Red.Spec)
	for i := range grid.Values {
		red := scene.Red.Values[i]
		nir := scene.NIR.Values[i]
		if math.IsNaN(red) || math.IsNaN(nir) {
			continue
		}
		sum := nir + red
		if sum == 0 {
			continue
		}
		grid.Values[i] = (nir - red) / sum
	}
	return grid
}
