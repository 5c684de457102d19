package ndvi

import (
	"context"
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/raster"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/region"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/sentinel"
)

// EmptyCompositeError reports a compositing window that produced no scenes.
type EmptyCompositeError struct {
	RegionName string
	Start      time.Time
	End        time.Time
}

func (e *EmptyCompositeError) Error() string {
	return fmt.Sprintf("no scenes available for %s between %s and %s",
		e.RegionName, e.Start.Format("2006-01-02"), e.End.Format("2006-01-02"))
}

// Composite reduces the scenes to a single NDVI grid, taking the per-pixel
// median across time and clipping to the region boundary. Pixels outside
// the region, and pixels no scene observed, are no-data.
func Composite(ctx context.Context, scenes []sentinel.Scene, reg region.Region, start, end time.Time) (*raster.Grid, error) {
	if len(scenes) == 0 {
		return nil, &EmptyCompositeError{RegionName: reg.Name, Start: start, End: end}
	}

	indexes := make([]*raster.Grid, 0, len(scenes))
	for _, scene := range scenes {
		if !raster.SameShape(scene.Red.Spec, scene.NIR.Spec) {
			return nil, fmt.Errorf("scene %s red and NIR bands are not aligned", scene.ID)
		}
		if !raster.SameShape(scene.Red.Spec, scenes[0].Red.Spec) {
			return nil, fmt.Errorf("scene %s is not aligned with the rest of the collection", scene.ID)
		}
		indexes = append(indexes, SceneIndex(scene))
	}

	spec := indexes[0].Spec
	composite := raster.NewGrid(spec)
	progressBar := progressbar.Default(int64(spec.Height), "Compositing NDVI")

	values := make([]float64, 0, len(indexes))
	for row := 0; row < spec.Height; row++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for col := 0; col < spec.Width; col++ {
			lon, lat := spec.CellCenter(col, row)
			if !reg.Contains(lon, lat) {
				continue
			}

			values = values[:0]
			for _, index := range indexes {
				if index.Defined(col, row) {
					values = append(values, index.Value(col, row))
				}
			}
			if len(values) == 0 {
				continue
			}
			composite.SetValue(col, row, raster.Median(values))
		}
		progressBar.Add(1)
	}
	return composite, nil
}
