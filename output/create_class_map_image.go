package output

import (
	"fmt"
	"strings"

	"github.com/fogleman/gg"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/delivery"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/ndvi"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/properties"
)

const pointMarkerRadius = 3

// CreateClassMapImage renders the class masks as a PNG and overlays the
// sampled points as filled circles. Cells outside the region stay
// transparent.
func CreateClassMapImage(result *delivery.Result, outputImagePath string) error {
	if !strings.Contains(outputImagePath, ".png") {
		outputImagePath += ".png"
	}

	spec := result.Masks.Spec
	dc := gg.NewContext(spec.Width, spec.Height)

	for row := 0; row < spec.Height; row++ {
		for col := 0; col < spec.Width; col++ {
			class := result.Masks.Class(col, row)
			if class == ndvi.ClassNone {
				continue
			}
			clr := properties.ColorMap[class.String()]
			dc.SetRGB255(int(clr.R), int(clr.G), int(clr.B))
			dc.SetPixel(col, row)
		}
	}

	for _, point := range result.Points {
		col, row, ok := spec.CellAt(point.Point[0], point.Point[1])
		if !ok {
			continue
		}
		clr := properties.PointColorMap[point.Class.String()]
		dc.SetRGB255(int(clr.R), int(clr.G), int(clr.B))
		dc.DrawCircle(float64(col)+0.5, float64(row)+0.5, pointMarkerRadius)
		dc.Fill()
	}

	if err := dc.SavePNG(outputImagePath); err != nil {
		return fmt.Errorf("failed to save class map image: %w", err)
	}
	fmt.Println("Class map image created successfully as", outputImagePath)
	return nil
}
