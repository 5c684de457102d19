package output

import (
	"fmt"
	"strings"

	"github.com/fogleman/gg"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/delivery"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/properties"
)

func normalize(value, min, max float64) float64 {
	if max == min {
		return 0
	}
	norm := (value - min) / (max - min)
	if norm < 0 {
		return 0
	}
	if norm > 1 {
		return 1
	}
	return norm
}

// rampColor interpolates linearly between the ramp stops for a normalized
// value in [0, 1].
func rampColor(norm float64, colors []properties.Color) properties.Color {
	if len(colors) == 1 || norm <= 0 {
		return colors[0]
	}
	if norm >= 1 {
		return colors[len(colors)-1]
	}

	segments := len(colors) - 1
	position := norm * float64(segments)
	i := int(position)
	if i >= segments {
		i = segments - 1
	}
	ratio := position - float64(i)

	from, to := colors[i], colors[i+1]
	return properties.Color{
		R: uint8(float64(from.R) + ratio*(float64(to.R)-float64(from.R))),
		G: uint8(float64(from.G) + ratio*(float64(to.G)-float64(from.G))),
		B: uint8(float64(from.B) + ratio*(float64(to.B)-float64(from.B))),
	}
}

// CreateHeatmapImage renders the composite as a PNG, spanning the ramp over
// the hinted value range. No-data pixels stay transparent.
func CreateHeatmapImage(result *delivery.Result, outputImagePath string) error {
	if !strings.Contains(outputImagePath, ".png") {
		outputImagePath += ".png"
	}

	spec := result.Composite.Spec
	dc := gg.NewContext(spec.Width, spec.Height)

	for row := 0; row < spec.Height; row++ {
		for col := 0; col < spec.Width; col++ {
			if !result.Composite.Defined(col, row) {
				continue
			}
			norm := normalize(result.Composite.Value(col, row), result.Ramp.Min, result.Ramp.Max)
			clr := rampColor(norm, result.Ramp.Colors)
			dc.SetRGB255(int(clr.R), int(clr.G), int(clr.B))
			dc.SetPixel(col, row)
		}
	}

	if err := dc.SavePNG(outputImagePath); err != nil {
		return fmt.Errorf("failed to save heatmap image: %w", err)
	}
	fmt.Println("Heatmap image created successfully as", outputImagePath)
	return nil
}
