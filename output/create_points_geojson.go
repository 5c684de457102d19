package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/paulmach/orb/geojson"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/delivery"
)

// CreatePointsGeoJSON writes the sampled points as a FeatureCollection with
// the NDVI value and class label on every feature.
func CreatePointsGeoJSON(result *delivery.Result, outputPath string) error {
	if !strings.Contains(outputPath, ".geojson") {
		outputPath += ".geojson"
	}

	collection := geojson.NewFeatureCollection()
	for _, point := range result.Points {
		feature := geojson.NewFeature(point.Point)
		feature.Properties["ndvi"] = point.Value
		feature.Properties["class"] = point.Class.String()
		collection.Append(feature)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("error creating geojson file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(collection); err != nil {
		return fmt.Errorf("error writing geojson file: %w", err)
	}

	fmt.Println("GeoJSON file created successfully as", outputPath)
	return nil
}
