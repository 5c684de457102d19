package output

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/vegwatch/vegwatch-analysis-poc/internal/delivery"
	"golang.org/x/sync/errgroup"
)

// Artifacts lists the files written for one analysis run.
type Artifacts struct {
	HeatmapPath  string
	ClassMapPath string
	GeoJSONPath  string
	CSVPath      string
}

// WriteArtifacts renders every artifact for a run into outputDir: the NDVI
// heatmap, the class map with sample points, and the points as GeoJSON and
// CSV. The four files are independent and written concurrently.
func WriteArtifacts(ctx context.Context, result *delivery.Result, outputDir string) (Artifacts, error) {
	if err := ctx.Err(); err != nil {
		return Artifacts{}, err
	}

	err := os.MkdirAll(outputDir, os.ModePerm)
	if err != nil {
		return Artifacts{}, fmt.Errorf("error creating output folder: %w", err)
	}

	base := fmt.Sprintf("%s_%s", strings.ReplaceAll(result.Region.Name, " ", "_"), result.Params.End.Format("2006_01_02"))
	artifacts := Artifacts{
		HeatmapPath:  fmt.Sprintf("%s/%s_ndvi.png", outputDir, base),
		ClassMapPath: fmt.Sprintf("%s/%s_classes.png", outputDir, base),
		GeoJSONPath:  fmt.Sprintf("%s/%s_points.geojson", outputDir, base),
		CSVPath:      fmt.Sprintf("%s/%s_points.csv", outputDir, base),
	}

	var group errgroup.Group
	group.Go(func() error { return CreateHeatmapImage(result, artifacts.HeatmapPath) })
	group.Go(func() error { return CreateClassMapImage(result, artifacts.ClassMapPath) })
	group.Go(func() error { return CreatePointsGeoJSON(result, artifacts.GeoJSONPath) })
	group.Go(func() error { return CreatePointsCSV(result, artifacts.CSVPath) })
	if err := group.Wait(); err != nil {
		return Artifacts{}, err
	}

	return artifacts, nil
}
