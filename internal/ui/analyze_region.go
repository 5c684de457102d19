package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/vegwatch/vegwatch-analysis-poc/internal/delivery"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/ndvi"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/notification"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/properties"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/region"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/sentinel"
	"github.com/vegwatch/vegwatch-analysis-poc/output"
)

// AnalyzeRegion handles the UI for analyzing vegetation in a region over a
// time window
func AnalyzeRegion(boundaries region.Source, imagery sentinel.Source) {
	PrintWarning("- Region names must match the configured boundary dataset.\n- Use 'View the list of available regions' to see the exact names.")

	regionName := ReadString("Enter the region name: ")
	if regionName == "" {
		PrintError("region name cannot be empty")
		return
	}

	startDate, endDate, err := ReadDateRange()
	if err != nil {
		PrintError(err.Error())
		return
	}

	maxCloudCover, err := ReadOptionalPositiveInt(fmt.Sprintf("Enter the maximum scene cloud cover percent (blank for %.0f): ", delivery.DefaultMaxCloudCover))
	if err != nil {
		PrintError(err.Error())
		return
	}

	sampleCount, err := ReadOptionalPositiveInt(fmt.Sprintf("Enter the number of sample points (blank for %d): ", delivery.DefaultSampleCount))
	if err != nil {
		PrintError(err.Error())
		return
	}

	seed, err := ReadOptionalPositiveInt("Enter a sampling seed for reproducible points (blank for random): ")
	if err != nil {
		PrintError(err.Error())
		return
	}

	params := delivery.Params{
		RegionName:    regionName,
		Start:         startDate,
		End:           endDate,
		MaxCloudCover: float64(maxCloudCover),
		SampleCount:   sampleCount,
		Seed:          int64(seed),
	}

	result, err := delivery.AnalyzeRegion(context.Background(), boundaries, imagery, params)
	if err != nil {
		var empty *ndvi.EmptyCompositeError
		if errors.As(err, &empty) {
			PrintWarning(err.Error() + "\nTry a longer window or a higher cloud cover limit.")
			return
		}
		PrintError(fmt.Sprintf("Error analyzing region: %s", err.Error()))
		var notFound *region.NotFoundError
		if !errors.As(err, &notFound) {
			notification.SendDiscordErrorNotification(fmt.Sprintf("Vegwatch CLI\n\nError analyzing region: %s", err.Error()))
		}
		return
	}

	resultPath := fmt.Sprintf("%s/data/result", properties.RootPath())
	artifacts, err := output.WriteArtifacts(context.Background(), result, resultPath)
	if err != nil {
		PrintError(fmt.Sprintf("Error writing result files: %s", err.Error()))
		notification.SendDiscordErrorNotification(fmt.Sprintf("Vegwatch CLI\n\nError writing result files: %s", err.Error()))
		return
	}

	printAnalysisSummary(result)
	PrintSuccess(fmt.Sprintf("Successful analysis!\nHeatmap located at: %s\nClass map located at: %s\nPoints located at: %s and %s",
		artifacts.HeatmapPath, artifacts.ClassMapPath, artifacts.GeoJSONPath, artifacts.CSVPath))
	notification.SendDiscordSuccessNotification(fmt.Sprintf("Vegwatch CLI\n\nSuccessful analysis of %s!\nScenes: %d\nPoints: %d\nHeatmap: %s",
		result.Region.Name, result.Summary.Scenes, result.Summary.PointsSampled, artifacts.HeatmapPath))
}

func printAnalysisSummary(result *delivery.Result) {
	summary := result.Summary
	fmt.Printf("\n%sScenes composited: %d (latest %s)%s\n", ColorGreen, summary.Scenes, summary.LatestScene.Format("2006-01-02"), ColorReset)
	fmt.Printf("%sPixels with data: %d%s\n", ColorGreen, summary.DefinedPixels, ColorReset)
	fmt.Printf("%sNDVI min %.3f max %.3f mean %.3f%s\n", ColorGreen, summary.Stats.Min, summary.Stats.Max, summary.Stats.Mean, ColorReset)

	counts := summary.ClassCounts
	fmt.Printf("%s%s: %d pixels%s\n", ColorGreen, ndvi.ClassDense, counts.Dense, ColorReset)
	fmt.Printf("%s%s: %d pixels%s\n", ColorGreen, ndvi.ClassModerate, counts.Moderate, ColorReset)
	fmt.Printf("%s%s: %d pixels%s\n", ColorGreen, ndvi.ClassSparse, counts.Sparse, ColorReset)
	fmt.Printf("%s%s: %d pixels%s\n", ColorGreen, ndvi.ClassBuiltUp, counts.BuiltUp, ColorReset)
	fmt.Printf("%sPoints sampled: %d of %d requested%s\n", ColorGreen, summary.PointsSampled, summary.PointsRequested, ColorReset)
}
