package ui

import (
	"context"
	"fmt"

	"github.com/vegwatch/vegwatch-analysis-poc/internal/region"
)

// ListRegions handles the UI for viewing the list of available regions
func ListRegions(boundaries region.Source) {
	regions, err := boundaries.Regions(context.Background())
	if err != nil {
		PrintError(fmt.Sprintf("Error listing regions: %s", err.Error()))
		return
	}

	if len(regions) == 0 {
		PrintWarning("The boundary dataset holds no regions.")
		return
	}

	fmt.Printf("\n%sAvailable regions:%s\n", ColorGreen, ColorReset)
	for _, reg := range regions {
		centroid := reg.Centroid()
		fmt.Printf("%s- %s (centroid %.4f, %.4f)%s\n", ColorGreen, reg.Name, centroid.Lat(), centroid.Lon(), ColorReset)
	}
}
