package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/airbusgeo/godal"
	"github.com/joho/godotenv"
	"github.com/paulmach/orb"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/properties"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/sentinel"
)

func main() {
	// Hardcoded test parameters - modify these to test different scenarios
	bound := orb.Bound{Min: orb.Point{76.46, 15.29}, Max: orb.Point{76.51, 15.36}}
	endDate := time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC)
	lookbackDays := 30

	fmt.Println("=== Vegwatch Test Scene Fetch ===")
	fmt.Printf("Bound: %.4f, %.4f to %.4f, %.4f\n", bound.Min[0], bound.Min[1], bound.Max[0], bound.Max[1])
	fmt.Printf("Window: %d days up to %s\n", lookbackDays, endDate.Format("2006-01-02"))
	fmt.Println()

	// Load environment variables
	if err := godotenv.Load("../../.env"); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
		fmt.Println("Make sure you have set the required environment variables:")
		fmt.Println("- COPERNICUS_CLIENT_ID")
		fmt.Println("- COPERNICUS_CLIENT_SECRET")
		fmt.Println("- ROOT_PATH")
		fmt.Println()
	}

	// Initialize GDAL
	godal.RegisterAll()

	client, err := sentinel.NewClient(sentinel.Config{
		ClientID:     properties.CopernicusClientID(),
		ClientSecret: properties.CopernicusClientSecret(),
		TokenURL:     properties.CopernicusTokenURL(),
		DataDir:      fmt.Sprintf("%s/data", properties.RootPath()),
	})
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	defer client.Close()

	query := sentinel.Query{
		Bound:         bound,
		Start:         endDate.AddDate(0, 0, -lookbackDays),
		End:           endDate,
		MaxCloudCover: 20,
	}
	scenes, err := client.Scenes(context.Background(), query)
	if err != nil {
		log.Fatalf("Failed to fetch scenes: %v", err)
	}

	// Display results
	fmt.Printf("\n=== Results ===\n")
	fmt.Printf("Total scenes fetched: %d\n", len(scenes))

	if len(scenes) == 0 {
		fmt.Println("No scenes came back. This could mean:")
		fmt.Println("- No acquisitions within the window")
		fmt.Println("- Every acquisition exceeded the cloud cover limit")
		fmt.Println("- Every acquisition held no usable pixels")
		fmt.Println("- API credentials issue")
	} else {
		fmt.Println("\nFetched scenes:")
		for _, scene := range scenes {
			spec := scene.Red.Spec
			fmt.Printf("- %s %s (cloud %.1f%%, size %dx%d, %d pixels with data)\n",
				scene.Time.Format("2006-01-02"), scene.ID, scene.CloudCover,
				spec.Width, spec.Height, scene.Red.DefinedCount())
		}
	}

	// Scene files land in one subdirectory per query area
	scenePath := fmt.Sprintf("%s/data/scenes", properties.RootPath())
	fmt.Printf("\nScene files saved to: %s\n", scenePath)
	if entries, err := os.ReadDir(scenePath); err == nil {
		fmt.Printf("Entries in directory: %d\n", len(entries))
		for _, entry := range entries {
			fmt.Printf("- %s\n", entry.Name())
		}
	}

	fmt.Println("\n✓ Test completed successfully!")
}
