package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/airbusgeo/godal"
	"github.com/common-nighthawk/go-figure"
	bannercolor "github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/notification"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/properties"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/region"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/sentinel"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/ui"
)

func printBanner() {
	// Print the banner with go-figure
	figure1 := figure.NewFigure("Vegwatch", "isometric1", true)
	figure2 := figure.NewFigure("CLI", "isometric1", true)
	bannercolor.Cyan(figure1.String())
	bannercolor.Cyan(figure2.String())
	fmt.Println()
}

func initCLI(boundaries region.Source, imagery sentinel.Source) {
	defer func() {
		if r := recover(); r != nil {
			// Get the function, file, and line where panic occurred
			pc, file, line, ok := runtime.Caller(3) // 3 levels up is often the panic source
			var location string
			if ok {
				fn := runtime.FuncForPC(pc)
				location = fmt.Sprintf("%s:%d in %s", file, line, fn.Name())
			} else {
				location = "Unknown location"
			}

			fmt.Printf("\n\033[31mPANIC: %v\033[0m\n", r)
			fmt.Printf("\033[31mLocation: %s\033[0m\n", location)
			fmt.Printf("\033[31mPlease check the input and try again.\033[0m\n")
			fmt.Printf("\033[31mExiting...\033[0m\n")

			stack := debug.Stack()
			errMessage := fmt.Sprintf("Vegwatch CLI panic:\n\n%v\n\nLocation: %s\n\nStack trace:\n%s", r, location, stack)
			err := notification.SendDiscordErrorNotification(errMessage)
			if err != nil {
				fmt.Printf("\033[31mFailed to send notification: %s\033[0m\n", err.Error())
			}
		}
	}()
	printBanner()
	ui.ShowMenu(boundaries, imagery)
}

// newBoundarySource picks the PostGIS source when a database is configured
// and falls back to the GeoJSON dataset otherwise.
func newBoundarySource() (region.Source, func(), error) {
	if databaseURL := properties.DatabaseURL(); databaseURL != "" {
		source, err := region.NewPostgresSource(context.Background(), databaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to boundary database: %w", err)
		}
		return source, source.Close, nil
	}

	dataset := properties.BoundaryDataset()
	if dataset == "" {
		dataset = fmt.Sprintf("%s/data/boundaries.geojson", properties.RootPath())
	}
	return region.NewGeoJSONSource(dataset, properties.BoundaryNameProperty()), func() {}, nil
}

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		err = godotenv.Load("../.env")
		if err != nil {
			err = godotenv.Load("../../.env")
			if err != nil {
				panic(err)
			}
		}
	}

	godal.RegisterAll()

	boundaries, closeBoundaries, err := newBoundarySource()
	if err != nil {
		fmt.Printf("\033[31m%s\033[0m\n", err.Error())
		os.Exit(1)
	}
	defer closeBoundaries()

	imagery, err := sentinel.NewClient(sentinel.Config{
		ClientID:     properties.CopernicusClientID(),
		ClientSecret: properties.CopernicusClientSecret(),
		TokenURL:     properties.CopernicusTokenURL(),
		DataDir:      fmt.Sprintf("%s/data", properties.RootPath()),
	})
	if err != nil {
		fmt.Printf("\033[31m%s\033[0m\n", err.Error())
		os.Exit(1)
	}
	defer imagery.Close()

	initCLI(boundaries, imagery)
}
