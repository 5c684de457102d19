package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/delivery"
)

type pointRow struct {
	Longitude float64 `csv:"longitude"`
	Latitude  float64 `csv:"latitude"`
	NDVI      float64 `csv:"ndvi"`
	Class     string  `csv:"class"`
}

// CreatePointsCSV writes the sampled points as a CSV with one row per point.
func CreatePointsCSV(result *delivery.Result, outputPath string) error {
	if !strings.Contains(outputPath, ".csv") {
		outputPath += ".csv"
	}

	rows := make([]pointRow, 0, len(result.Points))
	for _, point := range result.Points {
		rows = append(rows, pointRow{
			Longitude: point.Point[0],
			Latitude:  point.Point[1],
			NDVI:      point.Value,
			Class:     point.Class.String(),
		})
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("error creating csv file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing csv file: %w", err)
	}

	fmt.Println("CSV file created successfully as", outputPath)
	return nil
}
