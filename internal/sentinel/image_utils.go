package sentinel

import (
	"errors"
	"fmt"
	"math"

	"github.com/airbusgeo/godal"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/raster"
)

// openDataset opens a GeoTIFF tolerating GDAL warnings, which the process
// API output routinely triggers for its custom band metadata.
func openDataset(path string) (*godal.Dataset, error) {
	return godal.Open(path, godal.ErrLogger(func(ec godal.ErrorCategory, code int, msg string) error {
		if ec == godal.CE_Warning {
			return nil
		}
		return errors.New(msg)
	}))
}

// decodeSceneFile reads a three-band scene GeoTIFF (B04, B08, dataMask)
// into red and NIR reflectance grids. Pixels the data mask marks as empty
// become no-data in both grids.
func decodeSceneFile(path string) (*raster.Grid, *raster.Grid, error) {
	dataset, err := openDataset(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open scene file %s: %w", path, err)
	}
	defer dataset.Close()

	geoTransform, err := dataset.GeoTransform()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read geotransform of %s: %w", path, err)
	}

	structure := dataset.Structure()
	spec := raster.Spec{
		OriginLon: geoTransform[0],
		OriginLat: geoTransform[3],
		LonRes:    geoTransform[1],
		LatRes:    geoTransform[5],
		Width:     structure.SizeX,
		Height:    structure.SizeY,
	}

	bands := dataset.Bands()
	if len(bands) < 3 {
		return nil, nil, fmt.Errorf("scene file %s has %d bands, want 3", path, len(bands))
	}

	red, err := readBand(bands[0], spec)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read red band of %s: %w", path, err)
	}
	nir, err := readBand(bands[1], spec)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read NIR band of %s: %w", path, err)
	}
	mask, err := readBand(bands[2], spec)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read data mask of %s: %w", path, err)
	}

	for i, m := range mask.Values {
		if m == 0 {
			red.Values[i] = math.NaN()
			nir.Values[i] = math.NaN()
		}
	}
	return red, nir, nil
}

func readBand(band godal.Band, spec raster.Spec) (*raster.Grid, error) {
	data := make([]float64, spec.Width*spec.Height)
	if err := band.Read(0, 0, data, spec.Width, spec.Height); err != nil {
		return nil, err
	}
	return &raster.Grid{Spec: spec, Values: data}, nil
}
