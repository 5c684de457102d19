package region

import (
	"context"
	"fmt"
	"os"

	"github.com/paulmach/orb/geojson"
)

// GeoJSONSource reads boundaries from a FeatureCollection on disk. The
// region name is taken from the configured feature property; features
// without the property or without polygonal geometry are ignored.
type GeoJSONSource struct {
	path         string
	nameProperty string
}

func NewGeoJSONSource(path, nameProperty string) *GeoJSONSource {
	return &GeoJSONSource{path: path, nameProperty: nameProperty}
}

func (s *GeoJSONSource) Regions(ctx context.Context) ([]Region, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading boundary dataset: %w", err)
	}
	collection, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parsing boundary dataset %s: %w", s.path, err)
	}

	var regions []Region
	for _, feature := range collection.Features {
		name, ok := feature.Properties[s.nameProperty].(string)
		if !ok {
			continue
		}
		boundary, ok := toMultiPolygon(feature.Geometry)
		if !ok {
			continue
		}
		regions = append(regions, Region{Name: name, Boundary: boundary})
	}
	return regions, nil
}
