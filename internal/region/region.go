package region

import (
	"context"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Region is a named administrative boundary.
type Region struct {
	Name     string
	Boundary orb.MultiPolygon
}

func (r Region) Contains(lon, lat float64) bool {
	return planar.MultiPolygonContains(r.Boundary, orb.Point{lon, lat})
}

func (r Region) Bound() orb.Bound {
	return r.Boundary.Bound()
}

func (r Region) Centroid() orb.Point {
	centroid, _ := planar.CentroidArea(r.Boundary)
	return centroid
}

// Source lists the boundaries available in a dataset.
type Source interface {
	Regions(ctx context.Context) ([]Region, error)
}

// NotFoundError reports a lookup that did not resolve to exactly one
// boundary.
type NotFoundError struct {
	Name    string
	Matches int
}

func (e *NotFoundError) Error() string {
	if e.Matches == 0 {
		return fmt.Sprintf("region %q not found in boundary dataset", e.Name)
	}
	return fmt.Sprintf("region %q is ambiguous, %d boundaries share the name", e.Name, e.Matches)
}

// Find resolves a region by exact name. Zero matches and multiple matches
// both fail with a NotFoundError carrying the match count.
func Find(ctx context.Context, src Source, name string) (Region, error) {
	regions, err := src.Regions(ctx)
	if err != nil {
		return Region{}, fmt.Errorf("listing regions: %w", err)
	}

	var found []Region
	for _, r := range regions {
		if r.Name == name {
			found = append(found, r)
		}
	}
	if len(found) != 1 {
		return Region{}, &NotFoundError{Name: name, Matches: len(found)}
	}
	return found[0], nil
}

func toMultiPolygon(g orb.Geometry) (orb.MultiPolygon, bool) {
	switch geom := g.(type) {
	case orb.Polygon:
		return orb.MultiPolygon{geom}, true
	case orb.MultiPolygon:
		return geom, true
	}
	return nil, false
}
