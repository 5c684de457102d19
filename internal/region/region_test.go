package region

import (
	"context"
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	regions []Region
	err     error
}

func (s staticSource) Regions(ctx context.Context) ([]Region, error) {
	return s.regions, s.err
}

func squareRegion(name string, minLon, minLat, size float64) Region {
	ring := orb.Ring{
		{minLon, minLat},
		{minLon + size, minLat},
		{minLon + size, minLat + size},
		{minLon, minLat + size},
		{minLon, minLat},
	}
	return Region{Name: name, Boundary: orb.MultiPolygon{{ring}}}
}

func TestFindExactMatch(t *testing.T) {
	src := staticSource{regions: []Region{
		squareRegion("Campinas", -47.2, -23.1, 0.5),
		squareRegion("Jundiai", -47.0, -23.3, 0.3),
	}}

	found, err := Find(context.Background(), src, "Campinas")
	require.NoError(t, err)
	assert.Equal(t, "Campinas", found.Name)
}

func TestFindNoMatch(t *testing.T) {
	src := staticSource{regions: []Region{squareRegion("Campinas", -47.2, -23.1, 0.5)}}

	_, err := Find(context.Background(), src, "Atlantis")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Atlantis", notFound.Name)
	assert.Equal(t, 0, notFound.Matches)
}

func TestFindAmbiguousMatch(t *testing.T) {
	src := staticSource{regions: []Region{
		squareRegion("Springfield", -90.0, 40.0, 0.5),
		squareRegion("Springfield", -72.6, 42.1, 0.5),
	}}

	_, err := Find(context.Background(), src, "Springfield")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 2, notFound.Matches)
}

func TestFindIsCaseSensitive(t *testing.T) {
	src := staticSource{regions: []Region{squareRegion("Campinas", -47.2, -23.1, 0.5)}}

	_, err := Find(context.Background(), src, "campinas")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 0, notFound.Matches)
}

func TestFindPropagatesSourceError(t *testing.T) {
	srcErr := errors.New("dataset unavailable")
	src := staticSource{err: srcErr}

	_, err := Find(context.Background(), src, "Campinas")
	require.ErrorIs(t, err, srcErr)
	var notFound *NotFoundError
	assert.False(t, errors.As(err, &notFound))
}

func TestRegionContains(t *testing.T) {
	r := squareRegion("Test", 0, 0, 1)
	assert.True(t, r.Contains(0.5, 0.5))
	assert.False(t, r.Contains(1.5, 0.5))
	assert.False(t, r.Contains(0.5, -0.5))
}

func TestRegionCentroid(t *testing.T) {
	r := squareRegion("Test", 0, 0, 2)
	centroid := r.Centroid()
	assert.InDelta(t, 1.0, centroid[0], 1e-9)
	assert.InDelta(t, 1.0, centroid[1], 1e-9)
}
