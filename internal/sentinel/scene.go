package sentinel

import (
	"context"
	"time"

	"github.com/paulmach/orb"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/raster"
)

// Scene is a single Sentinel-2 acquisition clipped to a query window. Red
// holds band B04 and NIR band B08, both as reflectance grids with NaN where
// the acquisition carries no data.
type Scene struct {
	ID         string
	Time       time.Time
	CloudCover float64
	Red        *raster.Grid
	NIR        *raster.Grid
}

// Query selects acquisitions over an area within a half-open time interval
// and below a cloud cover percentage.
type Query struct {
	Bound         orb.Bound
	Start         time.Time
	End           time.Time
	MaxCloudCover float64
}

// Matches reports whether an acquisition satisfies the query's time and
// cloud criteria. The interval is [Start, End) and the cloud threshold is
// strict.
func (q Query) Matches(acquiredAt time.Time, cloudCover float64) bool {
	if acquiredAt.Before(q.Start) || !acquiredAt.Before(q.End) {
		return false
	}
	return cloudCover < q.MaxCloudCover
}

// Source produces the scenes matching a query, sorted by acquisition time.
type Source interface {
	Scenes(ctx context.Context, q Query) ([]Scene, error)
}
