package delivery

import (
	"context"
	"fmt"
	"time"

	"github.com/vegwatch/vegwatch-analysis-poc/internal/ndvi"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/properties"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/raster"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/region"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/sentinel"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/utils"
)

const (
	DefaultMaxCloudCover = 20.0
	DefaultSampleCount   = 300
	DefaultSampleScaleM  = 1000.0
)

// Params selects the region, the time window and the sampling setup of an
// analysis run. Zero values for the cloud threshold and the sampling fields
// mean their defaults; a zero Seed draws a fresh point sequence every run.
type Params struct {
	RegionName    string
	Start         time.Time
	End           time.Time
	MaxCloudCover float64
	SampleCount   int
	SampleScaleM  float64
	Seed          int64
}

func (p Params) withDefaults() Params {
	if p.MaxCloudCover <= 0 {
		p.MaxCloudCover = DefaultMaxCloudCover
	}
	if p.SampleCount <= 0 {
		p.SampleCount = DefaultSampleCount
	}
	if p.SampleScaleM <= 0 {
		p.SampleScaleM = DefaultSampleScaleM
	}
	return p
}

// RampHint tells a renderer how to span composite values over a palette.
type RampHint struct {
	Min    float64
	Max    float64
	Colors []properties.Color
}

// Summary aggregates one analysis run for reporting.
type Summary struct {
	Scenes          int
	LatestScene     time.Time
	DefinedPixels   int
	Stats           raster.Stats
	ClassCounts     ndvi.Counts
	PointsRequested int
	PointsSampled   int
}

// Result carries everything a renderer needs: the clipped composite with
// its ramp, the class masks, the labeled sample points and the region
// geometry for boundary overlay.
type Result struct {
	Params    Params
	Region    region.Region
	Composite *raster.Grid
	Masks     ndvi.Masks
	Points    []ndvi.LabeledPoint
	Ramp      RampHint
	Summary   Summary
}

// AnalyzeRegion runs the full pipeline: resolve the region boundary,
// collect matching scenes, composite them to a median NDVI grid clipped to
// the region, classify it and draw labeled sample points.
//
// A *region.NotFoundError or *ndvi.EmptyCompositeError comes back as-is so
// callers can inspect it.
func AnalyzeRegion(ctx context.Context, boundaries region.Source, imagery sentinel.Source, params Params) (*Result, error) {
	params = params.withDefaults()

	reg, err := region.Find(ctx, boundaries, params.RegionName)
	if err != nil {
		return nil, err
	}

	query := sentinel.Query{
		Bound:         reg.Bound(),
		Start:         params.Start,
		End:           params.End,
		MaxCloudCover: params.MaxCloudCover,
	}
	scenes, err := imagery.Scenes(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("collecting scenes for %s: %w", reg.Name, err)
	}

	// Sources are expected to honor the query, cached or fake ones may
	// not, so the criteria are enforced again here.
	matching := make([]sentinel.Scene, 0, len(scenes))
	for _, scene := range scenes {
		if query.Matches(scene.Time, scene.CloudCover) {
			matching = append(matching, scene)
		}
	}

	composite, err := ndvi.Composite(ctx, matching, reg, params.Start, params.End)
	if err != nil {
		return nil, err
	}

	sceneTimes := make([]time.Time, 0, len(matching))
	for _, scene := range matching {
		sceneTimes = append(sceneTimes, scene.Time)
	}

	masks := ndvi.BuildMasks(composite)

	sampler := ndvi.Sampler{
		Count:  params.SampleCount,
		ScaleM: params.SampleScaleM,
		Seed:   params.Seed,
	}
	points := sampler.Sample(composite, reg)

	stats, _ := composite.Stats()
	return &Result{
		Params:    params,
		Region:    reg,
		Composite: composite,
		Masks:     masks,
		Points:    points,
		Ramp:      RampHint{Min: -1, Max: 1, Colors: properties.RampColors},
		Summary: Summary{
			Scenes:          len(matching),
			LatestScene:     utils.SortDates(sceneTimes, false)[0],
			DefinedPixels:   composite.DefinedCount(),
			Stats:           stats,
			ClassCounts:     masks.Counts(),
			PointsRequested: params.SampleCount,
			PointsSampled:   len(points),
		},
	}, nil
}
