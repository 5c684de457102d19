package region

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paulmach/orb/geojson"
)

const regionsQuery = `
SELECT name, ST_AsGeoJSON(geom)
FROM boundaries
ORDER BY name`

// PostgresSource reads boundaries from a PostGIS table. Geometries come
// back as GeoJSON so the rest of the pipeline never deals with WKB.
type PostgresSource struct {
	pool *pgxpool.Pool
}

func NewPostgresSource(ctx context.Context, databaseURL string) (*PostgresSource, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping boundary database: %w", err)
	}
	return &PostgresSource{pool: pool}, nil
}

func (s *PostgresSource) Close() {
	s.pool.Close()
}

func (s *PostgresSource) Regions(ctx context.Context) ([]Region, error) {
	rows, err := s.pool.Query(ctx, regionsQuery)
	if err != nil {
		return nil, fmt.Errorf("query boundaries: %w", err)
	}
	defer rows.Close()

	var regions []Region
	for rows.Next() {
		var name, rawGeometry string
		if err := rows.Scan(&name, &rawGeometry); err != nil {
			return nil, fmt.Errorf("scan boundary row: %w", err)
		}
		geometry, err := geojson.UnmarshalGeometry([]byte(rawGeometry))
		if err != nil {
			return nil, fmt.Errorf("decode boundary geometry for %s: %w", name, err)
		}
		boundary, ok := toMultiPolygon(geometry.Geometry())
		if !ok {
			continue
		}
		regions = append(regions, Region{Name: name, Boundary: boundary})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate boundary rows: %w", err)
	}
	return regions, nil
}
