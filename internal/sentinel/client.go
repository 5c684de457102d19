package sentinel

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/paulmach/orb"
	"github.com/schollz/progressbar/v3"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/cache"
	"github.com/vegwatch/vegwatch-analysis-poc/internal/utils"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	defaultProcessURL = "https://sh.dataspace.copernicus.eu/api/v1/process"
	defaultCatalogURL = "https://sh.dataspace.copernicus.eu/api/v1/catalog/1.0.0/search"
	defaultWorkers    = 4

	catalogCacheMaxAge = 24 * time.Hour
)

// Config carries the credentials and endpoints for the Copernicus Data
// Space. ProcessURL, CatalogURL and Workers fall back to defaults when
// left empty.
type Config struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	ProcessURL   string
	CatalogURL   string
	DataDir      string
	Workers      int
}

// Client fetches Sentinel-2 scenes from the Copernicus Data Space. It keeps
// downloaded GeoTIFFs under DataDir so repeated queries do not hit the
// process API again.
type Client struct {
	httpClient   *http.Client
	processURL   string
	catalogURL   string
	dataDir      string
	workers      int
	catalogCache *cache.FileCache[[]catalogItem]
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.TokenURL == "" {
		return nil, fmt.Errorf("missing Copernicus credentials: client id, client secret and token url are required")
	}
	if cfg.ProcessURL == "" {
		cfg.ProcessURL = defaultProcessURL
	}
	if cfg.CatalogURL == "" {
		cfg.CatalogURL = defaultCatalogURL
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}

	oauthConfig := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
	}

	return &Client{
		httpClient:   oauthConfig.Client(context.Background()),
		processURL:   cfg.ProcessURL,
		catalogURL:   cfg.CatalogURL,
		dataDir:      cfg.DataDir,
		workers:      cfg.Workers,
		catalogCache: cache.NewFileCache[[]catalogItem](filepath.Join(cfg.DataDir, "catalog"), catalogCacheMaxAge),
	}, nil
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// Scenes searches the catalog for acquisitions matching the query and
// downloads each one through the process API. Acquisitions that turn out to
// hold no data over the query window are dropped.
func (c *Client) Scenes(ctx context.Context, q Query) ([]Scene, error) {
	items, err := c.searchCatalog(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("searching acquisitions: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	var (
		scenes      []Scene
		progressBar = progressbar.Default(int64(len(items)), "Fetching scenes")
	)

	wp := workerpool.New(c.workers)
	errChan := make(chan error, 1)
	var stopProcessing sync.Once

	for _, item := range items {
		if !q.Matches(item.Time, item.CloudCover) {
			progressBar.Add(1)
			continue
		}
		item := item
		wp.Submit(func() {
			if ctx.Err() != nil {
				return
			}
			scene, err := c.fetchScene(ctx, q, item)
			if err != nil {
				stopProcessing.Do(func() { errChan <- err })
				return
			}

			utils.ExecuteWithMutex(func() {
				if scene != nil {
					scenes = append(scenes, *scene)
				}
				progressBar.Add(1)
			})
		})
	}

	go func() {
		wp.StopWait()
		close(errChan)
	}()

	if err := <-errChan; err != nil {
		return nil, fmt.Errorf("fetching scenes: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(scenes, func(i, j int) bool { return scenes[i].Time.Before(scenes[j].Time) })
	return scenes, nil
}

func (c *Client) fetchScene(ctx context.Context, q Query, item catalogItem) (*Scene, error) {
	// rasters are clipped to the query bound, so cached files are keyed by it
	sceneDir := filepath.Join(c.dataDir, "scenes", boundKey(q.Bound))
	scenePath := filepath.Join(sceneDir, item.ID+".tif")

	if _, err := os.Stat(scenePath); os.IsNotExist(err) {
		imageBytes, err := c.requestImage(ctx, q.Bound, item.Time)
		if err != nil {
			return nil, fmt.Errorf("requesting scene %s: %w", item.ID, err)
		}
		if err := os.MkdirAll(sceneDir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("creating scene directory: %w", err)
		}
		if err := os.WriteFile(scenePath, imageBytes, 0644); err != nil {
			return nil, fmt.Errorf("writing scene file: %w", err)
		}
	}

	red, nir, err := decodeSceneFile(scenePath)
	if err != nil {
		return nil, err
	}
	if red.DefinedCount() == 0 {
		// acquisition holds no usable pixels over the query window
		return nil, nil
	}

	return &Scene{
		ID:         item.ID,
		Time:       item.Time,
		CloudCover: item.CloudCover,
		Red:        red,
		NIR:        nir,
	}, nil
}

func boundKey(b orb.Bound) string {
	return fmt.Sprintf("%.4f_%.4f_%.4f_%.4f", b.Left(), b.Bottom(), b.Right(), b.Top())
}
