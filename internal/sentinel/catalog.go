package sentinel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const catalogPageSize = 100

type catalogItem struct {
	ID         string    `json:"id"`
	Time       time.Time `json:"time"`
	CloudCover float64   `json:"cloud_cover"`
}

type catalogFeature struct {
	ID         string `json:"id"`
	Properties struct {
		Datetime   string  `json:"datetime"`
		CloudCover float64 `json:"eo:cloud_cover"`
	} `json:"properties"`
}

type catalogPage struct {
	Features []catalogFeature `json:"features"`
	Context  struct {
		Next     *int `json:"next"`
		Returned int  `json:"returned"`
	} `json:"context"`
}

func (c *Client) searchCatalog(ctx context.Context, q Query) ([]catalogItem, error) {
	cacheKey := c.catalogCache.GenerateKey(
		q.Bound.Left(), q.Bound.Bottom(), q.Bound.Right(), q.Bound.Top(),
		q.Start.UTC().Format(time.RFC3339), q.End.UTC().Format(time.RFC3339),
		q.MaxCloudCover,
	)
	if items, ok := c.catalogCache.Get(cacheKey); ok {
		return items, nil
	}

	var items []catalogItem
	seen := make(map[string]bool)
	next := 0
	for {
		page, err := c.searchCatalogPage(ctx, q, next)
		if err != nil {
			return nil, err
		}
		for _, feature := range page.Features {
			if seen[feature.ID] {
				continue
			}
			seen[feature.ID] = true

			sensed, err := time.Parse(time.RFC3339, feature.Properties.Datetime)
			if err != nil {
				return nil, fmt.Errorf("catalog item %s has invalid datetime %q: %w", feature.ID, feature.Properties.Datetime, err)
			}
			items = append(items, catalogItem{
				ID:         feature.ID,
				Time:       sensed,
				CloudCover: feature.Properties.CloudCover,
			})
		}
		if page.Context.Next == nil {
			break
		}
		next = *page.Context.Next
	}

	if err := c.catalogCache.Set(cacheKey, items); err != nil {
		fmt.Printf("failed to cache catalog search: %v\n", err)
	}
	return items, nil
}

func (c *Client) searchCatalogPage(ctx context.Context, q Query, next int) (*catalogPage, error) {
	payload := map[string]interface{}{
		"collections": []string{"sentinel-2-l2a"},
		"bbox": []float64{
			q.Bound.Left(), q.Bound.Bottom(), q.Bound.Right(), q.Bound.Top(),
		},
		"datetime": fmt.Sprintf("%s/%s", q.Start.UTC().Format(time.RFC3339), q.End.UTC().Format(time.RFC3339)),
		"limit":    catalogPageSize,
		"filter": map[string]interface{}{
			"op": "<",
			"args": []interface{}{
				map[string]string{"property": "eo:cloud_cover"},
				q.MaxCloudCover,
			},
		},
		"filter-lang": "cql2-json",
	}
	if next > 0 {
		payload["next"] = next
	}

	requestBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal catalog request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.catalogURL, bytes.NewReader(requestBody))
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog search: %w", err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog response: %w", err)
	}
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog search returned %d: %s", response.StatusCode, string(raw))
	}

	var page catalogPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}
	return &page, nil
}
