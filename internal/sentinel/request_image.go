package sentinel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

const (
	processRetries   = 10
	processRetryWait = 5 * time.Second

	// Allowed output range of the process API is 1-2500 pixels per axis.
	maxOutputPixels = 2500

	groundResolutionMeters = 10.0
)

const ndviEvalscript = `
    //VERSION=3
    function setup() {
      return {
        input: ["B04", "B08", "dataMask"],
        output: {
          id: "default",
          bands: 3,
          sampleType: SampleType.FLOAT32,
        },
      }
    }

    function evaluatePixel(sample) {
      return [sample.B04, sample.B08, sample.dataMask];
    }
  `

func calculatePixels(distance float64, resolution float64) int {
	pixels := distance * (111_000.0 / resolution)
	if pixels < 1 {
		return 1
	}
	return int(pixels)
}

// requestImage fetches one day's acquisition over the bound as a GeoTIFF
// with bands B04, B08 and dataMask.
func (c *Client) requestImage(ctx context.Context, bound orb.Bound, day time.Time) ([]byte, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour*23 + time.Minute*59 + time.Second*59)

	widthPixels := calculatePixels(bound.Right()-bound.Left(), groundResolutionMeters)
	heightPixels := calculatePixels(bound.Top()-bound.Bottom(), groundResolutionMeters)
	if widthPixels > maxOutputPixels {
		widthPixels = maxOutputPixels
	}
	if heightPixels > maxOutputPixels {
		heightPixels = maxOutputPixels
	}

	requestPayload := map[string]interface{}{
		"input": map[string]interface{}{
			"bounds": map[string]interface{}{
				"geometry": geojson.NewGeometry(bound.ToPolygon()),
			},
			"data": []map[string]interface{}{
				{
					"dataFilter": map[string]interface{}{
						"timeRange": map[string]string{
							"from": from.Format(time.RFC3339),
							"to":   to.Format(time.RFC3339),
						},
					},
					"type": "sentinel-2-l2a",
				},
			},
		},
		"output": map[string]interface{}{
			"width":  widthPixels,
			"height": heightPixels,
			"responses": []map[string]interface{}{
				{
					"identifier": "default",
					"format": map[string]string{
						"type": "image/tiff",
					},
				},
			},
		},
		"evalscript": ndviEvalscript,
		"mosaicking": "mostRecent",
	}

	requestBody, err := json.Marshal(requestPayload)
	if err != nil {
		return nil, fmt.Errorf("marshal process request: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= processRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.processURL, bytes.NewReader(requestBody))
		if err != nil {
			return nil, fmt.Errorf("build process request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		response, err := c.httpClient.Do(req)
		if err == nil && response.StatusCode == http.StatusOK {
			content, readErr := io.ReadAll(response.Body)
			response.Body.Close()
			if readErr != nil {
				return nil, fmt.Errorf("read process response: %w", readErr)
			}
			return content, nil
		}

		if err != nil {
			lastErr = err
			fmt.Printf("process request attempt %d failed: %v\n", attempt, err)
		} else {
			body, _ := io.ReadAll(response.Body)
			response.Body.Close()
			if response.StatusCode == http.StatusForbidden || response.StatusCode == http.StatusUnauthorized {
				return nil, fmt.Errorf("unauthorized access, check the configured client id and secret")
			}
			lastErr = fmt.Errorf("process request returned %d: %s", response.StatusCode, string(body))
			fmt.Printf("process request attempt %d failed: %s\n", attempt, string(body))
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(processRetryWait):
		}
	}

	return nil, fmt.Errorf("process request failed after %d attempts: %w", processRetries, lastErr)
}
