package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreatePointsCSV(t *testing.T) {
	result := testResult()
	path := filepath.Join(t.TempDir(), "points.csv")

	require.NoError(t, CreatePointsCSV(result, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "longitude,latitude,ndvi,class", lines[0])
	require.Equal(t, "75.005,15.495,1,Dense Vegetation", lines[1])
	require.Equal(t, "75.035,15.495,0.1,Built-up / Bare", lines[2])
}

func TestCreatePointsCSVAppendsExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points")

	require.NoError(t, CreatePointsCSV(testResult(), path))

	_, err := os.Stat(path + ".csv")
	require.NoError(t, err)
}
