package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteArtifacts(t *testing.T) {
	result := testResult()
	dir := filepath.Join(t.TempDir(), "artifacts")

	artifacts, err := WriteArtifacts(context.Background(), result, dir)
	require.NoError(t, err)

	// Region name spaces become underscores, the window end dates the files.
	require.Equal(t, fmt.Sprintf("%s/Hampi_Hills_2023_01_31_ndvi.png", dir), artifacts.HeatmapPath)
	require.Equal(t, fmt.Sprintf("%s/Hampi_Hills_2023_01_31_classes.png", dir), artifacts.ClassMapPath)
	require.Equal(t, fmt.Sprintf("%s/Hampi_Hills_2023_01_31_points.geojson", dir), artifacts.GeoJSONPath)
	require.Equal(t, fmt.Sprintf("%s/Hampi_Hills_2023_01_31_points.csv", dir), artifacts.CSVPath)

	for _, path := range []string{artifacts.HeatmapPath, artifacts.ClassMapPath, artifacts.GeoJSONPath, artifacts.CSVPath} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		require.NotZero(t, info.Size())
	}
}

func TestWriteArtifactsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	dir := filepath.Join(t.TempDir(), "artifacts")

	_, err := WriteArtifacts(ctx, testResult(), dir)
	require.ErrorIs(t, err, context.Canceled)

	_, err = os.Stat(dir)
	require.True(t, os.IsNotExist(err))
}

func TestWriteArtifactsRejectsFileAsOutputDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not_a_dir")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := WriteArtifacts(context.Background(), testResult(), path)
	require.Error(t, err)
}
