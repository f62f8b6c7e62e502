package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/carpark/prefabs"
	"github.com/stretchr/testify/require"
)

func TestValidateEmbeddedScene(t *testing.T) {
	warnings, err := validateScene("")
	require.NoError(t, err)
	require.Empty(t, warnings)
}

func TestValidateSceneWarnings(t *testing.T) {
	dir := t.TempDir()
	prev := prefabs.Dir
	prefabs.Dir = dir
	t.Cleanup(func() { prefabs.Dir = prev })

	body := `cars:
  - id: red
    transform: {x: 650, y: 500}
    sprite: {image: car_red.png}
    spot: {x: 650, y: 500}
  - id: yellow
    sprite: {image: car_yellow.png}
    spot: {x: 900, y: 100}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lazy.yaml"), []byte(body), 0o644))

	warnings, err := validateScene("lazy.yaml")
	require.NoError(t, err)
	require.Equal(t, []string{
		`car "red" starts inside its spot`,
		`car "yellow" spot is off screen`,
		"end scene has no overlay elements",
	}, warnings)
}

func TestValidateSceneMissingImage(t *testing.T) {
	dir := t.TempDir()
	prev := prefabs.Dir
	prefabs.Dir = dir
	t.Cleanup(func() { prefabs.Dir = prev })

	body := "cars:\n  - id: red\n    sprite: {image: car_blue.png}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(body), 0o644))

	_, err := validateScene("bad.yaml")
	require.Error(t, err)
}
