package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/pyfisch/colorful-map/pkg/colorfulmap"
)

func renderTile(path string) (*colorfulmap.Tile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("tile file not found: %s", path)
		}
		return nil, err
	}

	renderer := colorfulmap.NewRenderer()

	// Strict mode: the first malformed feature fails the tile
	tile, err := renderer.Render(data)
	if err == nil {
		return tile, nil
	}
	log.Printf("Failed to render %s: %v", path, err)

	// Lenient mode: leave malformed features out and report them
	opts := colorfulmap.DefaultRenderOptions()
	opts.SkipInvalidFeatures = true
	opts.ErrorLog = os.Stderr

	tile, err = renderer.RenderWithOptions(data, opts)
	if err != nil {
		// not a vector tile at all
		return nil, err
	}
	log.Printf("Warning: %s: skipped %d features", path, tile.Skipped())

	return tile, nil
}

func main() {
	tile, err := renderTile("10-536-356.mvt")
	if err != nil {
		log.Printf("Error: %v", err)
		return
	}

	fmt.Printf("Successfully rendered tile: %d features\n", tile.Painted())

	// Try to render a non-existent tile
	if _, err := renderTile("missing.mvt"); err != nil {
		fmt.Printf("Expected error: %v\n", err)
	}
}
