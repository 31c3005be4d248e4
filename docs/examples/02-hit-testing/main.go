package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pyfisch/colorful-map/pkg/colorfulmap"
)

func main() {
	data, err := os.ReadFile("10-536-356.mvt")
	if err != nil {
		log.Fatal(err)
	}

	// Keep feature records for hit testing
	opts := colorfulmap.DefaultRenderOptions()
	opts.CollectFeatures = true

	tile, err := colorfulmap.NewRenderer().RenderWithOptions(data, opts)
	if err != nil {
		log.Fatal(err)
	}

	// Features under the cursor, topmost last (O(log n) R-tree query)
	for _, feature := range tile.FeaturesAt(128, 128) {
		id, _ := feature.ID()
		fmt.Printf("  %s/%s #%d: %s\n",
			feature.Layer(),
			feature.Kind(),
			id,
			feature.GeometryType())
	}

	// Features in the top left quarter
	quarter := colorfulmap.Bounds{MinX: 0, MinY: 0, MaxX: 128, MaxY: 128}
	fmt.Printf("Top left quarter: %d features\n", len(tile.FeaturesInBounds(quarter)))
}
