package main

import (
	"fmt"
	"log"
	"os"

	"github.com/paulmach/orb/maptile"

	"github.com/pyfisch/colorful-map/pkg/colorfulmap"
)

func main() {
	data, err := os.ReadFile("10-536-356.mvt")
	if err != nil {
		log.Fatal(err)
	}

	cache, err := colorfulmap.NewTileCache(colorfulmap.CacheOptions{
		MaxMemory:   16 * 1024 * 1024, // 16MB of compressed SVG
		Compression: "lz4",
	})
	if err != nil {
		log.Fatal(err)
	}

	renderer := colorfulmap.NewRenderer()
	render := func(data []byte) (string, error) {
		tile, err := renderer.Render(data)
		if err != nil {
			return "", err
		}
		return tile.SVG(), nil
	}

	key := maptile.New(536, 356, 10)

	// First access renders, later accesses are served from the cache
	for i := 0; i < 3; i++ {
		svg, err := cache.Get(key, data, render)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Access %d: %d bytes\n", i+1, len(svg))
	}

	stats := cache.Stats()
	fmt.Printf("Cached tiles: %d (%d bytes)\n", stats.TileCount, stats.UsedMemory)
	fmt.Printf("Hits: %d, misses: %d\n", stats.Hits, stats.Misses)
}
