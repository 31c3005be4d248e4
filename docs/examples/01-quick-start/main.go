package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pyfisch/colorful-map/pkg/colorfulmap"
)

func main() {
	// Read tile file (gzip compressed tiles work too)
	data, err := os.ReadFile("10-536-356.mvt")
	if err != nil {
		log.Fatal(err)
	}

	// Render tile
	tile, err := colorfulmap.NewRenderer().Render(data)
	if err != nil {
		log.Fatal(err)
	}

	// Write a standalone SVG document
	svg := colorfulmap.WrapSVG(tile.SVG(), "10-536-356")
	if err := os.WriteFile("10-536-356.svg", []byte(svg), 0o644); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Painted: %d features\n", tile.Painted())
}
