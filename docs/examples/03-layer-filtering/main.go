package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pyfisch/colorful-map/pkg/colorfulmap"
)

// Render only the base layers, for example as a background for labels
func renderBaseLayers(data []byte) (*colorfulmap.Tile, error) {
	opts := colorfulmap.DefaultRenderOptions()
	opts.LayerFilter = []string{
		"earth",   // Land
		"water",   // Oceans, lakes and rivers
		"landuse", // Parks, forests, residential areas
	}

	return colorfulmap.NewRenderer().RenderWithOptions(data, opts)
}

// Render at retina resolution
func renderLarge(data []byte) (*colorfulmap.Tile, error) {
	opts := colorfulmap.DefaultRenderOptions()
	opts.OutputExtent = 512

	return colorfulmap.NewRenderer().RenderWithOptions(data, opts)
}

func main() {
	data, err := os.ReadFile("10-536-356.mvt")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("=== Base layers only ===")
	base, err := renderBaseLayers(data)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Features painted: %d\n", base.Painted())

	fmt.Println("\n=== 512px tile ===")
	large, err := renderLarge(data)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(colorfulmap.WrapSVGExtent(large.SVG(), "large", 512))
}
