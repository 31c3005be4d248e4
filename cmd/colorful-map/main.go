// Command colorful-map renders a Mapbox Vector Tile as an SVG document.
//
// Usage:
//
//	colorful-map -tile 10-536-356.mvt -z 10 -x 536 -y 356 -out tile.svg
//
// The tile may be gzip or zstd compressed.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/paulmach/orb/maptile"
	log "github.com/sirupsen/logrus"

	"github.com/pyfisch/colorful-map/pkg/colorfulmap"
)

// warnWriter forwards skipped feature reports to the logger
type warnWriter struct{}

func (warnWriter) Write(p []byte) (int, error) {
	log.Warn(strings.TrimSpace(string(p)))
	return len(p), nil
}

func main() {
	var (
		tilePath   = flag.String("tile", "", "path to the vector tile (required)")
		outPath    = flag.String("out", "", "write the SVG to this file instead of stdout")
		zoom       = flag.Uint("z", 0, "tile zoom, used for the SVG id")
		x          = flag.Uint("x", 0, "tile column, used for the SVG id")
		y          = flag.Uint("y", 0, "tile row, used for the SVG id")
		skipErrors = flag.Bool("skip-errors", false, "leave malformed features out instead of failing")
		verbose    = flag.Bool("v", false, "log tile statistics to stderr")
	)
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if *tilePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	tile := maptile.New(uint32(*x), uint32(*y), maptile.Zoom(*zoom))
	if !tile.Valid() {
		log.Fatalf("invalid tile %d/%d/%d", tile.Z, tile.X, tile.Y)
	}

	data, err := os.ReadFile(*tilePath)
	if err != nil {
		log.Fatal(err)
	}

	opts := colorfulmap.DefaultRenderOptions()
	opts.SkipInvalidFeatures = *skipErrors
	opts.CollectFeatures = *verbose
	if *skipErrors {
		opts.ErrorLog = warnWriter{}
	}

	rendered, err := colorfulmap.NewRenderer().RenderWithOptions(data, opts)
	if err != nil {
		log.Fatalf("Failed to render %s: %v", *tilePath, err)
	}

	if *verbose {
		bound := tile.Bound()
		log.Infof("Tile %d/%d/%d covers [%.4f,%.4f] to [%.4f,%.4f]",
			tile.Z, tile.X, tile.Y,
			bound.Min.Lon(), bound.Min.Lat(), bound.Max.Lon(), bound.Max.Lat())
		log.Infof("Painted %d features, skipped %d", rendered.Painted(), rendered.Skipped())

		perLayer := make(map[string]int)
		for _, f := range rendered.Features() {
			perLayer[f.Layer()]++
		}
		for layer, n := range perLayer {
			log.Debugf("  %s: %d", layer, n)
		}
	}

	id := fmt.Sprintf("%d-%d-%d", tile.Z, tile.X, tile.Y)
	svg := colorfulmap.WrapSVG(rendered.SVG(), id)

	if *outPath == "" {
		if _, err := os.Stdout.WriteString(svg); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := os.WriteFile(*outPath, []byte(svg), 0o644); err != nil {
		log.Fatal(err)
	}
}
