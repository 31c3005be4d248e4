// Package colorfulmap renders Mapbox Vector Tiles as SVG.
//
// Every line string and polygon of a tile becomes one SVG <path> element.
// Paths carry their layer, kind and a few flags as CSS classes so a style
// sheet decides how the map looks. Points (labels) are not drawn.
//
// # Basic Usage
//
//	data, err := os.ReadFile("10-536-356.mvt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tile, err := colorfulmap.NewRenderer().Render(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(colorfulmap.WrapSVG(tile.SVG(), "10-536-356"))
//
// # Output
//
// Each painted feature produces one line:
//
//	<path class="layer-water kind-ocean min-zoom-0" data-id="42" d="M 0 0 L 256 0 L 256 256 Z "></path>
//
// Coordinates are absolute pixels of a 256x256 tile. Paths are ordered by the
// sort_rank tag of their feature, lowest first; features without sort_rank
// are drawn last.
//
// # Error Handling
//
// By default the first malformed feature aborts the tile. Set
// RenderOptions.SkipInvalidFeatures to leave bad features out instead:
//
//	opts := colorfulmap.DefaultRenderOptions()
//	opts.SkipInvalidFeatures = true
//	opts.ErrorLog = os.Stderr
//	tile, err := colorfulmap.NewRenderer().RenderWithOptions(data, opts)
//	fmt.Printf("skipped %d features\n", tile.Skipped())
//
// # Hit Testing
//
// With RenderOptions.CollectFeatures the tile keeps a record of every painted
// feature and indexes their pixel bounds in an R-tree:
//
//	for _, f := range tile.FeaturesAt(128, 64) {
//	    fmt.Println(f.Layer(), f.Kind())
//	}
//
// # Caching
//
// TileCache keeps rendered tiles in memory, compressed, keyed by tile
// coordinates. See NewTileCache.
package colorfulmap
