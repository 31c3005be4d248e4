package colorfulmap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogo/protobuf/proto"
	"github.com/paulmach/orb/encoding/mvt/vectortile"

	"github.com/pyfisch/colorful-map/internal/compress"
	"github.com/pyfisch/colorful-map/internal/painter"
)

// Renderer renders encoded vector tiles.
//
// Create a renderer with NewRenderer. Renderers hold no state and are safe
// for concurrent use.
type Renderer interface {
	// Render decodes a tile and paints it with default options.
	Render(data []byte) (*Tile, error)

	// RenderWithOptions decodes a tile and paints it with custom options.
	RenderWithOptions(data []byte, opts RenderOptions) (*Tile, error)
}

// NewRenderer creates a new tile renderer.
//
// Example:
//
//	tile, err := colorfulmap.NewRenderer().Render(data)
func NewRenderer() Renderer {
	return &rendererWrapper{
		internal: painter.NewPainter(),
	}
}

// rendererWrapper wraps the internal painter and converts types
type rendererWrapper struct {
	internal painter.Painter
}

func (r *rendererWrapper) Render(data []byte) (*Tile, error) {
	return r.RenderWithOptions(data, DefaultRenderOptions())
}

func (r *rendererWrapper) RenderWithOptions(data []byte, opts RenderOptions) (*Tile, error) {
	if opts.Decompress {
		payload, _, err := compress.Decompress(data)
		if err != nil {
			return nil, fmt.Errorf("decompress tile: %w", err)
		}
		data = payload
	}

	raw, err := Decode(data)
	if err != nil {
		return nil, err
	}

	result, err := r.internal.PaintWithOptions(raw, opts.paintOptions())
	if err != nil {
		return nil, fmt.Errorf("paint tile: %w", err)
	}
	return convertResult(result), nil
}

// RenderDecoded paints a tile that was already decoded, for example by
// Decode or by another vector tile library built on the same types.
func RenderDecoded(raw *vectortile.Tile, opts RenderOptions) (*Tile, error) {
	result, err := painter.PaintTile(raw, opts.paintOptions())
	if err != nil {
		return nil, fmt.Errorf("paint tile: %w", err)
	}
	return convertResult(result), nil
}

// Decode parses an uncompressed vector tile.
func Decode(data []byte) (*vectortile.Tile, error) {
	tile := &vectortile.Tile{}
	if err := proto.Unmarshal(data, tile); err != nil {
		return nil, fmt.Errorf("decode tile: %w", err)
	}
	return tile, nil
}

// WrapSVG embeds rendered paths in a standalone 256x256 SVG document.
// The id is set on the root element unless empty.
func WrapSVG(fragment string, id string) string {
	return WrapSVGExtent(fragment, id, 256)
}

// WrapSVGExtent is WrapSVG for tiles rendered with a custom OutputExtent.
func WrapSVGExtent(fragment string, id string, extent float32) string {
	size := strconv.FormatFloat(float64(extent), 'f', -1, 32)

	var b strings.Builder
	b.Grow(len(fragment) + 160)
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="`)
	b.WriteString(size)
	b.WriteString(`" height="`)
	b.WriteString(size)
	b.WriteString(`" viewBox="0 0 `)
	b.WriteString(size)
	b.WriteByte(' ')
	b.WriteString(size)
	b.WriteByte('"')
	if id != "" {
		b.WriteString(` id="`)
		b.WriteString(idEscaper.Replace(id))
		b.WriteByte('"')
	}
	b.WriteString(">\n")
	b.WriteString(fragment)
	b.WriteString("</svg>\n")
	return b.String()
}

var idEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")
