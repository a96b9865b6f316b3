// Package hints renders inline color swatches next to the color literals
// under one or more cursors.
//
// The editor side is abstracted as a Host: it supplies the text currently
// visible around a cursor and draws a swatch at a given offset. Buffer is an
// in-memory Host used by the MCP tools and tests.
package hints

import (
	"fmt"
	"strings"

	"github.com/evert/color-hints-mcp-go/internal/pkg/color"
	"github.com/evert/color-hints-mcp-go/internal/scan"
)

// Host is implemented by whatever displays the text.
type Host interface {
	// VisibleWindow returns the visible text around cursor and the offset
	// of its first byte within the whole document.
	VisibleWindow(cursor int) (text string, start int)
	// RenderSwatch draws a swatch of hex at document offset lineEnd.
	RenderSwatch(lineEnd int, hex string)
}

// LineEnder is an optional Host method. Hosts that implement it place the
// swatch at the end of the cursor's line in the whole document, even when
// that line runs past the visible window.
type LineEnder interface {
	LineEnd(offset int) int
}

// Swatch is one rendered hint. Offsets are document offsets.
type Swatch struct {
	Cursor  int
	LineEnd int
	Hit     scan.Hit
}

// Hinter resolves cursors to colors and asks the host to draw them.
type Hinter struct {
	engine *scan.Engine
}

// New returns a Hinter that scans with engine.
func New(engine *scan.Engine) *Hinter {
	return &Hinter{engine: engine}
}

// Resolve finds the color under cursor. Literals that do not resolve to a
// color are reported as no hint.
func (h *Hinter) Resolve(host Host, cursor int) (Swatch, bool) {
	text, start := host.VisibleWindow(cursor)
	local := cursor - start

	hit, ok := h.engine.ColorAt(text, local, scan.Whole(text))
	if !ok || !hit.Color.OK() {
		return Swatch{}, false
	}

	hit.Match.Start += start
	hit.Match.End += start
	end := start + lineEnd(text, local)
	if le, ok := host.(LineEnder); ok {
		end = le.LineEnd(cursor)
	}
	return Swatch{
		Cursor:  cursor,
		LineEnd: end,
		Hit:     hit,
	}, true
}

// Render resolves every cursor and draws a swatch for each color found.
// Two cursors on the same literal produce one swatch.
func (h *Hinter) Render(host Host, cursors []int) []Swatch {
	var swatches []Swatch
	seen := make(map[[2]int]bool)
	for _, cursor := range cursors {
		s, ok := h.Resolve(host, cursor)
		if !ok {
			continue
		}
		span := [2]int{s.Hit.Match.Start, s.Hit.Match.End}
		if seen[span] {
			continue
		}
		seen[span] = true
		host.RenderSwatch(s.LineEnd, s.Hit.Color.Hex)
		swatches = append(swatches, s)
	}
	return swatches
}

// lineEnd returns the offset of the newline ending the line that holds
// offset, or len(text) when that line is the last one in text. Without a
// LineEnder this is the visible window edge for lines that run past it.
func lineEnd(text string, offset int) int {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		return len(text)
	}
	if i := strings.IndexByte(text[offset:], '\n'); i >= 0 {
		end := offset + i
		if end > 0 && text[end-1] == '\r' {
			end--
		}
		return end
	}
	return len(text)
}

const swatchTemplate = `<body id="inline-color-hint">
    <style>
        div.color-box {
            padding: .5em;
            border: 1px solid var(--foreground);
            background-color: %s;
        }
    </style>
    <div class="color-box"></div>
</body>`

// SwatchHTML returns the inline markup for a swatch of hex. It returns ""
// when hex is not a #rrggbb color.
func SwatchHTML(hex string) string {
	r, g, b, ok := color.ParseHex(hex)
	if !ok || !strings.HasPrefix(hex, "#") {
		return ""
	}
	return fmt.Sprintf(swatchTemplate, color.RGBToHex(r, g, b))
}
