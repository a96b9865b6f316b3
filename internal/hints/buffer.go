package hints

import "github.com/evert/color-hints-mcp-go/internal/scan"

// Rendered is a swatch drawn on a Buffer.
type Rendered struct {
	LineEnd int
	Hex     string
}

// Buffer is a Host over an in-memory document. It is not safe for
// concurrent use.
type Buffer struct {
	Text     string
	Visible  scan.Region
	Rendered []Rendered
}

// NewBuffer returns a buffer whose whole text is visible.
func NewBuffer(text string) *Buffer {
	return &Buffer{Text: text, Visible: scan.Whole(text)}
}

// VisibleWindow returns the visible region, clipped to the text. The cursor
// does not narrow it; the engine applies its own window radius.
func (b *Buffer) VisibleWindow(int) (string, int) {
	begin := min(max(b.Visible.Begin, 0), len(b.Text))
	end := min(max(b.Visible.End, begin), len(b.Text))
	return b.Text[begin:end], begin
}

// LineEnd returns the end of the line holding offset in the whole text.
func (b *Buffer) LineEnd(offset int) int {
	return lineEnd(b.Text, offset)
}

// RenderSwatch records the swatch.
func (b *Buffer) RenderSwatch(lineEnd int, hex string) {
	b.Rendered = append(b.Rendered, Rendered{LineEnd: lineEnd, Hex: hex})
}

// Clear drops every rendered swatch, as an edit to the text would.
func (b *Buffer) Clear() {
	b.Rendered = nil
}
