// Package response formats the text half of MCP tool results.
package response

import (
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Builder constructs formatted text responses for MCP tool results, so every
// tool reports in the same layout.
type Builder struct {
	sb strings.Builder
}

// New creates a new response Builder.
func New() *Builder {
	return &Builder{}
}

// Header writes a header line with optional formatting arguments.
func (b *Builder) Header(format string, args ...any) *Builder {
	fmt.Fprintf(&b.sb, "═══ "+format+" ═══\n", args...)
	return b
}

// Section writes a section header (smaller than Header).
func (b *Builder) Section(format string, args ...any) *Builder {
	fmt.Fprintf(&b.sb, "── "+format+" ──\n", args...)
	return b
}

// KeyValue writes a key-value pair.
func (b *Builder) KeyValue(key string, value any) *Builder {
	fmt.Fprintf(&b.sb, "• %s: %v\n", key, value)
	return b
}

// Item writes a bulleted item with optional formatting arguments.
func (b *Builder) Item(format string, args ...any) *Builder {
	fmt.Fprintf(&b.sb, "  → "+format+"\n", args...)
	return b
}

// Line writes a plain line with optional formatting arguments.
func (b *Builder) Line(format string, args ...any) *Builder {
	fmt.Fprintf(&b.sb, format+"\n", args...)
	return b
}

// Blank writes an empty line.
func (b *Builder) Blank() *Builder {
	b.sb.WriteByte('\n')
	return b
}

// Raw writes raw text without any formatting.
func (b *Builder) Raw(text string) *Builder {
	b.sb.WriteString(text)
	return b
}

// Color writes a canonical color as a key-value pair.
func (b *Builder) Color(key, hex, alphaHex, alphaDecimal string) *Builder {
	return b.KeyValue(key, FormatColor(hex, alphaHex, alphaDecimal))
}

// Build returns the assembled string.
func (b *Builder) Build() string {
	return b.sb.String()
}

// TextResult constructs an MCP CallToolResult from the builder's text content.
// This is the standard return pattern for all tool handlers.
func (b *Builder) TextResult() *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: b.sb.String()}},
	}
}

// FormatColor renders a color for humans: "#0080ff", "#0080ff alpha 80 (0.5)",
// or "unresolved" when hex is empty.
func FormatColor(hex, alphaHex, alphaDecimal string) string {
	switch {
	case hex == "":
		return "unresolved"
	case alphaHex == "":
		return hex
	default:
		return fmt.Sprintf("%s alpha %s (%s)", hex, alphaHex, alphaDecimal)
	}
}
