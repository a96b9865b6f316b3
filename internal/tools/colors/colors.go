// Package colors exposes the color scanner as MCP tools.
package colors

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/evert/color-hints-mcp-go/internal/pkg/ptr"
	"github.com/evert/color-hints-mcp-go/internal/scan"
	"github.com/evert/color-hints-mcp-go/internal/tools"
)

// Register registers the color tools with the MCP server.
func Register(server *mcp.Server, engine *scan.Engine, include tools.Filter) {
	tools.Add(server, include, &mcp.Tool{
		Name:        "find_colors",
		Description: "Find every color literal in text (hex, rgb/rgba, hsl/hsla, hwb, gray, CSS names, Pantone, RAL, ANSI escape codes) and convert each to #rrggbb plus optional alpha.",
		Annotations: &mcp.ToolAnnotations{
			Title:          "Find Colors",
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  ptr.Bool(false),
		},
	}, createFindColorsHandler(engine))

	tools.Add(server, include, &mcp.Tool{
		Name:        "get_color_at_offset",
		Description: "Get the color literal under a byte offset of the text, as an editor would for the cursor position. Only the text within window_radius bytes of the offset is considered.",
		Annotations: &mcp.ToolAnnotations{
			Title:          "Get Color at Offset",
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  ptr.Bool(false),
		},
	}, createColorAtHandler(engine))

	// --- Extended tools ---

	tools.Add(server, include, &mcp.Tool{
		Name:        "convert_color",
		Description: "Convert a single color value in any supported notation to canonical #rrggbb, RGB bytes, alpha, and the short hex form when one exists.",
		Annotations: &mcp.ToolAnnotations{
			Title:          "Convert Color",
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  ptr.Bool(false),
		},
	}, createConvertHandler(engine))

	tools.Add(server, include, &mcp.Tool{
		Name:        "lookup_color",
		Description: "Look up a key in one of the color tables: css (named colors), pantone (codes), pantone_name, ral, or ansi.",
		Annotations: &mcp.ToolAnnotations{
			Title:          "Lookup Color",
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  ptr.Bool(false),
		},
	}, createLookupHandler(engine))

	// --- Complete tools ---

	tools.Add(server, include, &mcp.Tool{
		Name:        "render_color_hints",
		Description: "Render inline color swatches for one or more cursor positions, as an editor plugin would. Returns where each swatch goes (end of the cursor's line) and its HTML.",
		Annotations: &mcp.ToolAnnotations{
			Title:          "Render Color Hints",
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  ptr.Bool(false),
		},
	}, createRenderHintsHandler(engine))
}
