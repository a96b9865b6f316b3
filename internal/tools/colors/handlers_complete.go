package colors

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/evert/color-hints-mcp-go/internal/hints"
	"github.com/evert/color-hints-mcp-go/internal/pkg/format"
	"github.com/evert/color-hints-mcp-go/internal/pkg/response"
	"github.com/evert/color-hints-mcp-go/internal/pkg/validate"
	"github.com/evert/color-hints-mcp-go/internal/scan"
	"github.com/evert/color-hints-mcp-go/internal/tools"
)

// maxCursors bounds the cursors one render_color_hints call may carry.
const maxCursors = 100

// --- render_color_hints ---

type RenderHintsInput struct {
	Text             string   `json:"text" jsonschema:"required" jsonschema_description:"The document text"`
	Cursors          []int    `json:"cursors" jsonschema:"required" jsonschema_description:"Byte offsets of every cursor (max 100)"`
	VisibleStart     *int     `json:"visible_start,omitempty" jsonschema_description:"Byte offset where the visible region begins (default 0)"`
	VisibleEnd       *int     `json:"visible_end,omitempty" jsonschema_description:"Byte offset where the visible region ends (default: end of text)"`
	WindowRadius     int      `json:"window_radius,omitempty" jsonschema_description:"Bytes scanned on either side of each cursor (default 50)"`
	IncludeHTML      bool     `json:"include_html,omitempty" jsonschema_description:"Include the inline swatch HTML for each hint (default false)"`
	AllowedNotations []string `json:"allowed_notations,omitempty" jsonschema_description:"Notations to look for. Default: all"`
	HexAlphaOrder    string   `json:"hex_alpha_order,omitempty" jsonschema_description:"rgba (default) or argb"`
}

type HintOutput struct {
	Cursor  int            `json:"cursor"`
	LineEnd int            `json:"line_end"`
	Color   tools.ColorHit `json:"color"`
	HTML    string         `json:"html,omitempty"`
}

type RenderHintsOutput struct {
	Hints []HintOutput `json:"hints"`
}

func createRenderHintsHandler(engine *scan.Engine) mcp.ToolHandlerFor[RenderHintsInput, RenderHintsOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input RenderHintsInput) (*mcp.CallToolResult, RenderHintsOutput, error) {
		if err := validate.Text(input.Text); err != nil {
			return nil, RenderHintsOutput{}, err
		}
		if len(input.Cursors) == 0 {
			return nil, RenderHintsOutput{}, fmt.Errorf("cursors is empty — pass at least one byte offset")
		}
		if len(input.Cursors) > maxCursors {
			return nil, RenderHintsOutput{}, fmt.Errorf("too many cursors (%d, max %d) — split the request", len(input.Cursors), maxCursors)
		}
		for i, c := range input.Cursors {
			if err := validate.Offset(fmt.Sprintf("cursors[%d]", i), c, input.Text); err != nil {
				return nil, RenderHintsOutput{}, err
			}
		}
		visible, err := visibleRegion(input.Text, input.VisibleStart, input.VisibleEnd)
		if err != nil {
			return nil, RenderHintsOutput{}, err
		}
		e, err := tools.Engine(engine, tools.Overrides{
			AllowedNotations: input.AllowedNotations,
			HexAlphaOrder:    input.HexAlphaOrder,
			WindowRadius:     input.WindowRadius,
		})
		if err != nil {
			return nil, RenderHintsOutput{}, err
		}

		buf := hints.NewBuffer(input.Text)
		buf.Visible = visible
		swatches := hints.New(e).Render(buf, input.Cursors)

		output := RenderHintsOutput{Hints: make([]HintOutput, 0, len(swatches))}
		rb := response.New()
		rb.Header("Color Hints")
		rb.KeyValue("Cursors", len(input.Cursors))
		rb.KeyValue("Rendered", format.Count(len(swatches), "hint"))
		rb.Blank()
		for _, s := range swatches {
			h := HintOutput{
				Cursor:  s.Cursor,
				LineEnd: s.LineEnd,
				Color:   tools.NewColorHit(s.Hit),
			}
			if input.IncludeHTML {
				h.HTML = hints.SwatchHTML(s.Hit.Color.Hex)
			}
			output.Hints = append(output.Hints, h)
			rb.Item("cursor %d: %s → %s (swatch at %d)", s.Cursor, h.Color.Text,
				response.FormatColor(h.Color.Hex, h.Color.AlphaHex, h.Color.AlphaDecimal), s.LineEnd)
		}

		return rb.TextResult(), output, nil
	}
}
