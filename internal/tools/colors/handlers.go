package colors

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/evert/color-hints-mcp-go/internal/pkg/format"
	"github.com/evert/color-hints-mcp-go/internal/pkg/response"
	"github.com/evert/color-hints-mcp-go/internal/pkg/validate"
	"github.com/evert/color-hints-mcp-go/internal/scan"
	"github.com/evert/color-hints-mcp-go/internal/tools"
)

// --- find_colors ---

type FindColorsInput struct {
	Text             string   `json:"text" jsonschema:"required" jsonschema_description:"The text to scan for color literals"`
	AllowedNotations []string `json:"allowed_notations,omitempty" jsonschema_description:"Notations to look for (hex, hexa, hex_compressed, hexa_compressed, rgb, rgba, hsl, hsla, hwb, hwba, gray, graya, webcolor, pantone_code, ral_code, ansi_code). Default: all"`
	HexAlphaOrder    string   `json:"hex_alpha_order,omitempty" jsonschema_description:"Alpha position in 4- and 8-digit hex: rgba (default, alpha last) or argb (alpha first)"`
	AlphaPrecision   int      `json:"alpha_precision,omitempty" jsonschema_description:"Decimal digits kept in alpha_decimal (default 3)"`
	MaxResults       int      `json:"max_results,omitempty" jsonschema_description:"Maximum number of colors to return (default 100, max 1000)"`
}

type FindColorsOutput struct {
	Colors     []tools.ColorHit `json:"colors"`
	TotalFound int              `json:"total_found"`
	Truncated  bool             `json:"truncated"`
}

func createFindColorsHandler(engine *scan.Engine) mcp.ToolHandlerFor[FindColorsInput, FindColorsOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input FindColorsInput) (*mcp.CallToolResult, FindColorsOutput, error) {
		if err := validate.Text(input.Text); err != nil {
			return nil, FindColorsOutput{}, err
		}
		e, err := tools.Engine(engine, tools.Overrides{
			AllowedNotations: input.AllowedNotations,
			HexAlphaOrder:    input.HexAlphaOrder,
			AlphaPrecision:   input.AlphaPrecision,
		})
		if err != nil {
			return nil, FindColorsOutput{}, err
		}

		hits, total := tools.Collect(e, input.Text, tools.ResultLimit(input.MaxResults))

		rb := response.New()
		rb.Header("Colors Found")
		rb.KeyValue("Found", format.Count(total, "color"))
		if total > len(hits) {
			rb.KeyValue("Showing", len(hits))
		}
		rb.Blank()
		tools.WriteHits(rb, hits)

		output := FindColorsOutput{
			Colors:     hits,
			TotalFound: total,
			Truncated:  total > len(hits),
		}

		return rb.TextResult(), output, nil
	}
}

// --- get_color_at_offset ---

type ColorAtInput struct {
	Text             string   `json:"text" jsonschema:"required" jsonschema_description:"The document text"`
	Offset           int      `json:"offset" jsonschema:"required" jsonschema_description:"Byte offset of the cursor in text"`
	WindowRadius     int      `json:"window_radius,omitempty" jsonschema_description:"Bytes scanned on either side of the offset (default 50)"`
	VisibleStart     *int     `json:"visible_start,omitempty" jsonschema_description:"Byte offset where the visible region begins (default 0)"`
	VisibleEnd       *int     `json:"visible_end,omitempty" jsonschema_description:"Byte offset where the visible region ends (default: end of text)"`
	AllowedNotations []string `json:"allowed_notations,omitempty" jsonschema_description:"Notations to look for. Default: all"`
	HexAlphaOrder    string   `json:"hex_alpha_order,omitempty" jsonschema_description:"rgba (default) or argb"`
	AlphaPrecision   int      `json:"alpha_precision,omitempty" jsonschema_description:"Decimal digits kept in alpha_decimal (default 3)"`
}

type ColorAtOutput struct {
	Found bool            `json:"found"`
	Color *tools.ColorHit `json:"color,omitempty"`
}

func createColorAtHandler(engine *scan.Engine) mcp.ToolHandlerFor[ColorAtInput, ColorAtOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ColorAtInput) (*mcp.CallToolResult, ColorAtOutput, error) {
		if err := validate.Text(input.Text); err != nil {
			return nil, ColorAtOutput{}, err
		}
		if err := validate.Offset("offset", input.Offset, input.Text); err != nil {
			return nil, ColorAtOutput{}, err
		}
		visible, err := visibleRegion(input.Text, input.VisibleStart, input.VisibleEnd)
		if err != nil {
			return nil, ColorAtOutput{}, err
		}
		e, err := tools.Engine(engine, tools.Overrides{
			AllowedNotations: input.AllowedNotations,
			HexAlphaOrder:    input.HexAlphaOrder,
			AlphaPrecision:   input.AlphaPrecision,
			WindowRadius:     input.WindowRadius,
		})
		if err != nil {
			return nil, ColorAtOutput{}, err
		}

		rb := response.New()
		rb.Header("Color at Offset %d", input.Offset)

		hit, ok := e.ColorAt(input.Text, input.Offset, visible)
		if !ok {
			rb.Line("No color literal at this offset.")
			return rb.TextResult(), ColorAtOutput{}, nil
		}

		out := tools.NewColorHit(hit)
		rb.KeyValue("Literal", out.Text)
		rb.KeyValue("Notation", out.Kind)
		rb.KeyValue("Span", fmt.Sprintf("%d-%d", out.Start, out.End))
		rb.Color("Color", out.Hex, out.AlphaHex, out.AlphaDecimal)

		return rb.TextResult(), ColorAtOutput{Found: true, Color: &out}, nil
	}
}

// visibleRegion builds the visible region from optional bounds, defaulting
// to the whole text.
func visibleRegion(text string, start, end *int) (scan.Region, error) {
	region := scan.Whole(text)
	if start != nil {
		if err := validate.Offset("visible_start", *start, text); err != nil {
			return region, err
		}
		region.Begin = *start
	}
	if end != nil {
		if err := validate.Offset("visible_end", *end, text); err != nil {
			return region, err
		}
		region.End = *end
	}
	if region.End < region.Begin {
		return region, fmt.Errorf("visible_end %d is before visible_start %d", region.End, region.Begin)
	}
	return region, nil
}
