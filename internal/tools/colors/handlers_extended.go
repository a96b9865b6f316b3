package colors

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/evert/color-hints-mcp-go/internal/pkg/color"
	"github.com/evert/color-hints-mcp-go/internal/pkg/response"
	"github.com/evert/color-hints-mcp-go/internal/scan"
	"github.com/evert/color-hints-mcp-go/internal/tools"
)

// maxSuggestions bounds the near-miss keys lookup_color offers.
const maxSuggestions = 5

// --- convert_color ---

type ConvertInput struct {
	Value          string `json:"value" jsonschema:"required" jsonschema_description:"A single color, e.g. #f0a, rgba(0,128,255,.5), hsl(120deg 100% 50%), rebeccapurple, RAL 3020"`
	HexAlphaOrder  string `json:"hex_alpha_order,omitempty" jsonschema_description:"rgba (default) or argb"`
	AlphaPrecision int    `json:"alpha_precision,omitempty" jsonschema_description:"Decimal digits kept in alpha_decimal (default 3)"`
}

type ConvertOutput struct {
	Value        string `json:"value"`
	Kind         string `json:"kind"`
	Hex          string `json:"hex"`
	ShortHex     string `json:"short_hex,omitempty"`
	Red          int    `json:"red"`
	Green        int    `json:"green"`
	Blue         int    `json:"blue"`
	AlphaHex     string `json:"alpha_hex,omitempty"`
	AlphaDecimal string `json:"alpha_decimal,omitempty"`
	Gray         bool   `json:"gray"`
}

func createConvertHandler(engine *scan.Engine) mcp.ToolHandlerFor[ConvertInput, ConvertOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ConvertInput) (*mcp.CallToolResult, ConvertOutput, error) {
		value := strings.TrimSpace(input.Value)
		if value == "" {
			return nil, ConvertOutput{}, fmt.Errorf("value is empty — pass a color such as #ff0000 or rgb(255, 0, 0)")
		}
		e, err := tools.Engine(engine, tools.Overrides{
			HexAlphaOrder:  input.HexAlphaOrder,
			AlphaPrecision: input.AlphaPrecision,
		})
		if err != nil {
			return nil, ConvertOutput{}, err
		}

		hits := e.Scan(value)
		if len(hits) != 1 || hits[0].Match.Start != 0 || hits[0].Match.End != len(value) {
			return nil, ConvertOutput{}, fmt.Errorf(
				"%q is not a single supported color — use forms like #ff0000, rgb(255, 0, 0), hsl(0, 100%%, 50%%), red, or RAL 3020; use find_colors for longer text",
				value)
		}
		hit := hits[0]
		if !hit.Color.OK() {
			return nil, ConvertOutput{}, fmt.Errorf(
				"%q looks like %s notation but is not a known or valid color — check the value, or use lookup_color to search the tables",
				value, hit.Match.Kind)
		}

		r, g, b, _ := color.ParseHex(hit.Color.Hex)
		output := ConvertOutput{
			Value:        value,
			Kind:         hit.Match.Kind.String(),
			Hex:          hit.Color.Hex,
			Red:          int(r),
			Green:        int(g),
			Blue:         int(b),
			AlphaHex:     hit.Color.AlphaHex,
			AlphaDecimal: hit.Color.AlphaDecimal,
			Gray:         color.IsGray(hit.Color.Hex),
		}
		if short := color.CompressHex(hit.Color.Hex); short != hit.Color.Hex {
			output.ShortHex = short
		}

		rb := response.New()
		rb.Header("Color Conversion")
		rb.KeyValue("Input", value)
		rb.KeyValue("Notation", output.Kind)
		rb.Color("Color", output.Hex, output.AlphaHex, output.AlphaDecimal)
		rb.KeyValue("RGB", fmt.Sprintf("%d, %d, %d", r, g, b))
		if output.ShortHex != "" {
			rb.KeyValue("Short hex", output.ShortHex)
		}
		if output.Gray {
			rb.KeyValue("Gray", "yes")
		}

		return rb.TextResult(), output, nil
	}
}

// --- lookup_color ---

type LookupInput struct {
	Table string `json:"table" jsonschema:"required" jsonschema_description:"Table to search: css, pantone, pantone_name, ral, or ansi"`
	Key   string `json:"key" jsonschema:"required" jsonschema_description:"Key to look up, case-insensitive (e.g. rebeccapurple, 185 c, ral 3020, 1;31)"`
}

type LookupOutput struct {
	Table string `json:"table"`
	Key   string `json:"key"`
	Hex   string `json:"hex"`
}

func createLookupHandler(engine *scan.Engine) mcp.ToolHandlerFor[LookupInput, LookupOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input LookupInput) (*mcp.CallToolResult, LookupOutput, error) {
		table, err := engine.Tables().Table(input.Table)
		if err != nil {
			return nil, LookupOutput{}, err
		}
		if table.Len() == 0 {
			return nil, LookupOutput{}, fmt.Errorf("the %s table is empty — the server was started without Pantone books", strings.ToLower(input.Table))
		}

		key := strings.Join(strings.Fields(strings.ToLower(input.Key)), " ")
		hex, ok := table.Get(key)
		if !ok {
			if near := suggest(table.Keys(), key); len(near) > 0 {
				return nil, LookupOutput{}, fmt.Errorf("%q is not in the %s table — did you mean: %s?", input.Key, table.Name(), strings.Join(near, ", "))
			}
			return nil, LookupOutput{}, fmt.Errorf("%q is not in the %s table", input.Key, table.Name())
		}

		rb := response.New()
		rb.Header("Color Lookup")
		rb.KeyValue("Table", table.Name())
		rb.KeyValue("Key", key)
		rb.KeyValue("Color", hex)

		return rb.TextResult(), LookupOutput{Table: table.Name(), Key: key, Hex: hex}, nil
	}
}

// suggest returns up to maxSuggestions keys containing key, shortest first.
func suggest(keys []string, key string) []string {
	if key == "" {
		return nil
	}
	var near []string
	for _, k := range keys {
		if strings.Contains(k, key) {
			near = append(near, k)
		}
	}
	slices.SortFunc(near, func(a, b string) int {
		if len(a) != len(b) {
			return len(a) - len(b)
		}
		return strings.Compare(a, b)
	})
	return near[:min(len(near), maxSuggestions)]
}
