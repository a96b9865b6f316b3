// Package tools holds what the MCP tool packages share: tier-aware tool
// registration, per-call engine options, and the hit shape tools return.
package tools

import (
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/evert/color-hints-mcp-go/internal/pkg/response"
	"github.com/evert/color-hints-mcp-go/internal/scan"
)

const (
	// DefaultMaxResults is how many hits a scanning tool returns when the
	// caller does not say.
	DefaultMaxResults = 100
	// MaxResultsLimit caps max_results.
	MaxResultsLimit = 1000
)

// Filter decides whether a tool is registered.
type Filter func(tool *mcp.Tool) bool

// Add registers tool unless include rejects it. A nil include accepts all.
func Add[In, Out any](server *mcp.Server, include Filter, tool *mcp.Tool, handler mcp.ToolHandlerFor[In, Out]) bool {
	if include != nil && !include(tool) {
		slog.Debug("tool filtered out", "tool", tool.Name)
		return false
	}
	mcp.AddTool(server, tool, handler)
	return true
}

// Overrides are the per-call engine options a tool input may carry. Zero
// fields keep the server's configured value.
type Overrides struct {
	AllowedNotations []string
	HexAlphaOrder    string
	AlphaPrecision   int
	WindowRadius     int
}

// Engine returns base, or a derived engine when o overrides anything.
func Engine(base *scan.Engine, o Overrides) (*scan.Engine, error) {
	if len(o.AllowedNotations) == 0 && o.HexAlphaOrder == "" && o.AlphaPrecision == 0 && o.WindowRadius == 0 {
		return base, nil
	}

	opts := base.Options()
	if len(o.AllowedNotations) > 0 {
		allowed, err := scan.ParseKindSet(o.AllowedNotations)
		if err != nil {
			return nil, fmt.Errorf("allowed_notations: %w", err)
		}
		opts.Allowed = allowed
	}
	if o.HexAlphaOrder != "" {
		order, err := scan.ParseOrder(o.HexAlphaOrder)
		if err != nil {
			return nil, fmt.Errorf("hex_alpha_order: %w", err)
		}
		opts.Order = order
	}
	switch {
	case o.AlphaPrecision < 0 || o.AlphaPrecision > scan.MaxPrecision:
		return nil, fmt.Errorf("alpha_precision %d is out of range — use 1 to %d", o.AlphaPrecision, scan.MaxPrecision)
	case o.AlphaPrecision > 0:
		opts.Precision = o.AlphaPrecision
	}
	switch {
	case o.WindowRadius < 0:
		return nil, fmt.Errorf("window_radius %d must not be negative", o.WindowRadius)
	case o.WindowRadius > 0:
		opts.WindowRadius = o.WindowRadius
	}
	return base.WithOptions(opts), nil
}

// ResultLimit applies the default and the cap to a max_results input.
func ResultLimit(n int) int {
	if n <= 0 {
		return DefaultMaxResults
	}
	return min(n, MaxResultsLimit)
}

// ColorHit is a color literal found in text, as returned by tools.
type ColorHit struct {
	Kind         string `json:"kind"`
	Start        int    `json:"start"`
	End          int    `json:"end"`
	Line         int    `json:"line,omitempty"`
	Text         string `json:"text"`
	Resolved     bool   `json:"resolved"`
	Hex          string `json:"hex,omitempty"`
	AlphaHex     string `json:"alpha_hex,omitempty"`
	AlphaDecimal string `json:"alpha_decimal,omitempty"`
}

// NewColorHit converts an engine hit.
func NewColorHit(hit scan.Hit) ColorHit {
	return ColorHit{
		Kind:         hit.Match.Kind.String(),
		Start:        hit.Match.Start,
		End:          hit.Match.End,
		Text:         hit.Match.Text,
		Resolved:     hit.Color.OK(),
		Hex:          hit.Color.Hex,
		AlphaHex:     hit.Color.AlphaHex,
		AlphaDecimal: hit.Color.AlphaDecimal,
	}
}

// Collect scans text and returns at most limit hits with 1-based line
// numbers, plus the total number of literals in text.
func Collect(engine *scan.Engine, text string, limit int) (hits []ColorHit, total int) {
	hits = make([]ColorHit, 0, min(limit, 16))
	line, lineFrom := 1, 0
	for m := range engine.All(text) {
		total++
		if len(hits) >= limit {
			continue
		}
		for ; lineFrom < m.Start; lineFrom++ {
			if text[lineFrom] == '\n' {
				line++
			}
		}
		hit := NewColorHit(scan.Hit{Match: m, Color: engine.Translate(m)})
		hit.Line = line
		hits = append(hits, hit)
	}
	return hits, total
}

// WriteHits lists hits in the text half of a tool result.
func WriteHits(rb *response.Builder, hits []ColorHit) {
	for _, h := range hits {
		color := response.FormatColor(h.Hex, h.AlphaHex, h.AlphaDecimal)
		if h.Line > 0 {
			rb.Item("line %d [%d:%d] %s (%s) → %s", h.Line, h.Start, h.End, h.Text, h.Kind, color)
		} else {
			rb.Item("[%d:%d] %s (%s) → %s", h.Start, h.End, h.Text, h.Kind, color)
		}
	}
}
