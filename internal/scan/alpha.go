package scan

import (
	"math"
	"strconv"
	"strings"

	"github.com/evert/color-hints-mcp-go/internal/pkg/color"
)

// hueUnits converts a hue suffix to degrees. "grad" must be tried before
// "rad".
var hueUnits = []struct {
	suffix string
	scale  float64
}{
	{"deg", 1},
	{"grad", 0.9},
	{"rad", 180 / math.Pi},
	{"turn", 360},
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// parseChannel reads an rgb or gray component: a number clamped to [0,255]
// or a percentage clamped to [0,100] and scaled to 255.
func parseChannel(s string) (uint8, bool) {
	var v float64
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		f, ok := parseNumber(pct)
		if !ok {
			return 0, false
		}
		v = color.Clamp(f, 0, 100) * 255 / 100
	} else {
		f, ok := parseNumber(s)
		if !ok {
			return 0, false
		}
		v = color.Clamp(f, 0, 255)
	}
	return uint8(color.ClampInt(color.RoundHalfUp(v), 0, 255)), true
}

// parsePercent reads a required percentage and returns it as a unit value.
func parsePercent(s string) (float64, bool) {
	pct, ok := strings.CutSuffix(s, "%")
	if !ok {
		return 0, false
	}
	f, ok := parseNumber(pct)
	if !ok {
		return 0, false
	}
	return color.Clamp(f, 0, 100) / 100, true
}

// parseHue reads a hue with an optional unit and returns it as a unit turn
// in [0,1).
func parseHue(s string) (float64, bool) {
	s = strings.ToLower(s)
	scale := 1.0
	for _, u := range hueUnits {
		if rest, ok := strings.CutSuffix(s, u.suffix); ok {
			s, scale = rest, u.scale
			break
		}
	}
	f, ok := parseNumber(s)
	if !ok {
		return 0, false
	}
	deg := math.Mod(f*scale, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg / 360, true
}

// parseAlpha reads an alpha component: a percentage mapped onto [0,1] or a
// decimal clamped to [0,1].
func parseAlpha(s string) (float64, bool) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		f, ok := parseNumber(pct)
		if !ok {
			return 0, false
		}
		return color.Clamp(f, 0, 100) / 100, true
	}
	f, ok := parseNumber(s)
	if !ok {
		return 0, false
	}
	return color.Clamp(f, 0, 1), true
}

// parseAlphaByte reads two hex digits.
func parseAlphaByte(s string) (uint8, bool) {
	if len(s) != 2 {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}
