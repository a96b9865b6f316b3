package scan

import (
	"fmt"
	"strings"

	"github.com/evert/color-hints-mcp-go/internal/lookup"
	"github.com/evert/color-hints-mcp-go/internal/pkg/color"
)

// DefaultPrecision is the number of decimal digits alpha decimals keep.
const DefaultPrecision = 3

// MaxPrecision is the largest configurable alpha precision.
const MaxPrecision = 10

// Order is the position of the alpha channel in 4- and 8-digit hex literals.
type Order uint8

const (
	// OrderRGBA puts alpha last: #rrggbbaa.
	OrderRGBA Order = iota
	// OrderARGB puts alpha first: #aarrggbb.
	OrderARGB
)

func (o Order) String() string {
	if o == OrderARGB {
		return "argb"
	}
	return "rgba"
}

// ParseOrder accepts "rgba" or "argb". An empty string means OrderRGBA.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rgba":
		return OrderRGBA, nil
	case "argb":
		return OrderARGB, nil
	default:
		return OrderRGBA, fmt.Errorf("invalid hex alpha order %q — use 'rgba' or 'argb'", s)
	}
}

// Color is a translated match. The zero value means the match could not be
// resolved (unknown name or malformed component).
type Color struct {
	Hex          string `json:"hex,omitempty"`           // lowercase #rrggbb
	AlphaHex     string `json:"alpha_hex,omitempty"`     // two uppercase hex digits
	AlphaDecimal string `json:"alpha_decimal,omitempty"` // 0 to 1, trailing zeros trimmed
}

// OK reports whether the translation produced a color.
func (c Color) OK() bool { return c.Hex != "" }

// HasAlpha reports whether the color carries an alpha channel.
func (c Color) HasAlpha() bool { return c.AlphaHex != "" }

// Translator converts matches into canonical colors.
type Translator struct {
	Tables    *lookup.Tables
	Order     Order
	Precision int // alpha decimal digits; zero or less means DefaultPrecision
}

type translateFunc func(t *Translator, parts []string) (Color, bool)

var translators = [numKinds]translateFunc{
	KindHexa:           (*Translator).hexa,
	KindHex:            (*Translator).hex,
	KindHexaCompressed: (*Translator).hexa,
	KindHexCompressed:  (*Translator).hex,
	KindRGB:            (*Translator).rgb,
	KindRGBA:           (*Translator).rgb,
	KindHSL:            (*Translator).hsl,
	KindHSLA:           (*Translator).hsl,
	KindHWB:            (*Translator).hwb,
	KindHWBA:           (*Translator).hwb,
	KindGray:           (*Translator).gray,
	KindGrayA:          (*Translator).gray,
	KindPantone:        (*Translator).pantone,
	KindRAL:            (*Translator).ral,
	KindANSI:           (*Translator).ansi,
	KindWebColor:       (*Translator).webcolor,
}

// Translate resolves m. It never panics; anything it cannot resolve yields
// the zero Color.
func (t *Translator) Translate(m Match) Color {
	if m.Kind >= numKinds || len(m.Parts) != m.Kind.Arity() {
		return Color{}
	}
	c, ok := translators[m.Kind](t, m.Parts)
	if !ok {
		return Color{}
	}
	return c
}

func (t *Translator) precision() int {
	if t.Precision <= 0 {
		return DefaultPrecision
	}
	return t.Precision
}

func (t *Translator) tables() *lookup.Tables {
	if t.Tables == nil {
		return &lookup.Tables{}
	}
	return t.Tables
}

func (t *Translator) hex(parts []string) (Color, bool) {
	digits := strings.ToLower(parts[0])
	if len(digits) == 3 {
		digits = color.ExpandHex(digits)
	}
	if _, _, _, ok := color.ParseHex(digits); !ok {
		return Color{}, false
	}
	return Color{Hex: "#" + digits}, true
}

func (t *Translator) hexa(parts []string) (Color, bool) {
	digits := strings.ToLower(parts[0])
	if len(digits) == 4 {
		digits = color.ExpandHex(digits)
	}
	if len(digits) != 8 {
		return Color{}, false
	}

	rgb, alpha := digits[:6], digits[6:]
	if t.Order == OrderARGB {
		alpha, rgb = digits[:2], digits[2:]
	}
	if _, _, _, ok := color.ParseHex(rgb); !ok {
		return Color{}, false
	}
	a, ok := parseAlphaByte(alpha)
	if !ok {
		return Color{}, false
	}
	return Color{
		Hex:          "#" + rgb,
		AlphaHex:     strings.ToUpper(alpha),
		AlphaDecimal: color.FormatFixed(float64(a)/255, t.precision()),
	}, true
}

func (t *Translator) rgb(parts []string) (Color, bool) {
	var bytes [3]uint8
	for i := range bytes {
		v, ok := parseChannel(parts[i])
		if !ok {
			return Color{}, false
		}
		bytes[i] = v
	}
	return t.withAlpha(bytes[0], bytes[1], bytes[2], parts[3:])
}

func (t *Translator) gray(parts []string) (Color, bool) {
	v, ok := parseChannel(parts[0])
	if !ok {
		return Color{}, false
	}
	return t.withAlpha(v, v, v, parts[1:])
}

func (t *Translator) hsl(parts []string) (Color, bool) {
	return t.cylindrical(parts, color.HSLToRGB)
}

func (t *Translator) hwb(parts []string) (Color, bool) {
	return t.cylindrical(parts, color.HWBToRGB)
}

func (t *Translator) cylindrical(parts []string, convert func(h, x, y float64) (r, g, b float64)) (Color, bool) {
	h, ok := parseHue(parts[0])
	if !ok {
		return Color{}, false
	}
	x, ok := parsePercent(parts[1])
	if !ok {
		return Color{}, false
	}
	y, ok := parsePercent(parts[2])
	if !ok {
		return Color{}, false
	}
	r, g, b := convert(h, x, y)
	return t.withAlpha(color.ToByte(r), color.ToByte(g), color.ToByte(b), parts[3:])
}

// withAlpha formats the channels and, when an alpha component is present,
// normalizes it.
func (t *Translator) withAlpha(r, g, b uint8, alpha []string) (Color, bool) {
	c := Color{Hex: color.RGBToHex(r, g, b)}
	if len(alpha) == 0 {
		return c, true
	}
	a, ok := parseAlpha(alpha[0])
	if !ok {
		return Color{}, false
	}
	// Both come from the unrounded alpha, so they can disagree at the
	// precision boundary: 0.0005 gives "00" and "0.001".
	c.AlphaHex = fmt.Sprintf("%02X", color.ToByte(a))
	c.AlphaDecimal = color.FormatFixed(a, t.precision())
	return c, true
}

func (t *Translator) webcolor(parts []string) (Color, bool) {
	return lookupHex(t.tables().Names, parts[0])
}

// pantone looks the whole match up in the code table, then in the name
// table. Words are never dropped: the grammar over-matches prose such as
// "purple is", which must stay unresolved.
func (t *Translator) pantone(parts []string) (Color, bool) {
	key := normalizeKey(parts[0])
	if c, ok := lookupHex(t.tables().PantoneCodes, key); ok {
		return c, true
	}
	return lookupHex(t.tables().PantoneNames, key)
}

// ral tries the full code, then the bare "ral NNNN" form. A finish suffix
// ("-M") or trailing "NN NN" groups name a variant of that base color.
func (t *Translator) ral(parts []string) (Color, bool) {
	key := normalizeKey(parts[0])
	if c, ok := lookupHex(t.tables().RAL, key); ok {
		return c, true
	}
	fields := strings.Fields(key)
	if len(fields) < 2 {
		return Color{}, false
	}
	code, _, _ := strings.Cut(fields[1], "-")
	return lookupHex(t.tables().RAL, fields[0]+" "+code)
}

func (t *Translator) ansi(parts []string) (Color, bool) {
	key := parts[0]
	if c, ok := lookupHex(t.tables().ANSI, key); ok {
		return c, true
	}
	// "0;" selects normal intensity, which is what the bare code means.
	if rest, ok := strings.CutPrefix(key, "0;"); ok {
		return lookupHex(t.tables().ANSI, rest)
	}
	return Color{}, false
}

func lookupHex(tbl *lookup.Table, key string) (Color, bool) {
	hex, ok := tbl.Get(key)
	if !ok {
		return Color{}, false
	}
	return Color{Hex: hex}, true
}

// normalizeKey lowercases key and collapses whitespace runs to one space.
func normalizeKey(key string) string {
	return strings.ToLower(strings.Join(strings.Fields(key), " "))
}
