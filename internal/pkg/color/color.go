// Package color provides the numeric primitives shared by the color scanner:
// clamping, half-up rounding, fixed-precision formatting and colorspace conversion.
package color

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Clamp saturates v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt saturates v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundHalfUp rounds to the nearest integer with ties going away from zero
// (2.5 -> 3, -2.5 -> -3), unlike banker's rounding.
func RoundHalfUp(f float64) int {
	return int(math.Round(f))
}

// ToByte converts a unit channel value to a 0-255 byte.
func ToByte(x float64) uint8 {
	return uint8(ClampInt(RoundHalfUp(x*255), 0, 255))
}

var bigOne = big.NewInt(1)

// FormatFixed formats f with precision decimal digits using half-up rounding
// on the exact binary value of f, then strips trailing zeros and a trailing
// decimal point: 0.5 -> "0.5", 1 -> "1", 0.53333 -> "0.533" (p=3).
func FormatFixed(f float64, precision int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Sprint(f)
	}
	if precision < 0 {
		precision = 0
	}

	r := new(big.Rat).SetFloat64(f)
	neg := r.Sign() < 0
	r.Abs(r)
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(precision)), nil)
	r.Mul(r, new(big.Rat).SetInt(scale))

	q, rem := new(big.Int).QuoRem(r.Num(), r.Denom(), new(big.Int))
	if rem.Lsh(rem, 1).Cmp(r.Denom()) >= 0 {
		q.Add(q, bigOne)
	}

	s := q.String()
	if precision > 0 {
		if len(s) <= precision {
			s = strings.Repeat("0", precision-len(s)+1) + s
		}
		s = s[:len(s)-precision] + "." + s[len(s)-precision:]
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if neg && strings.Trim(s, "0.") != "" {
		s = "-" + s
	}
	return s
}

// HSLToRGB converts hue (unit turn, [0,1)), saturation and lightness in [0,1]
// to unit RGB channels.
func HSLToRGB(h, s, l float64) (r, g, b float64) {
	c := colorful.Hsl(h*360, s, l)
	return c.R, c.G, c.B
}

// HWBToRGB converts hue (unit turn), whiteness and blackness in [0,1] to unit
// RGB channels. When w+b exceeds 1 both are scaled down so they sum to 1.
func HWBToRGB(h, w, b float64) (red, green, blue float64) {
	if sum := w + b; sum >= 1 {
		gray := w / sum
		return gray, gray, gray
	}
	pure := colorful.Hsl(h*360, 1, 0.5)
	mix := func(x float64) float64 { return x*(1-w-b) + w }
	return mix(pure.R), mix(pure.G), mix(pure.B)
}

// RGBToHex formats bytes as a lowercase #rrggbb string.
func RGBToHex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// ParseHex converts a #rrggbb (or rrggbb) string to bytes.
// Returns ok=false if the input is not exactly six hex digits.
func ParseHex(hex string) (r, g, b uint8, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	var bytes [3]uint8
	for i := range bytes {
		v, valid := hexToByte(hex[i*2 : i*2+2])
		if !valid {
			return 0, 0, 0, false
		}
		bytes[i] = v
	}
	return bytes[0], bytes[1], bytes[2], true
}

// ExpandHex doubles every nibble of a compressed hex string: "f0a" -> "ff00aa".
func ExpandHex(digits string) string {
	var sb strings.Builder
	sb.Grow(len(digits) * 2)
	for i := 0; i < len(digits); i++ {
		sb.WriteByte(digits[i])
		sb.WriteByte(digits[i])
	}
	return sb.String()
}

// IsGray reports whether all three channels of a #rrggbb string are equal.
func IsGray(hex string) bool {
	r, g, b, ok := ParseHex(hex)
	return ok && r == g && g == b
}

// CompressHex returns the 3- or 4-digit form of a #rrggbb or #rrggbbaa string
// when every byte is a doubled nibble, and the input unchanged otherwise.
func CompressHex(hex string) string {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 && len(digits) != 8 {
		return hex
	}
	var sb strings.Builder
	sb.WriteByte('#')
	for i := 0; i < len(digits); i += 2 {
		if !strings.EqualFold(digits[i:i+1], digits[i+1:i+2]) {
			return hex
		}
		sb.WriteByte(digits[i])
	}
	return sb.String()
}

// hexToByte converts a 2-char hex string to a byte value.
func hexToByte(hex string) (byte, bool) {
	var val byte
	for _, c := range hex {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += byte(c - '0')
		case c >= 'a' && c <= 'f':
			val += byte(c-'a') + 10
		case c >= 'A' && c <= 'F':
			val += byte(c-'A') + 10
		default:
			return 0, false
		}
	}
	return val, true
}
