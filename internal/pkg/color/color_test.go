package color

import (
	"strconv"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		r, g, b uint8
		wantOK  bool
	}{
		{"black", "#000000", 0, 0, 0, true},
		{"white", "#FFFFFF", 255, 255, 255, true},
		{"red", "#FF0000", 255, 0, 0, true},
		{"no hash", "FF8800", 255, 0x88, 0, true},
		{"lowercase", "#ff8800", 255, 0x88, 0, true},
		{"mixed case", "#Ff8800", 255, 0x88, 0, true},
		{"too short", "#FFF", 0, 0, 0, false},
		{"too long", "#FFFFFFFF", 0, 0, 0, false},
		{"invalid digit", "#GG0000", 0, 0, 0, false},
		{"empty", "", 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, ok := ParseHex(tt.hex)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("got (%d, %d, %d), want (%d, %d, %d)", r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 51 {
				hex := RGBToHex(uint8(r), uint8(g), uint8(b))
				gr, gg, gb, ok := ParseHex(hex)
				if !ok || int(gr) != r || int(gg) != g || int(gb) != b {
					t.Fatalf("round trip of (%d, %d, %d) via %s = (%d, %d, %d, %v)", r, g, b, hex, gr, gg, gb, ok)
				}
			}
		}
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0.5, 1},
		{1.5, 2},
		{2.5, 3},
		{127.5, 128},
		{-2.5, -3},
		{2.4999, 2},
		{0, 0},
	}
	for _, tt := range tests {
		if got := RoundHalfUp(tt.in); got != tt.want {
			t.Errorf("RoundHalfUp(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		name      string
		in        float64
		precision int
		want      string
	}{
		{"half trims zeros", 0.5, 3, "0.5"},
		{"one trims point", 1, 3, "1"},
		{"zero", 0, 3, "0"},
		{"thirds", 136.0 / 255.0, 3, "0.533"},
		{"rounds up", 0.9996, 3, "1"},
		{"exact tie rounds up", 0.125, 2, "0.13"},
		{"binary below tie", 0.145, 2, "0.14"},
		{"no precision", 2.5, 0, "3"},
		{"keeps integer part", 12.0, 2, "12"},
		{"negative", -0.25, 1, "-0.3"},
		{"negative rounds to zero", -0.0001, 3, "0"},
		{"small value", 0.004, 3, "0.004"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFixed(tt.in, tt.precision); got != tt.want {
				t.Errorf("FormatFixed(%v, %d) = %q, want %q", tt.in, tt.precision, got, tt.want)
			}
		})
	}
}

func TestFormatFixedIdempotent(t *testing.T) {
	for i := 0; i <= 1000; i += 7 {
		x := float64(i) / 997.0
		once := FormatFixed(x, 3)
		f, err := strconv.ParseFloat(once, 64)
		if err != nil {
			t.Fatalf("parsing %q: %v", once, err)
		}
		if twice := FormatFixed(f, 3); twice != once {
			t.Errorf("FormatFixed not idempotent for %v: %q then %q", x, once, twice)
		}
	}
}

func TestHSLToRGBAchromatic(t *testing.T) {
	for h := 0.0; h < 1; h += 0.05 {
		for _, l := range []float64{0, 0.25, 0.5, 0.8, 1} {
			r, g, b := HSLToRGB(h, 0, l)
			if r != g || g != b {
				t.Fatalf("HSLToRGB(%v, 0, %v) = (%v, %v, %v), want equal channels", h, l, r, g, b)
			}
		}
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    string
	}{
		{"red", 0, 1, 0.5, "#ff0000"},
		{"green", 120.0 / 360.0, 1, 0.5, "#00ff00"},
		{"blue", 240.0 / 360.0, 1, 0.5, "#0000ff"},
		{"white", 0, 0, 1, "#ffffff"},
		{"black", 0, 1, 0, "#000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := HSLToRGB(tt.h, tt.s, tt.l)
			if got := RGBToHex(ToByte(r), ToByte(g), ToByte(b)); got != tt.want {
				t.Errorf("HSLToRGB(%v, %v, %v) = %s, want %s", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestHWBToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, w, b float64
		want    string
	}{
		{"pure red", 0, 0, 0, "#ff0000"},
		{"white", 0, 1, 0, "#ffffff"},
		{"black", 0, 0, 1, "#000000"},
		{"renormalized gray", 0.5, 0.6, 0.6, "#808080"},
		{"half white", 0, 0.5, 0, "#ff8080"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := HWBToRGB(tt.h, tt.w, tt.b)
			if got := RGBToHex(ToByte(r), ToByte(g), ToByte(b)); got != tt.want {
				t.Errorf("HWBToRGB(%v, %v, %v) = %s, want %s", tt.h, tt.w, tt.b, got, tt.want)
			}
		})
	}
}

func TestCompressHex(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"#ffaa00", "#fa0"},
		{"#ffaa0088", "#fa08"},
		{"#ffab00", "#ffab00"},
		{"#fff", "#fff"},
	}
	for _, tt := range tests {
		if got := CompressHex(tt.in); got != tt.want {
			t.Errorf("CompressHex(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if ExpandHex("fa0") != "ffaa00" {
		t.Errorf("ExpandHex(fa0) = %q", ExpandHex("fa0"))
	}
	if !IsGray("#7f7f7f") || IsGray("#7f7f7e") {
		t.Error("IsGray misclassified")
	}
}
