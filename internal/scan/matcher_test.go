package scan

import (
	"slices"
	"testing"
)

func newTestMatcher(t *testing.T, names ...string) *Matcher {
	t.Helper()
	m, err := NewMatcher(names)
	if err != nil {
		t.Fatalf("NewMatcher() error = %v", err)
	}
	return m
}

func TestMatcherKinds(t *testing.T) {
	m := newTestMatcher(t, "purple", "blue")

	tests := []struct {
		text      string
		wantKind  Kind
		wantText  string
		wantParts []string
	}{
		{"#ff00aa80", KindHexa, "#ff00aa80", []string{"ff00aa80"}},
		{"#FF00AA", KindHex, "#FF00AA", []string{"FF00AA"}},
		{"0xff00aa", KindHex, "0xff00aa", []string{"ff00aa"}},
		{"#0f08", KindHexaCompressed, "#0f08", []string{"0f08"}},
		{"#fff", KindHexCompressed, "#fff", []string{"fff"}},
		{"rgb(255, 0, 0)", KindRGB, "rgb(255, 0, 0)", []string{"255", "0", "0"}},
		{"RGB( 1 , 2 , 3 )", KindRGB, "RGB( 1 , 2 , 3 )", []string{"1", "2", "3"}},
		{"rgb(100% 0 50%)", KindRGB, "rgb(100% 0 50%)", []string{"100%", "0", "50%"}},
		{"rgba(0,128,255,0.5)", KindRGBA, "rgba(0,128,255,0.5)", []string{"0", "128", "255", "0.5"}},
		{"hsl(120, 100%, 50%)", KindHSL, "hsl(120, 100%, 50%)", []string{"120", "100%", "50%"}},
		{"hsl(120deg 100% 50%)", KindHSL, "hsl(120deg 100% 50%)", []string{"120deg", "100%", "50%"}},
		{"hsla(.5turn, 10%, 20%, 30%)", KindHSLA, "hsla(.5turn, 10%, 20%, 30%)", []string{".5turn", "10%", "20%", "30%"}},
		{"hwb(0, 0%, 0%)", KindHWB, "hwb(0, 0%, 0%)", []string{"0", "0%", "0%"}},
		{"hwb(0, 0%, 0%, 0.5)", KindHWBA, "hwb(0, 0%, 0%, 0.5)", []string{"0", "0%", "0%", "0.5"}},
		{"hwba(0, 0%, 0%, 0.5)", KindHWBA, "hwba(0, 0%, 0%, 0.5)", []string{"0", "0%", "0%", "0.5"}},
		{"gray(50%)", KindGray, "gray(50%)", []string{"50%"}},
		{"gray(128, 0.5)", KindGrayA, "gray(128, 0.5)", []string{"128", "0.5"}},
		{"graya(128, 50%)", KindGrayA, "graya(128, 50%)", []string{"128", "50%"}},
		{"RAL 1000", KindRAL, "RAL 1000", []string{"RAL 1000"}},
		{"ral 9005-M", KindRAL, "ral 9005-M", []string{"ral 9005-M"}},
		{"185 C", KindPantone, "185 C", []string{"185 C"}},
		{"Reflex Blue C", KindPantone, "Reflex Blue C", []string{"Reflex Blue C"}},
		{"\x1b[31m", KindANSI, "\x1b[31m", []string{"31"}},
		{`\033[1;31m`, KindANSI, `\033[1;31m`, []string{"1;31"}},
		{"Purple", KindWebColor, "Purple", []string{"Purple"}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			matches := m.FindAll(tt.text, AllKinds)
			if len(matches) != 1 {
				t.Fatalf("FindAll(%q) = %+v, want one match", tt.text, matches)
			}
			got := matches[0]
			if got.Kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.Text != tt.wantText {
				t.Errorf("text = %q, want %q", got.Text, tt.wantText)
			}
			if !slices.Equal(got.Parts, tt.wantParts) {
				t.Errorf("parts = %q, want %q", got.Parts, tt.wantParts)
			}
		})
	}
}

func TestMatcherGuard(t *testing.T) {
	m := newTestMatcher(t, "red")

	tests := []struct {
		text      string
		wantStart int // -1 for no match
	}{
		{"@#fff", -1},
		{".#fff", -1},
		{"$#fff", -1},
		{"-#fff", -1},
		{"_#fff", -1},
		{"##fff", -1},
		{" #fff", 1},
		{"#fff.", -1},
		{"#fff-", -1},
		{"#fff;", 0},
		{"a.red", -1},
		{"is red", 3},
		{"red(", -1},
		{"#ff00001", -1},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			matches := m.FindAll(tt.text, AllKinds)
			if tt.wantStart < 0 {
				if len(matches) != 0 {
					t.Errorf("FindAll(%q) = %+v, want no match", tt.text, matches)
				}
				return
			}
			if len(matches) != 1 || matches[0].Start != tt.wantStart {
				t.Errorf("FindAll(%q) = %+v, want one match at %d", tt.text, matches, tt.wantStart)
			}
		})
	}
}

func TestMatcherAllowed(t *testing.T) {
	m := newTestMatcher(t)
	text := "a #fff b rgb(0,0,0) c #ffffff"

	tests := []struct {
		name    string
		allowed KindSet
		want    []string
	}{
		{"all", AllKinds, []string{"#fff", "rgb(0,0,0)", "#ffffff"}},
		{"hex", NewKindSet(KindHex), []string{"#ffffff"}},
		{"compressed", NewKindSet(KindHexCompressed), []string{"#fff"}},
		{"rgb", NewKindSet(KindRGB), []string{"rgb(0,0,0)"}},
		{"none", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for match := range m.All(text, tt.allowed) {
				got = append(got, match.Text)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("All() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMatcherDisallowedKindFallsThrough(t *testing.T) {
	m := newTestMatcher(t)

	// With hexa excluded, the 8-digit literal is still not matched as a
	// 6-digit one because the word boundary fails; the scan moves on.
	got := m.FindAll("#ff00aa80 #abc", AllKinds&^NewKindSet(KindHexa))
	if len(got) != 1 || got[0].Text != "#abc" {
		t.Fatalf("FindAll() = %+v, want only #abc", got)
	}

	// With hwba excluded, a 3-argument hwb still matches.
	got = m.FindAll("hwb(0, 0%, 0%) hwb(0, 0%, 0%, 1)", NewKindSet(KindHWB))
	if len(got) != 1 || got[0].Kind != KindHWB {
		t.Fatalf("FindAll() = %+v, want one hwb", got)
	}
}

func TestMatcherLongestNameFirst(t *testing.T) {
	m := newTestMatcher(t, "blue", "blue violet", "violet")
	got := m.FindAll("blue violet", NewKindSet(KindWebColor))
	if len(got) != 1 || got[0].Text != "blue violet" {
		t.Fatalf("FindAll() = %+v, want one match of the longer name", got)
	}
}

func TestMatcherByteOffsets(t *testing.T) {
	m := newTestMatcher(t)
	text := "café → #fff and ✓ rgb(1,2,3)"

	got := m.FindAll(text, AllKinds)
	if len(got) != 2 {
		t.Fatalf("FindAll() = %+v, want 2 matches", got)
	}
	for _, match := range got {
		if text[match.Start:match.End] != match.Text {
			t.Errorf("text[%d:%d] = %q, want %q", match.Start, match.End, text[match.Start:match.End], match.Text)
		}
	}
	if got[0].Text != "#fff" || got[1].Text != "rgb(1,2,3)" {
		t.Errorf("FindAll() texts = %q, %q", got[0].Text, got[1].Text)
	}
}

func TestMatcherStopsEarly(t *testing.T) {
	m := newTestMatcher(t)
	n := 0
	for range m.All("#111 #222 #333", AllKinds) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("yielded %d matches after break, want 1", n)
	}
}

func TestParseKindSet(t *testing.T) {
	s, err := ParseKindSet(nil)
	if err != nil || s != AllKinds {
		t.Errorf("ParseKindSet(nil) = (%v, %v), want AllKinds", s, err)
	}

	s, err = ParseKindSet([]string{"HEX", "webcolors", "ral_code"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := NewKindSet(KindHex, KindWebColor, KindRAL)
	if s != want {
		t.Errorf("ParseKindSet() = %v, want %v", s.Strings(), want.Strings())
	}

	if _, err := ParseKindSet([]string{"cmyk"}); err == nil {
		t.Error("expected error for unknown notation")
	}
}

func TestKindArity(t *testing.T) {
	tests := []struct {
		kind  Kind
		arity int
		alpha bool
	}{
		{KindHex, 1, false},
		{KindHexa, 1, true},
		{KindRGB, 3, false},
		{KindRGBA, 4, true},
		{KindHWBA, 4, true},
		{KindGrayA, 2, true},
		{KindWebColor, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Arity(); got != tt.arity {
				t.Errorf("Arity() = %d, want %d", got, tt.arity)
			}
			if got := tt.kind.HasAlpha(); got != tt.alpha {
				t.Errorf("HasAlpha() = %v, want %v", got, tt.alpha)
			}
		})
	}
}
