package scan

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Building blocks shared by the functional notations. Every alternative is
// compiled with regexp2.IgnoreCase.
const (
	number    = `[+\-]?(?:[0-9]*\.[0-9]+|[0-9]+)`
	percent   = number + `%`
	numOrPct  = `(?:` + percent + `|` + number + `)`
	hue       = number + `(?:deg|grad|rad|turn)?`
	separator = `(?:\s*,\s*|\s+)`

	// guard keeps matches from firing inside identifiers, e-mail-like
	// tokens and other color-adjacent punctuation.
	guard = `[@#$.\-_]`
)

// pantoneFamilies are the color-family words that may open a Pantone code,
// e.g. "warm gray 11 c" or "reflex blue c".
var pantoneFamilies = []string{
	"black", "blue", "bright red", "cool gray", "dark blue", "green", "magenta",
	"medium purple", "orange", "pink", "process blue", "purple", "red",
	"reflex blue", "rhodamine red", "rose gold", "silver", "violet", "warm gray",
	"warm red", "yellow",
}

func hexAlt(k Kind, digits string) string {
	return `(?<` + k.String() + `>(?:#|0x)(?<` + k.String() + `_content>[0-9a-f]{` + digits + `}))\b`
}

func funcAlt(k Kind, prefix string, parts ...string) string {
	return `\b(?<` + k.String() + `>` + prefix + `\(\s*(?<` + k.String() + `_content>` +
		strings.Join(parts, separator) + `)\s*\))`
}

// alternatives returns the regexp source of every notation, indexed by Kind.
// names must already be sorted longest first.
func alternatives(names []string) [numKinds]string {
	var alts [numKinds]string

	alts[KindHexa] = hexAlt(KindHexa, "8")
	alts[KindHex] = hexAlt(KindHex, "6")
	alts[KindHexaCompressed] = hexAlt(KindHexaCompressed, "4")
	alts[KindHexCompressed] = hexAlt(KindHexCompressed, "3")

	alts[KindRGB] = funcAlt(KindRGB, `rgb`, numOrPct, numOrPct, numOrPct)
	alts[KindRGBA] = funcAlt(KindRGBA, `rgba`, numOrPct, numOrPct, numOrPct, numOrPct)
	alts[KindHSL] = funcAlt(KindHSL, `hsl`, hue, percent, percent)
	alts[KindHSLA] = funcAlt(KindHSLA, `hsla`, hue, percent, percent, numOrPct)
	alts[KindHWB] = funcAlt(KindHWB, `hwb`, hue, percent, percent)
	alts[KindHWBA] = funcAlt(KindHWBA, `hwba?`, hue, percent, percent, numOrPct)
	alts[KindGray] = funcAlt(KindGray, `gray`, numOrPct)
	alts[KindGrayA] = funcAlt(KindGrayA, `graya?`, numOrPct, numOrPct)

	families := make([]string, len(pantoneFamilies))
	for i, f := range pantoneFamilies {
		families[i] = strings.ReplaceAll(f, " ", `\s`)
	}
	alts[KindPantone] = `\b(?<pantone_code>(?:(?:[0-9]{2}-)?[0-9]{3,5}\s|(?:` +
		strings.Join(families, "|") + `)\s(?:[0-9]{1,5}\s)?|p\s[0-9]{1,3}-[0-9]{1,2}\s)[a-z]{1,3})\b(?!\()`

	alts[KindRAL] = `\b(?<ral_code>ral\s[0-9]{3,4}(?:-[a-z0-9])?(?:\s[0-9]{2}\s[0-9]{2})?)\b(?!\()`

	alts[KindANSI] = `(?<ansi_code>(?:\x1b|\\x1b|\\033|\\e)\[(?<ansi_code_content>(?:[0-9]{1,2};)?[0-9]{2,3})m)`

	if len(names) > 0 {
		quoted := make([]string, len(names))
		for i, n := range names {
			quoted[i] = regexp2.Escape(n)
		}
		alts[KindWebColor] = `\b(?<webcolor>` + strings.Join(quoted, "|") + `)\b(?!\()`
	}

	return alts
}

// buildPattern joins the allowed alternatives in priority order and wraps
// them in the anti-match guards. It returns "" when nothing can match.
func buildPattern(alts [numKinds]string, allowed KindSet) string {
	var parts []string
	for _, k := range allowed.Kinds() {
		if alts[k] != "" {
			parts = append(parts, alts[k])
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return `(?<!` + guard + `)(?:` + strings.Join(parts, "|") + `)(?!` + guard + `)`
}
