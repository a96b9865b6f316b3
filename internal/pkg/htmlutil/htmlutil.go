// Package htmlutil turns HTML into text the color scanner can read: the
// visible prose, and the places color values live (style sheets, style
// attributes and legacy presentational attributes).
package htmlutil

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// colorAttrs are attributes whose value is a color on some element.
var colorAttrs = map[string]bool{
	"color":      true,
	"bgcolor":    true,
	"text":       true,
	"link":       true,
	"vlink":      true,
	"alink":      true,
	"fill":       true,
	"stroke":     true,
	"stop-color": true,
}

// blockAtoms start a new line in plain text output.
var blockAtoms = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Li: true, atom.Tr: true, atom.Blockquote: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Br: true, atom.Table: true, atom.Ul: true, atom.Ol: true,
}

// Document is the color-relevant content of an HTML document.
type Document struct {
	Text   string   // visible prose, one block per line
	Styles []string // style sheets, style attributes and color attributes
}

// ScanText joins the prose and the style sources, one per line.
func (d Document) ScanText() string {
	parts := make([]string, 0, len(d.Styles)+1)
	if d.Text != "" {
		parts = append(parts, d.Text)
	}
	parts = append(parts, d.Styles...)
	return strings.Join(parts, "\n")
}

// Parse tokenizes src. Malformed markup is tolerated the way browsers
// tolerate it; Parse never fails.
func Parse(src string) Document {
	var (
		doc    Document
		text   strings.Builder
		inSkip int // depth inside <script> or <style>
		inCSS  bool
	)

	z := html.NewTokenizer(strings.NewReader(src))
	for {
		switch z.Next() {
		case html.ErrorToken:
			doc.Text = normalize(text.String())
			return doc

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			for _, a := range tok.Attr {
				key := strings.ToLower(a.Key)
				switch {
				case key == "style" && strings.TrimSpace(a.Val) != "":
					doc.Styles = append(doc.Styles, strings.TrimSpace(a.Val))
				case colorAttrs[key] && strings.TrimSpace(a.Val) != "":
					doc.Styles = append(doc.Styles, key+": "+strings.TrimSpace(a.Val))
				}
			}
			switch {
			case tok.DataAtom == atom.Style:
				inSkip++
				inCSS = true
			case tok.DataAtom == atom.Script:
				inSkip++
			case blockAtoms[tok.DataAtom]:
				text.WriteByte('\n')
			}

		case html.EndTagToken:
			tok := z.Token()
			switch {
			case tok.DataAtom == atom.Style || tok.DataAtom == atom.Script:
				if inSkip > 0 {
					inSkip--
				}
				inCSS = false
			case blockAtoms[tok.DataAtom]:
				text.WriteByte('\n')
			}

		case html.TextToken:
			data := string(z.Text())
			switch {
			case inCSS:
				if css := strings.TrimSpace(data); css != "" {
					doc.Styles = append(doc.Styles, css)
				}
			case inSkip == 0:
				text.WriteString(data)
			}
		}
	}
}

// ToPlainText converts HTML to readable plain text.
func ToPlainText(src string) string {
	if src == "" {
		return ""
	}
	return Parse(src).Text
}

// normalize collapses whitespace within lines and limits blank lines to one.
func normalize(text string) string {
	lines := strings.Split(text, "\n")
	out := lines[:0]
	blank := 0
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			blank++
			if blank > 1 {
				continue
			}
		} else {
			blank = 0
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
