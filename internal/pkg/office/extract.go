// Package office pulls text and color values out of Office Open XML files
// (.docx, .xlsx, .pptx) so they can be scanned for color literals.
package office

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"
)

// MaxFileSize is the maximum file size to attempt extraction on (50 MB).
const MaxFileSize = 50 * 1024 * 1024

// IsOfficeType reports whether mimeType is one of the Office Open XML formats.
func IsOfficeType(mimeType string) bool {
	return strings.Contains(mimeType, "openxmlformats-officedocument")
}

// Content is what Extract found in a document.
type Content struct {
	Text   string   // document prose
	Colors []string // color values from formatting, "#rrggbb" or a color name, first use order
}

// ScanText joins the prose and the colors, one color per line.
func (c Content) ScanText() string {
	parts := make([]string, 0, len(c.Colors)+1)
	if c.Text != "" {
		parts = append(parts, c.Text)
	}
	parts = append(parts, c.Colors...)
	return strings.Join(parts, "\n")
}

// Extract reads a ZIP-based Office document. Prose comes from the parts that
// hold the document body for mimeType; colors come from every XML part,
// since themes and style sheets define most of them.
func Extract(data []byte, mimeType string) (Content, error) {
	if len(data) > MaxFileSize {
		return Content{}, fmt.Errorf("file too large for extraction (%d bytes, max %d)", len(data), MaxFileSize)
	}

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Content{}, fmt.Errorf("opening Office document as ZIP: %w", err)
	}

	isText := textParts(mimeType)
	var (
		content Content
		prose   []string
		seen    = make(map[string]bool)
	)
	for _, f := range reader.File {
		if path.Ext(f.Name) != ".xml" {
			continue
		}
		text, colors, err := readPart(f)
		if err != nil {
			continue
		}
		if isText(f.Name) && text != "" {
			prose = append(prose, text)
		}
		for _, c := range colors {
			if !seen[c] {
				seen[c] = true
				content.Colors = append(content.Colors, c)
			}
		}
	}
	content.Text = strings.Join(prose, "\n\n")
	return content, nil
}

// textParts returns a predicate selecting the parts whose character data is
// document prose.
func textParts(mimeType string) func(name string) bool {
	switch {
	case strings.Contains(mimeType, "wordprocessingml") || strings.HasSuffix(mimeType, ".docx"):
		return func(name string) bool { return name == "word/document.xml" }
	case strings.Contains(mimeType, "spreadsheetml") || strings.HasSuffix(mimeType, ".xlsx"):
		return func(name string) bool {
			return name == "xl/sharedStrings.xml" || strings.HasPrefix(name, "xl/worksheets/sheet")
		}
	case strings.Contains(mimeType, "presentationml") || strings.HasSuffix(mimeType, ".pptx"):
		return func(name string) bool { return strings.HasPrefix(name, "ppt/slides/slide") }
	default:
		return func(name string) bool { return !strings.HasPrefix(name, "[Content_Types]") }
	}
}

func readPart(f *zip.File) (text string, colors []string, err error) {
	rc, err := f.Open()
	if err != nil {
		return "", nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, MaxFileSize))
	if err != nil {
		return "", nil, err
	}
	text, colors = scanXML(data)
	return text, colors, nil
}

// scanXML collects the character data of an XML part and the color values
// carried by its formatting elements.
func scanXML(data []byte) (string, []string) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	var (
		parts  []string
		colors []string
	)
	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if c, ok := elementColor(t); ok {
				colors = append(colors, c)
			}
		case xml.CharData:
			if text := strings.TrimSpace(string(t)); text != "" {
				parts = append(parts, text)
			}
		}
	}
	return strings.Join(parts, " "), colors
}

// elementColor reads the color an OOXML formatting element sets:
//
//	<a:srgbClr val="FF0000"/>        DrawingML (themes, shapes, slides)
//	<a:sysClr lastClr="000000"/>     DrawingML system color
//	<w:color w:val="FF0000"/>        WordprocessingML run color
//	<w:shd w:fill="FFFF00"/>         WordprocessingML shading
//	<w:highlight w:val="yellow"/>    WordprocessingML highlight name
//	<color rgb="FFFF0000"/>          SpreadsheetML ARGB
func elementColor(el xml.StartElement) (string, bool) {
	switch el.Name.Local {
	case "srgbClr":
		return hexAttr(el, "val")
	case "sysClr":
		return hexAttr(el, "lastClr")
	case "shd", "fgColor", "bgColor":
		if c, ok := hexAttr(el, "fill"); ok {
			return c, true
		}
		return argbAttr(el)
	case "color":
		if c, ok := hexAttr(el, "val"); ok {
			return c, true
		}
		return argbAttr(el)
	case "highlight":
		v := attr(el, "val")
		if v == "" || strings.EqualFold(v, "none") {
			return "", false
		}
		return strings.ToLower(v), true
	}
	return "", false
}

func attr(el xml.StartElement, local string) string {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

func hexAttr(el xml.StartElement, local string) (string, bool) {
	v := attr(el, local)
	if len(v) != 6 || !isHex(v) {
		return "", false
	}
	return "#" + strings.ToLower(v), true
}

// argbAttr reads a SpreadsheetML rgb attribute, dropping the alpha byte.
func argbAttr(el xml.StartElement) (string, bool) {
	v := attr(el, "rgb")
	if len(v) != 8 || !isHex(v) {
		return "", false
	}
	return "#" + strings.ToLower(v[2:]), true
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
