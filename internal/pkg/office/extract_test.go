package office

import (
	"archive/zip"
	"bytes"
	"slices"
	"testing"
)

const (
	docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pptxMIME = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
)

// createZip builds an in-memory Office file from part name to XML.
func createZip(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)
	names := make([]string, 0, len(parts))
	for name := range parts {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("creating %s: %v", name, err)
		}
		if _, err := f.Write([]byte(parts[name])); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

func TestExtractDocx(t *testing.T) {
	data := createZip(t, map[string]string{
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:rPr><w:color w:val="FF0000"/><w:highlight w:val="darkBlue"/></w:rPr><w:t>Brand red is #ff0000</w:t></w:r></w:p>
    <w:p><w:pPr><w:shd w:val="clear" w:fill="FFFF00"/></w:pPr><w:r><w:rPr><w:color w:val="auto"/></w:rPr><w:t>Highlighted</w:t></w:r></w:p>
  </w:body>
</w:document>`,
		"word/styles.xml": `<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:style><w:rPr><w:color w:val="ff0000"/></w:rPr><w:name w:val="Accent"/></w:style>
</w:styles>`,
	})

	content, err := Extract(data, docxMIME)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content.Text != "Brand red is #ff0000 Highlighted" {
		t.Errorf("Text = %q", content.Text)
	}
	want := []string{"#ff0000", "darkblue", "#ffff00"}
	if !slices.Equal(content.Colors, want) {
		t.Errorf("Colors = %q, want %q", content.Colors, want)
	}
}

func TestExtractPptx(t *testing.T) {
	data := createZip(t, map[string]string{
		"ppt/slides/slide1.xml": `<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"
       xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <p:cSld><p:spTree><p:sp><p:txBody><a:p><a:r><a:t>Slide Title</a:t></a:r></a:p></p:txBody></p:sp></p:spTree></p:cSld>
</p:sld>`,
		"ppt/theme/theme1.xml": `<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Office">
  <a:clrScheme><a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1><a:accent1><a:srgbClr val="4472C4"/></a:accent1></a:clrScheme>
</a:theme>`,
	})

	content, err := Extract(data, pptxMIME)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content.Text != "Slide Title" {
		t.Errorf("Text = %q, want %q", content.Text, "Slide Title")
	}
	if want := []string{"#000000", "#4472c4"}; !slices.Equal(content.Colors, want) {
		t.Errorf("Colors = %q, want %q", content.Colors, want)
	}
	if got, want := content.ScanText(), "Slide Title\n#000000\n#4472c4"; got != want {
		t.Errorf("ScanText() = %q, want %q", got, want)
	}
}

func TestExtractXlsx(t *testing.T) {
	data := createZip(t, map[string]string{
		"xl/sharedStrings.xml":     `<sst><si><t>rgb(0, 128, 255)</t></si></sst>`,
		"xl/styles.xml":            `<styleSheet><fonts><font><color rgb="FF00B050"/></font><font><color theme="1"/></font></fonts></styleSheet>`,
		"xl/worksheets/sheet1.xml": `<worksheet><sheetData><row><c t="s"><v>0</v></c></row></sheetData></worksheet>`,
	})

	content, err := Extract(data, xlsxMIME)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content.Text != "rgb(0, 128, 255)\n\n0" {
		t.Errorf("Text = %q", content.Text)
	}
	if want := []string{"#00b050"}; !slices.Equal(content.Colors, want) {
		t.Errorf("Colors = %q, want %q", content.Colors, want)
	}
}

func TestExtractInvalidZip(t *testing.T) {
	if _, err := Extract([]byte("not a zip file"), docxMIME); err == nil {
		t.Error("expected error for invalid ZIP data")
	}
}

func TestExtractTooLarge(t *testing.T) {
	data := make([]byte, MaxFileSize+1)
	if _, err := Extract(data, docxMIME); err == nil {
		t.Error("expected error for oversized file")
	}
}

func TestIsOfficeType(t *testing.T) {
	for mime, want := range map[string]bool{
		docxMIME:          true,
		xlsxMIME:          true,
		pptxMIME:          true,
		"application/pdf": false,
		"text/html":       false,
	} {
		if got := IsOfficeType(mime); got != want {
			t.Errorf("IsOfficeType(%q) = %v, want %v", mime, got, want)
		}
	}
}
