package drive

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	gdrive "google.golang.org/api/drive/v3"
)

const (
	docxMime = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	xlsxMime = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func TestFormatFileType(t *testing.T) {
	tests := []struct {
		mime string
		want string
	}{
		{"application/vnd.google-apps.document", "Google Doc"},
		{"application/vnd.google-apps.spreadsheet", "Google Sheet"},
		{"application/vnd.google-apps.presentation", "Google Slides"},
		{"application/vnd.google-apps.drawing", "Google Drawing"},
		{"application/vnd.google-apps.folder", "Folder"},
		{"application/pdf", "PDF"},
		{"image/svg+xml", "SVG"},
		{"text/css", "CSS"},
		{docxMime, "Office document"},
		{"image/png", "Image"},
		{"video/mp4", "Video"},
		{"audio/mp3", "Audio"},
		{"text/plain", "text/plain"},
	}

	for _, tt := range tests {
		got := formatFileType(tt.mime)
		if got != tt.want {
			t.Errorf("formatFileType(%q) = %q, want %q", tt.mime, got, tt.want)
		}
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, ""},
		{500, "500 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
	}

	for _, tt := range tests {
		got := formatSize(tt.bytes)
		if got != tt.want {
			t.Errorf("formatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestFileToSummary(t *testing.T) {
	f := &gdrive.File{
		Id:           "file123",
		Name:         "palette.css",
		MimeType:     "text/css",
		Size:         1024,
		ModifiedTime: "2025-01-01T00:00:00Z",
		WebViewLink:  "https://drive.google.com/file/d/file123",
	}

	s := fileToSummary(f)
	if s.ID != "file123" {
		t.Errorf("ID = %q, want %q", s.ID, "file123")
	}
	if s.Name != "palette.css" || s.Size != 1024 || s.WebViewLink == "" {
		t.Errorf("summary = %+v", s)
	}
}

func TestIsGoogleNativeType(t *testing.T) {
	if !isGoogleNativeType("application/vnd.google-apps.document") {
		t.Error("expected Google Doc to be native type")
	}
	if isGoogleNativeType("application/pdf") {
		t.Error("expected PDF to NOT be native type")
	}
}

func TestMimeTypeForExport(t *testing.T) {
	tests := []struct {
		mime string
		want string
	}{
		{"application/vnd.google-apps.document", "text/html"},
		{"application/vnd.google-apps.spreadsheet", xlsxMime},
		{"application/vnd.google-apps.drawing", "image/svg+xml"},
		{"application/vnd.google-apps.form", ""},
		{"text/plain", ""},
	}
	for _, tt := range tests {
		if got := mimeTypeForExport(tt.mime); got != tt.want {
			t.Errorf("mimeTypeForExport(%q) = %q, want %q", tt.mime, got, tt.want)
		}
	}
}

func docx(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write([]byte(body)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestScanText(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		mime        string
		wantSource  string
		wantContain []string
		wantErr     bool
	}{
		{
			name:        "css",
			data:        []byte("\xef\xbb\xbfa { color: #ff0000 }"),
			mime:        "text/css",
			wantSource:  "plain text",
			wantContain: []string{"a { color: #ff0000 }"},
		},
		{
			name:        "html",
			data:        []byte(`<p style="color: rgb(0,128,0)">Hi <font color="navy">there</font></p>`),
			mime:        "text/html",
			wantSource:  "markup",
			wantContain: []string{"color: rgb(0,128,0)", "color: navy", "Hi there"},
		},
		{
			name:        "svg",
			data:        []byte(`<svg><rect fill="#336699" stroke="black"/></svg>`),
			mime:        "image/svg+xml",
			wantSource:  "markup",
			wantContain: []string{"fill: #336699", "stroke: black"},
		},
		{
			name: "docx",
			data: docx(t, `<w:document xmlns:w="w"><w:body><w:p><w:r><w:rPr><w:color w:val="FF0000"/></w:rPr>`+
				`<w:t>Warning</w:t></w:r></w:p></w:body></w:document>`),
			mime:        docxMime,
			wantSource:  "office xml",
			wantContain: []string{"Warning", "#ff0000"},
		},
		{name: "broken docx", data: []byte("not a zip"), mime: docxMime, wantErr: true},
		{name: "binary", data: []byte{0x89, 'P', 'N', 'G', 0, 1}, mime: "image/png", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, source, err := scanText(tt.data, tt.mime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("scanText() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if source != tt.wantSource {
				t.Errorf("source = %q, want %q", source, tt.wantSource)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(text, want) {
					t.Errorf("text %q missing %q", text, want)
				}
			}
		})
	}
}
