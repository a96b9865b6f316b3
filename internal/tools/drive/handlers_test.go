package drive

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gdrive "google.golang.org/api/drive/v3"

	"github.com/evert/color-hints-mcp-go/internal/scan"
	"github.com/evert/color-hints-mcp-go/internal/services"
)

type fakeFile struct {
	meta       gdrive.File
	content    string
	exportMime string
}

// fakeDrive serves the subset of the Drive v3 API the handler calls.
func fakeDrive(t *testing.T, files map[string]fakeFile) *services.Factory {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, rest, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/files/"), "/")
		f, ok := files[id]
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"code":404,"message":"File not found: ` + id + `"}}`))
			return
		}
		switch {
		case rest == "export":
			if got := r.URL.Query().Get("mimeType"); got != f.exportMime {
				t.Errorf("export mimeType = %q, want %q", got, f.exportMime)
			}
			_, _ = w.Write([]byte(f.content))
		case r.URL.Query().Get("alt") == "media":
			_, _ = w.Write([]byte(f.content))
		default:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(&f.meta)
		}
	}))
	t.Cleanup(srv.Close)
	return services.NewFactoryWithClient(srv.Client(), srv.URL+"/")
}

func testEngine(t *testing.T) *scan.Engine {
	t.Helper()
	e, err := scan.NewEngine(nil, scan.Options{})
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func TestScanFileColors(t *testing.T) {
	factory := fakeDrive(t, map[string]fakeFile{
		"css1": {
			meta:    gdrive.File{Id: "css1", Name: "theme.css", MimeType: "text/css", Size: 40},
			content: "a { color: #336699; }\nb { color: rgba(0, 0, 0, .5); }",
		},
		"doc1": {
			meta:       gdrive.File{Id: "doc1", Name: "Brand guide", MimeType: "application/vnd.google-apps.document"},
			content:    `<html><head><style>.c1{color:#ff0000}</style></head><body><p class="c1">Use RAL 1000 for signs.</p></body></html>`,
			exportMime: "text/html",
		},
		"png1": {
			meta:    gdrive.File{Id: "png1", Name: "logo.png", MimeType: "image/png"},
			content: "\x89PNG\x00\x00",
		},
		"form1": {
			meta: gdrive.File{Id: "form1", Name: "Survey", MimeType: "application/vnd.google-apps.form"},
		},
	})
	handler := createScanFileHandler(factory, testEngine(t))

	tests := []struct {
		name        string
		input       ScanFileInput
		wantSource  string
		wantHex     []string
		wantTotal   int
		wantErr     string
		wantSummary string
	}{
		{
			name:        "uploaded css",
			input:       ScanFileInput{FileID: "css1"},
			wantSource:  "plain text",
			wantHex:     []string{"#336699", "#000000"},
			wantTotal:   2,
			wantSummary: "theme.css",
		},
		{
			name:        "google doc",
			input:       ScanFileInput{FileID: "doc1"},
			wantSource:  "export markup",
			wantHex:     []string{"#cdba88", "#ff0000"},
			wantTotal:   2,
			wantSummary: "Brand guide",
		},
		{
			name:        "limited",
			input:       ScanFileInput{FileID: "css1", MaxResults: 1},
			wantSource:  "plain text",
			wantHex:     []string{"#336699"},
			wantTotal:   2,
			wantSummary: "theme.css",
		},
		{name: "binary", input: ScanFileInput{FileID: "png1"}, wantErr: "binary"},
		{name: "no export", input: ScanFileInput{FileID: "form1"}, wantErr: "no scannable export"},
		{name: "missing", input: ScanFileInput{FileID: "nope"}, wantErr: "file not found"},
		{name: "bad id", input: ScanFileInput{FileID: "../etc"}, wantErr: "invalid Drive resource ID"},
		{name: "bad notation", input: ScanFileInput{FileID: "css1", AllowedNotations: []string{"cmyk"}}, wantErr: "allowed_notations"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, err := handler(context.Background(), nil, tt.input)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Source != tt.wantSource {
				t.Errorf("Source = %q, want %q", out.Source, tt.wantSource)
			}
			if out.File.Name != tt.wantSummary {
				t.Errorf("File = %+v", out.File)
			}
			if out.TotalFound != tt.wantTotal || out.Truncated != (tt.wantTotal > len(tt.wantHex)) {
				t.Errorf("TotalFound = %d Truncated = %v", out.TotalFound, out.Truncated)
			}
			if len(out.Colors) != len(tt.wantHex) {
				t.Fatalf("Colors = %+v, want %v", out.Colors, tt.wantHex)
			}
			for i, want := range tt.wantHex {
				if out.Colors[i].Hex != want {
					t.Errorf("color %d = %q, want %q", i, out.Colors[i].Hex, want)
				}
			}
		})
	}
}
