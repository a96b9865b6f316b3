package drive

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"google.golang.org/api/drive/v3"

	"github.com/evert/color-hints-mcp-go/internal/pkg/format"
	"github.com/evert/color-hints-mcp-go/internal/pkg/htmlutil"
	"github.com/evert/color-hints-mcp-go/internal/pkg/office"
)

// FileSummary is a compact representation of a Drive file.
type FileSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MimeType     string `json:"mime_type"`
	Size         int64  `json:"size,omitempty"`
	ModifiedTime string `json:"modified_time,omitempty"`
	WebViewLink  string `json:"web_view_link,omitempty"`
}

// fileToSummary converts a Drive file to a compact summary.
func fileToSummary(f *drive.File) FileSummary {
	return FileSummary{
		ID:           f.Id,
		Name:         f.Name,
		MimeType:     f.MimeType,
		Size:         f.Size,
		ModifiedTime: f.ModifiedTime,
		WebViewLink:  f.WebViewLink,
	}
}

// formatFileType returns a human-readable file type from a MIME type.
func formatFileType(mimeType string) string {
	switch mimeType {
	case "application/vnd.google-apps.document":
		return "Google Doc"
	case "application/vnd.google-apps.spreadsheet":
		return "Google Sheet"
	case "application/vnd.google-apps.presentation":
		return "Google Slides"
	case "application/vnd.google-apps.drawing":
		return "Google Drawing"
	case "application/vnd.google-apps.folder":
		return "Folder"
	case "application/vnd.google-apps.form":
		return "Google Form"
	case "application/pdf":
		return "PDF"
	case "image/svg+xml":
		return "SVG"
	case "text/html":
		return "HTML"
	case "text/css":
		return "CSS"
	default:
		if office.IsOfficeType(mimeType) {
			return "Office document"
		}
		if strings.HasPrefix(mimeType, "image/") {
			return "Image"
		}
		if strings.HasPrefix(mimeType, "video/") {
			return "Video"
		}
		if strings.HasPrefix(mimeType, "audio/") {
			return "Audio"
		}
		return mimeType
	}
}

// formatSize returns a human-readable file size.
func formatSize(bytes int64) string {
	return format.ByteSize(bytes)
}

// mimeTypeForExport returns the export MIME type that keeps a Google
// Workspace file's colors: HTML for Docs (inline styles), Office XML for
// Sheets and Slides (cell and shape fills), SVG for Drawings.
func mimeTypeForExport(googleMimeType string) string {
	switch googleMimeType {
	case "application/vnd.google-apps.document":
		return "text/html"
	case "application/vnd.google-apps.spreadsheet":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "application/vnd.google-apps.presentation":
		return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	case "application/vnd.google-apps.drawing":
		return "image/svg+xml"
	default:
		return ""
	}
}

// isGoogleNativeType returns true if the MIME type is a Google Workspace native type.
func isGoogleNativeType(mimeType string) bool {
	return strings.HasPrefix(mimeType, "application/vnd.google-apps.")
}

// isMarkupType reports whether colors in the format live in markup
// attributes and style sheets.
func isMarkupType(mimeType string) bool {
	switch mimeType {
	case "text/html", "application/xhtml+xml", "image/svg+xml":
		return true
	}
	return false
}

// scanText turns downloaded bytes into the text the color scanner reads, and
// names the extraction used.
func scanText(data []byte, mimeType string) (text, source string, err error) {
	switch {
	case office.IsOfficeType(mimeType):
		content, err := office.Extract(data, mimeType)
		if err != nil {
			return "", "", fmt.Errorf("extracting %s: %w", formatFileType(mimeType), err)
		}
		return content.ScanText(), "office xml", nil
	case isMarkupType(mimeType):
		return htmlutil.Parse(string(data)).ScanText(), "markup", nil
	}

	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(data) || bytes.IndexByte(data, 0) >= 0 {
		return "", "", fmt.Errorf("%s files are binary and cannot be scanned for colors — try an Office, HTML, CSS, SVG, or text file", formatFileType(mimeType))
	}
	return string(data), "plain text", nil
}
