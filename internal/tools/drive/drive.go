// Package drive scans Google Drive files for color literals.
package drive

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/evert/color-hints-mcp-go/internal/pkg/ptr"
	"github.com/evert/color-hints-mcp-go/internal/scan"
	"github.com/evert/color-hints-mcp-go/internal/services"
	"github.com/evert/color-hints-mcp-go/internal/tools"
)

var serviceIcons = []mcp.Icon{{
	Source:   "https://www.gstatic.com/images/branding/product/1x/drive_2020q4_48dp.png",
	MIMEType: "image/png",
	Sizes:    []string{"48x48"},
}}

// Register registers the Drive tools with the MCP server.
func Register(server *mcp.Server, factory *services.Factory, engine *scan.Engine, include tools.Filter) {
	tools.Add(server, include, &mcp.Tool{
		Name:        "scan_drive_file_colors",
		Icons:       serviceIcons,
		Description: "Find the colors used in a Google Drive file. Google Docs are scanned as HTML, Sheets and Slides as Office files, Drawings as SVG; uploaded Office, HTML, CSS, SVG and text files are scanned directly. The file must be shared with the server's service account.",
		Annotations: &mcp.ToolAnnotations{
			Title:          "Scan Drive File Colors",
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  ptr.Bool(true),
		},
	}, createScanFileHandler(factory, engine))
}
