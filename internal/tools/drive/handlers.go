package drive

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/drive/v3"

	"github.com/evert/color-hints-mcp-go/internal/middleware"
	"github.com/evert/color-hints-mcp-go/internal/pkg/format"
	"github.com/evert/color-hints-mcp-go/internal/pkg/office"
	"github.com/evert/color-hints-mcp-go/internal/pkg/response"
	"github.com/evert/color-hints-mcp-go/internal/pkg/validate"
	"github.com/evert/color-hints-mcp-go/internal/scan"
	"github.com/evert/color-hints-mcp-go/internal/services"
	"github.com/evert/color-hints-mcp-go/internal/tools"
)

// --- scan_drive_file_colors ---

type ScanFileInput struct {
	FileID           string   `json:"file_id" jsonschema:"required" jsonschema_description:"The Google Drive file ID"`
	AllowedNotations []string `json:"allowed_notations,omitempty" jsonschema_description:"Notations to look for. Default: all"`
	HexAlphaOrder    string   `json:"hex_alpha_order,omitempty" jsonschema_description:"rgba (default) or argb"`
	AlphaPrecision   int      `json:"alpha_precision,omitempty" jsonschema_description:"Decimal digits kept in alpha_decimal (default 3)"`
	MaxResults       int      `json:"max_results,omitempty" jsonschema_description:"Maximum number of colors to return (default 100, max 1000)"`
}

type ScanFileOutput struct {
	File       FileSummary      `json:"file"`
	Source     string           `json:"source"`
	Colors     []tools.ColorHit `json:"colors"`
	TotalFound int              `json:"total_found"`
	Truncated  bool             `json:"truncated"`
}

func createScanFileHandler(factory *services.Factory, engine *scan.Engine) mcp.ToolHandlerFor[ScanFileInput, ScanFileOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ScanFileInput) (*mcp.CallToolResult, ScanFileOutput, error) {
		if err := validate.DriveID(input.FileID); err != nil {
			return nil, ScanFileOutput{}, err
		}
		e, err := tools.Engine(engine, tools.Overrides{
			AllowedNotations: input.AllowedNotations,
			HexAlphaOrder:    input.HexAlphaOrder,
			AlphaPrecision:   input.AlphaPrecision,
		})
		if err != nil {
			return nil, ScanFileOutput{}, err
		}

		srv, err := factory.Drive(ctx)
		if err != nil {
			return nil, ScanFileOutput{}, middleware.HandleDriveError(err)
		}

		// Get file metadata first
		var file *drive.File
		err = middleware.WithRetry(ctx, middleware.DefaultMaxRetries, func() error {
			var getErr error
			file, getErr = srv.Files.Get(input.FileID).
				Fields("id, name, mimeType, size, modifiedTime, webViewLink").
				SupportsAllDrives(true).
				Context(ctx).
				Do()
			return getErr
		})
		if err != nil {
			return nil, ScanFileOutput{}, middleware.HandleDriveError(err)
		}

		data, contentType, err := fetchContent(ctx, srv, file)
		if err != nil {
			return nil, ScanFileOutput{}, err
		}
		text, source, err := scanText(data, contentType)
		if err != nil {
			return nil, ScanFileOutput{}, err
		}
		if isGoogleNativeType(file.MimeType) {
			source = "export " + source
		}

		hits, total := tools.Collect(e, text, tools.ResultLimit(input.MaxResults))

		rb := response.New()
		rb.Header("Drive File Colors")
		rb.KeyValue("File", file.Name)
		rb.KeyValue("Type", formatFileType(file.MimeType))
		if size := formatSize(file.Size); size != "" {
			rb.KeyValue("Size", size)
		}
		rb.KeyValue("ID", file.Id)
		rb.KeyValue("Scanned", source)
		rb.KeyValue("Found", format.Count(total, "color"))
		if total > len(hits) {
			rb.KeyValue("Showing", len(hits))
		}
		rb.Blank()
		tools.WriteHits(rb, hits)

		output := ScanFileOutput{
			File:       fileToSummary(file),
			Source:     source,
			Colors:     hits,
			TotalFound: total,
			Truncated:  total > len(hits),
		}

		return rb.TextResult(), output, nil
	}
}

// fetchContent downloads the file, exporting Google native files first. It
// returns the bytes and the MIME type they are in.
func fetchContent(ctx context.Context, srv *drive.Service, file *drive.File) ([]byte, string, error) {
	native := isGoogleNativeType(file.MimeType)
	contentType := file.MimeType
	if native {
		contentType = mimeTypeForExport(file.MimeType)
		if contentType == "" {
			return nil, "", fmt.Errorf("%s files have no scannable export — try a Doc, Sheet, Slides deck, or Drawing", formatFileType(file.MimeType))
		}
	}

	var data []byte
	err := middleware.WithRetry(ctx, middleware.DefaultMaxRetries, func() error {
		var (
			resp *http.Response
			err  error
		)
		if native {
			resp, err = srv.Files.Export(file.Id, contentType).Context(ctx).Download()
		} else {
			resp, err = srv.Files.Get(file.Id).SupportsAllDrives(true).Context(ctx).Download()
		}
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		data, err = io.ReadAll(io.LimitReader(resp.Body, office.MaxFileSize+1))
		return err
	})
	if err != nil {
		return nil, "", middleware.HandleDriveError(err)
	}
	if len(data) > office.MaxFileSize {
		return nil, "", fmt.Errorf("file is larger than %s — scan a smaller file", format.ByteSize(office.MaxFileSize))
	}
	return data, contentType, nil
}
