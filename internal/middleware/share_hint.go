package middleware

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/segmentio/encoding/json"
)

// accessErrorMarkers are substrings that identify Drive access tool errors.
var accessErrorMarkers = []string{
	"permission denied",
	"file not found",
}

// ShareHintMiddleware returns MCP SDK middleware that detects Drive access
// errors and appends the service account address the file must be shared
// with, so the user can fix access without an extra round-trip. It is a
// no-op when serviceAccount is empty.
func ShareHintMiddleware(serviceAccount string) mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			result, err := next(ctx, method, req)

			if method != "tools/call" || serviceAccount == "" {
				return result, err
			}

			toolResult, ok := result.(*mcp.CallToolResult)
			if !ok || !toolResult.IsError || len(toolResult.Content) == 0 {
				return result, err
			}

			textContent, ok := toolResult.Content[0].(*mcp.TextContent)
			if !ok || !isAccessError(textContent.Text) {
				return result, err
			}

			fileID := extractFileID(req)
			if fileID == "" {
				return result, err
			}

			textContent.Text = fmt.Sprintf(
				"%s\n\nAsk the user to share https://drive.google.com/file/d/%s with %s (Viewer is enough), then retry.",
				textContent.Text, fileID, serviceAccount,
			)

			return result, err
		}
	}
}

func isAccessError(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range accessErrorMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// extractFileID tries to read file_id from the raw tool arguments.
func extractFileID(req mcp.Request) string {
	params, ok := req.GetParams().(*mcp.CallToolParamsRaw)
	if !ok || params == nil {
		return ""
	}

	var args struct {
		FileID string `json:"file_id"`
	}
	if err := json.Unmarshal(params.Arguments, &args); err != nil {
		return ""
	}
	return args.FileID
}
