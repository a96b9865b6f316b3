package middleware

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const testServiceAccount = "scanner@project.iam.gserviceaccount.com"

// fakeToolRequest builds a CallToolRequest with the given arguments JSON.
func fakeToolRequest(argsJSON string) mcp.Request {
	return &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{
			Name:      "scan_drive_file_colors",
			Arguments: json.RawMessage(argsJSON),
		},
	}
}

func errorResult(text string) mcp.MethodHandler {
	return func(_ context.Context, _ string, _ mcp.Request) (mcp.Result, error) {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil
	}
}

func resultText(t *testing.T, result mcp.Result) string {
	t.Helper()
	toolResult, ok := result.(*mcp.CallToolResult)
	if !ok {
		t.Fatalf("result is %T, want *mcp.CallToolResult", result)
	}
	return toolResult.Content[0].(*mcp.TextContent).Text
}

func TestShareHint(t *testing.T) {
	tests := []struct {
		name       string
		account    string
		method     string
		errText    string
		args       string
		wantAppend bool
	}{
		{"permission denied", testServiceAccount, "tools/call", "permission denied — share it", `{"file_id":"abc123"}`, true},
		{"not found", testServiceAccount, "tools/call", "file not found — verify the ID", `{"file_id":"abc123"}`, true},
		{"unrelated error", testServiceAccount, "tools/call", "rate limit exceeded", `{"file_id":"abc123"}`, false},
		{"no file id", testServiceAccount, "tools/call", "permission denied", `{"text":"#fff"}`, false},
		{"bad arguments", testServiceAccount, "tools/call", "permission denied", `not json`, false},
		{"no service account", "", "tools/call", "permission denied", `{"file_id":"abc123"}`, false},
		{"other method", testServiceAccount, "tools/list", "permission denied", `{"file_id":"abc123"}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := ShareHintMiddleware(tt.account)(errorResult(tt.errText))
			result, err := handler(context.Background(), tt.method, fakeToolRequest(tt.args))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			text := resultText(t, result)
			if !strings.HasPrefix(text, tt.errText) {
				t.Errorf("original error text missing, got: %s", text)
			}
			appended := strings.Contains(text, testServiceAccount)
			if appended != tt.wantAppend {
				t.Errorf("hint appended = %v, want %v: %s", appended, tt.wantAppend, text)
			}
			if tt.wantAppend && !strings.Contains(text, "/file/d/abc123") {
				t.Errorf("hint should link the file, got: %s", text)
			}
		})
	}
}

func TestShareHintIgnoresSuccess(t *testing.T) {
	next := func(_ context.Context, _ string, _ mcp.Request) (mcp.Result, error) {
		return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: "permission denied is just text"}}}, nil
	}
	result, _ := ShareHintMiddleware(testServiceAccount)(next)(context.Background(), "tools/call", fakeToolRequest(`{"file_id":"x"}`))
	if strings.Contains(resultText(t, result), testServiceAccount) {
		t.Error("successful results must not be modified")
	}
}

func TestToolName(t *testing.T) {
	if got := toolName(fakeToolRequest(`{}`)); got != "scan_drive_file_colors" {
		t.Errorf("toolName() = %q", got)
	}
	if got := toolName(nil); got != "" {
		t.Errorf("toolName(nil) = %q", got)
	}
}
