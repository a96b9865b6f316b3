package middleware

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

// ErrNoCredentials is returned when no Google credentials could be found for
// the Drive service.
var ErrNoCredentials = errors.New("no Google credentials configured")

// HandleDriveError translates Drive API errors into agent-actionable messages.
// These messages tell the AI what to do next, not the end user.
func HandleDriveError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrNoCredentials) {
		return fmt.Errorf(
			"no Google credentials found — the server needs GOOGLE_APPLICATION_CREDENTIALS pointing at a " +
				"service account key, or application default credentials. Drive tools cannot run until then")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("the Drive request timed out — retry, or try a smaller file")
	}

	var googleErr *googleapi.Error
	if errors.As(err, &googleErr) {
		switch googleErr.Code {
		case 400:
			return fmt.Errorf(
				"bad request — check that file_id is a Drive file ID, not a URL or a name. Detail: %s",
				googleErr.Message)
		case 401:
			return fmt.Errorf(
				"the server's Google credentials were rejected — verify GOOGLE_APPLICATION_CREDENTIALS " +
					"points at a valid, non-revoked key")
		case 403:
			if isExportLimit(googleErr) {
				return fmt.Errorf(
					"the file is too large for Drive to export — scan a smaller file or download an Office copy")
			}
			return fmt.Errorf(
				"permission denied — the file must be shared with the server's service account. Detail: %s",
				googleErr.Message)
		case 404:
			return fmt.Errorf(
				"file not found — verify the ID is correct and the file is shared with the server's service account")
		case 429:
			return fmt.Errorf(
				"rate limit exceeded for the Drive API — wait 30-60 seconds before retrying this tool call")
		case 500, 502, 503:
			return fmt.Errorf(
				"Drive API server error (%d) — this is a transient issue, retry after a few seconds. Detail: %s",
				googleErr.Code, googleErr.Message)
		default:
			return fmt.Errorf("Drive API error (%d): %s", googleErr.Code, googleErr.Message)
		}
	}

	return err
}

func isExportLimit(e *googleapi.Error) bool {
	for _, item := range e.Errors {
		if item.Reason == "exportSizeLimitExceeded" {
			return true
		}
	}
	return false
}
