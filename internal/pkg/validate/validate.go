// Package validate checks tool inputs before they reach the scanner or an
// external API, returning errors an agent can act on.
package validate

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// MaxTextSize bounds the text a single tool call may scan (1 MiB).
const MaxTextSize = 1 << 20

// driveIDRE matches valid Google Drive file/folder IDs.
// Drive IDs are alphanumeric with hyphens and underscores, typically 25-60 chars,
// plus the special "root" literal.
var driveIDRE = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,128}$`)

// DriveID validates that the given string is a safe Google Drive resource ID.
// This prevents query injection when IDs are interpolated into Drive API queries.
func DriveID(id string) error {
	if !driveIDRE.MatchString(id) {
		return fmt.Errorf("invalid Drive resource ID %q — expected alphanumeric characters, hyphens, and underscores", id)
	}
	return nil
}

// Text checks that text is non-empty UTF-8 no larger than MaxTextSize.
func Text(text string) error {
	switch {
	case text == "":
		return fmt.Errorf("text is empty — pass the text to scan in the 'text' parameter")
	case len(text) > MaxTextSize:
		return fmt.Errorf("text too large (%d bytes, max %d) — scan a smaller excerpt", len(text), MaxTextSize)
	case !utf8.ValidString(text):
		return fmt.Errorf("text is not valid UTF-8")
	}
	return nil
}

// Offset checks that offset is a byte position inside text, or just past its
// end.
func Offset(name string, offset int, text string) error {
	if offset < 0 || offset > len(text) {
		return fmt.Errorf("%s %d is out of range — must be a byte offset between 0 and %d", name, offset, len(text))
	}
	return nil
}
