package trace

import "fmt"

// safeSprintf formats like fmt.Sprintf but never returns more than
// maxLineLen bytes, mirroring spec.md §4.8's fixed 1024-byte stack buffer:
// longer messages are truncated rather than grown.
func safeSprintf(format string, args ...any) string {
	s := fmt.Sprintf(format, args...)
	if len(s) <= maxLineLen {
		return s
	}

	return s[:maxLineLen]
}
