package render

import "strings"

// Header builds the contextual header string a format node carries through
// decode and rendering, e.g. Header("CAT062", "I010", "SAC") -> "CAT062:I010:SAC".
func Header(parts ...string) string {
	return strings.Join(parts, ":")
}
