// backend/utils/areas.go
package utils

import "strings"

// NormalizeAreaName converts an area display name to the lowercase form used
// in bleau.info page paths (e.g. "Cuvier" -> "cuvier"). Trims surrounding
// whitespace.
func NormalizeAreaName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
