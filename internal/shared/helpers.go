// Package shared provides common utility functions used across multiple
// packages in the mclauncher codebase.
package shared

import (
	"path/filepath"
	"strings"
)

// SplitCoordinate splits a Maven-style group:artifact:version coordinate.
// ok is false when the coordinate has fewer than three segments; extra
// segments beyond the version (classifier suffixes) are ignored.
func SplitCoordinate(value string) (group, artifact, version string, ok bool) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) < 3 {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}

// GroupPath converts a dotted group identifier into the nested directory
// path used under the libraries tree.
func GroupPath(group string) string {
	return filepath.Join(strings.Split(group, ".")...)
}
