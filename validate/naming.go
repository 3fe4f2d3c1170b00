package validate

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Pre-compiled naming convention patterns
var (
	lowerCamelRe = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)
	upperCamelRe = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)
)

// isLowerCamel reports whether name follows lowerCamel convention.
func isLowerCamel(name string) bool {
	return lowerCamelRe.MatchString(name)
}

// isUpperCamel reports whether name follows UpperCamel convention.
func isUpperCamel(name string) bool {
	return upperCamelRe.MatchString(name)
}

// fileBaseName strips the YAML extension from a file path's base name.
// "models/Customer.Type.yaml" → "Customer.Type".
func fileBaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// fileSegmentsUpperCamel reports whether every dot-separated segment of a
// file's base name is UpperCamel. "Customer.Type" passes, "customer.type"
// does not.
func fileSegmentsUpperCamel(path string) bool {
	for _, segment := range strings.Split(fileBaseName(path), ".") {
		if !isUpperCamel(segment) {
			return false
		}
	}
	return true
}
