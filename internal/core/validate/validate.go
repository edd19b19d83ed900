// Package validate holds the request validation checks. Every check is a
// pure function; handlers turn failures into 400 responses.
package validate

import (
	"regexp"
	"strings"
)

var (
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	pincodeRe = regexp.MustCompile(`^[0-9]{6}$`)
	nameRe    = regexp.MustCompile(`^[A-Za-z]+(?:[ A-Za-z-']+)*$`)
)

// Email reports whether s looks like local@domain.tld.
func Email(s string) bool {
	return s != "" && emailRe.MatchString(s)
}

// Pincode reports whether s is exactly six digits.
func Pincode(s string) bool {
	return s != "" && pincodeRe.MatchString(s)
}

// Name accepts letters, spaces, hyphens and apostrophes on the trimmed value.
func Name(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && nameRe.MatchString(s)
}

// MissingFields returns the names from fields whose value in m is absent,
// nil, or an empty/whitespace-only string.
func MissingFields(m map[string]any, fields []string) []string {
	var missing []string
	for _, f := range fields {
		v, ok := m[f]
		if !ok || v == nil {
			missing = append(missing, f)
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}
