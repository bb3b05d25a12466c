package errs

import "strings"

var sanitizer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// sanitize keeps error messages on a single line so they can be logged and
// returned to clients verbatim.
func sanitize(s string) string {
	return sanitizer.Replace(s)
}
