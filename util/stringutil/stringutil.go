package stringutil

import (
	"bytes"
	"strings"
)

// 0xEF, 0xBB, 0xBF
var Utf8bom = []byte{0xEF, 0xBB, 0xBF}

// Check whether str is a "http://" or "https://"" url
func IsUrl(str string) bool {
	return strings.HasPrefix(str, "http://") || strings.HasPrefix(str, "https://")
}

// data should be a UTF-8 text file contents.
// Return canonical string from data that is:
// 1. UTF-8 BOM removed.
// 2. Line breaks converted to \n.
func StringFromBytes(data []byte) string {
	data = bytes.TrimPrefix(data, Utf8bom)
	crlf := []byte{'\r', '\n'}
	cr := []byte{'\r'}
	lf := []byte{'\n'}
	if bytes.ContainsRune(data, '\r') {
		data = bytes.ReplaceAll(data, crlf, lf)
		data = bytes.ReplaceAll(data, cr, lf)
	}
	return string(data)
}

// NonEmptyLines splits text into lines, trims each one and drops empty lines.
// The returned slice is never nil.
func NonEmptyLines(text string) []string {
	lines := []string{}
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
