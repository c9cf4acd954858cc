package util

import (
	"path"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxFileNameLen  = 255
	defaultFileName = "upload"
)

// CleanFileName reduces a client supplied upload name to a display-safe base
// name. Directory parts and control characters are dropped and the result is
// capped at 255 bytes. Unusable names become "upload".
func CleanFileName(name string) string {
	s := strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")
	s = path.Base(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || r == utf8.RuneError {
			return -1
		}
		return r
	}, s)
	s = strings.TrimSpace(s)
	if s == "" || s == "." || s == ".." || s == "/" {
		return defaultFileName
	}
	for len(s) > maxFileNameLen {
		_, size := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-size]
	}
	return s
}
