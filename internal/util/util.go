// internal/util/util.go
package util

import (
	"os"
	"strings"
	"unicode/utf8"
)

// WriteFile writes data to a file with 0o644 permissions, replacing any previous content.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// AppendFile appends data to a file, creating it with 0o644 permissions if needed.
func AppendFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// TruncateRunes truncates a string to a maximum number of runes,
// appending an ellipsis if truncated.
func TruncateRunes(text string, maxRunes int) string {
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxRunes]) + "…"
}

// OneLine collapses newlines so multi-line text fits in a single log line.
func OneLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
