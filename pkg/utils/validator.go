package utils

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrInvalidDateFormat keeps a generic message, the accepted layouts are listed below.
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD or a similar layout")
)

// IsBlank reports whether s is empty or contains only whitespace.
// Submission fields are required to be non-blank after trimming; no format
// validation is applied beyond that.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ParseDate parses a date string, accepting several common layouts.
// Supports YYYY-MM-DD, YYYY/MM/DD, YYYY-M-D and their variants.
func ParseDate(dateStr string) (time.Time, error) {
	trimmedDateStr := strings.TrimSpace(dateStr)
	if trimmedDateStr == "" {
		return time.Time{}, ErrInvalidDateFormat
	}

	normalizedDateStr := strings.ReplaceAll(trimmedDateStr, "/", "-")

	// Both zero-padded and unpadded month/day.
	dateLayouts := []string{
		"2006-01-02", // YYYY-MM-DD
		"2006-1-2",   // YYYY-M-D
		"2006-01-2",  // YYYY-MM-D
		"2006-1-02",  // YYYY-M-DD
	}

	for _, layout := range dateLayouts {
		parsedDate, err := time.Parse(layout, normalizedDateStr)
		if err == nil {
			return parsedDate, nil
		}
	}
	return time.Time{}, ErrInvalidDateFormat
}

// TruncateRunes returns at most n runes of s. Slicing runes rather than bytes
// keeps multi-byte descriptions intact at the cut point.
func TruncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
