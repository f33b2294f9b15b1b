package utils

import (
	"strconv"
	"strings"
)

var sizeUnits = []string{"b", "kb", "mb", "gb", "tb", "pb"}

// FormatFileSize converts a byte count into a short lower-case unit string,
// keeping one decimal below ten units ("1.5kb", "10mb").
func FormatFileSize(bytes int64) string {
	if bytes < 0 {
		return "0b"
	}
	if bytes < 1024 {
		return strconv.FormatInt(bytes, 10) + sizeUnits[0]
	}
	value := float64(bytes)
	unitIndex := 0
	for value >= 1024 && unitIndex < len(sizeUnits)-1 {
		value /= 1024
		unitIndex++
	}
	precision := 0
	if value < 10 {
		precision = 1
	}
	formatted := strconv.FormatFloat(value, 'f', precision, 64)
	return strings.TrimSuffix(formatted, ".0") + sizeUnits[unitIndex]
}
