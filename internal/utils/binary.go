package utils

import "unicode/utf8"

// sniffLength bounds how much of a transcript is inspected for binary content.
const sniffLength = 8000

// IsBinary reports whether the leading bytes of data look like binary content
// rather than a text transcript.
func IsBinary(data []byte) bool {
	sample := data
	if len(sample) > sniffLength {
		sample = sample[:sniffLength]
		// Drop a rune cut in half by the sniff boundary.
		for trimmed := 0; trimmed < utf8.UTFMax-1 && !utf8.Valid(sample); trimmed++ {
			sample = sample[:len(sample)-1]
		}
	}
	if len(sample) == 0 {
		return false
	}
	if !utf8.Valid(sample) {
		return true
	}
	for _, byteValue := range sample {
		if byteValue == 0 {
			return true
		}
	}
	return false
}
