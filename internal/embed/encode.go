package embed

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when a source document isn't UTF-8 text
var ErrInvalidUTF8 = errors.New("embed: invalid utf-8")

// Encode returns the UTF-8 byte sequence of content. Content is passed through
// untouched: no normalization, trimming or line-ending translation. It fails
// when content isn't valid UTF-8.
func Encode(content []byte) ([]byte, error) {
	if utf8.Valid(content) {
		return content, nil
	}
	return nil, fmt.Errorf("%w at byte offset %d", ErrInvalidUTF8, invalidOffset(content))
}

// invalidOffset returns the offset of the first invalid sequence in p
func invalidOffset(p []byte) int {
	offset := 0
	for offset < len(p) {
		r, size := utf8.DecodeRune(p[offset:])
		if r == utf8.RuneError && size == 1 {
			return offset
		}
		offset += size
	}
	return offset
}
