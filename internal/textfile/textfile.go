// Package textfile decodes file contents as text and splits them into lines
// that keep their terminators.
package textfile

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"

	trimerrors "trimlines/internal/errors"
)

// Lookup resolves an encoding by IANA or WHATWG name.
func Lookup(name string) (encoding.Encoding, error) {
	if isUTF8(name) {
		return unicode.UTF8, nil
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}
	if enc, err := htmlindex.Get(name); err == nil {
		return enc, nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", name)
}

func isUTF8(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}

// Decode converts raw file bytes into text. UTF-8 input is validated strictly
// and returned unchanged, so a byte order mark stays part of the first line.
func Decode(data []byte, name string) (string, error) {
	if isUTF8(name) {
		if off := invalidUTF8Offset(data); off >= 0 {
			return "", &trimerrors.DecodeError{Encoding: "utf-8", Offset: off}
		}
		return string(data), nil
	}

	enc, err := Lookup(name)
	if err != nil {
		return "", err
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", trimerrors.ErrDecoding, name, err)
	}
	return string(out), nil
}

// Encode converts text back into bytes under the named encoding.
func Encode(s string, name string) ([]byte, error) {
	if isUTF8(name) {
		return []byte(s), nil
	}

	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	out, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("failed to encode as %s: %w", name, err)
	}
	return out, nil
}

func invalidUTF8Offset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}

// SplitLines breaks s into lines the way Python's str.splitlines(True) does.
// A line ends at '\n', '\r', "\r\n", or any other rune IsLineBreak reports.
// Terminators are kept, so every line survives verbatim. A trailing run
// without a terminator is the last line; empty input has no lines.
func SplitLines(s string) []string {
	var lines []string
	start := 0
	for i, r := range s {
		if i < start || !IsLineBreak(r) {
			continue
		}
		end := i + utf8.RuneLen(r)
		if r == '\r' && end < len(s) && s[end] == '\n' {
			end++
		}
		lines = append(lines, s[start:end])
		start = end
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// IsLineBreak reports whether r ends a line: LF, CR, VT, FF, the file, group
// and record separators, NEL, LINE SEPARATOR and PARAGRAPH SEPARATOR.
func IsLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
