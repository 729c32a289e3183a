package chainnum

import "unsafe"

func isFrameSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func trimFrameSpace(s string) string {
	for len(s) > 0 && isFrameSpace(s[0]) {
		s = s[1:]
	}
	for len(s) > 0 && isFrameSpace(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	return s
}

// unframe trims ASCII whitespace from both ends of s, then strips one
// surrounding pair of double quotes and trims again. Interior whitespace is
// left alone and will fail the digit checks.
func unframe(s string) string {
	s = trimFrameSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = trimFrameSpace(s[1 : len(s)-1])
	}
	return s
}

func hasHexPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// bytesString views b as a string without copying. The result must not
// outlive b or be retained; anything that keeps the input (ParseError) copies
// it first.
func bytesString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
