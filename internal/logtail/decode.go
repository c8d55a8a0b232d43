package logtail

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// decodeLossy converts b to a string, replacing ill-formed UTF-8 with U+FFFD.
func decodeLossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	out, _, err := transform.Bytes(runes.ReplaceIllFormed(), b)
	if err != nil {
		return strings.ToValidUTF8(string(b), string(utf8.RuneError))
	}
	return string(out)
}

// cutRunes returns the longest prefix of s that is at most limit bytes and
// does not split a rune.
func cutRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// truncateMarked shortens s to limit bytes and appends TruncationMarker
// when anything was removed.
func truncateMarked(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return cutRunes(s, limit) + TruncationMarker
}

// completeRunes reports how many leading bytes of b can be decoded now.
// A rune cut off at the end of b is left for the next read; any other
// invalid sequence makes ok false.
func completeRunes(b []byte) (n int, ok bool) {
	if utf8.Valid(b) {
		return len(b), true
	}
	for i := len(b) - 1; i >= 0 && i >= len(b)-(utf8.UTFMax-1); i-- {
		if !utf8.RuneStart(b[i]) {
			continue
		}
		if !utf8.FullRune(b[i:]) && utf8.Valid(b[:i]) {
			return i, true
		}
		break
	}
	return 0, false
}
