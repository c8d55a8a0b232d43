package logtail

import "strings"

// Match is one entry of a filtered view: the index of the line within the
// buffer and its text.
type Match struct {
	Index int
	Text  string
}

// Filter returns the lines containing query, case-insensitively, in their
// original order. A blank query matches every line. When more than limit
// lines match only the most recent limit are returned; a non-positive
// limit disables the cap.
func Filter(lines []string, query string, limit int) []Match {
	return filterFunc(len(lines), func(i int) string { return lines[i] }, query, limit)
}

func filterFunc(n int, at func(int) string, query string, limit int) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Match, 0, min(n, capOrLen(limit, n)))
	for i := 0; i < n; i++ {
		line := at(i)
		if q != "" && !strings.Contains(strings.ToLower(line), q) {
			continue
		}
		out = append(out, Match{Index: i, Text: line})
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}

func capOrLen(limit, n int) int {
	if limit <= 0 {
		return n
	}
	return limit
}
