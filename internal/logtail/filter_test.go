package logtail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	mixed := []string{"INFO foo", "ERROR bar", "info baz"}

	tests := []struct {
		name  string
		lines []string
		query string
		limit int
		want  []Match
	}{
		{
			name:  "case insensitive",
			lines: mixed,
			query: "info",
			limit: MaxLines,
			want:  []Match{{Index: 0, Text: "INFO foo"}, {Index: 2, Text: "info baz"}},
		},
		{
			name:  "upper query",
			lines: mixed,
			query: "ERROR",
			limit: MaxLines,
			want:  []Match{{Index: 1, Text: "ERROR bar"}},
		},
		{
			name:  "query is trimmed",
			lines: mixed,
			query: "  bar \t",
			limit: MaxLines,
			want:  []Match{{Index: 1, Text: "ERROR bar"}},
		},
		{
			name:  "empty query is identity",
			lines: mixed,
			query: "",
			limit: MaxLines,
			want: []Match{
				{Index: 0, Text: "INFO foo"},
				{Index: 1, Text: "ERROR bar"},
				{Index: 2, Text: "info baz"},
			},
		},
		{
			name:  "blank query is identity",
			lines: mixed,
			query: "   ",
			limit: MaxLines,
			want: []Match{
				{Index: 0, Text: "INFO foo"},
				{Index: 1, Text: "ERROR bar"},
				{Index: 2, Text: "info baz"},
			},
		},
		{
			name:  "no match",
			lines: mixed,
			query: "warn",
			limit: MaxLines,
			want:  []Match{},
		},
		{
			name:  "keeps most recent matches",
			lines: numberedLines("x", 20),
			query: "x",
			limit: 5,
			want: []Match{
				{Index: 15, Text: "x 15"},
				{Index: 16, Text: "x 16"},
				{Index: 17, Text: "x 17"},
				{Index: 18, Text: "x 18"},
				{Index: 19, Text: "x 19"},
			},
		},
		{
			name:  "non-positive limit disables cap",
			lines: numberedLines("x", 3),
			query: "x",
			limit: 0,
			want: []Match{
				{Index: 0, Text: "x 0"},
				{Index: 1, Text: "x 1"},
				{Index: 2, Text: "x 2"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filter(tt.lines, tt.query, tt.limit))
		})
	}
}

func TestFilterMatchesAreSubstrings(t *testing.T) {
	lines := append(numberedLines("Alpha", 200), numberedLines("beta", 200)...)
	for _, q := range []string{"ALPHA 1", "a", "beta 19", "zzz", ""} {
		got := Filter(lines, q, MaxLines)
		assert.LessOrEqual(t, len(got), MaxLines)
		prev := -1
		for _, m := range got {
			assert.Greater(t, m.Index, prev)
			prev = m.Index
			assert.Equal(t, lines[m.Index], m.Text)
			assert.Contains(t, strings.ToLower(m.Text), strings.ToLower(strings.TrimSpace(q)))
		}
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	lines := []string{"b", "a"}
	Filter(lines, "a", 1)
	assert.Equal(t, []string{"b", "a"}, lines)
}
