package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func numberedLines(prefix string, n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("%s %d", prefix, i)
	}
	return lines
}

func TestLoadSmallFile(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		want         []string
		wantEnd      int
		unterminated bool
	}{
		{name: "empty", content: "", want: []string{}, wantEnd: 0},
		{name: "single line", content: "hello\n", want: []string{"hello"}, wantEnd: 6},
		{name: "no trailing newline", content: "a\nb", want: []string{"a", "b"}, wantEnd: 2, unterminated: true},
		{name: "only a fragment", content: "abc", want: []string{"abc"}, wantEnd: 0, unterminated: true},
		{name: "blank lines kept", content: "a\n\nb\n", want: []string{"a", "", "b"}, wantEnd: 5},
		{name: "crlf left alone", content: "a\r\nb\r\n", want: []string{"a\r", "b\r"}, wantEnd: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tail, err := Load(writeLog(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, tail.Lines)
			assert.Equal(t, 1, tail.FirstLine)
			assert.Equal(t, uint64(0), tail.Offset)
			assert.Equal(t, uint64(tt.wantEnd), tail.End)
			assert.Equal(t, tt.unterminated, tail.Unterminated)
			assert.Equal(t, StrategyStream, tail.Strategy)
		})
	}
}

func TestLoadKeepsLastMaxLines(t *testing.T) {
	lines := numberedLines("line", 200)
	content := strings.Join(lines, "\n") + "\n"
	path := writeLog(t, content)

	tail, err := Load(path)
	require.NoError(t, err)

	require.Len(t, tail.Lines, MaxLines)
	assert.Equal(t, 51, tail.FirstLine)
	assert.Equal(t, "line 50", tail.Lines[0])
	assert.Equal(t, "line 199", tail.Lines[len(tail.Lines)-1])
	assert.Equal(t, lines[50:], tail.Lines)

	wantOffset := len(strings.Join(lines[:50], "\n")) + 1
	assert.Equal(t, uint64(wantOffset), tail.Offset)
	assert.True(t, strings.HasPrefix(content[tail.Offset:], "line 50\n"))
	assert.Equal(t, uint64(len(content)), tail.End)
}

func TestLoadExactlyMaxLines(t *testing.T) {
	lines := numberedLines("line", MaxLines)
	tail, err := Load(writeLog(t, strings.Join(lines, "\n")+"\n"))
	require.NoError(t, err)

	assert.Equal(t, lines, tail.Lines)
	assert.Equal(t, 1, tail.FirstLine)
	assert.Equal(t, uint64(0), tail.Offset)
}

func TestLoadOversizedLineCountsOnce(t *testing.T) {
	long := strings.Repeat("x", 70000)
	tail, err := Load(writeLog(t, "first\n"+long+"\nnext\n"))
	require.NoError(t, err)

	require.Len(t, tail.Lines, 3)
	assert.Equal(t, "first", tail.Lines[0])
	assert.Len(t, tail.Lines[1], MaxLineLen)
	assert.Equal(t, "next", tail.Lines[2])
}

func TestLoadOffsetWithSmallLimits(t *testing.T) {
	content := "aaaaaaaaaaaa\nb\nc\nd\n"
	tail, err := LoadLimits(writeLog(t, content), Limits{MaxLines: 2, MaxLineLen: 4})
	require.NoError(t, err)

	assert.Equal(t, []string{"c", "d"}, tail.Lines)
	assert.Equal(t, 3, tail.FirstLine)
	assert.Equal(t, uint64(len("aaaaaaaaaaaa\nb\n")), tail.Offset)
}

func TestLoadUnterminatedTruncatedLine(t *testing.T) {
	content := "ok\n" + strings.Repeat("z", 10)
	tail, err := LoadLimits(writeLog(t, content), Limits{MaxLineLen: 4})
	require.NoError(t, err)

	assert.Equal(t, []string{"ok", "zzzz"}, tail.Lines)
	assert.True(t, tail.Unterminated)
	assert.Equal(t, uint64(3), tail.End)
}

func TestLoadLossyDecode(t *testing.T) {
	tail, err := Load(writeLog(t, "ok\xffok\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ok\uFFFDok"}, tail.Lines)
}

func TestLoadTailScan(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = fmt.Sprintf("l%02d", i)
	}
	content := strings.Join(lines, "\n") + "\n"
	path := writeLog(t, content)

	t.Run("keeps last lines", func(t *testing.T) {
		tail, err := LoadLimits(path, Limits{MaxLines: 3, TailReadSize: 20})
		require.NoError(t, err)

		assert.Equal(t, StrategyTailScan, tail.Strategy)
		assert.Equal(t, []string{"l27", "l28", "l29"}, tail.Lines)
		assert.Equal(t, 1, tail.FirstLine)
		assert.Equal(t, uint64(len(content)), tail.Offset)
		assert.Equal(t, uint64(len(content)), tail.End)
	})

	t.Run("drops first fragment", func(t *testing.T) {
		// The window starts exactly on "l25"; it is still discarded.
		tail, err := LoadLimits(path, Limits{MaxLines: 10, TailReadSize: 20})
		require.NoError(t, err)
		assert.Equal(t, []string{"l26", "l27", "l28", "l29"}, tail.Lines)
		assert.False(t, tail.Unterminated)
	})

	t.Run("unterminated last line", func(t *testing.T) {
		open := strings.TrimSuffix(content, "\n")
		tail, err := LoadLimits(writeLog(t, open), Limits{MaxLines: 3, TailReadSize: 20})
		require.NoError(t, err)

		assert.Equal(t, []string{"l27", "l28", "l29"}, tail.Lines)
		assert.True(t, tail.Unterminated)
		assert.Equal(t, uint64(len(open)-len("l29")), tail.End)
		assert.Equal(t, uint64(len(open)), tail.Offset)
	})

	t.Run("single huge line", func(t *testing.T) {
		huge := strings.Repeat("q", 50)
		tail, err := LoadLimits(writeLog(t, huge), Limits{TailReadSize: 20, MaxLineLen: 8})
		require.NoError(t, err)

		assert.Equal(t, []string{"qqqqqqqq..."}, tail.Lines)
		assert.True(t, tail.Unterminated)
		assert.Equal(t, uint64(30), tail.End)
	})
}

func TestParseTailWindow(t *testing.T) {
	limits := Limits{MaxLines: 10, MaxLineLen: 5}

	tests := []struct {
		name    string
		window  string
		want    []string
		wantEnd int
	}{
		{name: "no newline is one line", window: "abc", want: []string{"abc"}, wantEnd: 0},
		{name: "no newline truncated", window: "abcdefgh", want: []string{"abcde..."}, wantEnd: 0},
		{name: "no newline skips split rune", window: "\xa9abc", want: []string{"abc"}, wantEnd: 1},
		{name: "only partial", window: "abc\n", want: []string{}, wantEnd: 4},
		{name: "truncates with marker", window: "junk\nabcdefghij\nok\n", want: []string{"abcde...", "ok"}, wantEnd: 19},
		{name: "drops blanks", window: "junk\n\na\n\n\nb\n", want: []string{"a", "b"}, wantEnd: 12},
		{name: "unterminated last", window: "junk\na\nb", want: []string{"a", "b"}, wantEnd: 7},
		{name: "truncates on rune boundary", window: "junk\nabcdé\n", want: []string{"abcd..."}, wantEnd: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, end := parseTailWindow([]byte(tt.window), limits)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.log")
		_, err := Load(path)
		require.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := Load(t.TempDir())
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "stream", StrategyStream.String())
	assert.Equal(t, "tail-scan", StrategyTailScan.String())
	assert.Equal(t, "sample", StrategySample.String())
	assert.Equal(t, "unknown", Strategy(42).String())
}
