package logtail

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"
)

// ErrNotFound is returned by Load when the log file does not exist.
var ErrNotFound = errors.New("log file not found")

// Strategy identifies how a cold load read the file.
type Strategy int

const (
	// StrategyStream scanned the whole file line by line.
	StrategyStream Strategy = iota
	// StrategyTailScan read only the trailing TailReadSize bytes.
	StrategyTailScan
	// StrategySample used the built-in sample lines.
	StrategySample
)

func (s Strategy) String() string {
	switch s {
	case StrategyStream:
		return "stream"
	case StrategyTailScan:
		return "tail-scan"
	case StrategySample:
		return "sample"
	default:
		return "unknown"
	}
}

// Tail is the result of a cold load.
type Tail struct {
	// Lines holds at most MaxLines lines, oldest first.
	Lines []string
	// Offset is the number of file bytes before the first kept line, or the
	// file size for a tail-scan.
	Offset uint64
	// End is where live polling resumes: just past the last kept line, or
	// at the start of that line when it is Unterminated, so that the poller
	// reads it again and completes it.
	End uint64
	// Unterminated is set when the last entry of Lines had no trailing
	// newline at load time and may still be growing.
	Unterminated bool
	// FirstLine is the 1-based source line number of Lines[0]. A tail-scan
	// always reports 1 because earlier lines are never counted.
	FirstLine int
	// Size is the file size observed at load time.
	Size     int64
	Strategy Strategy
}

// Load returns the last MaxLines lines of the file at path.
func Load(path string) (Tail, error) {
	return LoadLimits(path, DefaultLimits())
}

// LoadLimits is Load with explicit limits.
func LoadLimits(path string, limits Limits) (Tail, error) {
	limits = limits.normalized()

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Tail{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Tail{}, fmt.Errorf("stat log: %w", err)
	}
	if info.IsDir() {
		return Tail{}, fmt.Errorf("stat log: %s is a directory", path)
	}

	if info.Size() > limits.TailReadSize {
		return loadTailWindow(path, info.Size(), limits)
	}
	return loadStream(path, info.Size(), limits)
}

func openLog(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	return file, nil
}

// loadStream scans the whole file keeping a ring of the last MaxLines lines
// and the byte offset at which each of them starts.
func loadStream(path string, size int64, limits Limits) (Tail, error) {
	file, err := openLog(path)
	if err != nil {
		return Tail{}, err
	}
	defer file.Close()

	ring := NewBuffer(limits.MaxLines, 1)
	starts := make([]uint64, limits.MaxLines)
	reader := NewLineReader(file, limits.MaxLineLen)

	var pos, lastStart uint64
	unterminated := false
	total := 0
	for {
		line, err := reader.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Tail{}, fmt.Errorf("read log: %w", err)
		}
		starts[total%limits.MaxLines] = pos
		lastStart = pos
		unterminated = line.Unterminated
		pos += uint64(line.Bytes)
		total++
		ring.Append(line.Text)
	}

	tail := Tail{
		Lines:        ring.Lines(),
		End:          pos,
		Unterminated: unterminated,
		FirstLine:    ring.FirstLine(),
		Size:         size,
		Strategy:     StrategyStream,
	}
	if unterminated {
		tail.End = lastStart
	}
	if tail.FirstLine > 1 {
		tail.Offset = starts[(tail.FirstLine-1)%limits.MaxLines]
	}
	return tail, nil
}

// loadTailWindow reads only the last TailReadSize bytes of a large file.
func loadTailWindow(path string, size int64, limits Limits) (Tail, error) {
	file, err := openLog(path)
	if err != nil {
		return Tail{}, err
	}
	defer file.Close()

	start := max(size-limits.TailReadSize, 0)
	if _, err := file.Seek(start, io.SeekStart); err != nil {
		return Tail{}, fmt.Errorf("seek log: %w", err)
	}
	window := make([]byte, limits.TailReadSize)
	n, err := io.ReadFull(file, window)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return Tail{}, fmt.Errorf("read log: %w", err)
	}

	lines, end := parseTailWindow(window[:n], limits)
	return Tail{
		Lines:        lines,
		Offset:       uint64(size),
		End:          uint64(start) + uint64(end),
		Unterminated: end < n,
		FirstLine:    1,
		Size:         size,
		Strategy:     StrategyTailScan,
	}, nil
}

// parseTailWindow splits a trailing byte window into lines. The first
// fragment is assumed to start mid-line and is dropped, as are empty
// fragments, unless the window holds no newline at all: then the whole
// window is one line. Only the last MaxLines lines are decoded.
//
// end is the length of the window prefix that holds complete lines. When
// it is short of len(window) the last returned line is unterminated.
func parseTailWindow(window []byte, limits Limits) (lines []string, end int) {
	first := bytes.IndexByte(window, '\n')
	if first < 0 {
		skip := leadingContinuation(window)
		if skip == len(window) {
			return nil, skip
		}
		return []string{truncateMarked(decodeLossy(window[skip:]), limits.MaxLineLen)}, skip
	}
	end = bytes.LastIndexByte(window, '\n') + 1
	body := window[first+1:]

	kept := make([]string, 0, limits.MaxLines)
	stop := len(body)
	for stop >= 0 && len(kept) < limits.MaxLines {
		start := bytes.LastIndexByte(body[:stop], '\n') + 1
		if start < stop {
			kept = append(kept, truncateMarked(decodeLossy(body[start:stop]), limits.MaxLineLen))
		}
		stop = start - 1
	}

	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return kept, end
}

// leadingContinuation counts the UTF-8 continuation bytes at the start of
// a window cut mid-rune, so that reading resumes on a rune boundary.
func leadingContinuation(window []byte) int {
	n := 0
	for n < len(window) && n < utf8.UTFMax-1 && window[n]&0xC0 == 0x80 {
		n++
	}
	return n
}
