package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

const readerBufferSize = 64 * 1024

// Line is one logical line produced by LineReader.
type Line struct {
	// Text is the decoded line without its trailing newline.
	Text string
	// Bytes is the number of source bytes consumed for this line, including
	// the newline and any bytes skipped past the length cap.
	Bytes int64
	// Truncated is set when the line was longer than the cap.
	Truncated bool
	// Unterminated is set when the input ended before a newline, as with a
	// line still being written.
	Unterminated bool
}

// LineReader reads newline-terminated lines while holding at most maxLen
// bytes of any single line in memory.
type LineReader struct {
	rd     *bufio.Reader
	maxLen int
	buf    []byte
}

// NewLineReader wraps r. A non-positive maxLen selects MaxLineLen.
func NewLineReader(r io.Reader, maxLen int) *LineReader {
	if maxLen <= 0 {
		maxLen = MaxLineLen
	}
	return &LineReader{
		rd:     bufio.NewReaderSize(r, readerBufferSize),
		maxLen: maxLen,
		buf:    make([]byte, 0, min(4096, maxLen)),
	}
}

// ReadLine returns the next line, or io.EOF once the stream is exhausted.
// A final line without a trailing newline is returned as a normal line.
// Lines longer than the cap are cut and the remainder up to the next
// newline is discarded, so they still count as exactly one line.
func (r *LineReader) ReadLine() (Line, error) {
	r.buf = r.buf[:0]
	var consumed int64
	for {
		frag, err := r.rd.ReadSlice('\n')
		consumed += int64(len(frag))

		terminated := err == nil
		content := frag
		if terminated {
			content = frag[:len(frag)-1]
		}
		if err != nil && !errors.Is(err, bufio.ErrBufferFull) && !errors.Is(err, io.EOF) {
			return Line{}, fmt.Errorf("read line: %w", err)
		}

		if room := r.maxLen - len(r.buf); len(content) > room {
			r.buf = append(r.buf, content[:room]...)
			if errors.Is(err, bufio.ErrBufferFull) {
				skipped, found, err := r.skipLine()
				consumed += skipped
				if err != nil {
					return Line{}, err
				}
				terminated = found
			}
			return r.line(consumed, true, !terminated), nil
		}
		r.buf = append(r.buf, content...)

		switch {
		case terminated:
			return r.line(consumed, false, false), nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		default: // io.EOF
			if consumed == 0 {
				return Line{}, io.EOF
			}
			return r.line(consumed, false, true), nil
		}
	}
}

func (r *LineReader) line(consumed int64, truncated, unterminated bool) Line {
	return Line{
		Text:         decodeLossy(r.buf),
		Bytes:        consumed,
		Truncated:    truncated,
		Unterminated: unterminated,
	}
}

// skipLine discards input up to and including the next newline or EOF and
// reports whether a newline was found.
func (r *LineReader) skipLine() (int64, bool, error) {
	var n int64
	for {
		frag, err := r.rd.ReadSlice('\n')
		n += int64(len(frag))
		switch {
		case err == nil:
			return n, true, nil
		case errors.Is(err, io.EOF):
			return n, false, nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		default:
			return n, false, fmt.Errorf("skip line: %w", err)
		}
	}
}
