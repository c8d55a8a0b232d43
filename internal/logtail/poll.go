package logtail

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Cursor records how far a file has been consumed by live polling.
type Cursor struct {
	// Offset is the number of source bytes already consumed.
	Offset uint64
	// Partial is a fragment seen after the last newline.
	Partial string

	// overflow is set once Partial reached the line cap; bytes are then
	// discarded until the next newline.
	overflow bool
}

// Overflow reports whether the pending fragment has been cut at the cap.
func (c Cursor) Overflow() bool { return c.overflow }

// Poller reads content appended to a file since a Cursor.
type Poller struct {
	Path   string
	Limits Limits
	// KeepBlankLines keeps empty lines instead of dropping them.
	KeepBlankLines bool

	buf []byte
}

// Next reads up to PollReadCap new bytes after cur and splits them into
// complete lines. It returns the lines and the cursor that follows them.
// The caller commits both or neither; on error cur is returned unchanged.
// Reading nothing is not an error.
func (p *Poller) Next(cur Cursor) ([]string, Cursor, error) {
	limits := p.Limits.normalized()

	chunk, err := p.read(cur.Offset, limits.PollReadCap)
	if err != nil {
		return nil, cur, err
	}
	if len(chunk) == 0 {
		return nil, cur, nil
	}

	usable, ok := completeRunes(chunk)
	if !ok {
		return nil, cur, fmt.Errorf("decode log: invalid UTF-8 after offset %d", cur.Offset)
	}
	if usable == 0 {
		return nil, cur, nil
	}

	lines, next := p.split(cur, chunk[:usable], limits.MaxLineLen)
	next.Offset = cur.Offset + uint64(usable)
	return lines, next, nil
}

func (p *Poller) read(offset uint64, limit int) ([]byte, error) {
	file, err := os.Open(p.Path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	if _, err := file.Seek(int64(offset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek log: %w", err)
	}
	if cap(p.buf) < limit {
		p.buf = make([]byte, limit)
	}
	n, err := io.ReadFull(file, p.buf[:limit])
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return p.buf[:n], nil
}

// split joins cur.Partial with chunk and cuts the result at newlines.
// Lines longer than maxLen are truncated with TruncationMarker, and the
// carried fragment never grows past maxLen bytes.
func (p *Poller) split(cur Cursor, chunk []byte, maxLen int) ([]string, Cursor) {
	var lines []string
	partial, overflow := cur.Partial, cur.overflow

	for len(chunk) > 0 {
		i := bytes.IndexByte(chunk, '\n')
		if i < 0 {
			if !overflow {
				joined := partial + string(chunk)
				if len(joined) > maxLen {
					partial = strings.Clone(cutRunes(joined, maxLen))
					overflow = true
				} else {
					partial = joined
				}
			}
			break
		}

		var line string
		if overflow {
			line = partial + TruncationMarker
		} else {
			line = truncateMarked(partial+string(chunk[:i]), maxLen)
		}
		chunk = chunk[i+1:]
		partial, overflow = "", false

		if line == "" && !p.KeepBlankLines {
			continue
		}
		lines = append(lines, line)
	}

	return lines, Cursor{Partial: partial, overflow: overflow}
}
