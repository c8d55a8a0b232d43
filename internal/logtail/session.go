package logtail

import "errors"

// ErrNoFile is returned by Poll for a session without a backing file.
var ErrNoFile = errors.New("session has no file")

// Options tunes a Session. The zero value uses the default limits.
type Options struct {
	Limits         Limits
	KeepBlankLines bool
}

// PollResult summarises one successful poll.
type PollResult struct {
	Appended int
	Evicted  int
	Consumed uint64
	// Replaced is set when the newest line was rewritten in place because
	// a line still being written at load time grew or was completed.
	Replaced bool
}

// Session couples the retained lines of one file with its live cursor.
// It is not safe for concurrent use.
type Session struct {
	path     string
	buffer   *Buffer
	cursor   Cursor
	poller   *Poller
	strategy Strategy
	size     int64

	// provisional marks the newest buffer entry as an unterminated line
	// from the cold load. The poller re-reads it from its first byte and
	// the completed line takes its place.
	provisional bool
}

// Open loads the tail of path and positions the cursor after its last
// complete line.
func Open(path string, opts Options) (*Session, error) {
	limits := opts.Limits.normalized()
	tail, err := LoadLimits(path, limits)
	if err != nil {
		return nil, err
	}
	return &Session{
		path:   path,
		buffer: NewBufferFrom(tail.Lines, tail.FirstLine, limits.MaxLines),
		cursor: Cursor{Offset: tail.End},
		poller: &Poller{
			Path:           path,
			Limits:         limits,
			KeepBlankLines: opts.KeepBlankLines,
		},
		strategy:    tail.Strategy,
		size:        tail.Size,
		provisional: tail.Unterminated && len(tail.Lines) > 0,
	}, nil
}

// NewSample returns a session over SampleLines that cannot follow.
func NewSample() *Session {
	lines := SampleLines()
	return &Session{
		buffer:   NewBufferFrom(lines, 1, MaxLines),
		strategy: StrategySample,
	}
}

// Poll appends any content written since the last poll. On error nothing
// changes and the next call retries from the same place.
func (s *Session) Poll() (PollResult, error) {
	if s.poller == nil {
		return PollResult{}, ErrNoFile
	}
	lines, next, err := s.poller.Next(s.cursor)
	if err != nil {
		return PollResult{}, err
	}
	res := PollResult{Consumed: next.Offset - s.cursor.Offset}
	if s.provisional {
		lines, res.Replaced = s.settleProvisional(lines, next)
	}
	res.Appended = len(lines)
	res.Evicted = s.buffer.Append(lines...)
	s.cursor = next
	return res, nil
}

// settleProvisional updates the provisional entry from a poll result. The
// first complete line is the provisional one finished; until then the
// entry tracks the growing fragment.
func (s *Session) settleProvisional(lines []string, next Cursor) ([]string, bool) {
	var text string
	switch {
	case len(lines) > 0:
		text, lines = lines[0], lines[1:]
		s.provisional = false
	case next.Partial != "":
		text = next.Partial
		if next.overflow {
			text += TruncationMarker
		}
	default:
		return lines, false
	}

	n := s.buffer.Len()
	if n > 0 && s.buffer.At(n-1) == text {
		return lines, false
	}
	return lines, s.buffer.ReplaceLast(text)
}

// CanFollow reports whether live polling is possible.
func (s *Session) CanFollow() bool { return s.poller != nil }

// Path returns the followed file, or "" for a sample session.
func (s *Session) Path() string { return s.path }

// Buffer returns the retained lines.
func (s *Session) Buffer() *Buffer { return s.buffer }

// Cursor returns the live read position.
func (s *Session) Cursor() Cursor { return s.cursor }

// Strategy reports how the session was loaded.
func (s *Session) Strategy() Strategy { return s.strategy }

// Size returns the file size seen by the cold load.
func (s *Session) Size() int64 { return s.size }
