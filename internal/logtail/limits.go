package logtail

// Default memory and I/O bounds.
const (
	// MaxLines is the number of lines retained in memory.
	MaxLines = 150

	// MaxLineLen is the maximum number of bytes kept for a single line.
	MaxLineLen = 64 * 1024

	// PollReadCap is the maximum number of bytes read by one live poll.
	PollReadCap = 512 * 1024

	// TailReadSize is the file size above which the cold load reads only
	// the trailing window of this many bytes.
	TailReadSize = 2 * 1024 * 1024
)

// TruncationMarker is appended to lines cut at MaxLineLen on the tail-scan
// and live paths.
const TruncationMarker = "..."

// Limits bounds every allocation made by the loader and the poller.
// Zero fields fall back to the package defaults.
type Limits struct {
	MaxLines     int
	MaxLineLen   int
	PollReadCap  int
	TailReadSize int64
}

// DefaultLimits returns the limits used by the ratlog binary.
func DefaultLimits() Limits {
	return Limits{
		MaxLines:     MaxLines,
		MaxLineLen:   MaxLineLen,
		PollReadCap:  PollReadCap,
		TailReadSize: TailReadSize,
	}
}

func (l Limits) normalized() Limits {
	if l.MaxLines <= 0 {
		l.MaxLines = MaxLines
	}
	if l.MaxLineLen <= 0 {
		l.MaxLineLen = MaxLineLen
	}
	if l.PollReadCap <= 0 {
		l.PollReadCap = PollReadCap
	}
	if l.TailReadSize <= 0 {
		l.TailReadSize = TailReadSize
	}
	return l
}
