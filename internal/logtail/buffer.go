package logtail

// Buffer is a fixed-capacity ring of the most recent lines of a file.
// Element i of the buffer is source line FirstLine()+i.
type Buffer struct {
	lines []string
	head  int
	count int
	base  int
}

// NumberedLine pairs a retained line with its 1-based source line number.
type NumberedLine struct {
	Number int
	Text   string
}

// NewBuffer returns an empty buffer whose first appended line is source
// line firstLine. A non-positive capacity selects MaxLines.
func NewBuffer(capacity, firstLine int) *Buffer {
	if capacity <= 0 {
		capacity = MaxLines
	}
	if firstLine < 1 {
		firstLine = 1
	}
	return &Buffer{lines: make([]string, capacity), base: firstLine}
}

// NewBufferFrom seeds a buffer with lines starting at source line firstLine.
// If lines exceed the capacity the oldest are dropped and the numbering
// advances accordingly.
func NewBufferFrom(lines []string, firstLine, capacity int) *Buffer {
	b := NewBuffer(capacity, firstLine)
	b.Append(lines...)
	return b
}

// Append adds lines in order, evicting from the front once the buffer is
// full. It returns the number of lines evicted.
func (b *Buffer) Append(lines ...string) int {
	evicted := 0
	capacity := len(b.lines)
	for _, line := range lines {
		if b.count < capacity {
			b.lines[(b.head+b.count)%capacity] = line
			b.count++
			continue
		}
		b.lines[b.head] = line
		b.head = (b.head + 1) % capacity
		b.base++
		evicted++
	}
	return evicted
}

// ReplaceLast overwrites the newest line in place. It reports false on an
// empty buffer.
func (b *Buffer) ReplaceLast(line string) bool {
	if b.count == 0 {
		return false
	}
	b.lines[(b.head+b.count-1)%len(b.lines)] = line
	return true
}

// Len returns the number of retained lines.
func (b *Buffer) Len() int { return b.count }

// Cap returns the buffer capacity.
func (b *Buffer) Cap() int { return len(b.lines) }

// FirstLine returns the source line number of the oldest retained line.
func (b *Buffer) FirstLine() int { return b.base }

// LineNumber returns the source line number of element i.
func (b *Buffer) LineNumber(i int) int { return b.base + i }

// At returns element i, oldest first. It panics if i is out of range.
func (b *Buffer) At(i int) string {
	if i < 0 || i >= b.count {
		panic("logtail: buffer index out of range")
	}
	return b.lines[(b.head+i)%len(b.lines)]
}

// Lines returns a copy of the retained lines, oldest first.
func (b *Buffer) Lines() []string {
	out := make([]string, b.count)
	for i := range out {
		out[i] = b.At(i)
	}
	return out
}

// Numbered returns the retained lines paired with their source line numbers.
func (b *Buffer) Numbered() []NumberedLine {
	out := make([]NumberedLine, b.count)
	for i := range out {
		out[i] = NumberedLine{Number: b.base + i, Text: b.At(i)}
	}
	return out
}

// Filter applies Filter to the retained lines, capped at the buffer capacity.
func (b *Buffer) Filter(query string) []Match {
	return filterFunc(b.count, b.At, query, len(b.lines))
}
