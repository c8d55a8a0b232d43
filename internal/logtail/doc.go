// Package logtail loads, follows and filters the tail of a log file while
// keeping memory bounded.
//
// # Overview
//
// Memory use never depends on the size of the file or the length of its
// lines. At most MaxLines lines are retained, each at most MaxLineLen bytes
// plus TruncationMarker.
//
//   - Load reads the last MaxLines lines of a file once at startup.
//   - Poller reads bytes appended since a Cursor and reassembles lines that
//     were split across reads.
//   - Buffer is the fixed-capacity ring the lines live in. It remembers the
//     source line number of its oldest element so numbering survives
//     eviction.
//   - Filter projects a Buffer onto the lines containing a query.
//
// Session ties a Buffer to the Cursor of one file.
//
// # Cold load
//
// Files up to TailReadSize bytes are streamed through a LineReader. The
// returned Offset is the byte position of the first kept line and FirstLine
// is its true line number.
//
// Larger files are not scanned. Only the trailing TailReadSize bytes are
// read, the first (partial) line of that window is dropped, and Offset is
// set to the file size so following starts from the current end. FirstLine
// is reported as 1 in that case; the real number is unknown. A window
// with no newline at all is kept as one truncated line.
//
// A last line with no trailing newline is kept but marked Unterminated, and
// Tail.End points at its first byte. The session shows it provisionally;
// the first poll reads it again and the completed line replaces it, so line
// numbers stay true when a writer was caught mid-line.
//
// # Live polling
//
// Each poll opens the file, seeks to Cursor.Offset and reads at most
// PollReadCap bytes, so a file that grew a lot is drained over several
// polls. A rune cut off at the end of a read is left for the next poll.
// Any other invalid UTF-8 fails the poll without advancing the cursor.
//
// Blank lines are dropped while polling unless Poller.KeepBlankLines is set.
// Either way the result does not depend on how writes were split.
//
// Rotation and truncation are not detected. A file that shrinks below the
// cursor simply yields nothing.
//
// Example usage:
//
//	sess, err := logtail.Open("/var/log/app.log", logtail.Options{})
//	if err != nil {
//		return err
//	}
//	if _, err := sess.Poll(); err != nil {
//		logger.Debug("poll failed", "error", err)
//	}
//	for _, m := range sess.Buffer().Filter("error") {
//		fmt.Println(sess.Buffer().LineNumber(m.Index), m.Text)
//	}
//
// # Concurrency
//
// Nothing in this package is safe for concurrent use. Callers poll from a
// single goroutine.
package logtail
