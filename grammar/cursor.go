package grammar

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/ghettovoice/rfc3986/internal/constraints"
)

// source is the input buffer shared by all cursors of one parse.
// It is never modified after creation.
type source struct {
	text  string
	log   *slog.Logger
	trace bool
}

// limit returns a copy of the source truncated at offset end.
// Offsets of cursors over the copy stay absolute.
func (s *source) limit(end int) *source {
	return &source{text: s.text[:end], log: s.log, trace: s.trace}
}

// Cursor is an immutable position in the input buffer.
// Cursors are cheap to copy, advancing a cursor returns a new one.
//
// The zero Cursor is a cursor over an empty input.
type Cursor struct {
	src *source
	off int
}

// NewCursor returns a cursor at the start of s.
// The input is copied once, so the caller may reuse byte slices after the call.
func NewCursor[T constraints.Byteseq](s T) Cursor {
	return Cursor{src: &source{text: string(s)}}
}

// WithLogger returns a cursor over the same input that reports rejected alternatives
// and failed productions to l at debug level. Passing nil disables tracing.
func (c Cursor) WithLogger(l *slog.Logger) Cursor {
	src := &source{text: c.Source(), log: l}
	src.trace = l != nil && l.Enabled(context.Background(), slog.LevelDebug)
	return Cursor{src: src, off: c.off}
}

// Logger returns the logger attached with [Cursor.WithLogger] or nil.
func (c Cursor) Logger() *slog.Logger {
	if c.src == nil {
		return nil
	}
	return c.src.log
}

// Source returns the whole input buffer.
func (c Cursor) Source() string {
	if c.src == nil {
		return ""
	}
	return c.src.text
}

// Offset returns the byte offset of the cursor.
func (c Cursor) Offset() int { return c.off }

// Rest returns the unconsumed part of the input.
func (c Cursor) Rest() string { return c.Source()[c.off:] }

// Len returns the number of unconsumed bytes.
func (c Cursor) Len() int { return len(c.Source()) - c.off }

// EOF reports whether the whole input is consumed.
func (c Cursor) EOF() bool { return c.Len() == 0 }

// Peek returns the byte at the cursor position.
func (c Cursor) Peek() (byte, bool) {
	if c.EOF() {
		return 0, false
	}
	return c.src.text[c.off], true
}

// HasPrefix reports whether the unconsumed input starts with s.
func (c Cursor) HasPrefix(s string) bool { return strings.HasPrefix(c.Rest(), s) }

// Advance returns a cursor moved n bytes forward, clamped to the end of the input.
func (c Cursor) Advance(n int) Cursor {
	return c.At(c.off + n)
}

// At returns a cursor over the same input at the absolute offset off,
// clamped to the input bounds.
func (c Cursor) At(off int) Cursor {
	off = max(0, min(off, len(c.Source())))
	return Cursor{src: c.src, off: off}
}

// Compare compares cursor offsets, returning -1, 0 or +1.
func (c Cursor) Compare(other Cursor) int {
	switch {
	case c.off < other.off:
		return -1
	case c.off > other.off:
		return 1
	default:
		return 0
	}
}

// SpanTo returns the span between c and end.
// If end is before c, the returned span is empty.
func (c Cursor) SpanTo(end Cursor) Span {
	return Span{Start: c.off, End: max(c.off, end.off)}
}

// Slice returns the text of the input covered by sp.
// Out of range spans are clamped to the input bounds.
func (c Cursor) Slice(sp Span) string {
	s := c.Source()
	start := max(0, min(sp.Start, len(s)))
	end := max(start, min(sp.End, len(s)))
	return s[start:end]
}

// Pos returns the cursor position with the derived line and column.
func (c Cursor) Pos() Pos { return posAt(c.Source(), c.off) }

func posAt(s string, off int) Pos {
	head := s[:off]
	line := strings.Count(head, "\n") + 1
	if i := strings.LastIndexByte(head, '\n'); i >= 0 {
		head = head[i+1:]
	}
	return Pos{Offset: off, Line: line, Column: utf8.RuneCountInString(head) + 1}
}

func (c Cursor) String() string {
	return fmt.Sprintf("offset %d (%s)", c.off, c.Pos())
}

// LogValue implements [slog.LogValuer].
func (c Cursor) LogValue() slog.Value {
	p := c.Pos()
	return slog.GroupValue(
		slog.Int("offset", p.Offset),
		slog.Int("line", p.Line),
		slog.Int("column", p.Column),
	)
}

// limit returns a cursor that sees the input only up to c.off+n.
func (c Cursor) limit(n int) Cursor {
	if c.src == nil {
		return c
	}
	return Cursor{src: c.src.limit(c.off + n), off: c.off}
}

// reset returns a cursor at off over the source of c.
// It is used to leave a limited view without carrying its truncated buffer.
func (c Cursor) reset(off int) Cursor { return Cursor{src: c.src, off: off} }
