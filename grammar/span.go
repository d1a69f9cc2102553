package grammar

import "strconv"

// Span is a half-open byte range [Start, End) of the input matched by a production.
type Span struct {
	Start int
	End   int
}

// Len returns the span length in bytes.
func (s Span) Len() int { return s.End - s.Start }

// IsEmpty reports whether the span covers no input.
func (s Span) IsEmpty() bool { return s.End <= s.Start }

// Contains reports whether other lies within s.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

func (s Span) String() string {
	return "[" + strconv.Itoa(s.Start) + ":" + strconv.Itoa(s.End) + "]"
}

// Pos is a position in the input.
// Line and Column are 1-based, Column counts runes.
type Pos struct {
	Offset int
	Line   int
	Column int
}

func (p Pos) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}
