package grammar

import (
	"strconv"
	"unicode/utf8"

	"github.com/ghettovoice/rfc3986/internal/util"
)

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

// ErrSyntax is matched by every [*SyntaxError] with [errors.Is].
const ErrSyntax Error = "syntax error"

// SyntaxError reports the position where a production could not proceed.
type SyntaxError struct {
	// Production is the RFC 3986 name of the innermost rule that failed.
	// An ordered choice with no matching alternative is reported under its own name
	// at the offset where the choice started.
	Production string
	// Want describes the expected input, e.g. `":"` or "HEXDIG". May be empty.
	Want string
	// Found is a short excerpt of the input at Pos, empty at the end of input.
	Found string
	Pos   Pos
}

func (e *SyntaxError) Error() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString(string(ErrSyntax))
	sb.WriteString(": ")
	sb.WriteString(e.Production)
	if e.Found == "" {
		sb.WriteString(": unexpected end of input")
	} else {
		sb.WriteString(": unexpected ")
		sb.WriteString(strconv.Quote(e.Found))
	}
	if e.Want != "" {
		sb.WriteString(", want ")
		sb.WriteString(e.Want)
	}
	sb.WriteString(" at ")
	sb.WriteString(e.Pos.String())
	return sb.String()
}

// Offset returns the byte offset of the failure.
func (e *SyntaxError) Offset() int { return e.Pos.Offset }

func (*SyntaxError) Is(target error) bool { return target == ErrSyntax } //nolint:errorlint

func (*SyntaxError) Grammar() bool { return true }

const excerptLen = 8

// miss records where and why a matcher stopped. The zero miss means success.
// It is a plain value so that failing alternatives and repetition ends allocate nothing,
// it becomes a [*SyntaxError] only at the exported boundary.
type miss struct {
	at   int
	rule string
	want string
}

func (m miss) ok() bool { return m.rule == "" }

func (m miss) err(src string) *SyntaxError {
	return &SyntaxError{
		Production: m.rule,
		Want:       m.want,
		Found:      util.Ellipsis(src[m.at:min(len(src), m.at+excerptLen*utf8.UTFMax)], excerptLen),
		Pos:        posAt(src, m.at),
	}
}
