// Package extract finds URIs embedded in free text.
//
// A [Scanner] walks the text looking for a scheme followed by ":" at a word boundary,
// runs a [Recognizer] (by default [grammar.URI]) from there and reports each accepted
// match with its exact span and position:
//
//	sc, err := extract.NewScanner("see https://example.com/a.", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for m, ok := sc.Next(); ok; m, ok = sc.Next() {
//	    fmt.Println(m.Text, m.Span) // https://example.com/a [4:25]
//	}
//
// Trailing sentence punctuation and unbalanced closing brackets are not part of a match
// unless [Options.KeepTrailingPunct] is set.
package extract

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -destination=../internal/testutil/extractmock/recognizer.go -package=extractmock . Recognizer

import (
	"log/slog"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc3986/grammar"
	"github.com/ghettovoice/rfc3986/internal/errorutil"
	"github.com/ghettovoice/rfc3986/internal/log"
	"github.com/ghettovoice/rfc3986/internal/util"
	"github.com/ghettovoice/rfc3986/uri"
)

type Error string

func (e Error) Error() string { return string(e) }

// ErrInvalidOptions is returned for options that can not be used to scan.
const ErrInvalidOptions Error = "invalid options"

func newInvalidOptionsErr(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidOptions, args...) //errtrace:skip
}

// ErrInvalidToken is returned when a recognizer reports a token
// that does not start at the candidate or runs past the text.
const ErrInvalidToken Error = "invalid token"

func newInvalidTokenErr(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidToken, args...) //errtrace:skip
}

// Recognizer matches a URI at the cursor position.
// It has the same contract as the grammar productions.
type Recognizer interface {
	Recognize(c grammar.Cursor) (grammar.Cursor, grammar.Token, error)
}

// RecognizerFunc adapts a function, e.g. a grammar production, to the [Recognizer] interface.
type RecognizerFunc func(c grammar.Cursor) (grammar.Cursor, grammar.Token, error)

func (fn RecognizerFunc) Recognize(c grammar.Cursor) (grammar.Cursor, grammar.Token, error) {
	return fn(c) //errtrace:skip
}

// Options configures a [Scanner]. A nil *Options means defaults.
type Options struct {
	// Recognizer is used to match a URI at a candidate position.
	// If nil, [grammar.URI] is used.
	Recognizer Recognizer
	// Schemes restricts matches to the listed schemes, compared case-insensitively.
	// Empty means any scheme.
	Schemes []string
	// DomainHostsOnly accepts only URIs whose host is a DNS domain name.
	DomainHostsOnly bool
	// KeepTrailingPunct disables trimming of trailing punctuation.
	KeepTrailingPunct bool
	// Trace logs rejected grammar alternatives at debug level.
	Trace bool
	// Log is the logger used by the scanner.
	// If nil, nothing is logged.
	Log *slog.Logger
}

func (o *Options) validate() error {
	if o == nil {
		return nil
	}

	var errs []error
	for i, s := range o.Schemes {
		if !uri.IsScheme(s) {
			errs = append(errs, errorutil.Errorf("schemes[%d]: invalid scheme %q", i, s))
		}
	}
	if err := errorutil.JoinPrefix("invalid schemes", errs...); err != nil {
		return errtrace.Wrap(newInvalidOptionsErr(err))
	}
	return nil
}

func (o *Options) recognizer() Recognizer {
	if o == nil || o.Recognizer == nil {
		return RecognizerFunc(grammar.URI)
	}
	return o.Recognizer
}

func (o *Options) schemeAllowed(scheme string) bool {
	if o == nil || len(o.Schemes) == 0 {
		return true
	}
	return slices.ContainsFunc(o.Schemes, func(s string) bool { return util.EqFold(s, scheme) })
}

func (o *Options) domainHostsOnly() bool { return o != nil && o.DomainHostsOnly }

func (o *Options) keepTrailingPunct() bool { return o != nil && o.KeepTrailingPunct }

func (o *Options) trace() bool { return o != nil && o.Trace }

func (o *Options) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Noop
	}
	return o.Log
}

// Match is a URI found in the text.
type Match struct {
	// Text is the matched text, Text == text[Span.Start:Span.End].
	Text string
	Span grammar.Span
	// Pos is the position of the match start.
	Pos grammar.Pos
	URI *uri.URI
}

// LogValue implements [slog.LogValuer].
func (m Match) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("text", m.Text),
		slog.Any("span", m.Span),
		slog.Any("pos", m.Pos),
	)
}
