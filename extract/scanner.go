package extract

import (
	"context"
	"iter"
	"log/slog"
	"reflect"
	"strings"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/rfc3986/grammar"
	"github.com/ghettovoice/rfc3986/internal/constraints"
	"github.com/ghettovoice/rfc3986/internal/errorutil"
	"github.com/ghettovoice/rfc3986/internal/log"
	"github.com/ghettovoice/rfc3986/uri"
)

type scanState string

const (
	stateSeek      scanState = "seek"
	stateCandidate scanState = "candidate"
	stateEmit      scanState = "emit"
	stateDone      scanState = "done"
)

// candidate rejection reasons
const (
	errNothingAfterScheme Error = "nothing after scheme"
	errSchemeNotAllowed   Error = "scheme not allowed"
	errNotDomainName      Error = "host is not a domain name"
)

const (
	evtFound  = "found"
	evtMatch  = "match"
	evtReject = "reject"
	evtResume = "resume"
	evtEOF    = "eof"
	evtFail   = "fail"
)

// Scanner reports URIs found in a text one by one.
// It is not safe for concurrent use.
type Scanner struct {
	text string
	cur  grammar.Cursor
	opts *Options
	rec  Recognizer
	log  *slog.Logger
	fsm  *stateless.StateMachine

	// next offset to seek from
	pos int
	// current candidate
	start, colon int
	match        Match
	err          error
}

// NewScanner creates a scanner over text (string or []byte).
// The text is copied once, opts may be nil.
func NewScanner[T constraints.Byteseq](text T, opts *Options) (*Scanner, error) {
	if err := opts.validate(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return newScanner(string(text), opts), nil
}

func newScanner(text string, opts *Options) *Scanner {
	s := &Scanner{
		text: text,
		cur:  grammar.NewCursor(text),
		opts: opts,
		rec:  opts.recognizer(),
		log:  opts.log(),
	}
	if opts.trace() {
		s.cur = s.cur.WithLogger(s.log)
	}
	s.initFSM()
	return s
}

func (s *Scanner) initFSM() {
	s.fsm = stateless.NewStateMachine(stateSeek)
	s.fsm.SetTriggerParameters(evtFound, reflect.TypeOf(0), reflect.TypeOf(0))
	s.fsm.SetTriggerParameters(evtMatch, reflect.TypeOf(Match{}))
	s.fsm.SetTriggerParameters(evtReject, reflect.TypeOf((*error)(nil)).Elem())

	s.fsm.Configure(stateSeek).
		OnEntryFrom(evtReject, s.actReject).
		Permit(evtFound, stateCandidate).
		Permit(evtEOF, stateDone)

	s.fsm.Configure(stateCandidate).
		OnEntryFrom(evtFound, s.actCandidate).
		Permit(evtMatch, stateEmit).
		Permit(evtReject, stateSeek).
		Permit(evtFail, stateDone)

	s.fsm.Configure(stateEmit).
		OnEntryFrom(evtMatch, s.actMatch).
		Permit(evtResume, stateSeek)

	s.fsm.Configure(stateDone).
		OnEntry(s.actDone).
		OnEntryFrom(evtFail, s.actFail)
}

// Next returns the next match. It returns false when the text is exhausted
// or the scanner failed, see [Scanner.Err].
func (s *Scanner) Next() (Match, bool) {
	for s.err == nil {
		switch s.fsm.MustState() {
		case stateSeek:
			s.seek()
		case stateCandidate:
			s.recognize()
		case stateEmit:
			m := s.match
			s.fire(evtResume)
			return m, true
		default:
			return Match{}, false
		}
	}
	return Match{}, false
}

// Err returns the error that stopped the scanner, if any.
// Grammar errors of the recognizer only reject a candidate, any other error stops the scan.
func (s *Scanner) Err() error { return s.err }

func (s *Scanner) fire(evt string, args ...any) {
	if err := s.fsm.FireCtx(context.Background(), evt, args...); err != nil {
		s.err = errtrace.Wrap(err)
	}
}

// seek looks for the next ASCII letter at a word boundary that starts a run
// of scheme characters terminated by ":".
func (s *Scanner) seek() {
	for i := s.pos; i < len(s.text); i++ {
		if !isAlpha(s.text[i]) || i > 0 && isSchemeChar(s.text[i-1]) {
			continue
		}
		j := i + 1
		for j < len(s.text) && isSchemeChar(s.text[j]) {
			j++
		}
		if j < len(s.text) && s.text[j] == ':' {
			s.fire(evtFound, i, j)
			return
		}
		i = j
	}
	s.pos = len(s.text)
	s.fire(evtEOF)
}

func (s *Scanner) recognize() {
	_, tok, err := s.rec.Recognize(s.cur.At(s.start))
	if err != nil {
		if errorutil.IsGrammarErr(err) {
			s.fire(evtReject, err)
		} else {
			s.fire(evtFail, errtrace.Wrap(err))
		}
		return
	}
	if rest := (grammar.Span{Start: s.start, End: len(s.text)}); tok.Span.Start != s.start || !rest.Contains(tok.Span) {
		s.fire(evtFail, errtrace.Wrap(newInvalidTokenErr("span %v outside of %v", tok.Span, rest)))
		return
	}

	end := tok.Span.End
	if !s.opts.keepTrailingPunct() && end > s.start {
		end = s.start + len(trimTrailing(s.text[s.start:end]))
	}
	if (grammar.Span{Start: s.colon + 1, End: end}).IsEmpty() {
		s.fire(evtReject, errNothingAfterScheme)
		return
	}

	text := s.text[s.start:end]
	u, err := uri.ParseReference(text)
	if err != nil {
		s.fire(evtReject, err)
		return
	}
	if !s.opts.schemeAllowed(u.Scheme) {
		s.fire(evtReject, errSchemeNotAllowed)
		return
	}
	if s.opts.domainHostsOnly() && !u.IsDomainName() {
		s.fire(evtReject, errNotDomainName)
		return
	}

	s.fire(evtMatch, Match{
		Text: text,
		Span: grammar.Span{Start: s.start, End: end},
		Pos:  s.cur.At(s.start).Pos(),
		URI:  u,
	})
}

func (s *Scanner) actCandidate(ctx context.Context, args ...any) error {
	s.start, s.colon = args[0].(int), args[1].(int) //nolint:forcetypeassert

	s.log.LogAttrs(ctx, slog.LevelDebug, "candidate found",
		slog.Int("offset", s.start),
		slog.String("scheme", s.text[s.start:s.colon]),
	)
	return nil
}

func (s *Scanner) actReject(ctx context.Context, args ...any) error {
	// no candidate can start inside the scheme run
	s.pos = s.colon

	reason := args[0].(error) //nolint:forcetypeassert
	s.log.LogAttrs(ctx, slog.LevelDebug, "candidate rejected",
		slog.Int("offset", s.start),
		slog.Any("reason", log.CalcValue(func() any { return reason.Error() })),
	)
	return nil
}

func (s *Scanner) actMatch(ctx context.Context, args ...any) error {
	s.match = args[0].(Match) //nolint:forcetypeassert
	s.pos = s.match.Span.End

	s.log.LogAttrs(ctx, slog.LevelDebug, "match found", slog.Any("match", s.match))
	return nil
}

func (s *Scanner) actFail(ctx context.Context, args ...any) error {
	s.err = args[0].(error) //nolint:forcetypeassert

	s.log.LogAttrs(ctx, slog.LevelWarn, "scan failed",
		slog.Int("offset", s.start),
		slog.Any("error", s.err),
	)
	return nil
}

func (s *Scanner) actDone(ctx context.Context, _ ...any) error {
	s.log.LogAttrs(ctx, slog.LevelDebug, "scan done", slog.Int("length", len(s.text)))
	return nil
}

func isAlpha(b byte) bool { return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' }

func isSchemeChar(b byte) bool {
	return isAlpha(b) || '0' <= b && b <= '9' || b == '+' || b == '-' || b == '.'
}

// trimTrailing drops trailing sentence punctuation and closing brackets
// that have no opening pair inside s.
func trimTrailing(s string) string {
	for len(s) > 0 {
		switch s[len(s)-1] {
		case '.', ',', ';', ':', '!', '?', '\'', '"':
		case ')':
			if strings.Count(s, "(") >= strings.Count(s, ")") {
				return s
			}
		case ']':
			if strings.Count(s, "[") >= strings.Count(s, "]") {
				return s
			}
		default:
			return s
		}
		s = s[:len(s)-1]
	}
	return s
}

// All returns an iterator over the URIs found in text.
// Each iteration scans the text from the start. If the recognizer fails,
// the last pair holds a zero [Match] and the error.
func All[T constraints.Byteseq](text T, opts *Options) (iter.Seq2[Match, error], error) {
	if err := opts.validate(); err != nil {
		return nil, errtrace.Wrap(err)
	}

	str := string(text)
	return func(yield func(Match, error) bool) {
		s := newScanner(str, opts)
		for m, ok := s.Next(); ok; m, ok = s.Next() {
			if !yield(m, nil) {
				return
			}
		}
		if err := s.Err(); err != nil {
			yield(Match{}, errtrace.Wrap(err))
		}
	}, nil
}

// Find returns all URIs found in text.
func Find[T constraints.Byteseq](text T, opts *Options) ([]Match, error) {
	if err := opts.validate(); err != nil {
		return nil, errtrace.Wrap(err)
	}

	var ms []Match
	s := newScanner(string(text), opts)
	for m, ok := s.Next(); ok; m, ok = s.Next() {
		ms = append(ms, m)
	}
	if err := s.Err(); err != nil {
		return ms, errtrace.Wrap(err)
	}
	return ms, nil
}
