package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"

	"github.com/ghettovoice/rfc3986/grammar"
	"github.com/ghettovoice/rfc3986/internal/constraints"
	"github.com/ghettovoice/rfc3986/internal/errorutil"
	"github.com/ghettovoice/rfc3986/internal/util"
)

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
	ErrNodeNotFound   Error = "node not found"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

// HostKind tells which alternative of the host rule matched.
type HostKind uint8

const (
	// HostNone is used when there is no authority.
	HostNone HostKind = iota
	// HostIPLiteral is a bracketed IPv6 address.
	HostIPLiteral
	// HostIPvFuture is a bracketed IPvFuture literal.
	HostIPvFuture
	HostIPv4
	HostRegName
)

var hostKindNames = [...]string{
	HostNone:      "none",
	HostIPLiteral: "IPv6address",
	HostIPvFuture: "IPvFuture",
	HostIPv4:      "IPv4address",
	HostRegName:   "reg-name",
}

func (k HostKind) String() string {
	if int(k) >= len(hostKindNames) {
		return "HostKind(" + strconv.Itoa(int(k)) + ")"
	}
	return hostKindNames[k]
}

// PathKind tells which path rule matched.
type PathKind uint8

const (
	PathEmpty PathKind = iota
	PathAbempty
	PathAbsolute
	PathNoscheme
	PathRootless
)

var pathKindKinds = [...]grammar.Kind{
	PathEmpty:    grammar.KindPathEmpty,
	PathAbempty:  grammar.KindPathAbempty,
	PathAbsolute: grammar.KindPathAbsolute,
	PathNoscheme: grammar.KindPathNoscheme,
	PathRootless: grammar.KindPathRootless,
}

// String returns the RFC 3986 rule name, e.g. "path-abempty".
func (k PathKind) String() string {
	if int(k) >= len(pathKindKinds) {
		return "PathKind(" + strconv.Itoa(int(k)) + ")"
	}
	return pathKindKinds[k].String()
}

// Spans holds the input spans of the URI components.
// Spans of absent components are zero.
type Spans struct {
	Scheme    grammar.Span
	Authority grammar.Span
	Userinfo  grammar.Span
	Host      grammar.Span
	Port      grammar.Span
	Path      grammar.Span
	Query     grammar.Span
	Fragment  grammar.Span
}

// URI is a URI or a relative reference split into its RFC 3986 components.
//
// Components hold the raw input text: nothing is decoded or normalized.
// Delimiters are not included, presence of an empty component is reported
// with the Has* flags.
type URI struct {
	Scheme   string
	Userinfo string
	Host     string
	Port     string
	Path     string
	Query    string
	Fragment string

	HasAuthority bool
	HasUserinfo  bool
	HasPort      bool
	HasQuery     bool
	HasFragment  bool

	HostKind HostKind
	PathKind PathKind
	// Spans are relative to the parsed input.
	Spans Spans
}

// Parse parses a URI from the given input s (string or []byte).
// The whole input must match the URI rule:
//
//	URI = scheme ":" hier-part [ "?" query ] [ "#" fragment ]
//
// Errors match [ErrEmptyInput] or [ErrMalformedInput], the latter also wraps
// the [*grammar.SyntaxError].
func Parse[T constraints.Byteseq](s T) (*URI, error) {
	return errtrace.Wrap2(parse(s, grammar.URI))
}

// ParseReference parses a URI-reference, i.e. a URI or a relative reference.
func ParseReference[T constraints.Byteseq](s T) (*URI, error) {
	return errtrace.Wrap2(parse(s, grammar.URIReference))
}

// ParseAbsolute parses an absolute-URI, i.e. a URI without fragment.
func ParseAbsolute[T constraints.Byteseq](s T) (*URI, error) {
	return errtrace.Wrap2(parse(s, grammar.AbsoluteURI))
}

func parse[T constraints.Byteseq](s T, p grammar.Production) (*URI, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	c := grammar.NewCursor(s)
	rest, tok, err := p(c)
	if err != nil {
		return nil, errtrace.Wrap(newMalformedInputErr(err))
	}
	if !rest.EOF() {
		return nil, errtrace.Wrap(newMalformedInputErr(leftoverErr(tok.Kind, rest)))
	}

	switch tok.Kind {
	case grammar.KindURIReference:
		if end, _, err := grammar.URI(c); err == nil && end.EOF() {
			return decompose(c, true, true), nil
		}
		return decompose(c, false, true), nil
	case grammar.KindAbsoluteURI:
		return decompose(c, true, false), nil
	case grammar.KindRelativeRef:
		return decompose(c, false, true), nil
	default:
		return decompose(c, true, true), nil
	}
}

func leftoverErr(k grammar.Kind, rest grammar.Cursor) *grammar.SyntaxError {
	found := rest.Rest()
	return &grammar.SyntaxError{
		Production: k.String(),
		Want:       "end of input",
		Found:      util.Ellipsis(found[:min(len(found), 32)], 8),
		Pos:        rest.Pos(),
	}
}

// walker steps through already validated input.
type walker struct {
	c grammar.Cursor
}

func (w *walker) take(p grammar.Production) (grammar.Span, bool) {
	rest, tok, err := p(w.c)
	if err != nil {
		return grammar.Span{Start: w.c.Offset(), End: w.c.Offset()}, false
	}
	w.c = rest
	return tok.Span, true
}

func (w *walker) skip(s string) bool {
	if w.c.HasPrefix(s) {
		w.c = w.c.Advance(len(s))
		return true
	}
	return false
}

type pathAlt struct {
	prod grammar.Production
	kind PathKind
}

var (
	hierPaths = []pathAlt{
		{grammar.PathAbsolute, PathAbsolute},
		{grammar.PathRootless, PathRootless},
		{grammar.PathEmpty, PathEmpty},
	}
	relativePaths = []pathAlt{
		{grammar.PathAbsolute, PathAbsolute},
		{grammar.PathNoscheme, PathNoscheme},
		{grammar.PathEmpty, PathEmpty},
	}
)

// decompose splits input matched by URI, relative-ref or absolute-URI into components,
// following the same ordered choices as the grammar.
func decompose(c grammar.Cursor, withScheme, withFragment bool) *URI {
	u := new(URI)
	w := &walker{c: c}

	if withScheme {
		u.Spans.Scheme, _ = w.take(grammar.Scheme)
		w.skip(":")
	}

	if w.skip("//") {
		u.HasAuthority = true
		start := w.c

		if rest, tok, err := grammar.Userinfo(w.c); err == nil && rest.HasPrefix("@") {
			u.HasUserinfo = true
			u.Spans.Userinfo = tok.Span
			w.c = rest.Advance(1)
		}
		u.Spans.Host, _ = w.take(grammar.Host)
		u.HostKind = hostKind(c.Slice(u.Spans.Host))
		if w.skip(":") {
			u.HasPort = true
			u.Spans.Port, _ = w.take(grammar.Port)
		}
		u.Spans.Authority = start.SpanTo(w.c)

		u.Spans.Path, _ = w.take(grammar.PathAbempty)
		u.PathKind = PathAbempty
	} else {
		paths := hierPaths
		if !withScheme {
			paths = relativePaths
		}
		for _, p := range paths {
			if sp, ok := w.take(p.prod); ok {
				u.Spans.Path, u.PathKind = sp, p.kind
				break
			}
		}
	}

	if w.skip("?") {
		u.HasQuery = true
		u.Spans.Query, _ = w.take(grammar.Query)
	}
	if withFragment && w.skip("#") {
		u.HasFragment = true
		u.Spans.Fragment, _ = w.take(grammar.Fragment)
	}

	u.Scheme = c.Slice(u.Spans.Scheme)
	u.Userinfo = c.Slice(u.Spans.Userinfo)
	u.Host = c.Slice(u.Spans.Host)
	u.Port = c.Slice(u.Spans.Port)
	u.Path = c.Slice(u.Spans.Path)
	u.Query = c.Slice(u.Spans.Query)
	u.Fragment = c.Slice(u.Spans.Fragment)
	return u
}

func hostKind(host string) HostKind {
	switch {
	case strings.HasPrefix(host, "[v"), strings.HasPrefix(host, "[V"):
		return HostIPvFuture
	case strings.HasPrefix(host, "["):
		return HostIPLiteral
	case IsIPv4(host):
		return HostIPv4
	default:
		return HostRegName
	}
}

// IsAbs reports whether the URI has a scheme.
func (u *URI) IsAbs() bool { return u != nil && u.Scheme != "" }

// Authority returns the authority component without the leading "//".
func (u *URI) Authority() string {
	if u == nil || !u.HasAuthority {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.writeAuthority(sb)
	return sb.String()
}

func (u *URI) writeAuthority(sb *strings.Builder) {
	if u.HasUserinfo {
		sb.WriteString(u.Userinfo)
		sb.WriteByte('@')
	}
	sb.WriteString(u.Host)
	if u.HasPort {
		sb.WriteByte(':')
		sb.WriteString(u.Port)
	}
}

// String reassembles the URI as in RFC 3986 section 5.3.
// For a parsed URI it returns exactly the parsed input.
func (u *URI) String() string {
	if u == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	if u.Scheme != "" {
		sb.WriteString(u.Scheme)
		sb.WriteByte(':')
	}
	if u.HasAuthority {
		sb.WriteString("//")
		u.writeAuthority(sb)
	}
	sb.WriteString(u.Path)
	if u.HasQuery {
		sb.WriteByte('?')
		sb.WriteString(u.Query)
	}
	if u.HasFragment {
		sb.WriteByte('#')
		sb.WriteString(u.Fragment)
	}
	return sb.String()
}

// Format implements [fmt.Formatter].
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}

// LogValue implements [slog.LogValuer].
func (u *URI) LogValue() slog.Value {
	if u == nil {
		return slog.Value{}
	}

	attrs := []slog.Attr{slog.String("value", u.String())}
	if u.Scheme != "" {
		attrs = append(attrs, slog.String("scheme", u.Scheme))
	}
	if u.HasAuthority {
		attrs = append(attrs,
			slog.String("host", u.Host),
			slog.String("host_kind", u.HostKind.String()),
		)
	}
	attrs = append(attrs, slog.String("path_kind", u.PathKind.String()))
	return slog.GroupValue(attrs...)
}

// Clone returns a copy of the URI.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	u2 := *u
	return &u2
}

// Equal reports whether val is a URI with the same components.
// The comparison is exact: no case folding, percent-decoding or path normalization is done.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}
	return u.String() == other.String()
}

// IsValid reports whether the URI renders to a valid URI-reference.
func (u *URI) IsValid() bool {
	if u == nil {
		return false
	}
	_, err := ParseReference(u.String())
	return err == nil
}

// IsDomainName reports whether the host is a reg-name that is also a valid DNS domain name.
// Percent-encoded names are not considered domain names.
func (u *URI) IsDomainName() bool {
	if u == nil || u.HostKind != HostRegName || u.Host == "" || strings.IndexByte(u.Host, '%') >= 0 {
		return false
	}
	_, ok := dns.IsDomainName(u.Host)
	return ok
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// The text is parsed as a URI-reference.
func (u *URI) UnmarshalText(text []byte) error {
	u1, err := ParseReference(text)
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}
