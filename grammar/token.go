package grammar

import "log/slog"

// Kind identifies the production that produced a [Token].
type Kind uint8

const (
	KindInvalid Kind = iota
	KindHexDig
	KindUnreserved
	KindSubDelims
	KindGenDelims
	KindReserved
	KindPctEncoded
	KindDecOctet
	KindIPv4Address
	KindH16
	KindLS32
	KindIPv6Address
	KindIPvFuture
	KindIPLiteral
	KindRegName
	KindHost
	KindUserinfo
	KindPort
	KindAuthority
	KindPChar
	KindSegment
	KindSegmentNZ
	KindSegmentNZNC
	KindPathAbempty
	KindPathAbsolute
	KindPathNoscheme
	KindPathRootless
	KindPathEmpty
	KindPath
	KindScheme
	KindHierPart
	KindQuery
	KindFragment
	KindURI
	KindRelativePart
	KindRelativeRef
	KindURIReference
	KindAbsoluteURI

	numKinds
)

// Names follow the RFC 3986 rule names.
var kindNames = [numKinds]string{
	KindInvalid:      "invalid",
	KindHexDig:       "HEXDIG",
	KindUnreserved:   "unreserved",
	KindSubDelims:    "sub-delims",
	KindGenDelims:    "gen-delims",
	KindReserved:     "reserved",
	KindPctEncoded:   "pct-encoded",
	KindDecOctet:     "dec-octet",
	KindIPv4Address:  "IPv4address",
	KindH16:          "h16",
	KindLS32:         "ls32",
	KindIPv6Address:  "IPv6address",
	KindIPvFuture:    "IPvFuture",
	KindIPLiteral:    "IP-literal",
	KindRegName:      "reg-name",
	KindHost:         "host",
	KindUserinfo:     "userinfo",
	KindPort:         "port",
	KindAuthority:    "authority",
	KindPChar:        "pchar",
	KindSegment:      "segment",
	KindSegmentNZ:    "segment-nz",
	KindSegmentNZNC:  "segment-nz-nc",
	KindPathAbempty:  "path-abempty",
	KindPathAbsolute: "path-absolute",
	KindPathNoscheme: "path-noscheme",
	KindPathRootless: "path-rootless",
	KindPathEmpty:    "path-empty",
	KindPath:         "path",
	KindScheme:       "scheme",
	KindHierPart:     "hier-part",
	KindQuery:        "query",
	KindFragment:     "fragment",
	KindURI:          "URI",
	KindRelativePart: "relative-part",
	KindRelativeRef:  "relative-ref",
	KindURIReference: "URI-reference",
	KindAbsoluteURI:  "absolute-URI",
}

// String returns the RFC 3986 rule name of the production.
func (k Kind) String() string {
	if k >= numKinds {
		return kindNames[KindInvalid]
	}
	return kindNames[k]
}

// Token is the result of a successful production.
//
// Value is set only by character-class productions: it holds the matched character,
// or the decoded octet for pct-encoded. Composite productions expose the span only.
type Token struct {
	Kind  Kind
	Span  Span
	Value string
}

// LogValue implements [slog.LogValuer].
func (t Token) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("kind", t.Kind.String()),
		slog.Int("start", t.Span.Start),
		slog.Int("end", t.Span.End),
	}
	if t.Value != "" {
		attrs = append(attrs, slog.String("value", t.Value))
	}
	return slog.GroupValue(attrs...)
}
