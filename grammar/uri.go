package grammar

var scheme = seq(
	char("scheme", "ALPHA", isAlpha),
	rep(0, -1, char("scheme", "scheme char", isSchemeChar)),
)

var query = rep(0, -1, alt("query", pchar, lit("query", "/"), lit("query", "?")))

var fragment = rep(0, -1, alt("fragment", pchar, lit("fragment", "/"), lit("fragment", "?")))

var doubleSlash = lit("hier-part", "//")

var hierPart = alt("hier-part",
	seq(doubleSlash, authority, pathAbempty),
	pathAbsolute,
	pathRootless,
	pathEmpty,
)

var (
	querySuffix    = opt(seq(lit("URI", "?"), query))
	fragmentSuffix = opt(seq(lit("URI", "#"), fragment))
)

var uri = seq(scheme, lit("URI", ":"), hierPart, querySuffix, fragmentSuffix)

var relativePart = alt("relative-part",
	seq(lit("relative-part", "//"), authority, pathAbempty),
	pathAbsolute,
	pathNoscheme,
	pathEmpty,
)

var relativeRef = seq(relativePart, querySuffix, fragmentSuffix)

var uriReference = alt("URI-reference", uri, relativeRef)

var absoluteURI = seq(scheme, lit("absolute-URI", ":"), hierPart, querySuffix)

// Scheme matches
//
//	scheme      = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
func Scheme(c Cursor) (Cursor, Token, error) { return run(KindScheme, c, scheme) }

// HierPart matches
//
//	hier-part   = "//" authority path-abempty
//	            / path-absolute
//	            / path-rootless
//	            / path-empty
func HierPart(c Cursor) (Cursor, Token, error) { return run(KindHierPart, c, hierPart) }

// Query matches
//
//	query       = *( pchar / "/" / "?" )
func Query(c Cursor) (Cursor, Token, error) { return run(KindQuery, c, query) }

// Fragment matches
//
//	fragment    = *( pchar / "/" / "?" )
func Fragment(c Cursor) (Cursor, Token, error) { return run(KindFragment, c, fragment) }

// URI matches
//
//	URI         = scheme ":" hier-part [ "?" query ] [ "#" fragment ]
//
// The match is a prefix match, the caller decides what to do with the remaining input.
// A "?" or "#" followed by nothing is an empty query or fragment.
func URI(c Cursor) (Cursor, Token, error) { return run(KindURI, c, uri) }

// RelativePart matches
//
//	relative-part = "//" authority path-abempty
//	              / path-absolute
//	              / path-noscheme
//	              / path-empty
func RelativePart(c Cursor) (Cursor, Token, error) { return run(KindRelativePart, c, relativePart) }

// RelativeRef matches
//
//	relative-ref  = relative-part [ "?" query ] [ "#" fragment ]
func RelativeRef(c Cursor) (Cursor, Token, error) { return run(KindRelativeRef, c, relativeRef) }

// URIReference matches
//
//	URI-reference = URI / relative-ref
//
// Since relative-ref can match the empty string, URIReference never fails.
func URIReference(c Cursor) (Cursor, Token, error) { return run(KindURIReference, c, uriReference) }

// AbsoluteURI matches
//
//	absolute-URI  = scheme ":" hier-part [ "?" query ]
func AbsoluteURI(c Cursor) (Cursor, Token, error) { return run(KindAbsoluteURI, c, absoluteURI) }

var productions = map[string]Production{
	KindHexDig.String():        HexDig,
	KindUnreserved.String():    Unreserved,
	KindSubDelims.String():     SubDelims,
	KindGenDelims.String():     GenDelims,
	KindReserved.String():      Reserved,
	KindPctEncoded.String():    PctEncoded,
	KindDecOctet.String():      DecOctet,
	KindIPv4Address.String():   IPv4Address,
	KindH16.String():           H16,
	KindLS32.String():          LS32,
	KindIPv6Address.String():   IPv6Address,
	KindIPvFuture.String():     IPvFuture,
	KindIPLiteral.String():     IPLiteral,
	KindRegName.String():       RegName,
	KindHost.String():          Host,
	KindUserinfo.String():      Userinfo,
	KindPort.String():          Port,
	KindAuthority.String():     Authority,
	KindPChar.String():         PChar,
	KindSegment.String():       Segment,
	KindSegmentNZ.String():     SegmentNZ,
	KindSegmentNZNC.String():   SegmentNZNC,
	KindPathAbempty.String():   PathAbempty,
	KindPathAbsolute.String():  PathAbsolute,
	KindPathNoscheme.String():  PathNoscheme,
	KindPathRootless.String():  PathRootless,
	KindPathEmpty.String():     PathEmpty,
	KindPath.String():          Path,
	KindScheme.String():        Scheme,
	KindHierPart.String():      HierPart,
	KindQuery.String():         Query,
	KindFragment.String():      Fragment,
	KindURI.String():           URI,
	KindRelativePart.String():  RelativePart,
	KindRelativeRef.String():   RelativeRef,
	KindURIReference.String():  URIReference,
	KindAbsoluteURI.String():   AbsoluteURI,
}

// Lookup returns the production registered under the RFC 3986 rule name,
// e.g. "IPv6address" or "path-abempty". Rule names are case-sensitive.
func Lookup(name string) (Production, bool) {
	p, ok := productions[name]
	return p, ok
}
