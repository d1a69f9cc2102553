// Package uri splits URIs and relative references into their RFC 3986 components.
//
// # Overview
//
// The package is built on top of the [github.com/ghettovoice/rfc3986/grammar] productions.
// Three parse functions are provided, one per top level rule:
//
//   - [Parse] for URI: scheme ":" hier-part [ "?" query ] [ "#" fragment ];
//   - [ParseReference] for URI-reference: a URI or a relative-ref;
//   - [ParseAbsolute] for absolute-URI: a URI without a fragment.
//
// The whole input must match, leftover input is reported as a syntax error at the
// first unconsumed byte:
//
//	u, err := uri.Parse("foo://user@example.com:8042/over/there?name=ferret#nose")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(u.Scheme, u.Host, u.Port, u.Path) // foo example.com 8042 /over/there
//	fmt.Println(u.HostKind, u.PathKind)           // reg-name path-abempty
//
// # Components
//
// The [URI] fields hold the raw component text without delimiters. Nothing is decoded,
// case folded or normalized, [URI.String] returns exactly the parsed input.
// An empty component that is present, e.g. the query of "http://a/?", is told apart
// from an absent one by the Has* flags. Component spans are kept in [URI.Spans].
//
// # Errors
//
// Parse errors match [ErrEmptyInput] or [ErrMalformedInput]. The latter wraps a
// [*grammar.SyntaxError] that can be extracted with [errors.As]:
//
//	_, err := uri.Parse("http//example.com")
//	var se *grammar.SyntaxError
//	if errors.As(err, &se) {
//	    fmt.Println(se.Production, se.Want, se.Pos) // URI ":" 1:5
//	}
//
// # Predicates
//
// [IsURI], [IsReference], [IsHost], [IsIPv4], [IsIPv6], [IsRegName], [IsScheme] and [IsPort]
// report whether the whole input matches a rule. They all return false for an empty input.
//
// # ABNF trees
//
// [URI.ABNF] exposes the components as a [github.com/ghettovoice/abnf.Node] tree keyed by
// RFC 3986 rule names and [FromABNF] builds a URI back from such a tree.
package uri
