// Package grammar implements the generic URI syntax of RFC 3986 as a set of
// recursive descent productions with exact, position-tagged results.
//
// # Overview
//
// Every rule of the RFC 3986 collected ABNF (Appendix A) is exposed as a function
// with the same signature:
//
//	func(c Cursor) (Cursor, Token, error)
//
// On success the returned cursor points right after the matched text and the token
// span covers exactly the consumed bytes. On failure the input cursor is returned
// unchanged together with a [*SyntaxError].
//
//	c := grammar.NewCursor("http://example.com/a?q#f and more")
//	rest, tok, err := grammar.URI(c)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(c.Slice(tok.Span)) // http://example.com/a?q#f
//	fmt.Println(rest.Rest())       // " and more"
//
// Productions match a prefix of the input. Callers that need the whole input to match
// compare the returned cursor with the end of the input, see the uri package for
// ready made helpers.
//
// # Ordered choice
//
// Alternation is ordered: alternatives are tried against the same start position and the
// first one that matches wins, even if a later alternative would consume more. This is
// how the RFC rules are meant to be read and it yields a few well known outcomes:
//
//   - [Host] matches "256.0.0.1" as a reg-name, because IPv4address fails on "256";
//   - [DecOctet] matches "25" of "256";
//   - [Path] matches only "/" of "//", because path-absolute is tried before path-abempty;
//   - [IPv6Address] matches "1:2:3:4:5:6:7:8" of "1:2:3:4:5:6:7:8::".
//
// Repetitions are greedy and never give back what they consumed.
//
// # IPv6 addresses
//
// Shapes with leading groups before "::" are matched in two steps. The first "::" in the
// input is located, the leading groups are matched against the text before it only, and
// that text has to be consumed exactly. Only then the groups after "::" are matched.
//
// # Errors
//
// A failed production returns a [*SyntaxError] with the name of the innermost rule that
// could not proceed and the position of the failure. An ordered choice with no matching
// alternative reports its own name at the offset it started from. All syntax errors
// match [ErrSyntax] with [errors.Is].
//
// # Tracing
//
// A cursor created with [Cursor.WithLogger] reports rejected alternatives and failed
// productions to the logger at debug level. Tracing is off by default.
//
// # Concurrency
//
// Productions are pure functions over immutable cursors and may be called from
// multiple goroutines at once.
package grammar
