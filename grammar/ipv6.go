package grammar

var (
	h16Colon    = seq(h16, lit("IPv6address", ":"))
	doubleColon = lit("IPv6address", "::")
)

// groups matches exactly n "h16 :" pairs.
func groups(n int) matcher { return rep(n, n, h16Colon) }

// leading matches `[ *n( h16 ":" ) h16 ] "::"`.
//
// The optional groups are matched only against the text before the first "::"
// and must consume all of it. A plain bounded repetition would read groups that
// follow the "::" and move the split point.
func leading(n int) matcher {
	return before("IPv6address", "::", opt(seq(rep(0, n, h16Colon), h16)))
}

var ipv6address = alt("IPv6address",
	seq(groups(6), ls32),
	seq(doubleColon, groups(5), ls32),
	seq(leading(0), groups(4), ls32),
	seq(leading(1), groups(3), ls32),
	seq(leading(2), groups(2), ls32),
	seq(leading(3), groups(1), ls32),
	seq(leading(4), ls32),
	seq(leading(5), h16),
	leading(6),
)

// IPv6Address matches
//
//	IPv6address =                            6( h16 ":" ) ls32
//	            /                       "::" 5( h16 ":" ) ls32
//	            / [               h16 ] "::" 4( h16 ":" ) ls32
//	            / [ *1( h16 ":" ) h16 ] "::" 3( h16 ":" ) ls32
//	            / [ *2( h16 ":" ) h16 ] "::" 2( h16 ":" ) ls32
//	            / [ *3( h16 ":" ) h16 ] "::"    h16 ":"   ls32
//	            / [ *4( h16 ":" ) h16 ] "::"              ls32
//	            / [ *5( h16 ":" ) h16 ] "::"              h16
//	            / [ *6( h16 ":" ) h16 ] "::"
//
// Shapes are tried in this order and the first match wins, so an uncompressed
// address followed by "::" matches without the "::". A full-input check such as
// uri.IsIPv6 therefore rejects "1:2:3:4:5:6:7:8::", which has nine groups and is
// not an RFC 3986 address even though it is sometimes listed as one.
func IPv6Address(c Cursor) (Cursor, Token, error) { return run(KindIPv6Address, c, ipv6address) }
