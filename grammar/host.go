package grammar

var ipvFuture = seq(
	litFold("IPvFuture", "v"),
	rep(1, -1, hexDig("IPvFuture")),
	lit("IPvFuture", "."),
	rep(1, -1, alt("IPvFuture", unreserved, subDelims, lit("IPvFuture", ":"))),
)

var ipLiteral = seq(
	lit("IP-literal", "["),
	alt("IP-literal", ipv6address, ipvFuture),
	lit("IP-literal", "]"),
)

var regName = rep(0, -1, alt("reg-name", unreserved, pctEncoded, subDelims))

var host = alt("host", ipLiteral, ipv4address, regName)

// IPvFuture matches
//
//	IPvFuture  = "v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" )
//
// The version is checked syntactically only.
func IPvFuture(c Cursor) (Cursor, Token, error) { return run(KindIPvFuture, c, ipvFuture) }

// IPLiteral matches
//
//	IP-literal = "[" ( IPv6address / IPvFuture  ) "]"
func IPLiteral(c Cursor) (Cursor, Token, error) { return run(KindIPLiteral, c, ipLiteral) }

// RegName matches
//
//	reg-name    = *( unreserved / pct-encoded / sub-delims )
//
// No length or DNS label checks are made, the empty name is accepted.
func RegName(c Cursor) (Cursor, Token, error) { return run(KindRegName, c, regName) }

// Host matches
//
//	host        = IP-literal / IPv4address / reg-name
//
// It is an ordered choice: "256.0.0.1" fails IPv4address and is matched whole by reg-name,
// while "1.2.3.4.5" matches IPv4address "1.2.3.4".
func Host(c Cursor) (Cursor, Token, error) { return run(KindHost, c, host) }
