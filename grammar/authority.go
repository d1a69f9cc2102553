package grammar

var userinfo = rep(0, -1, alt("userinfo", unreserved, pctEncoded, subDelims, lit("userinfo", ":")))

var port = rep(0, -1, digit("port"))

var authority = seq(
	opt(seq(userinfo, lit("authority", "@"))),
	host,
	opt(seq(lit("authority", ":"), port)),
)

// Userinfo matches
//
//	userinfo    = *( unreserved / pct-encoded / sub-delims / ":" )
//
// The colon is not treated as a user/password separator.
func Userinfo(c Cursor) (Cursor, Token, error) { return run(KindUserinfo, c, userinfo) }

// Port matches
//
//	port        = *DIGIT
//
// The value is not range checked.
func Port(c Cursor) (Cursor, Token, error) { return run(KindPort, c, port) }

// Authority matches
//
//	authority   = [ userinfo "@" ] host [ ":" port ]
//
// A trailing ":" with no digits is an empty port.
func Authority(c Cursor) (Cursor, Token, error) { return run(KindAuthority, c, authority) }
