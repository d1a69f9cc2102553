package grammar

// Alternatives are ordered from the longest to the shortest digit run,
// so "256" yields "25" and leaves "6" to the caller.
var decOctet = alt("dec-octet",
	seq(lit("dec-octet", "25"), char("dec-octet", "%x30-35", between('0', '5'))),
	seq(lit("dec-octet", "2"), char("dec-octet", "%x30-34", between('0', '4')), digit("dec-octet")),
	seq(lit("dec-octet", "1"), digit("dec-octet"), digit("dec-octet")),
	seq(char("dec-octet", "%x31-39", between('1', '9')), digit("dec-octet")),
	digit("dec-octet"),
)

var ipv4address = seq(
	decOctet, lit("IPv4address", "."),
	decOctet, lit("IPv4address", "."),
	decOctet, lit("IPv4address", "."),
	decOctet,
)

var (
	h16  = rep(1, 4, hexDig("h16"))
	ls32 = alt("ls32", seq(h16, lit("ls32", ":"), h16), ipv4address)
)

// DecOctet matches
//
//	dec-octet   = DIGIT                 ; 0-9
//	            / %x31-39 DIGIT         ; 10-99
//	            / "1" 2DIGIT            ; 100-199
//	            / "2" %x30-34 DIGIT     ; 200-249
//	            / "25" %x30-35          ; 250-255
//
// The alternatives are tried longest first.
func DecOctet(c Cursor) (Cursor, Token, error) { return run(KindDecOctet, c, decOctet) }

// IPv4Address matches
//
//	IPv4address = dec-octet "." dec-octet "." dec-octet "." dec-octet
//
// Digits that do not fit the last octet are left unconsumed:
// "192.168.0.256" matches "192.168.0.25".
func IPv4Address(c Cursor) (Cursor, Token, error) { return run(KindIPv4Address, c, ipv4address) }

// H16 matches
//
//	h16         = 1*4HEXDIG
func H16(c Cursor) (Cursor, Token, error) { return run(KindH16, c, h16) }

// LS32 matches
//
//	ls32        = ( h16 ":" h16 ) / IPv4address
func LS32(c Cursor) (Cursor, Token, error) { return run(KindLS32, c, ls32) }
