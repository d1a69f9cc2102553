package grammar

import "strings"

func isAlpha(b byte) bool { return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' }

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func isHexDig(b byte) bool { return isDigit(b) || 'a' <= b && b <= 'f' || 'A' <= b && b <= 'F' }

func isUnreserved(b byte) bool {
	return isAlpha(b) || isDigit(b) || b == '-' || b == '.' || b == '_' || b == '~'
}

func isSubDelim(b byte) bool { return strings.IndexByte("!$&'()*+,;=", b) >= 0 }

func isGenDelim(b byte) bool { return strings.IndexByte(":/?#[]@", b) >= 0 }

func isSchemeChar(b byte) bool { return isAlpha(b) || isDigit(b) || b == '+' || b == '-' || b == '.' }

func between(lo, hi byte) func(byte) bool {
	return func(b byte) bool { return lo <= b && b <= hi }
}

func digit(rule string) matcher { return char(rule, "DIGIT", isDigit) }

func hexDig(rule string) matcher { return char(rule, "HEXDIG", isHexDig) }

var (
	hexdig     = hexDig("HEXDIG")
	unreserved = char("unreserved", "unreserved", isUnreserved)
	subDelims  = char("sub-delims", "sub-delims", isSubDelim)
	genDelims  = char("gen-delims", "gen-delims", isGenDelim)
	reserved   = alt("reserved", genDelims, subDelims)
	pctEncoded = seq(lit("pct-encoded", "%"), hexDig("pct-encoded"), hexDig("pct-encoded"))
)

// HexDig matches HEXDIG, case-insensitive.
func HexDig(c Cursor) (Cursor, Token, error) { return runChar(KindHexDig, c, hexdig) }

// Unreserved matches
//
//	unreserved  = ALPHA / DIGIT / "-" / "." / "_" / "~"
func Unreserved(c Cursor) (Cursor, Token, error) { return runChar(KindUnreserved, c, unreserved) }

// SubDelims matches
//
//	sub-delims  = "!" / "$" / "&" / "'" / "(" / ")"
//	            / "*" / "+" / "," / ";" / "="
func SubDelims(c Cursor) (Cursor, Token, error) { return runChar(KindSubDelims, c, subDelims) }

// GenDelims matches
//
//	gen-delims  = ":" / "/" / "?" / "#" / "[" / "]" / "@"
func GenDelims(c Cursor) (Cursor, Token, error) { return runChar(KindGenDelims, c, genDelims) }

// Reserved matches
//
//	reserved    = gen-delims / sub-delims
func Reserved(c Cursor) (Cursor, Token, error) { return runChar(KindReserved, c, reserved) }

// PctEncoded matches
//
//	pct-encoded = "%" HEXDIG HEXDIG
//
// The token value holds the decoded octet.
func PctEncoded(c Cursor) (Cursor, Token, error) {
	end, tok, err := run(KindPctEncoded, c, pctEncoded)
	if err != nil {
		return end, tok, err //errtrace:skip
	}
	s := c.Slice(tok.Span)
	tok.Value = string([]byte{unhex(s[1])<<4 | unhex(s[2])})
	return end, tok, nil
}

func unhex(b byte) byte {
	switch {
	case isDigit(b):
		return b - '0'
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}
