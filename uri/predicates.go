package uri

import (
	"github.com/ghettovoice/rfc3986/grammar"
	"github.com/ghettovoice/rfc3986/internal/constraints"
)

func isFull[T constraints.Byteseq](p grammar.Production, s T) bool {
	if len(s) == 0 {
		return false
	}
	rest, _, err := p(grammar.NewCursor(s))
	return err == nil && rest.EOF()
}

// IsURI reports whether s is a URI.
func IsURI[T constraints.Byteseq](s T) bool { return isFull(grammar.URI, s) }

// IsReference reports whether s is a non-empty URI-reference.
func IsReference[T constraints.Byteseq](s T) bool { return isFull(grammar.URIReference, s) }

// IsHost reports whether s is a non-empty host: IP-literal, IPv4 address or reg-name.
func IsHost[T constraints.Byteseq](s T) bool { return isFull(grammar.Host, s) }

// IsIPv4 reports whether s is an IPv4address.
func IsIPv4[T constraints.Byteseq](s T) bool { return isFull(grammar.IPv4Address, s) }

// IsIPv6 reports whether s is an IPv6address, without brackets.
// An address with eight groups followed by "::" is rejected, see [grammar.IPv6Address].
func IsIPv6[T constraints.Byteseq](s T) bool { return isFull(grammar.IPv6Address, s) }

// IsRegName reports whether s is a non-empty reg-name.
func IsRegName[T constraints.Byteseq](s T) bool { return isFull(grammar.RegName, s) }

// IsScheme reports whether s is a scheme.
func IsScheme[T constraints.Byteseq](s T) bool { return isFull(grammar.Scheme, s) }

// IsPort reports whether s is a non-empty port.
func IsPort[T constraints.Byteseq](s T) bool { return isFull(grammar.Port, s) }
