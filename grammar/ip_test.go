package grammar_test

import (
	"testing"

	"github.com/ghettovoice/rfc3986/grammar"
)

func TestDecOctet(t *testing.T) {
	t.Parallel()

	testProduction(t, "grammar.DecOctet", grammar.DecOctet, []prodCase{
		{in: "0", want: "0"},
		{in: "9", want: "9"},
		{in: "01", want: "0", rest: "1"},
		{in: "10", want: "10"},
		{in: "99", want: "99"},
		{in: "100", want: "100"},
		{in: "199", want: "199"},
		{in: "200", want: "200"},
		{in: "249", want: "249"},
		{in: "250", want: "250"},
		{in: "255", want: "255"},
		{in: "256", want: "25", rest: "6"},
		{in: "260", want: "26", rest: "0"},
		{in: "300", want: "30", rest: "0"},
		{in: "1000", want: "100", rest: "0"},
		{in: "a", wantErr: true},
		{in: "", wantErr: true},
	})
}

func TestIPv4Address(t *testing.T) {
	t.Parallel()

	testProduction(t, "grammar.IPv4Address", grammar.IPv4Address, []prodCase{
		{in: "192.168.0.1", want: "192.168.0.1"},
		{in: "0.0.0.0", want: "0.0.0.0"},
		{in: "255.255.255.255", want: "255.255.255.255"},
		{in: "192.168.0.256", want: "192.168.0.25", rest: "6"},
		{in: "192.168.0.1.5", want: "192.168.0.1", rest: ".5"},
		{in: "10.0.0.1:80", want: "10.0.0.1", rest: ":80"},
		{in: "256.0.0.0", wantErr: true},
		{in: "01.2.3.4", wantErr: true},
		{in: "1.2.3", wantErr: true},
		{in: "1.2.3.", wantErr: true},
		{in: "a.b.c.d", wantErr: true},
		{in: "", wantErr: true},
	})
}

func TestH16(t *testing.T) {
	t.Parallel()

	testProduction(t, "grammar.H16", grammar.H16, []prodCase{
		{in: "0", want: "0"},
		{in: "abcd", want: "abcd"},
		{in: "ABCD", want: "ABCD"},
		{in: "12345", want: "1234", rest: "5"},
		{in: "db8:", want: "db8", rest: ":"},
		{in: "g", wantErr: true},
		{in: "", wantErr: true},
	})
}

func TestLS32(t *testing.T) {
	t.Parallel()

	testProduction(t, "grammar.LS32", grammar.LS32, []prodCase{
		{in: "1:2", want: "1:2"},
		{in: "ab:cd:ef", want: "ab:cd", rest: ":ef"},
		{in: "192.0.2.1", want: "192.0.2.1"},
		{in: "1.2.3.4", want: "1.2.3.4"},
		{in: "1:", wantErr: true},
		{in: "1", wantErr: true},
		{in: "", wantErr: true},
	})
}

func TestIPv6Address(t *testing.T) {
	t.Parallel()

	testProduction(t, "grammar.IPv6Address", grammar.IPv6Address, []prodCase{
		{in: "1:2:3:4:5:6:7:8", want: "1:2:3:4:5:6:7:8"},
		{in: "ABCD:EF01:2345:6789:ABCD:EF01:2345:6789", want: "ABCD:EF01:2345:6789:ABCD:EF01:2345:6789"},
		{in: "1:2:3:4:5:6:192.0.2.1", want: "1:2:3:4:5:6:192.0.2.1"},
		{in: "::", want: "::"},
		{in: "::1", want: "::1"},
		{in: "::1:2:3:4:5:6", want: "::1:2:3:4:5:6"},
		{in: "2001:db8::1", want: "2001:db8::1"},
		{in: "2001:db8::7", want: "2001:db8::7"},
		{in: "fe80::", want: "fe80::"},
		{in: "1:2:3::", want: "1:2:3::"},
		{in: "1:2:3:4:5::", want: "1:2:3:4:5::"},
		{in: "1::2:3:4:5:6:7", want: "1::2:3:4:5:6:7"},
		{in: "::ffff:192.0.2.128", want: "::ffff:192.0.2.128"},
		{in: "2001:DB8::ab:CD", want: "2001:DB8::ab:CD"},
		{in: "1:2:3:4:5:6:7:8::", want: "1:2:3:4:5:6:7:8", rest: "::"},
		{in: "1:2:3:4:5:6:7::8", want: "1:2:3:4:5:6:7::", rest: "8"},
		{in: "1::2::3", want: "1::2", rest: "::3"},
		{in: "::1]", want: "::1", rest: "]"},
		{in: "1:2:3", wantErr: true},
		{in: "g::1", wantErr: true},
		{in: ":1", wantErr: true},
		{in: "", wantErr: true},
	})
}
