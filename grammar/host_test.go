package grammar_test

import (
	"testing"

	"github.com/ghettovoice/rfc3986/grammar"
)

func TestIPvFuture(t *testing.T) {
	t.Parallel()

	testProduction(t, "grammar.IPvFuture", grammar.IPvFuture, []prodCase{
		{in: "v1.x", want: "v1.x"},
		{in: "V1.x", want: "V1.x"},
		{in: "v12AF.G", want: "v12AF.G"},
		{in: "v1.a:b", want: "v1.a:b"},
		{in: "v7.!$&'()*+,;=", want: "v7.!$&'()*+,;="},
		{in: "v1.a]", want: "v1.a", rest: "]"},
		{in: "v1.", wantErr: true},
		{in: "v.1", wantErr: true},
		{in: "vg.1", wantErr: true},
		{in: "v1", wantErr: true},
		{in: "1.x", wantErr: true},
	})
}

func TestIPLiteral(t *testing.T) {
	t.Parallel()

	testProduction(t, "grammar.IPLiteral", grammar.IPLiteral, []prodCase{
		{in: "[::1]", want: "[::1]"},
		{in: "[2001:db8::7]", want: "[2001:db8::7]"},
		{in: "[2001:db8::7]:80", want: "[2001:db8::7]", rest: ":80"},
		{in: "[v1.x]", want: "[v1.x]"},
		{in: "[v1.fe:80]", want: "[v1.fe:80]"},
		{in: "[2001::db8::1]", wantErr: true},
		{in: "[1:2:3:4:5:6:7:8::]", wantErr: true},
		{in: "[v1]", wantErr: true},
		{in: "[v1.]", wantErr: true},
		{in: "[.1]", wantErr: true},
		{in: "[]", wantErr: true},
		{in: "[::1", wantErr: true},
		{in: "::1]", wantErr: true},
		{in: "[192.0.2.1]", wantErr: true},
	})
}

func TestRegName(t *testing.T) {
	t.Parallel()

	testProduction(t, "grammar.RegName", grammar.RegName, []prodCase{
		{in: "example.com", want: "example.com"},
		{in: "", want: ""},
		{in: "ex%20ample", want: "ex%20ample"},
		{in: "a!$&'()*+,;=b", want: "a!$&'()*+,;=b"},
		{in: "a b", want: "a", rest: " b"},
		{in: "host:80", want: "host", rest: ":80"},
		{in: "%g0", want: "", rest: "%g0"},
		{in: "пример", want: "", rest: "пример"},
	})
}

func TestHost(t *testing.T) {
	t.Parallel()

	testProduction(t, "grammar.Host", grammar.Host, []prodCase{
		{in: "example.com", want: "example.com"},
		{in: "192.0.2.1", want: "192.0.2.1"},
		{in: "256.0.0.1", want: "256.0.0.1"},
		{in: "1.2.3.4.5", want: "1.2.3.4", rest: ".5"},
		{in: "1.2.3", want: "1.2.3"},
		{in: "[::1]", want: "[::1]"},
		{in: "[::1]:80", want: "[::1]", rest: ":80"},
		{in: "[::1", want: "", rest: "[::1"},
		{in: "%20:80", want: "%20", rest: ":80"},
		{in: "", want: ""},
	})
}

func TestUserinfo(t *testing.T) {
	t.Parallel()

	testProduction(t, "grammar.Userinfo", grammar.Userinfo, []prodCase{
		{in: "user:pass", want: "user:pass"},
		{in: "user@domain.com", want: "user", rest: "@domain.com"},
		{in: "us%40er::", want: "us%40er::"},
		{in: "", want: ""},
	})
}

func TestPort(t *testing.T) {
	t.Parallel()

	testProduction(t, "grammar.Port", grammar.Port, []prodCase{
		{in: "8080", want: "8080"},
		{in: "99999999", want: "99999999"},
		{in: "1a", want: "1", rest: "a"},
		{in: "", want: ""},
		{in: "a", want: "", rest: "a"},
	})
}

func TestAuthority(t *testing.T) {
	t.Parallel()

	testProduction(t, "grammar.Authority", grammar.Authority, []prodCase{
		{in: "example.com", want: "example.com"},
		{in: "user:pass@example.com:8080", want: "user:pass@example.com:8080"},
		{in: "example.com:", want: "example.com:"},
		{in: "example.com:80/path", want: "example.com:80", rest: "/path"},
		{in: "[::1]:80", want: "[::1]:80"},
		{in: "user@[v1.x]", want: "user@[v1.x]"},
		{in: "192.0.2.16:80", want: "192.0.2.16:80"},
		{in: "a@b@c", want: "a@b", rest: "@c"},
		{in: "<invalid>", want: "", rest: "<invalid>"},
		{in: "", want: ""},
	})
}
