package extract

import "testing"

func TestTrimTrailing(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"a", "a"},
		{"a.", "a"},
		{"a.,;:!?", "a"},
		{`a'"`, "a"},
		{"a)", "a"},
		{"a))", "a"},
		{"(a)", "(a)"},
		{"(a)).", "(a)"},
		{"[::1]", "[::1]"},
		{"a]", "a"},
		{"a/", "a/"},
		{"...", ""},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			if got := trimTrailing(c.in); got != c.want {
				t.Errorf("trimTrailing(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestScanner_States(t *testing.T) {
	t.Parallel()

	s := newScanner("x http://a", nil)
	if got, want := s.fsm.MustState(), any(stateSeek); got != want {
		t.Fatalf("initial state = %v, want %v", got, want)
	}

	if _, ok := s.Next(); !ok {
		t.Fatal("s.Next() = false, want true")
	}
	if got, want := s.fsm.MustState(), any(stateSeek); got != want {
		t.Errorf("state after match = %v, want %v", got, want)
	}

	if _, ok := s.Next(); ok {
		t.Fatal("s.Next() = true, want false")
	}
	if got, want := s.fsm.MustState(), any(stateDone); got != want {
		t.Errorf("final state = %v, want %v", got, want)
	}
}
