package grammar

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
)

// matcher consumes input starting at c.
// On success it returns the cursor after the match and the zero miss,
// on failure it returns c unchanged and the reason.
type matcher func(c Cursor) (Cursor, miss)

// Production is the uniform signature of every exported grammar rule.
type Production func(c Cursor) (Cursor, Token, error)

// run applies m and turns its outcome into the exported result.
func run(k Kind, c Cursor, m matcher) (Cursor, Token, error) {
	end, res := m(c)
	if !res.ok() {
		if c.src != nil && c.src.trace {
			c.src.log.LogAttrs(context.Background(), slog.LevelDebug, "production failed",
				slog.String("production", k.String()),
				slog.Any("start", c),
				slog.String("rule", res.rule),
				slog.Int("offset", res.at),
			)
		}
		return c, Token{}, res.err(c.Source()) //errtrace:skip
	}
	return end, Token{Kind: k, Span: c.SpanTo(end)}, nil
}

// runChar is like run but also fills Token.Value with the matched text.
func runChar(k Kind, c Cursor, m matcher) (Cursor, Token, error) {
	end, tok, err := run(k, c, m)
	if err != nil {
		return end, tok, err //errtrace:skip
	}
	tok.Value = c.Slice(tok.Span)
	return end, tok, nil
}

func fail(c Cursor, rule, want string) (Cursor, miss) {
	return c, miss{at: c.off, rule: rule, want: want}
}

// char matches a single byte satisfying pred.
func char(rule, want string, pred func(byte) bool) matcher {
	return func(c Cursor) (Cursor, miss) {
		if b, ok := c.Peek(); ok && pred(b) {
			return c.reset(c.off + 1), miss{}
		}
		return fail(c, rule, want)
	}
}

// lit matches the literal s exactly.
func lit(rule, s string) matcher {
	want := strconv.Quote(s)
	return func(c Cursor) (Cursor, miss) {
		if c.HasPrefix(s) {
			return c.reset(c.off + len(s)), miss{}
		}
		return fail(c, rule, want)
	}
}

// litFold matches the literal s ignoring ASCII case, as ABNF quoted strings do.
func litFold(rule, s string) matcher {
	want := strconv.Quote(s)
	return func(c Cursor) (Cursor, miss) {
		if rest := c.Rest(); len(rest) >= len(s) && strings.EqualFold(rest[:len(s)], s) {
			return c.reset(c.off + len(s)), miss{}
		}
		return fail(c, rule, want)
	}
}

// seq matches all ms one after another.
// It fails with the miss of the first failing element and consumes nothing.
func seq(ms ...matcher) matcher {
	return func(c Cursor) (Cursor, miss) {
		cur := c
		for _, m := range ms {
			next, res := m(cur)
			if !res.ok() {
				return c, res
			}
			cur = next
		}
		return cur, miss{}
	}
}

// alt is an ordered choice: the first alternative that matches wins,
// every alternative is tried against the same start cursor.
// If none matches, alt fails under rule at the start offset.
func alt(rule string, ms ...matcher) matcher {
	return func(c Cursor) (Cursor, miss) {
		for i, m := range ms {
			next, res := m(c)
			if res.ok() {
				return next, res
			}
			if c.src != nil && c.src.trace {
				c.src.log.LogAttrs(context.Background(), slog.LevelDebug, "alternative rejected",
					slog.String("production", rule),
					slog.Int("alternative", i),
					slog.Any("start", c),
					slog.String("rule", res.rule),
					slog.Int("offset", res.at),
				)
			}
		}
		return fail(c, rule, "")
	}
}

// rep matches m greedily at least lo and at most hi times; hi < 0 means unbounded.
// Each iteration is atomic: a failed iteration is discarded and the repetition stops.
// An iteration that consumes nothing also stops the repetition.
func rep(lo, hi int, m matcher) matcher {
	return func(c Cursor) (Cursor, miss) {
		cur := c
		for n := 0; hi < 0 || n < hi; n++ {
			next, res := m(cur)
			if !res.ok() {
				if n < lo {
					return c, res
				}
				break
			}
			if next.Compare(cur) <= 0 {
				break
			}
			cur = next
		}
		return cur, miss{}
	}
}

// opt matches m or nothing.
func opt(m matcher) matcher {
	return func(c Cursor) (Cursor, miss) {
		if next, res := m(c); res.ok() {
			return next, res
		}
		return c, miss{}
	}
}

// empty always matches consuming nothing.
func empty(c Cursor) (Cursor, miss) { return c, miss{} }

// before matches inner against the input preceding the first occurrence of delim,
// requires inner to consume that input exactly and then consumes delim.
// It keeps inner from running past delim into content that belongs to what follows.
func before(rule, delim string, inner matcher) matcher {
	want := strconv.Quote(delim)
	return func(c Cursor) (Cursor, miss) {
		i := strings.Index(c.Rest(), delim)
		if i < 0 {
			return fail(c, rule, want)
		}
		end, res := inner(c.limit(i))
		if !res.ok() {
			return c, res
		}
		if end.off != c.off+i {
			return c, miss{at: end.off, rule: rule, want: want}
		}
		return c.reset(c.off + i + len(delim)), miss{}
	}
}
