// Package log provides logging utilities.
package log

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/rfc3986/grammar"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.FormatByType(func(e *grammar.SyntaxError) slog.Value {
		attrs := []slog.Attr{
			slog.String("production", e.Production),
			slog.Int("offset", e.Pos.Offset),
			slog.String("pos", e.Pos.String()),
		}
		if e.Want != "" {
			attrs = append(attrs, slog.String("want", e.Want))
		}
		return slog.GroupValue(attrs...)
	}),
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(sp grammar.Span) slog.Value {
		return slog.StringValue(sp.String())
	}),
	slogformatter.FormatByType(func(p grammar.Pos) slog.Value {
		return slog.StringValue(p.String())
	}),
)

// Def is a default logger.
var Def = slog.New(newHandler(
	console.NewHandler(os.Stderr, &console.HandlerOptions{
		AddSource:  true,
		Level:      slog.LevelDebug,
		TimeFormat: time.RFC3339Nano,
	}),
))

// Dev is a developer logger.
var Dev = slog.New(newHandler(
	devslog.NewHandler(os.Stderr, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		},
		SortKeys:   true,
		TimeFormat: time.RFC3339Nano,
	}),
))

// New wraps h with the formatters used by [Def] and [Dev].
func New(h slog.Handler) *slog.Logger { return slog.New(newHandler(h)) }

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

type calcValue struct{ fn func() any }

func (v calcValue) LogValue() slog.Value {
	cv := v.fn()
	switch cv := cv.(type) {
	case slog.Value:
		return cv
	default:
		return slog.AnyValue(cv)
	}
}

// CalcValue returns a value logger that computes a value using a fn.
// The fn is called only when the record is actually handled.
func CalcValue(fn func() any) slog.LogValuer { return calcValue{fn} }
