package errorutil

//go:generate errtrace -w .

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ghettovoice/rfc3986/internal/util"
)

// Error is a string type that implements the error interface.
type Error string

func (s Error) Error() string { return string(s) }

func Errorf(format string, args ...any) error {
	return Error(fmt.Sprintf(format, args...)) //errtrace:skip
}

// NewWrapperError creates or wraps an error with a sentinel error.
// It supports multiple argument patterns:
//   - No args: returns sentinel
//   - error arg: wraps with sentinel (unless already wrapped)
//   - string arg: formats as message with sentinel
//   - string + args: formats with Sprintf then wraps with sentinel
func NewWrapperError(sentinel error, args ...any) error {
	if len(args) == 0 {
		return sentinel //errtrace:skip
	}
	switch v := args[0].(type) {
	case error:
		if errors.Is(v, sentinel) {
			return v //errtrace:skip
		}
		return fmt.Errorf("%w: %w", sentinel, v) //errtrace:skip
	case string:
		if len(args) == 1 {
			return fmt.Errorf("%w: %s", sentinel, v) //errtrace:skip
		}
		return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(v, args[1:]...)) //errtrace:skip
	default:
		return sentinel //errtrace:skip
	}
}

// JoinPrefix combines errs into one error labeled with prefix, skipping nil values.
// A single non-nil error is returned as is when prefix is empty.
func JoinPrefix(prefix string, errs ...error) error {
	errs = compact(errs)
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		if prefix == "" {
			return errs[0] //errtrace:skip
		}
		return fmt.Errorf("%s: %w", strings.TrimRight(prefix, ":"), errs[0]) //errtrace:skip
	}
	return &multiError{prefix: prefix, errs: errs} //errtrace:skip
}

func compact(errs []error) []error {
	var out []error
	for _, err := range errs {
		if err != nil {
			out = append(out, err)
		}
	}
	return out
}

type multiError struct {
	prefix string
	errs   []error
}

func (e *multiError) Error() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	if e.prefix == "" {
		sb.WriteString("multiple errors")
	} else {
		sb.WriteString(strings.TrimRight(e.prefix, ":"))
	}
	for _, err := range e.errs {
		sb.WriteString("\n  - ")
		sb.WriteString(strings.ReplaceAll(err.Error(), "\n", "\n    "))
	}
	return sb.String()
}

func (e *multiError) Unwrap() []error { return e.errs }
