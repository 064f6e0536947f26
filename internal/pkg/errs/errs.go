package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Mark tags err so that Is(err, markErr) holds while keeping err's message.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is matches sentinels attached via Mark as well as wrapped chains.
func Is(err, target error) bool {
	return cr.Is(err, target)
}

// Invalidf builds an ErrInvalidInput-marked error with a user-facing message.
func Invalidf(format string, args ...any) error {
	return cr.Mark(cr.Newf(format, args...), ErrInvalidInput)
}

// WithDetailf attaches operator-only context. It shows up in Details and in
// %+v output but never in err.Error().
func WithDetailf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.WithDetailf(err, format, args...)
}

func Details(err error) []string {
	return cr.GetAllDetails(err)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
