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

// Mark tags err so that Is(err, markErr) holds while keeping the original chain.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err carries reference, either in its chain or as a mark.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
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
