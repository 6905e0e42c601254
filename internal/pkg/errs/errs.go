// Package errs is the single place the codebase touches
// cockroachdb/errors, so stack traces stay consistent across layers.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark stamps err with a sentinel's identity. Both the sentinel and the
// original cause stay in the chain, so handlers can branch on the
// sentinel with errors.Is while errors.As still reaches the underlying
// repository error.
func Mark(err error, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

// ExtractStackLines renders the error's verbose form for log output,
// truncated to maxLines (0 keeps everything).
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
