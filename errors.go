package equalshares

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel for every C6 precondition violation
// (spec §4.6, §7). Use errors.Is to detect the failure kind; the wrapped
// detail (via %w) identifies which precondition failed.
var ErrInvalidInput = errors.New("equalshares: invalid input")

// ErrAllocationOutOfRange is an internal-consistency safety net: it fires
// only if a computed allocation ever fell outside {0} ∪ [min_cost,
// max_cost] for its project, which postcondition P2 guarantees cannot
// happen by construction. Seeing this indicates a bug in this package, not
// a caller error, so it is reported through its own sentinel rather than
// ErrInvalidInput (see SPEC_FULL.md §C.5).
var ErrAllocationOutOfRange = errors.New("equalshares: allocation outside project range")

func invalidInput(reason error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, reason)
}

func wrapCoreError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}
