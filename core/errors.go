package core

import "errors"

// Sentinel errors for the core data model. Callers branch with errors.Is;
// these are never wrapped with a formatted string at the definition site.
var (
	// ErrNegativeAmount indicates a bid, cost, or budget amount was negative.
	ErrNegativeAmount = errors.New("core: negative monetary amount")

	// ErrUnknownVoter indicates a bid referenced a voter id outside the
	// supplied voter list.
	ErrUnknownVoter = errors.New("core: bid from unknown voter")

	// ErrUnknownProject indicates an operation referenced a project id that
	// was never registered with the BidGraph.
	ErrUnknownProject = errors.New("core: unknown project id")

	// ErrDuplicateVoter indicates the same voter id appeared twice in a
	// voter list.
	ErrDuplicateVoter = errors.New("core: duplicate voter id")

	// ErrInvalidRange indicates max_cost < min_cost for some project.
	ErrInvalidRange = errors.New("core: max cost below min cost")
)
