package order

import "errors"

// Sentinel errors for errors.Is checks across layers.
var (
	// ErrOrderNotFound no order with the given id exists.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidMember placement referenced a non-positive member id.
	ErrInvalidMember = errors.New("order requires a valid member")

	// ErrNegativeCount a line requested a negative quantity.
	ErrNegativeCount = errors.New("order count must not be negative")

	// ErrUnknownStatus the status filter token is not ORDER or CANCEL.
	// An invalid token is rejected before query construction; it is
	// never treated as "no filter".
	ErrUnknownStatus = errors.New("unknown order status")

	// ErrUnknownStrategy the listing strategy token is not recognized.
	ErrUnknownStrategy = errors.New("unknown listing strategy")

	// ErrPagingUnsupported offset/limit was combined with a strategy
	// whose row collapsing cannot honor a row-level limit.
	ErrPagingUnsupported = errors.New("strategy does not support paging")

	// ErrInvalidPage negative offset or non-positive limit.
	ErrInvalidPage = errors.New("invalid paging parameters")
)
