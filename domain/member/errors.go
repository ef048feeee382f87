package member

import "errors"

// Sentinel errors for errors.Is checks across layers.
var (
	// ErrMemberNotFound no member with the given id or name exists.
	ErrMemberNotFound = errors.New("member not found")

	// ErrDuplicateName another member already uses the requested name.
	ErrDuplicateName = errors.New("member name already in use")

	// ErrInvalidName the name is empty or blank.
	ErrInvalidName = errors.New("member name must not be empty")
)
