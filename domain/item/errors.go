package item

import "errors"

// Sentinel errors for errors.Is checks across layers.
var (
	// ErrItemNotFound no item with the given id exists.
	ErrItemNotFound = errors.New("item not found")

	// ErrInsufficientStock the requested count exceeds current stock.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrUnknownKind the kind token is not BOOK, ALBUM or MOVIE.
	ErrUnknownKind = errors.New("unknown item kind")

	// ErrInvalidName the name is empty or blank.
	ErrInvalidName = errors.New("item name must not be empty")

	// ErrNegativePrice price below zero.
	ErrNegativePrice = errors.New("item price must not be negative")

	// ErrNegativeStock stock below zero.
	ErrNegativeStock = errors.New("item stock must not be negative")

	// ErrInvalidCount a stock operation was given a negative count.
	ErrInvalidCount = errors.New("count must not be negative")
)
