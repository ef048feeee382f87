/*
Package apperrors - application error model.

Domain packages raise sentinel errors with no transport concepts.
This package translates them into coded application errors; the API
layer maps codes to HTTP statuses. Internal errors never leak their
underlying message to clients.
*/
package apperrors

import (
	"errors"
	"fmt"

	"shopapi/domain/item"
	"shopapi/domain/member"
	"shopapi/domain/order"
)

// Code classifies an application error.
type Code string

const (
	CodeInternal        Code = "INTERNAL_ERROR"
	CodeBadRequest      Code = "BAD_REQUEST"
	CodeNotFound        Code = "NOT_FOUND"
	CodeConflict        Code = "CONFLICT"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	CodeMemberNotFound    Code = "MEMBER_NOT_FOUND"
	CodeItemNotFound      Code = "ITEM_NOT_FOUND"
	CodeOrderNotFound     Code = "ORDER_NOT_FOUND"
	CodeDuplicateMember   Code = "DUPLICATE_MEMBER"
	CodeInsufficientStock Code = "INSUFFICIENT_STOCK"
)

// AppError carries a code, a client-safe message and the wrapped cause.
type AppError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError.
func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap attaches a cause to an AppError.
func Wrap(err error, code Code, message string) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func BadRequest(message string) *AppError      { return New(CodeBadRequest, message) }
func NotFound(message string) *AppError        { return New(CodeNotFound, message) }
func Conflict(message string) *AppError        { return New(CodeConflict, message) }
func InvalidArgument(message string) *AppError { return New(CodeInvalidArgument, message) }
func Internal(message string) *AppError        { return New(CodeInternal, message) }

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// sentinelCodes maps domain sentinel errors to application codes.
// Checked in order via errors.Is, so wrapped domain errors translate
// too.
var sentinelCodes = []struct {
	sentinel error
	code     Code
}{
	{member.ErrMemberNotFound, CodeMemberNotFound},
	{member.ErrDuplicateName, CodeDuplicateMember},
	{member.ErrInvalidName, CodeInvalidArgument},
	{item.ErrItemNotFound, CodeItemNotFound},
	{item.ErrInsufficientStock, CodeInsufficientStock},
	{item.ErrUnknownKind, CodeInvalidArgument},
	{item.ErrInvalidName, CodeInvalidArgument},
	{item.ErrNegativePrice, CodeInvalidArgument},
	{item.ErrNegativeStock, CodeInvalidArgument},
	{item.ErrInvalidCount, CodeInvalidArgument},
	{order.ErrOrderNotFound, CodeOrderNotFound},
	{order.ErrInvalidMember, CodeInvalidArgument},
	{order.ErrNegativeCount, CodeInvalidArgument},
	{order.ErrUnknownStatus, CodeInvalidArgument},
	{order.ErrUnknownStrategy, CodeInvalidArgument},
	{order.ErrPagingUnsupported, CodeInvalidArgument},
	{order.ErrInvalidPage, CodeInvalidArgument},
}

// FromDomainError translates a domain error into an AppError. Already
// translated errors pass through; unknown errors become internal.
func FromDomainError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	for _, m := range sentinelCodes {
		if errors.Is(err, m.sentinel) {
			return Wrap(err, m.code, m.sentinel.Error())
		}
	}
	return Wrap(err, CodeInternal, "internal server error")
}
