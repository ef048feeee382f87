package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"shopapi/domain/item"
	"shopapi/domain/member"
	"shopapi/domain/order"
)

func TestFromDomainError(t *testing.T) {
	cases := []struct {
		err  error
		want Code
	}{
		{member.ErrMemberNotFound, CodeMemberNotFound},
		{member.ErrDuplicateName, CodeDuplicateMember},
		{item.ErrItemNotFound, CodeItemNotFound},
		{item.ErrInsufficientStock, CodeInsufficientStock},
		{order.ErrOrderNotFound, CodeOrderNotFound},
		{order.ErrUnknownStrategy, CodeInvalidArgument},
		{order.ErrPagingUnsupported, CodeInvalidArgument},
		{errors.New("boom"), CodeInternal},
	}
	for _, c := range cases {
		got := FromDomainError(c.err)
		if got.Code != c.want {
			t.Errorf("FromDomainError(%v).Code = %s, want %s", c.err, got.Code, c.want)
		}
	}
}

func TestFromDomainErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("placing order: %w", item.ErrInsufficientStock)
	got := FromDomainError(wrapped)
	if got.Code != CodeInsufficientStock {
		t.Errorf("wrapped sentinel Code = %s, want %s", got.Code, CodeInsufficientStock)
	}
}

func TestFromDomainErrorPassthrough(t *testing.T) {
	original := NotFound("no such thing")
	got := FromDomainError(fmt.Errorf("outer: %w", original))
	if got != original {
		t.Errorf("already translated error not passed through: %v", got)
	}
}

func TestFromDomainErrorNil(t *testing.T) {
	if got := FromDomainError(nil); got != nil {
		t.Errorf("FromDomainError(nil) = %v, want nil", got)
	}
}

func TestIs(t *testing.T) {
	err := Wrap(item.ErrInsufficientStock, CodeInsufficientStock, "stock ran out")
	if !Is(err, CodeInsufficientStock) {
		t.Error("Is() = false, want true")
	}
	if Is(err, CodeInternal) {
		t.Error("Is(wrong code) = true, want false")
	}
	if Is(errors.New("plain"), CodeInternal) {
		t.Error("Is(plain error) = true, want false")
	}
}

func TestUnwrap(t *testing.T) {
	err := Wrap(order.ErrOrderNotFound, CodeOrderNotFound, "order not found")
	if !errors.Is(err, order.ErrOrderNotFound) {
		t.Error("errors.Is through AppError = false, want true")
	}
}
