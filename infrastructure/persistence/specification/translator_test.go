package specification

import (
	"context"
	"testing"

	"shopapi/domain/order"
	"shopapi/domain/shared"
)

type unknownSpec struct{}

func (unknownSpec) IsSatisfiedBy(ctx context.Context, entity interface{}) bool { return true }

func TestTranslate(t *testing.T) {
	tr := NewGormTranslator()

	if scope := tr.Translate(nil); scope != nil {
		t.Error("Translate(nil) != nil")
	}
	if scope := tr.Translate(unknownSpec{}); scope != nil {
		t.Error("Translate(unsupported) != nil")
	}
	if scope := tr.Translate(order.ByStatusSpecification{Status: order.StatusCancel}); scope == nil {
		t.Error("Translate(ByStatus) = nil")
	}
	if scope := tr.Translate(order.ByMemberNameSpecification{Name: "kim"}); scope == nil {
		t.Error("Translate(ByMemberName) = nil")
	}
	and := shared.And(
		order.ByStatusSpecification{Status: order.StatusCancel},
		order.ByMemberNameSpecification{Name: "kim"},
	)
	if scope := tr.Translate(and); scope == nil {
		t.Error("Translate(And) = nil")
	}
}
