package order

import (
	"context"
	"testing"
)

func TestByStatusSpecification(t *testing.T) {
	ctx := context.Background()
	spec := ByStatusSpecification{Status: StatusCancel}

	if !spec.IsSatisfiedBy(ctx, OrderView{Status: StatusCancel}) {
		t.Error("IsSatisfiedBy(CANCEL) = false, want true")
	}
	if spec.IsSatisfiedBy(ctx, OrderView{Status: StatusOrder}) {
		t.Error("IsSatisfiedBy(ORDER) = true, want false")
	}
	if spec.IsSatisfiedBy(ctx, "not a view") {
		t.Error("IsSatisfiedBy(non-view) = true, want false")
	}
}

func TestByMemberNameSpecification(t *testing.T) {
	ctx := context.Background()
	spec := ByMemberNameSpecification{Name: "ki"}

	if !spec.IsSatisfiedBy(ctx, OrderView{MemberName: "kim"}) {
		t.Error(`IsSatisfiedBy("kim") = false, want true`)
	}
	if spec.IsSatisfiedBy(ctx, OrderView{MemberName: "lee"}) {
		t.Error(`IsSatisfiedBy("lee") = true, want false`)
	}
}

func TestFilterSpecification(t *testing.T) {
	ctx := context.Background()

	if spec := (Filter{}).Specification(); spec != nil {
		t.Errorf("empty filter specification = %v, want nil", spec)
	}

	cancel := StatusCancel
	spec := Filter{Status: &cancel, MemberName: "ki"}.Specification()
	if spec == nil {
		t.Fatal("composed filter specification = nil")
	}
	if !spec.IsSatisfiedBy(ctx, OrderView{MemberName: "kim", Status: StatusCancel}) {
		t.Error("composed spec rejects a view matching both predicates")
	}
	if spec.IsSatisfiedBy(ctx, OrderView{MemberName: "kim", Status: StatusOrder}) {
		t.Error("composed spec accepts a view failing the status predicate")
	}
	if spec.IsSatisfiedBy(ctx, OrderView{MemberName: "lee", Status: StatusCancel}) {
		t.Error("composed spec accepts a view failing the name predicate")
	}
}
