package order

import (
	"context"
	"strings"

	"shopapi/domain/shared"
)

// ByStatusSpecification matches order listings with the given status.
type ByStatusSpecification struct {
	Status Status
}

func (s ByStatusSpecification) IsSatisfiedBy(ctx context.Context, entity interface{}) bool {
	v, ok := entity.(OrderView)
	if !ok {
		return false
	}
	return v.Status == s.Status
}

// ByMemberNameSpecification matches order listings whose member name
// contains the given fragment.
type ByMemberNameSpecification struct {
	Name string
}

func (s ByMemberNameSpecification) IsSatisfiedBy(ctx context.Context, entity interface{}) bool {
	v, ok := entity.(OrderView)
	if !ok {
		return false
	}
	return strings.Contains(v.MemberName, s.Name)
}

// Specification compiles the filter into a domain specification. A nil
// result means the filter is empty and every listing matches.
func (f Filter) Specification() shared.Specification {
	var spec shared.Specification
	if f.Status != nil {
		spec = ByStatusSpecification{Status: *f.Status}
	}
	if f.MemberName != "" {
		byName := ByMemberNameSpecification{Name: f.MemberName}
		if spec == nil {
			spec = byName
		} else {
			spec = shared.And(spec, byName)
		}
	}
	return spec
}
