package shared

import "context"

// Specification is a domain predicate over an entity. Adapters either
// evaluate it in process with IsSatisfiedBy or translate it into a
// storage-level query condition.
type Specification interface {
	IsSatisfiedBy(ctx context.Context, entity interface{}) bool
}

// AndSpecification is the conjunction of two specifications.
type AndSpecification struct {
	Left  Specification
	Right Specification
}

func (s AndSpecification) IsSatisfiedBy(ctx context.Context, entity interface{}) bool {
	return s.Left.IsSatisfiedBy(ctx, entity) && s.Right.IsSatisfiedBy(ctx, entity)
}

// And combines two specifications conjunctively.
func And(left, right Specification) Specification {
	return AndSpecification{Left: left, Right: right}
}
