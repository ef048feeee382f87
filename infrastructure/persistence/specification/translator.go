// Package specification translates domain specifications into GORM
// query scopes. The listing queries always join orders with members,
// so translated conditions use the qualified column names of that
// join.
package specification

import (
	"shopapi/domain/order"
	"shopapi/domain/shared"

	"gorm.io/gorm"
)

// Translator converts a domain specification into a GORM scope.
type Translator interface {
	Translate(spec shared.Specification) func(*gorm.DB) *gorm.DB
}

// GormTranslator implements Translator against the shop schema.
type GormTranslator struct{}

// NewGormTranslator creates a GORM translator.
func NewGormTranslator() *GormTranslator {
	return &GormTranslator{}
}

// Translate returns nil for a nil or unsupported specification, which
// callers treat as no constraint.
func (t *GormTranslator) Translate(spec shared.Specification) func(*gorm.DB) *gorm.DB {
	if spec == nil {
		return nil
	}

	switch s := spec.(type) {
	case shared.AndSpecification:
		left, right := t.Translate(s.Left), t.Translate(s.Right)
		return func(db *gorm.DB) *gorm.DB {
			if left != nil {
				db = left(db)
			}
			if right != nil {
				db = right(db)
			}
			return db
		}
	case order.ByStatusSpecification:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("orders.status = ?", string(s.Status))
		}
	case order.ByMemberNameSpecification:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("members.name LIKE ?", "%"+s.Name+"%")
		}
	}
	return nil
}
