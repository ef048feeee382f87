// Package po holds persistence objects: flat structs used only for
// database mapping. They carry no business logic and define no GORM
// associations; linkage between tables is foreign-key columns only.
package po

import (
	"time"

	"shopapi/domain/member"
	"shopapi/domain/shared"
)

// MemberPO member row.
type MemberPO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"size:255;uniqueIndex;not null"`
	City      string    `gorm:"size:255"`
	Street    string    `gorm:"size:255"`
	Zipcode   string    `gorm:"size:32"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (MemberPO) TableName() string { return "members" }

// FromMemberDomain converts the aggregate into a row.
func FromMemberDomain(m *member.Member) *MemberPO {
	addr := m.Address()
	return &MemberPO{
		ID:        m.ID(),
		Name:      m.Name(),
		City:      addr.City,
		Street:    addr.Street,
		Zipcode:   addr.Zipcode,
		CreatedAt: m.CreatedAt(),
		UpdatedAt: m.UpdatedAt(),
	}
}

// ToDomain converts the row back into the aggregate.
func (po *MemberPO) ToDomain() *member.Member {
	return member.Rebuild(member.ReconstructionDTO{
		ID:        po.ID,
		Name:      po.Name,
		Address:   shared.NewAddress(po.City, po.Street, po.Zipcode),
		CreatedAt: po.CreatedAt,
		UpdatedAt: po.UpdatedAt,
	})
}
