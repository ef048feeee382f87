/*
Package member - Member subdomain.

A member is a small aggregate: identity, display name and an embedded
Address. Members do not hold a stored back-reference to their orders;
order navigation is a query on the order side, which keeps the
association unidirectional and serialization cycle-free.
*/
package member

import (
	"context"
	"strings"
	"time"

	"shopapi/domain/shared"
)

// Member aggregate root.
// Fields are private; state changes go through behavior methods.
type Member struct {
	id        int64
	name      string
	address   shared.Address
	createdAt time.Time
	updatedAt time.Time
}

// New creates a member pending persistence. The id is assigned by the
// repository on save.
func New(name string, address shared.Address) (*Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	now := time.Now()
	return &Member{
		name:      name,
		address:   address,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Rename updates the member's display name.
func (m *Member) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}
	m.name = name
	m.updatedAt = time.Now()
	return nil
}

// Relocate updates the member's address.
func (m *Member) Relocate(address shared.Address) {
	m.address = address
	m.updatedAt = time.Now()
}

func (m *Member) ID() int64               { return m.id }
func (m *Member) Name() string            { return m.name }
func (m *Member) Address() shared.Address { return m.address }
func (m *Member) CreatedAt() time.Time    { return m.createdAt }
func (m *Member) UpdatedAt() time.Time    { return m.updatedAt }

// ReconstructionDTO carries persisted state back into the aggregate.
// Repository use only.
type ReconstructionDTO struct {
	ID        int64
	Name      string
	Address   shared.Address
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Rebuild reconstructs a Member from persisted state.
func Rebuild(dto ReconstructionDTO) *Member {
	return &Member{
		id:        dto.ID,
		name:      dto.Name,
		address:   dto.Address,
		createdAt: dto.CreatedAt,
		updatedAt: dto.UpdatedAt,
	}
}

// Repository persists members. Save assigns the id on first insert.
type Repository interface {
	Save(ctx context.Context, m *Member) (int64, error)
	FindByID(ctx context.Context, id int64) (*Member, error)
	FindByName(ctx context.Context, name string) (*Member, error)
	FindAll(ctx context.Context) ([]*Member, error)
}
