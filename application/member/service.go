/*
Package member Application layer - member use cases.

Thin orchestration over the member aggregate: parse the request DTO,
call the aggregate, persist, convert back. No business rules live here.
*/
package member

import (
	"context"
	"time"

	"shopapi/domain/member"
	"shopapi/domain/shared"
)

// Service member application service.
type Service struct {
	memberRepo member.Repository
}

// NewService creates the member application service.
func NewService(memberRepo member.Repository) *Service {
	return &Service{memberRepo: memberRepo}
}

// RegisterRequest register member request DTO.
type RegisterRequest struct {
	Name    string `json:"name" binding:"required"`
	City    string `json:"city"`
	Street  string `json:"street"`
	Zipcode string `json:"zipcode"`
}

// UpdateRequest update member request DTO. Only the name changes; the
// address moves with a relocation, not an update.
type UpdateRequest struct {
	Name string `json:"name" binding:"required"`
}

// Response member response DTO.
type Response struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Address   shared.Address `json:"address"`
	CreatedAt time.Time      `json:"created_at"`
}

// Register creates a member. Names are unique; a duplicate is rejected
// by the repository.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*Response, error) {
	m, err := member.New(req.Name, shared.NewAddress(req.City, req.Street, req.Zipcode))
	if err != nil {
		return nil, err
	}

	id, err := s.memberRepo.Save(ctx, m)
	if err != nil {
		return nil, err
	}

	saved, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(saved), nil
}

// Get returns one member.
func (s *Service) Get(ctx context.Context, id int64) (*Response, error) {
	m, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(m), nil
}

// List returns all members.
func (s *Service) List(ctx context.Context) ([]*Response, error) {
	members, err := s.memberRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*Response, len(members))
	for i, m := range members {
		responses[i] = toResponse(m)
	}
	return responses, nil
}

// UpdateName renames a member.
func (s *Service) UpdateName(ctx context.Context, id int64, req UpdateRequest) (*Response, error) {
	m, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := m.Rename(req.Name); err != nil {
		return nil, err
	}
	if _, err := s.memberRepo.Save(ctx, m); err != nil {
		return nil, err
	}
	return toResponse(m), nil
}

func toResponse(m *member.Member) *Response {
	return &Response{
		ID:        m.ID(),
		Name:      m.Name(),
		Address:   m.Address(),
		CreatedAt: m.CreatedAt(),
	}
}
