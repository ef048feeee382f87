/*
Package order Application layer - order use cases.

Placement and cancellation run inside a unit of work so the stock
movements and the order row commit or roll back together. Stock is
adjusted through the repository's guarded relative update, not by
read-modify-write on the aggregate, so two concurrent placements of the
last unit cannot both succeed.
*/
package order

import (
	"context"
	"time"

	"shopapi/domain/item"
	"shopapi/domain/member"
	"shopapi/domain/order"
	"shopapi/domain/shared"
)

// Service order application service.
type Service struct {
	orderRepo  order.Repository
	orderViews order.ViewRepository
	memberRepo member.Repository
	itemRepo   item.Repository
	uow        shared.UnitOfWork
}

// NewService creates the order application service.
func NewService(
	orderRepo order.Repository,
	orderViews order.ViewRepository,
	memberRepo member.Repository,
	itemRepo item.Repository,
	uow shared.UnitOfWork,
) *Service {
	return &Service{
		orderRepo:  orderRepo,
		orderViews: orderViews,
		memberRepo: memberRepo,
		itemRepo:   itemRepo,
		uow:        uow,
	}
}

// PlaceRequest place order request DTO.
type PlaceRequest struct {
	MemberID int64         `json:"member_id" binding:"required"`
	City     string        `json:"city"`
	Street   string        `json:"street"`
	Zipcode  string        `json:"zipcode"`
	Items    []LineRequest `json:"items" binding:"required"`
}

// LineRequest one requested line. The order price is snapshotted from
// the item's current price at placement, never taken from the request.
type LineRequest struct {
	ItemID int64 `json:"item_id" binding:"required"`
	Count  int64 `json:"count"`
}

// Response order response DTO.
type Response struct {
	ID         int64          `json:"id"`
	MemberID   int64          `json:"member_id"`
	Status     order.Status   `json:"status"`
	Address    shared.Address `json:"address"`
	Items      []LineResponse `json:"items"`
	TotalPrice int64          `json:"total_price"`
	OrderedAt  time.Time      `json:"ordered_at"`
}

// LineResponse one order line in a response.
type LineResponse struct {
	ItemID     int64 `json:"item_id"`
	OrderPrice int64 `json:"order_price"`
	Count      int64 `json:"count"`
	TotalPrice int64 `json:"total_price"`
}

// Place creates an order: validates the member, snapshots each item's
// price, decrements stock through the guarded update, and saves the
// aggregate. The whole sequence is one transaction; an insufficient
// stock on any line rolls everything back.
func (s *Service) Place(ctx context.Context, req PlaceRequest) (*Response, error) {
	var placed *order.Order

	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		m, err := s.memberRepo.FindByID(ctx, req.MemberID)
		if err != nil {
			return err
		}

		lines := make([]order.LineRequest, 0, len(req.Items))
		for _, line := range req.Items {
			if line.Count < 0 {
				return order.ErrNegativeCount
			}
			it, err := s.itemRepo.FindByID(ctx, line.ItemID)
			if err != nil {
				return err
			}
			if line.Count == 0 {
				continue
			}
			if err := s.itemRepo.AdjustStock(ctx, line.ItemID, -line.Count); err != nil {
				return err
			}
			lines = append(lines, order.LineRequest{
				ItemID:     line.ItemID,
				OrderPrice: it.Price(),
				Count:      line.Count,
			})
		}

		addr := shared.NewAddress(req.City, req.Street, req.Zipcode)
		if addr.IsZero() {
			addr = m.Address()
		}

		o, err := order.Place(req.MemberID, addr, lines)
		if err != nil {
			return err
		}

		id, err := s.orderRepo.Save(ctx, o)
		if err != nil {
			return err
		}

		placed, err = s.orderRepo.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return toResponse(placed), nil
}

// Cancel cancels an order and restores the stock of every line.
// Cancelling an already cancelled order is a no-op: the state does not
// change and stock is not restored twice.
func (s *Service) Cancel(ctx context.Context, orderID int64) (*Response, error) {
	var cancelled *order.Order

	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		o, err := s.orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		if !o.Cancel() {
			cancelled = o
			return nil
		}

		for _, line := range o.Items() {
			if err := s.itemRepo.AdjustStock(ctx, line.ItemID(), line.Count()); err != nil {
				return err
			}
		}

		if _, err := s.orderRepo.Save(ctx, o); err != nil {
			return err
		}
		cancelled = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toResponse(cancelled), nil
}

// Get returns one order.
func (s *Service) Get(ctx context.Context, orderID int64) (*Response, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return toResponse(o), nil
}

// ListRequest raw listing parameters as they arrive from the transport.
// Parse turns them into a validated query.
type ListRequest struct {
	Strategy   string
	Status     string
	MemberName string
	Offset     *int
	Limit      *int
}

// Parse validates the raw tokens and assembles the listing query.
// Unknown strategy or status tokens and unsupported paging combinations
// fail here, before any query runs.
func (r ListRequest) Parse() (order.ListQuery, error) {
	q := order.ListQuery{}

	strategy, err := order.ParseStrategy(r.Strategy)
	if err != nil {
		return q, err
	}
	q.Strategy = strategy

	if r.Status != "" {
		status, err := order.ParseStatus(r.Status)
		if err != nil {
			return q, err
		}
		q.Filter.Status = &status
	}
	q.Filter.MemberName = r.MemberName

	if r.Offset != nil || r.Limit != nil {
		page := order.Page{Limit: 100}
		if r.Offset != nil {
			page.Offset = *r.Offset
		}
		if r.Limit != nil {
			page.Limit = *r.Limit
		}
		q.Page = &page
	}

	if err := q.Validate(); err != nil {
		return q, err
	}
	return q, nil
}

// List materializes an order listing with the requested strategy.
func (s *Service) List(ctx context.Context, req ListRequest) ([]order.OrderView, error) {
	q, err := req.Parse()
	if err != nil {
		return nil, err
	}
	return s.orderViews.List(ctx, q)
}

func toResponse(o *order.Order) *Response {
	items := make([]LineResponse, len(o.Items()))
	for i, line := range o.Items() {
		items[i] = LineResponse{
			ItemID:     line.ItemID(),
			OrderPrice: line.OrderPrice(),
			Count:      line.Count(),
			TotalPrice: line.TotalPrice(),
		}
	}
	return &Response{
		ID:         o.ID(),
		MemberID:   o.MemberID(),
		Status:     o.Status(),
		Address:    o.Delivery().Address(),
		Items:      items,
		TotalPrice: o.TotalPrice(),
		OrderedAt:  o.OrderedAt(),
	}
}
