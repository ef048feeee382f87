/*
Package order - Order subdomain.

Order is the aggregate root; its line items and delivery are created
with it, atomically, at placement time and are only reachable through
it. Associations point one way: an order holds the member id, a line
item holds the item id. The reverse navigations are queries, never
stored back-references.

The order state machine has two states. ORDER is the initial state,
CANCEL is terminal; the only transition is an explicit cancellation.
*/
package order

import (
	"context"
	"time"

	"shopapi/domain/shared"
)

// Status order state enum.
type Status string

const (
	StatusOrder  Status = "ORDER"
	StatusCancel Status = "CANCEL"
)

// DeliveryStatus delivery state enum.
type DeliveryStatus string

const (
	DeliveryReady DeliveryStatus = "READY"
	DeliveryComp  DeliveryStatus = "COMP"
)

// OrderItem is an entity inside the aggregate. It snapshots the item's
// price at order time; the current item price may drift afterwards.
type OrderItem struct {
	id         int64
	itemID     int64
	orderPrice int64
	count      int64
}

func (oi OrderItem) ID() int64         { return oi.id }
func (oi OrderItem) ItemID() int64     { return oi.itemID }
func (oi OrderItem) OrderPrice() int64 { return oi.orderPrice }
func (oi OrderItem) Count() int64      { return oi.count }

// TotalPrice is orderPrice x count for this line.
func (oi OrderItem) TotalPrice() int64 { return oi.orderPrice * oi.count }

// Delivery is an entity inside the aggregate, created in READY status
// at placement time.
type Delivery struct {
	id      int64
	address shared.Address
	status  DeliveryStatus
}

func (d Delivery) ID() int64               { return d.id }
func (d Delivery) Address() shared.Address { return d.address }
func (d Delivery) Status() DeliveryStatus  { return d.status }

// Order aggregate root.
type Order struct {
	id        int64
	memberID  int64
	delivery  Delivery
	items     []OrderItem
	status    Status
	orderedAt time.Time
	createdAt time.Time
	updatedAt time.Time
}

// LineRequest describes one line of a new order.
type LineRequest struct {
	ItemID     int64
	OrderPrice int64
	Count      int64
}

// Place creates a new order in ORDER status with a READY delivery bound
// to the given address. Lines with count zero are dropped, so a
// zero-quantity placement yields a valid order with no line items and
// total price zero.
func Place(memberID int64, deliveryAddress shared.Address, lines []LineRequest) (*Order, error) {
	if memberID <= 0 {
		return nil, ErrInvalidMember
	}

	items := make([]OrderItem, 0, len(lines))
	for _, line := range lines {
		if line.Count < 0 {
			return nil, ErrNegativeCount
		}
		if line.Count == 0 {
			continue
		}
		items = append(items, OrderItem{
			itemID:     line.ItemID,
			orderPrice: line.OrderPrice,
			count:      line.Count,
		})
	}

	now := time.Now()
	return &Order{
		memberID: memberID,
		delivery: Delivery{
			address: deliveryAddress,
			status:  DeliveryReady,
		},
		items:     items,
		status:    StatusOrder,
		orderedAt: now,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Cancel transitions ORDER -> CANCEL. It reports false when the order
// is already cancelled; the caller must then treat the request as a
// successful no-op and leave stock untouched.
func (o *Order) Cancel() bool {
	if o.status == StatusCancel {
		return false
	}
	o.status = StatusCancel
	o.updatedAt = time.Now()
	return true
}

// TotalPrice is the sum of line totals.
func (o *Order) TotalPrice() int64 {
	var total int64
	for _, it := range o.items {
		total += it.TotalPrice()
	}
	return total
}

func (o *Order) ID() int64            { return o.id }
func (o *Order) MemberID() int64      { return o.memberID }
func (o *Order) Delivery() Delivery   { return o.delivery }
func (o *Order) Items() []OrderItem   { return o.items }
func (o *Order) Status() Status       { return o.status }
func (o *Order) OrderedAt() time.Time { return o.orderedAt }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// ReconstructionDTO carries persisted state back into the aggregate.
// Repository use only.
type ReconstructionDTO struct {
	ID         int64
	MemberID   int64
	DeliveryID int64
	Address    shared.Address
	DeliverySt DeliveryStatus
	Items      []ItemReconstructionDTO
	Status     Status
	OrderedAt  time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ItemReconstructionDTO persisted state of one line item.
type ItemReconstructionDTO struct {
	ID         int64
	ItemID     int64
	OrderPrice int64
	Count      int64
}

// Rebuild reconstructs an Order from persisted state.
func Rebuild(dto ReconstructionDTO) *Order {
	items := make([]OrderItem, len(dto.Items))
	for i, it := range dto.Items {
		items[i] = OrderItem{
			id:         it.ID,
			itemID:     it.ItemID,
			orderPrice: it.OrderPrice,
			count:      it.Count,
		}
	}
	return &Order{
		id:       dto.ID,
		memberID: dto.MemberID,
		delivery: Delivery{
			id:      dto.DeliveryID,
			address: dto.Address,
			status:  dto.DeliverySt,
		},
		items:     items,
		status:    dto.Status,
		orderedAt: dto.OrderedAt,
		createdAt: dto.CreatedAt,
		updatedAt: dto.UpdatedAt,
	}
}

// Repository persists the order aggregate: the order row, its delivery
// and its line items move together.
type Repository interface {
	Save(ctx context.Context, o *Order) (int64, error)
	FindByID(ctx context.Context, id int64) (*Order, error)
}
