package po

import (
	"time"

	"shopapi/domain/order"
	"shopapi/domain/shared"
)

// OrderPO order row. Holds foreign keys only; member and delivery are
// reached by id, never through a mapped association.
type OrderPO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	MemberID   int64     `gorm:"index;not null"`
	DeliveryID int64     `gorm:"not null"`
	Status     string    `gorm:"size:16;not null;index"`
	OrderedAt  time.Time `gorm:"not null;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (OrderPO) TableName() string { return "orders" }

// OrderItemPO order line row. order_price snapshots the item price at
// placement time.
type OrderItemPO struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	OrderID    int64 `gorm:"index;not null"`
	ItemID     int64 `gorm:"index;not null"`
	OrderPrice int64 `gorm:"not null"`
	Count      int64 `gorm:"not null"`
}

func (OrderItemPO) TableName() string { return "order_items" }

// DeliveryPO delivery row with the embedded address flattened.
type DeliveryPO struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Status  string `gorm:"size:16;not null"`
	City    string `gorm:"size:255"`
	Street  string `gorm:"size:255"`
	Zipcode string `gorm:"size:32"`
}

func (DeliveryPO) TableName() string { return "deliveries" }

// Address reassembles the flattened address columns.
func (po *DeliveryPO) Address() shared.Address {
	return shared.NewAddress(po.City, po.Street, po.Zipcode)
}

// FromOrderDomain splits the aggregate into its rows.
func FromOrderDomain(o *order.Order) (*OrderPO, *DeliveryPO, []OrderItemPO) {
	d := o.Delivery()
	deliveryPO := &DeliveryPO{
		ID:      d.ID(),
		Status:  string(d.Status()),
		City:    d.Address().City,
		Street:  d.Address().Street,
		Zipcode: d.Address().Zipcode,
	}

	orderPO := &OrderPO{
		ID:         o.ID(),
		MemberID:   o.MemberID(),
		DeliveryID: d.ID(),
		Status:     string(o.Status()),
		OrderedAt:  o.OrderedAt(),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}

	items := o.Items()
	itemPOs := make([]OrderItemPO, len(items))
	for i, it := range items {
		itemPOs[i] = OrderItemPO{
			ID:         it.ID(),
			OrderID:    o.ID(),
			ItemID:     it.ItemID(),
			OrderPrice: it.OrderPrice(),
			Count:      it.Count(),
		}
	}

	return orderPO, deliveryPO, itemPOs
}

// ToDomain reassembles the aggregate from its rows.
func (po *OrderPO) ToDomain(delivery *DeliveryPO, itemPOs []OrderItemPO) *order.Order {
	items := make([]order.ItemReconstructionDTO, len(itemPOs))
	for i, it := range itemPOs {
		items[i] = order.ItemReconstructionDTO{
			ID:         it.ID,
			ItemID:     it.ItemID,
			OrderPrice: it.OrderPrice,
			Count:      it.Count,
		}
	}

	dto := order.ReconstructionDTO{
		ID:        po.ID,
		MemberID:  po.MemberID,
		Items:     items,
		Status:    order.Status(po.Status),
		OrderedAt: po.OrderedAt,
		CreatedAt: po.CreatedAt,
		UpdatedAt: po.UpdatedAt,
	}
	if delivery != nil {
		dto.DeliveryID = delivery.ID
		dto.DeliverySt = order.DeliveryStatus(delivery.Status)
		dto.Address = shared.NewAddress(delivery.City, delivery.Street, delivery.Zipcode)
	}
	return order.Rebuild(dto)
}
