package mysql

import (
	"context"
	"errors"

	"shopapi/domain/order"
	"shopapi/infrastructure/persistence"
	"shopapi/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
)

// OrderRepository MySQL implementation of order.Repository. The order
// row, its delivery and its line items are written together; within a
// unit of work that makes placement and cancellation atomic with the
// stock mutation they pair with.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Save persists the aggregate. Outside a unit of work it opens its own
// transaction so the three tables still move together.
func (r *OrderRepository) Save(ctx context.Context, o *order.Order) (int64, error) {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return r.saveWithTx(tx, o)
	}

	var id int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		id, err = r.saveWithTx(tx, o)
		return err
	})
	return id, err
}

func (r *OrderRepository) saveWithTx(tx *gorm.DB, o *order.Order) (int64, error) {
	orderPO, deliveryPO, itemPOs := po.FromOrderDomain(o)

	// The delivery row first: the order row needs its id.
	if err := tx.Save(deliveryPO).Error; err != nil {
		return 0, err
	}
	orderPO.DeliveryID = deliveryPO.ID

	if err := tx.Save(orderPO).Error; err != nil {
		return 0, err
	}

	// Replace line items wholesale; the aggregate is small and this
	// avoids diffing.
	if err := tx.Where("order_id = ?", orderPO.ID).Delete(&po.OrderItemPO{}).Error; err != nil {
		return 0, err
	}
	if len(itemPOs) > 0 {
		for i := range itemPOs {
			itemPOs[i].OrderID = orderPO.ID
		}
		if err := tx.Create(&itemPOs).Error; err != nil {
			return 0, err
		}
	}

	return orderPO.ID, nil
}

// FindByID loads the full aggregate: order row, delivery row, line
// items. Association resolution is explicit and eager; nothing lazy
// leaks past this call.
func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*order.Order, error) {
	db := r.getDB(ctx)

	var orderPO po.OrderPO
	if err := db.First(&orderPO, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, err
	}

	var deliveryPO po.DeliveryPO
	if err := db.First(&deliveryPO, "id = ?", orderPO.DeliveryID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	var itemPOs []po.OrderItemPO
	if err := db.Where("order_id = ?", id).Order("id").Find(&itemPOs).Error; err != nil {
		return nil, err
	}

	return orderPO.ToDomain(&deliveryPO, itemPOs), nil
}

var _ order.Repository = (*OrderRepository)(nil)
