package mysql

import (
	"context"
	"errors"

	"shopapi/domain/item"
	"shopapi/infrastructure/persistence"
	"shopapi/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
)

// ItemRepository MySQL implementation of item.Repository.
type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Save inserts or updates the item and returns its id.
func (r *ItemRepository) Save(ctx context.Context, it *item.Item) (int64, error) {
	itemPO := po.FromItemDomain(it)
	if err := r.getDB(ctx).Save(itemPO).Error; err != nil {
		return 0, err
	}
	return itemPO.ID, nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id int64) (*item.Item, error) {
	var itemPO po.ItemPO
	if err := r.getDB(ctx).First(&itemPO, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, item.ErrItemNotFound
		}
		return nil, err
	}
	return itemPO.ToDomain(), nil
}

func (r *ItemRepository) FindAll(ctx context.Context) ([]*item.Item, error) {
	var itemPOs []po.ItemPO
	if err := r.getDB(ctx).Order("id").Find(&itemPOs).Error; err != nil {
		return nil, err
	}
	items := make([]*item.Item, len(itemPOs))
	for i := range itemPOs {
		items[i] = itemPOs[i].ToDomain()
	}
	return items, nil
}

// AdjustStock applies a relative stock change with the non-negative
// guard pushed into the UPDATE itself, so two concurrent placements
// against the same item cannot both succeed past the available stock.
func (r *ItemRepository) AdjustStock(ctx context.Context, id int64, delta int64) error {
	db := r.getDB(ctx)

	if delta == 0 {
		// A += 0 update reports zero affected rows even when the item
		// exists, so check existence instead of issuing the UPDATE.
		var count int64
		if err := db.Model(&po.ItemPO{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return item.ErrItemNotFound
		}
		return nil
	}

	if delta > 0 {
		result := db.Model(&po.ItemPO{}).
			Where("id = ?", id).
			Update("stock_quantity", gorm.Expr("stock_quantity + ?", delta))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return item.ErrItemNotFound
		}
		return nil
	}

	need := -delta
	result := db.Model(&po.ItemPO{}).
		Where("id = ? AND stock_quantity >= ?", id, need).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", need))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing item from a stock shortfall.
		var count int64
		if err := db.Model(&po.ItemPO{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return item.ErrItemNotFound
		}
		return item.ErrInsufficientStock
	}
	return nil
}

var _ item.Repository = (*ItemRepository)(nil)
