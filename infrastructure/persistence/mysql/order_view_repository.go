package mysql

import (
	"context"

	"shopapi/config"
	"shopapi/domain/order"
	"shopapi/infrastructure/persistence"
	"shopapi/infrastructure/persistence/mysql/po"
	"shopapi/infrastructure/persistence/specification"

	"gorm.io/gorm"
)

// OrderViewRepository materializes order listings. Each strategy
// trades query count against transferred data volume differently; all
// of them converge on the same OrderView shape under the shared
// grouping rule.
type OrderViewRepository struct {
	db            *gorm.DB
	entityRowCap  int
	itemBatchSize int
}

// NewOrderViewRepository creates the view repository with the listing
// tunables from configuration.
func NewOrderViewRepository(db *gorm.DB, cfg config.ListingConfig) *OrderViewRepository {
	rowCap := cfg.EntityRowCap
	if rowCap <= 0 {
		rowCap = 1000
	}
	batch := cfg.ItemBatchSize
	if batch <= 0 {
		batch = 100
	}
	return &OrderViewRepository{db: db, entityRowCap: rowCap, itemBatchSize: batch}
}

func (r *OrderViewRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// List validates the query, then dispatches to the selected strategy.
// Validation happens before any SQL is built: an unknown status or
// strategy token, or paging on a non-pageable strategy, never reaches
// the database.
func (r *OrderViewRepository) List(ctx context.Context, q order.ListQuery) ([]order.OrderView, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	switch q.Strategy {
	case order.StrategyEntity:
		return r.listEntity(ctx, q)
	case order.StrategyFetchJoin:
		return r.listFetchJoin(ctx, q)
	case order.StrategyPagedBatch:
		return r.listPagedBatch(ctx, q)
	case order.StrategyDTO:
		return r.listDTO(ctx, q)
	case order.StrategyDTOBatch:
		return r.listDTOBatch(ctx, q)
	case order.StrategyFlat:
		return r.listFlat(ctx, q)
	}
	return nil, order.ErrUnknownStrategy
}

var filterTranslator = specification.NewGormTranslator()

// applyFilter narrows a query that has orders joined with members,
// translating the filter's specification into WHERE conditions.
func applyFilter(tx *gorm.DB, f order.Filter) *gorm.DB {
	if scope := filterTranslator.Translate(f.Specification()); scope != nil {
		tx = scope(tx)
	}
	return tx
}

const headerColumns = "orders.id AS order_id, members.name AS member_name, " +
	"orders.ordered_at, orders.status, deliveries.city, deliveries.street, deliveries.zipcode"

const lineColumns = "order_items.order_id, items.name AS item_name, " +
	"order_items.order_price, order_items.count"

// headerQuery is the to-one projection shared by the pageable
// strategies: orders joined with members and deliveries only, so no
// row multiplication and offset/limit window orders exactly.
func (r *OrderViewRepository) headerQuery(ctx context.Context, f order.Filter, page *order.Page) ([]headerRow, error) {
	tx := r.getDB(ctx).
		Table("orders").
		Select(headerColumns).
		Joins("JOIN members ON members.id = orders.member_id").
		Joins("JOIN deliveries ON deliveries.id = orders.delivery_id")
	tx = applyFilter(tx, f).Order("orders.id")
	if page != nil {
		tx = tx.Offset(page.Offset).Limit(page.Limit)
	}

	var headers []headerRow
	if err := tx.Scan(&headers).Error; err != nil {
		return nil, err
	}
	return headers, nil
}

// linesForOrders projects line items for a set of order ids in one IN
// query. Result rows come back ordered by order id then line id, so
// insertion order within a bucket matches placement order.
func (r *OrderViewRepository) linesForOrders(ctx context.Context, ids []int64) ([]lineRow, error) {
	var lines []lineRow
	err := r.getDB(ctx).
		Table("order_items").
		Select(lineColumns).
		Joins("JOIN items ON items.id = order_items.item_id").
		Where("order_items.order_id IN ?", ids).
		Order("order_items.order_id, order_items.id").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// listEntity (strategy 1) loads matching order rows, then resolves
// member, delivery and every line item's item with separate queries.
// Query count is O(rows x associations); the row cap bounds the worst
// case. Pageable.
func (r *OrderViewRepository) listEntity(ctx context.Context, q order.ListQuery) ([]order.OrderView, error) {
	db := r.getDB(ctx)

	limit := r.entityRowCap
	offset := 0
	if q.Page != nil {
		offset = q.Page.Offset
		if q.Page.Limit < limit {
			limit = q.Page.Limit
		}
	}

	var orderPOs []po.OrderPO
	tx := db.Model(&po.OrderPO{}).
		Select("orders.*").
		Joins("JOIN members ON members.id = orders.member_id")
	tx = applyFilter(tx, q.Filter).Order("orders.id").Offset(offset).Limit(limit)
	if err := tx.Find(&orderPOs).Error; err != nil {
		return nil, err
	}

	views := make([]order.OrderView, 0, len(orderPOs))
	for _, orderPO := range orderPOs {
		var memberPO po.MemberPO
		if err := db.First(&memberPO, "id = ?", orderPO.MemberID).Error; err != nil {
			return nil, err
		}

		var deliveryPO po.DeliveryPO
		if err := db.First(&deliveryPO, "id = ?", orderPO.DeliveryID).Error; err != nil {
			return nil, err
		}

		var itemPOs []po.OrderItemPO
		if err := db.Where("order_id = ?", orderPO.ID).Order("id").Find(&itemPOs).Error; err != nil {
			return nil, err
		}

		lines := make([]order.LineView, 0, len(itemPOs))
		for _, itemPO := range itemPOs {
			var name string
			err := db.Model(&po.ItemPO{}).
				Select("name").
				Where("id = ?", itemPO.ItemID).
				Scan(&name).Error
			if err != nil {
				return nil, err
			}
			lines = append(lines, order.LineView{
				ItemName:   name,
				OrderPrice: itemPO.OrderPrice,
				Count:      itemPO.Count,
			})
		}

		views = append(views, order.OrderView{
			OrderID:    orderPO.ID,
			MemberName: memberPO.Name,
			OrderDate:  orderPO.OrderedAt,
			Status:     order.Status(orderPO.Status),
			Address:    (&deliveryPO).Address(),
			LineItems:  lines,
		})
	}
	return views, nil
}

// listFetchJoin (strategy 2) issues one query joining all five tables
// and collapses the duplicated order rows by identity. Validate has
// already rejected paging: after collapsing, a row-level limit would
// have truncated line items rather than orders.
func (r *OrderViewRepository) listFetchJoin(ctx context.Context, q order.ListQuery) ([]order.OrderView, error) {
	var rows []flatRow
	tx := r.getDB(ctx).
		Table("orders").
		Select("DISTINCT " + headerColumns + ", items.name AS item_name, order_items.order_price, order_items.count, order_items.id AS line_id").
		Joins("JOIN members ON members.id = orders.member_id").
		Joins("JOIN deliveries ON deliveries.id = orders.delivery_id").
		Joins("LEFT JOIN order_items ON order_items.order_id = orders.id").
		Joins("LEFT JOIN items ON items.id = order_items.item_id")
	tx = applyFilter(tx, q.Filter).Order("orders.id, order_items.id")
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return groupFlatRows(rows), nil
}

// listPagedBatch (strategy 3) joins the to-one associations for a page
// of orders, then resolves the page's line items in IN queries of at
// most itemBatchSize ids each, regrouped in memory. Query count is
// 1 + ceil(pageSize / batchSize).
func (r *OrderViewRepository) listPagedBatch(ctx context.Context, q order.ListQuery) ([]order.OrderView, error) {
	headers, err := r.headerQuery(ctx, q.Filter, q.Page)
	if err != nil {
		return nil, err
	}
	if len(headers) == 0 {
		return []order.OrderView{}, nil
	}

	ids := make([]int64, len(headers))
	for i, h := range headers {
		ids[i] = h.OrderID
	}

	grouped := make(map[int64][]order.LineView)
	for _, chunk := range chunkIDs(ids, r.itemBatchSize) {
		lines, err := r.linesForOrders(ctx, chunk)
		if err != nil {
			return nil, err
		}
		for id, bucket := range groupLines(lines) {
			grouped[id] = bucket
		}
	}

	return attachLines(headers, grouped), nil
}

// listDTO (strategy 4) projects order headers directly, then issues
// one line-item projection query per returned order. 1 + N queries,
// pageable.
func (r *OrderViewRepository) listDTO(ctx context.Context, q order.ListQuery) ([]order.OrderView, error) {
	headers, err := r.headerQuery(ctx, q.Filter, q.Page)
	if err != nil {
		return nil, err
	}

	views := make([]order.OrderView, len(headers))
	for i, h := range headers {
		var lines []lineRow
		err := r.getDB(ctx).
			Table("order_items").
			Select(lineColumns).
			Joins("JOIN items ON items.id = order_items.item_id").
			Where("order_items.order_id = ?", h.OrderID).
			Order("order_items.id").
			Scan(&lines).Error
		if err != nil {
			return nil, err
		}

		view := h.toView()
		for _, line := range lines {
			view.LineItems = append(view.LineItems, line.toView())
		}
		views[i] = view
	}
	return views, nil
}

// listDTOBatch (strategy 5) projects order headers, then fetches every
// line item of the page in a single IN query. Exactly 2 queries
// regardless of page size, pageable.
func (r *OrderViewRepository) listDTOBatch(ctx context.Context, q order.ListQuery) ([]order.OrderView, error) {
	headers, err := r.headerQuery(ctx, q.Filter, q.Page)
	if err != nil {
		return nil, err
	}
	if len(headers) == 0 {
		return []order.OrderView{}, nil
	}

	ids := make([]int64, len(headers))
	for i, h := range headers {
		ids[i] = h.OrderID
	}

	lines, err := r.linesForOrders(ctx, ids)
	if err != nil {
		return nil, err
	}

	return attachLines(headers, groupLines(lines)), nil
}

// listFlat (strategy 6) projects every needed column in one query, one
// row per line item with the header duplicated across them, and
// regroups in memory. Exactly 1 query; transferred volume grows with
// line-item count; paging rejected by Validate.
func (r *OrderViewRepository) listFlat(ctx context.Context, q order.ListQuery) ([]order.OrderView, error) {
	var rows []flatRow
	tx := r.getDB(ctx).
		Table("orders").
		Select(headerColumns + ", items.name AS item_name, order_items.order_price, order_items.count").
		Joins("JOIN members ON members.id = orders.member_id").
		Joins("JOIN deliveries ON deliveries.id = orders.delivery_id").
		Joins("LEFT JOIN order_items ON order_items.order_id = orders.id").
		Joins("LEFT JOIN items ON items.id = order_items.item_id")
	tx = applyFilter(tx, q.Filter).Order("orders.id, order_items.id")
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return groupFlatRows(rows), nil
}

var _ order.ViewRepository = (*OrderViewRepository)(nil)
