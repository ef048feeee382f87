package mysql

import (
	"database/sql"
	"time"

	"shopapi/domain/order"
	"shopapi/domain/shared"
)

// Scan targets and in-memory regrouping for the listing strategies.
// The grouping rule is shared: group by order id, orders in first-seen
// row order, line items in the order the query returned them.

// headerRow is one projected order header: the to-one associations
// (member, delivery) flattened next to the order columns. Safe under
// offset/limit because no one-to-many join multiplies rows.
type headerRow struct {
	OrderID    int64
	MemberName string
	OrderedAt  time.Time
	Status     string
	City       string
	Street     string
	Zipcode    string
}

func (h headerRow) toView() order.OrderView {
	return order.OrderView{
		OrderID:    h.OrderID,
		MemberName: h.MemberName,
		OrderDate:  h.OrderedAt,
		Status:     order.Status(h.Status),
		Address:    shared.NewAddress(h.City, h.Street, h.Zipcode),
		LineItems:  []order.LineView{},
	}
}

// lineRow is one projected line item tagged with its owning order id.
type lineRow struct {
	OrderID    int64
	ItemName   string
	OrderPrice int64
	Count      int64
}

func (l lineRow) toView() order.LineView {
	return order.LineView{
		ItemName:   l.ItemName,
		OrderPrice: l.OrderPrice,
		Count:      l.Count,
	}
}

// flatRow is one row of the all-tables join: a full header plus at
// most one line item. Orders without line items surface once with the
// line columns NULL (LEFT JOIN).
type flatRow struct {
	OrderID    int64
	MemberName string
	OrderedAt  time.Time
	Status     string
	City       string
	Street     string
	Zipcode    string
	ItemName   sql.NullString
	OrderPrice sql.NullInt64
	Count      sql.NullInt64
}

// groupLines buckets line rows by order id, keeping each bucket in row
// order. Insertion order is the contract; lines are never re-sorted.
func groupLines(rows []lineRow) map[int64][]order.LineView {
	grouped := make(map[int64][]order.LineView)
	for _, row := range rows {
		grouped[row.OrderID] = append(grouped[row.OrderID], row.toView())
	}
	return grouped
}

// attachLines pairs each header with its line bucket, leaving an empty
// slice where an order has no lines.
func attachLines(headers []headerRow, lines map[int64][]order.LineView) []order.OrderView {
	views := make([]order.OrderView, len(headers))
	for i, h := range headers {
		view := h.toView()
		if bucket, ok := lines[h.OrderID]; ok {
			view.LineItems = bucket
		}
		views[i] = view
	}
	return views
}

// groupFlatRows collapses the row multiplication of the one-to-many
// join: the first row seen for an order id contributes the header,
// every row with line columns contributes one line item. This is why
// a row-level offset/limit cannot be honored here; it would cut an
// order's lines across pages instead of windowing orders.
func groupFlatRows(rows []flatRow) []order.OrderView {
	var views []order.OrderView
	index := make(map[int64]int)

	for _, row := range rows {
		pos, seen := index[row.OrderID]
		if !seen {
			pos = len(views)
			index[row.OrderID] = pos
			views = append(views, order.OrderView{
				OrderID:    row.OrderID,
				MemberName: row.MemberName,
				OrderDate:  row.OrderedAt,
				Status:     order.Status(row.Status),
				Address:    shared.NewAddress(row.City, row.Street, row.Zipcode),
				LineItems:  []order.LineView{},
			})
		}
		if row.OrderPrice.Valid {
			views[pos].LineItems = append(views[pos].LineItems, order.LineView{
				ItemName:   row.ItemName.String,
				OrderPrice: row.OrderPrice.Int64,
				Count:      row.Count.Int64,
			})
		}
	}
	return views
}

// chunkIDs splits ids into batches of at most size, preserving order.
func chunkIDs(ids []int64, size int) [][]int64 {
	if size <= 0 {
		size = len(ids)
	}
	var chunks [][]int64
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
