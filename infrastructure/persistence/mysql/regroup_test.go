package mysql

import (
	"database/sql"
	"reflect"
	"testing"
	"time"
)

func TestGroupLinesPreservesRowOrder(t *testing.T) {
	rows := []lineRow{
		{OrderID: 1, ItemName: "book", OrderPrice: 10000, Count: 1},
		{OrderID: 2, ItemName: "album", OrderPrice: 20000, Count: 2},
		{OrderID: 1, ItemName: "movie", OrderPrice: 30000, Count: 3},
	}

	grouped := groupLines(rows)

	if len(grouped) != 2 {
		t.Fatalf("groups = %d, want 2", len(grouped))
	}
	if len(grouped[1]) != 2 || grouped[1][0].ItemName != "book" || grouped[1][1].ItemName != "movie" {
		t.Errorf("order 1 lines = %+v, want book then movie", grouped[1])
	}
	if len(grouped[2]) != 1 || grouped[2][0].ItemName != "album" {
		t.Errorf("order 2 lines = %+v, want album", grouped[2])
	}
}

func TestAttachLines(t *testing.T) {
	now := time.Now()
	headers := []headerRow{
		{OrderID: 1, MemberName: "kim", OrderedAt: now, Status: "ORDER", City: "Seoul"},
		{OrderID: 2, MemberName: "lee", OrderedAt: now, Status: "CANCEL", City: "Busan"},
	}
	lines := groupLines([]lineRow{
		{OrderID: 1, ItemName: "book", OrderPrice: 10000, Count: 1},
	})

	views := attachLines(headers, lines)

	if len(views) != 2 {
		t.Fatalf("views = %d, want 2", len(views))
	}
	if views[0].MemberName != "kim" || len(views[0].LineItems) != 1 {
		t.Errorf("view 0 = %+v", views[0])
	}
	// An order without lines keeps an empty slice, never nil.
	if views[1].LineItems == nil || len(views[1].LineItems) != 0 {
		t.Errorf("view 1 lines = %#v, want empty slice", views[1].LineItems)
	}
}

func validStr(s string) sql.NullString { return sql.NullString{String: s, Valid: true} }
func validInt(n int64) sql.NullInt64   { return sql.NullInt64{Int64: n, Valid: true} }

func TestGroupFlatRows(t *testing.T) {
	now := time.Now()
	rows := []flatRow{
		{OrderID: 1, MemberName: "kim", OrderedAt: now, Status: "ORDER",
			ItemName: validStr("book"), OrderPrice: validInt(10000), Count: validInt(1)},
		{OrderID: 1, MemberName: "kim", OrderedAt: now, Status: "ORDER",
			ItemName: validStr("album"), OrderPrice: validInt(20000), Count: validInt(2)},
		{OrderID: 2, MemberName: "lee", OrderedAt: now, Status: "ORDER",
			ItemName: validStr("book"), OrderPrice: validInt(10000), Count: validInt(3)},
	}

	views := groupFlatRows(rows)

	if len(views) != 2 {
		t.Fatalf("views = %d, want 2 (duplicated headers collapsed)", len(views))
	}
	if views[0].OrderID != 1 || views[1].OrderID != 2 {
		t.Errorf("order of views = %d,%d, want first-seen order 1,2", views[0].OrderID, views[1].OrderID)
	}
	if len(views[0].LineItems) != 2 || views[0].LineItems[0].ItemName != "book" {
		t.Errorf("order 1 lines = %+v", views[0].LineItems)
	}
	if len(views[1].LineItems) != 1 {
		t.Errorf("order 2 lines = %+v", views[1].LineItems)
	}
}

func TestGroupFlatRowsEmptyOrder(t *testing.T) {
	// LEFT JOIN surfaces a line-less order once with NULL line columns.
	rows := []flatRow{
		{OrderID: 1, MemberName: "kim", Status: "ORDER"},
	}

	views := groupFlatRows(rows)

	if len(views) != 1 {
		t.Fatalf("views = %d, want 1", len(views))
	}
	if len(views[0].LineItems) != 0 || views[0].LineItems == nil {
		t.Errorf("lines = %#v, want empty slice", views[0].LineItems)
	}
}

func TestChunkIDs(t *testing.T) {
	ids := []int64{1, 2, 3, 4, 5}

	got := chunkIDs(ids, 2)
	want := [][]int64{{1, 2}, {3, 4}, {5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("chunkIDs(size=2) = %v, want %v", got, want)
	}

	// Non-positive size means a single chunk.
	got = chunkIDs(ids, 0)
	if len(got) != 1 || len(got[0]) != 5 {
		t.Errorf("chunkIDs(size=0) = %v, want one chunk of 5", got)
	}

	if chunks := chunkIDs(nil, 3); chunks != nil {
		t.Errorf("chunkIDs(nil) = %v, want nil", chunks)
	}
}
