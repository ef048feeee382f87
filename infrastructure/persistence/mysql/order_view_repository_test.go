package mysql

import (
	"context"
	"errors"
	"os"
	"reflect"
	"testing"

	"shopapi/config"
	"shopapi/domain/item"
	"shopapi/domain/member"
	"shopapi/domain/order"
	"shopapi/domain/shared"

	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Integration tests against a real MySQL. Set SHOP_TEST_MYSQL_DSN to
// run, e.g.
//
//	SHOP_TEST_MYSQL_DSN="root:pass@tcp(localhost:3306)/shop_test?parseTime=true" go test ./...
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("SHOP_TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("SHOP_TEST_MYSQL_DSN not set; skipping MySQL integration test")
	}

	db, err := gorm.Open(gormmysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for _, table := range []string{"order_items", "orders", "deliveries", "items", "members"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("clean %s: %v", table, err)
		}
	}
	return db
}

type seeded struct {
	kimOrderID int64
	leeOrderID int64
}

// seedOrders creates two members and three items, then places two
// orders through the repositories: kim's with two lines, lee's with
// one line, lee's cancelled.
func seedOrders(t *testing.T, db *gorm.DB) seeded {
	t.Helper()
	ctx := context.Background()

	members := NewMemberRepository(db)
	items := NewItemRepository(db)
	orders := NewOrderRepository(db)

	kim, err := member.New("kim", shared.NewAddress("Seoul", "1", "1111"))
	if err != nil {
		t.Fatal(err)
	}
	kimID, err := members.Save(ctx, kim)
	if err != nil {
		t.Fatalf("save kim: %v", err)
	}

	lee, err := member.New("lee", shared.NewAddress("Busan", "2", "2222"))
	if err != nil {
		t.Fatal(err)
	}
	leeID, err := members.Save(ctx, lee)
	if err != nil {
		t.Fatalf("save lee: %v", err)
	}

	book, _ := item.NewBook("JPA Book", 10000, 100, item.BookDetail{Author: "kim"})
	bookID, err := items.Save(ctx, book)
	if err != nil {
		t.Fatalf("save book: %v", err)
	}
	album, _ := item.NewAlbum("Album A", 20000, 100, item.AlbumDetail{Artist: "iu"})
	albumID, err := items.Save(ctx, album)
	if err != nil {
		t.Fatalf("save album: %v", err)
	}

	kimOrder, err := order.Place(kimID, shared.NewAddress("Seoul", "1", "1111"), []order.LineRequest{
		{ItemID: bookID, OrderPrice: 10000, Count: 1},
		{ItemID: albumID, OrderPrice: 20000, Count: 2},
	})
	if err != nil {
		t.Fatal(err)
	}
	kimOrderID, err := orders.Save(ctx, kimOrder)
	if err != nil {
		t.Fatalf("save kim order: %v", err)
	}

	leeOrder, err := order.Place(leeID, shared.NewAddress("Busan", "2", "2222"), []order.LineRequest{
		{ItemID: bookID, OrderPrice: 10000, Count: 3},
	})
	if err != nil {
		t.Fatal(err)
	}
	leeOrder.Cancel()
	leeOrderID, err := orders.Save(ctx, leeOrder)
	if err != nil {
		t.Fatalf("save lee order: %v", err)
	}

	return seeded{kimOrderID: kimOrderID, leeOrderID: leeOrderID}
}

func newViewRepo(db *gorm.DB) *OrderViewRepository {
	// A tiny batch size forces the paged-batch strategy to chunk its
	// IN queries even on small fixtures.
	return NewOrderViewRepository(db, config.ListingConfig{EntityRowCap: 1000, ItemBatchSize: 2})
}

func TestListStrategiesConverge(t *testing.T) {
	db := setupTestDB(t)
	s := seedOrders(t, db)
	repo := newViewRepo(db)
	ctx := context.Background()

	strategies := []order.Strategy{
		order.StrategyEntity,
		order.StrategyFetchJoin,
		order.StrategyPagedBatch,
		order.StrategyDTO,
		order.StrategyDTOBatch,
		order.StrategyFlat,
	}

	var baseline []order.OrderView
	for i, strategy := range strategies {
		views, err := repo.List(ctx, order.ListQuery{Strategy: strategy})
		if err != nil {
			t.Fatalf("List(%s) error = %v", strategy, err)
		}
		if len(views) != 2 {
			t.Fatalf("List(%s) = %d views, want 2", strategy, len(views))
		}
		if views[0].OrderID != s.kimOrderID || views[1].OrderID != s.leeOrderID {
			t.Errorf("List(%s) ids = %d,%d, want %d,%d",
				strategy, views[0].OrderID, views[1].OrderID, s.kimOrderID, s.leeOrderID)
		}
		if i == 0 {
			baseline = views
			continue
		}
		if !reflect.DeepEqual(views, baseline) {
			t.Errorf("List(%s) diverges from %s:\n got %+v\nwant %+v",
				strategy, strategies[0], views, baseline)
		}
	}

	if len(baseline[0].LineItems) != 2 {
		t.Fatalf("kim's lines = %d, want 2", len(baseline[0].LineItems))
	}
	if baseline[0].LineItems[0].ItemName != "JPA Book" || baseline[0].LineItems[1].ItemName != "Album A" {
		t.Errorf("kim's lines out of row order: %+v", baseline[0].LineItems)
	}
	if baseline[1].Status != order.StatusCancel {
		t.Errorf("lee's status = %s, want CANCEL", baseline[1].Status)
	}
}

func TestListStatusFilter(t *testing.T) {
	db := setupTestDB(t)
	s := seedOrders(t, db)
	repo := newViewRepo(db)

	cancel := order.StatusCancel
	views, err := repo.List(context.Background(), order.ListQuery{
		Strategy: order.StrategyDTOBatch,
		Filter:   order.Filter{Status: &cancel},
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(views) != 1 || views[0].OrderID != s.leeOrderID {
		t.Errorf("List(status=CANCEL) = %+v, want only order %d", views, s.leeOrderID)
	}
}

func TestListMemberNameFilter(t *testing.T) {
	db := setupTestDB(t)
	s := seedOrders(t, db)
	repo := newViewRepo(db)

	views, err := repo.List(context.Background(), order.ListQuery{
		Strategy: order.StrategyFetchJoin,
		Filter:   order.Filter{MemberName: "ki"},
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(views) != 1 || views[0].OrderID != s.kimOrderID {
		t.Errorf("List(member_name=ki) = %+v, want only kim's order %d", views, s.kimOrderID)
	}
}

func TestListPaging(t *testing.T) {
	db := setupTestDB(t)
	s := seedOrders(t, db)
	repo := newViewRepo(db)
	ctx := context.Background()

	for _, strategy := range []order.Strategy{
		order.StrategyEntity,
		order.StrategyPagedBatch,
		order.StrategyDTO,
		order.StrategyDTOBatch,
	} {
		views, err := repo.List(ctx, order.ListQuery{
			Strategy: strategy,
			Page:     &order.Page{Offset: 1, Limit: 1},
		})
		if err != nil {
			t.Fatalf("List(%s paged) error = %v", strategy, err)
		}
		if len(views) != 1 || views[0].OrderID != s.leeOrderID {
			t.Errorf("List(%s offset=1 limit=1) = %+v, want order %d", strategy, views, s.leeOrderID)
		}
		// The page windows orders, not rows: the paged order keeps all
		// its line items.
		if len(views) == 1 && len(views[0].LineItems) != 1 {
			t.Errorf("List(%s) paged lines = %+v", strategy, views[0].LineItems)
		}
	}

	for _, strategy := range []order.Strategy{order.StrategyFetchJoin, order.StrategyFlat} {
		_, err := repo.List(ctx, order.ListQuery{
			Strategy: strategy,
			Page:     &order.Page{Offset: 0, Limit: 1},
		})
		if !errors.Is(err, order.ErrPagingUnsupported) {
			t.Errorf("List(%s paged) error = %v, want ErrPagingUnsupported", strategy, err)
		}
	}
}

func TestAdjustStockGuard(t *testing.T) {
	db := setupTestDB(t)
	items := NewItemRepository(db)
	ctx := context.Background()

	book, _ := item.NewBook("JPA Book", 10000, 10, item.BookDetail{})
	id, err := items.Save(ctx, book)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := items.AdjustStock(ctx, id, -4); err != nil {
		t.Fatalf("AdjustStock(-4) error = %v", err)
	}
	if err := items.AdjustStock(ctx, id, -7); !errors.Is(err, item.ErrInsufficientStock) {
		t.Errorf("AdjustStock(-7 of 6) error = %v, want ErrInsufficientStock", err)
	}
	if err := items.AdjustStock(ctx, 9999, -1); !errors.Is(err, item.ErrItemNotFound) {
		t.Errorf("AdjustStock(unknown item) error = %v, want ErrItemNotFound", err)
	}
	if err := items.AdjustStock(ctx, id, 0); err != nil {
		t.Errorf("AdjustStock(0) error = %v, want nil for an existing item", err)
	}
	if err := items.AdjustStock(ctx, 9999, 0); !errors.Is(err, item.ErrItemNotFound) {
		t.Errorf("AdjustStock(0, unknown item) error = %v, want ErrItemNotFound", err)
	}

	got, err := items.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.StockQuantity() != 6 {
		t.Errorf("stock = %d, want 6 (failed decrements must not apply)", got.StockQuantity())
	}
}
