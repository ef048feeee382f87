package item

import "testing"

func TestNewBook(t *testing.T) {
	it, err := NewBook("JPA Book", 10000, 10, BookDetail{Author: "kim", ISBN: "10779"})
	if err != nil {
		t.Fatalf("NewBook() error = %v", err)
	}
	if it.Kind() != KindBook {
		t.Errorf("kind = %s, want %s", it.Kind(), KindBook)
	}
	if it.Book() == nil || it.Book().Author != "kim" {
		t.Errorf("book detail = %+v, want author kim", it.Book())
	}
	if it.Album() != nil || it.Movie() != nil {
		t.Error("book has non-book variant payload set")
	}
}

func TestNewItemValidation(t *testing.T) {
	if _, err := NewBook("  ", 100, 1, BookDetail{}); err != ErrInvalidName {
		t.Errorf("blank name error = %v, want ErrInvalidName", err)
	}
	if _, err := NewAlbum("a", -1, 1, AlbumDetail{}); err != ErrNegativePrice {
		t.Errorf("negative price error = %v, want ErrNegativePrice", err)
	}
	if _, err := NewMovie("m", 1, -1, MovieDetail{}); err != ErrNegativeStock {
		t.Errorf("negative stock error = %v, want ErrNegativeStock", err)
	}
}

func TestParseKind(t *testing.T) {
	for token, want := range map[string]Kind{"book": KindBook, "ALBUM": KindAlbum, " Movie ": KindMovie} {
		got, err := ParseKind(token)
		if err != nil || got != want {
			t.Errorf("ParseKind(%q) = %v, %v, want %v", token, got, err, want)
		}
	}
	if _, err := ParseKind("game"); err != ErrUnknownKind {
		t.Errorf("ParseKind(game) error = %v, want ErrUnknownKind", err)
	}
}

func TestRemoveStock(t *testing.T) {
	it, _ := NewBook("b", 10000, 10, BookDetail{})

	if err := it.RemoveStock(3); err != nil {
		t.Fatalf("RemoveStock(3) error = %v", err)
	}
	if it.StockQuantity() != 7 {
		t.Errorf("stock = %d, want 7", it.StockQuantity())
	}
}

func TestRemoveStockInsufficient(t *testing.T) {
	it, _ := NewBook("b", 10000, 10, BookDetail{})

	if err := it.RemoveStock(11); err != ErrInsufficientStock {
		t.Fatalf("RemoveStock(11) error = %v, want ErrInsufficientStock", err)
	}
	// A failed removal must not touch the stock.
	if it.StockQuantity() != 10 {
		t.Errorf("stock = %d, want 10", it.StockQuantity())
	}
}

func TestAddStock(t *testing.T) {
	it, _ := NewBook("b", 10000, 10, BookDetail{})

	if err := it.AddStock(5); err != nil {
		t.Fatalf("AddStock(5) error = %v", err)
	}
	if it.StockQuantity() != 15 {
		t.Errorf("stock = %d, want 15", it.StockQuantity())
	}
	if err := it.AddStock(-1); err != ErrInvalidCount {
		t.Errorf("AddStock(-1) error = %v, want ErrInvalidCount", err)
	}
}

func TestUpdate(t *testing.T) {
	it, _ := NewBook("b", 10000, 10, BookDetail{})

	if err := it.Update("new name", 20000, 5); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if it.Name() != "new name" || it.Price() != 20000 || it.StockQuantity() != 5 {
		t.Errorf("after update: %s/%d/%d", it.Name(), it.Price(), it.StockQuantity())
	}
	if err := it.Update("", 1, 1); err != ErrInvalidName {
		t.Errorf("Update(blank name) error = %v, want ErrInvalidName", err)
	}
}
