package order

import (
	"testing"

	"shopapi/domain/shared"
)

func testAddress() shared.Address {
	return shared.NewAddress("Seoul", "Teheran-ro", "06234")
}

func TestPlace(t *testing.T) {
	o, err := Place(1, testAddress(), []LineRequest{
		{ItemID: 10, OrderPrice: 10000, Count: 2},
		{ItemID: 11, OrderPrice: 20000, Count: 3},
	})
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	if o.Status() != StatusOrder {
		t.Errorf("status = %s, want %s", o.Status(), StatusOrder)
	}
	if o.Delivery().Status() != DeliveryReady {
		t.Errorf("delivery status = %s, want %s", o.Delivery().Status(), DeliveryReady)
	}
	if len(o.Items()) != 2 {
		t.Fatalf("items = %d, want 2", len(o.Items()))
	}
	if got := o.TotalPrice(); got != 2*10000+3*20000 {
		t.Errorf("TotalPrice() = %d, want %d", got, 2*10000+3*20000)
	}
}

func TestPlaceInvalidMember(t *testing.T) {
	if _, err := Place(0, testAddress(), nil); err != ErrInvalidMember {
		t.Errorf("Place(memberID=0) error = %v, want ErrInvalidMember", err)
	}
}

func TestPlaceNegativeCount(t *testing.T) {
	_, err := Place(1, testAddress(), []LineRequest{
		{ItemID: 10, OrderPrice: 10000, Count: -1},
	})
	if err != ErrNegativeCount {
		t.Errorf("Place(count=-1) error = %v, want ErrNegativeCount", err)
	}
}

func TestPlaceZeroQuantity(t *testing.T) {
	// A count of zero is not an error: the line is dropped and the
	// order is valid with no line items.
	o, err := Place(1, testAddress(), []LineRequest{
		{ItemID: 10, OrderPrice: 10000, Count: 0},
	})
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if len(o.Items()) != 0 {
		t.Errorf("items = %d, want 0", len(o.Items()))
	}
	if o.TotalPrice() != 0 {
		t.Errorf("TotalPrice() = %d, want 0", o.TotalPrice())
	}
}

func TestCancel(t *testing.T) {
	o, err := Place(1, testAddress(), []LineRequest{
		{ItemID: 10, OrderPrice: 10000, Count: 2},
	})
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	if !o.Cancel() {
		t.Fatal("Cancel() = false on first cancellation, want true")
	}
	if o.Status() != StatusCancel {
		t.Errorf("status = %s, want %s", o.Status(), StatusCancel)
	}
}

func TestCancelTwice(t *testing.T) {
	o, err := Place(1, testAddress(), []LineRequest{
		{ItemID: 10, OrderPrice: 10000, Count: 2},
	})
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	o.Cancel()
	if o.Cancel() {
		t.Error("Cancel() = true on second cancellation, want false")
	}
	if o.Status() != StatusCancel {
		t.Errorf("status = %s, want %s", o.Status(), StatusCancel)
	}
}

func TestOrderItemTotalPrice(t *testing.T) {
	oi := OrderItem{orderPrice: 10000, count: 3}
	if got := oi.TotalPrice(); got != 30000 {
		t.Errorf("TotalPrice() = %d, want 30000", got)
	}
}

func TestRebuild(t *testing.T) {
	o := Rebuild(ReconstructionDTO{
		ID:         5,
		MemberID:   1,
		DeliveryID: 7,
		Address:    testAddress(),
		DeliverySt: DeliveryReady,
		Items: []ItemReconstructionDTO{
			{ID: 1, ItemID: 10, OrderPrice: 10000, Count: 2},
		},
		Status: StatusOrder,
	})

	if o.ID() != 5 {
		t.Errorf("ID() = %d, want 5", o.ID())
	}
	if o.Delivery().ID() != 7 {
		t.Errorf("delivery ID() = %d, want 7", o.Delivery().ID())
	}
	if o.TotalPrice() != 20000 {
		t.Errorf("TotalPrice() = %d, want 20000", o.TotalPrice())
	}
}
