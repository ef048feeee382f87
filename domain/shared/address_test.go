package shared

import "testing"

func TestAddressEquals(t *testing.T) {
	a := NewAddress("Seoul", "Teheran-ro", "06234")
	b := NewAddress("Seoul", "Teheran-ro", "06234")
	c := NewAddress("Busan", "Haeundae", "48094")

	if !a.Equals(b) {
		t.Error("identical addresses not equal")
	}
	if a.Equals(c) {
		t.Error("different addresses equal")
	}
}

func TestAddressIsZero(t *testing.T) {
	if !(Address{}).IsZero() {
		t.Error("zero address IsZero() = false")
	}
	if NewAddress("Seoul", "", "").IsZero() {
		t.Error("partial address IsZero() = true")
	}
}
