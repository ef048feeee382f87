package member

import (
	"testing"

	"shopapi/domain/shared"
)

func TestNew(t *testing.T) {
	m, err := New("kim", shared.NewAddress("Seoul", "1", "1111"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if m.Name() != "kim" {
		t.Errorf("name = %s, want kim", m.Name())
	}
	if m.ID() != 0 {
		t.Errorf("unsaved member id = %d, want 0", m.ID())
	}
}

func TestNewBlankName(t *testing.T) {
	if _, err := New("   ", shared.Address{}); err != ErrInvalidName {
		t.Errorf("New(blank) error = %v, want ErrInvalidName", err)
	}
}

func TestRename(t *testing.T) {
	m, _ := New("kim", shared.Address{})
	if err := m.Rename("lee"); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	if m.Name() != "lee" {
		t.Errorf("name = %s, want lee", m.Name())
	}
	if err := m.Rename(" "); err != ErrInvalidName {
		t.Errorf("Rename(blank) error = %v, want ErrInvalidName", err)
	}
}

func TestRelocate(t *testing.T) {
	m, _ := New("kim", shared.NewAddress("Seoul", "1", "1111"))
	next := shared.NewAddress("Busan", "2", "2222")
	m.Relocate(next)
	if !m.Address().Equals(next) {
		t.Errorf("address = %+v, want %+v", m.Address(), next)
	}
}
