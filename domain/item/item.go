/*
Package item - Item subdomain.

Items form a closed set of variants (book, album, movie) sharing base
fields. The variant is discriminated by an explicit Kind tag plus an
optional per-variant payload, not by open-ended subtyping.
*/
package item

import (
	"context"
	"strings"
	"time"
)

// Kind discriminates the item variants.
type Kind string

const (
	KindBook  Kind = "BOOK"
	KindAlbum Kind = "ALBUM"
	KindMovie Kind = "MOVIE"
)

// ParseKind validates a kind token.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToUpper(strings.TrimSpace(s))) {
	case KindBook:
		return KindBook, nil
	case KindAlbum:
		return KindAlbum, nil
	case KindMovie:
		return KindMovie, nil
	}
	return "", ErrUnknownKind
}

// BookDetail variant payload for books.
type BookDetail struct {
	Author string
	ISBN   string
}

// AlbumDetail variant payload for albums.
type AlbumDetail struct {
	Artist string
	Etc    string
}

// MovieDetail variant payload for movies.
type MovieDetail struct {
	Director string
	Actor    string
}

// Item aggregate root. Exactly one of the detail payloads is set,
// matching the Kind tag.
type Item struct {
	id            int64
	kind          Kind
	name          string
	price         int64
	stockQuantity int64

	book  *BookDetail
	album *AlbumDetail
	movie *MovieDetail

	createdAt time.Time
	updatedAt time.Time
}

// NewBook creates a book item.
func NewBook(name string, price, stock int64, detail BookDetail) (*Item, error) {
	it, err := newItem(KindBook, name, price, stock)
	if err != nil {
		return nil, err
	}
	it.book = &detail
	return it, nil
}

// NewAlbum creates an album item.
func NewAlbum(name string, price, stock int64, detail AlbumDetail) (*Item, error) {
	it, err := newItem(KindAlbum, name, price, stock)
	if err != nil {
		return nil, err
	}
	it.album = &detail
	return it, nil
}

// NewMovie creates a movie item.
func NewMovie(name string, price, stock int64, detail MovieDetail) (*Item, error) {
	it, err := newItem(KindMovie, name, price, stock)
	if err != nil {
		return nil, err
	}
	it.movie = &detail
	return it, nil
}

func newItem(kind Kind, name string, price, stock int64) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}
	now := time.Now()
	return &Item{
		kind:          kind,
		name:          name,
		price:         price,
		stockQuantity: stock,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// RemoveStock decrements the stock by count. Stock never goes negative:
// a shortfall rejects the whole operation.
func (i *Item) RemoveStock(count int64) error {
	if count < 0 {
		return ErrInvalidCount
	}
	if i.stockQuantity < count {
		return ErrInsufficientStock
	}
	i.stockQuantity -= count
	i.updatedAt = time.Now()
	return nil
}

// AddStock restores stock, e.g. when an order is cancelled.
func (i *Item) AddStock(count int64) error {
	if count < 0 {
		return ErrInvalidCount
	}
	i.stockQuantity += count
	i.updatedAt = time.Now()
	return nil
}

// Update changes the base fields in place.
func (i *Item) Update(name string, price, stock int64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}
	if price < 0 {
		return ErrNegativePrice
	}
	if stock < 0 {
		return ErrNegativeStock
	}
	i.name = name
	i.price = price
	i.stockQuantity = stock
	i.updatedAt = time.Now()
	return nil
}

func (i *Item) ID() int64            { return i.id }
func (i *Item) Kind() Kind           { return i.kind }
func (i *Item) Name() string         { return i.name }
func (i *Item) Price() int64         { return i.price }
func (i *Item) StockQuantity() int64 { return i.stockQuantity }
func (i *Item) Book() *BookDetail    { return i.book }
func (i *Item) Album() *AlbumDetail  { return i.album }
func (i *Item) Movie() *MovieDetail  { return i.movie }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }

// ReconstructionDTO carries persisted state back into the aggregate.
// Repository use only.
type ReconstructionDTO struct {
	ID            int64
	Kind          Kind
	Name          string
	Price         int64
	StockQuantity int64
	Book          *BookDetail
	Album         *AlbumDetail
	Movie         *MovieDetail
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Rebuild reconstructs an Item from persisted state.
func Rebuild(dto ReconstructionDTO) *Item {
	return &Item{
		id:            dto.ID,
		kind:          dto.Kind,
		name:          dto.Name,
		price:         dto.Price,
		stockQuantity: dto.StockQuantity,
		book:          dto.Book,
		album:         dto.Album,
		movie:         dto.Movie,
		createdAt:     dto.CreatedAt,
		updatedAt:     dto.UpdatedAt,
	}
}

// Repository persists items.
//
// AdjustStock applies a relative stock change atomically at the storage
// layer: a negative delta must only succeed when the resulting stock
// stays non-negative (ErrInsufficientStock otherwise). This is the
// guard that keeps two concurrent placements from driving stock below
// zero without any custom locking.
type Repository interface {
	Save(ctx context.Context, it *Item) (int64, error)
	FindByID(ctx context.Context, id int64) (*Item, error)
	FindAll(ctx context.Context) ([]*Item, error)
	AdjustStock(ctx context.Context, id int64, delta int64) error
}
