/*
Package item Application layer - item catalog use cases.

Creation dispatches on the kind token to the matching variant
constructor; the aggregate rejects unknown kinds and invalid base
fields.
*/
package item

import (
	"context"

	"shopapi/domain/item"
)

// Service item application service.
type Service struct {
	itemRepo item.Repository
}

// NewService creates the item application service.
func NewService(itemRepo item.Repository) *Service {
	return &Service{itemRepo: itemRepo}
}

// CreateRequest create item request DTO. Kind selects the variant and
// which detail fields apply; the rest are ignored.
type CreateRequest struct {
	Kind          string `json:"kind" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Price         int64  `json:"price" binding:"min=0"`
	StockQuantity int64  `json:"stock_quantity" binding:"min=0"`

	Author string `json:"author,omitempty"`
	ISBN   string `json:"isbn,omitempty"`

	Artist string `json:"artist,omitempty"`
	Etc    string `json:"etc,omitempty"`

	Director string `json:"director,omitempty"`
	Actor    string `json:"actor,omitempty"`
}

// UpdateRequest update item request DTO. Base fields only; a variant
// never changes kind after creation.
type UpdateRequest struct {
	Name          string `json:"name" binding:"required"`
	Price         int64  `json:"price" binding:"min=0"`
	StockQuantity int64  `json:"stock_quantity" binding:"min=0"`
}

// Response item response DTO.
type Response struct {
	ID            int64  `json:"id"`
	Kind          string `json:"kind"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	StockQuantity int64  `json:"stock_quantity"`

	Author   string `json:"author,omitempty"`
	ISBN     string `json:"isbn,omitempty"`
	Artist   string `json:"artist,omitempty"`
	Etc      string `json:"etc,omitempty"`
	Director string `json:"director,omitempty"`
	Actor    string `json:"actor,omitempty"`
}

// Create adds an item to the catalog.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Response, error) {
	kind, err := item.ParseKind(req.Kind)
	if err != nil {
		return nil, err
	}

	var it *item.Item
	switch kind {
	case item.KindBook:
		it, err = item.NewBook(req.Name, req.Price, req.StockQuantity, item.BookDetail{
			Author: req.Author,
			ISBN:   req.ISBN,
		})
	case item.KindAlbum:
		it, err = item.NewAlbum(req.Name, req.Price, req.StockQuantity, item.AlbumDetail{
			Artist: req.Artist,
			Etc:    req.Etc,
		})
	case item.KindMovie:
		it, err = item.NewMovie(req.Name, req.Price, req.StockQuantity, item.MovieDetail{
			Director: req.Director,
			Actor:    req.Actor,
		})
	}
	if err != nil {
		return nil, err
	}

	id, err := s.itemRepo.Save(ctx, it)
	if err != nil {
		return nil, err
	}

	saved, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(saved), nil
}

// Get returns one item.
func (s *Service) Get(ctx context.Context, id int64) (*Response, error) {
	it, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(it), nil
}

// List returns the whole catalog.
func (s *Service) List(ctx context.Context) ([]*Response, error) {
	items, err := s.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*Response, len(items))
	for i, it := range items {
		responses[i] = toResponse(it)
	}
	return responses, nil
}

// Update changes an item's base fields in place.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*Response, error) {
	it, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := it.Update(req.Name, req.Price, req.StockQuantity); err != nil {
		return nil, err
	}
	if _, err := s.itemRepo.Save(ctx, it); err != nil {
		return nil, err
	}
	return toResponse(it), nil
}

func toResponse(it *item.Item) *Response {
	resp := &Response{
		ID:            it.ID(),
		Kind:          string(it.Kind()),
		Name:          it.Name(),
		Price:         it.Price(),
		StockQuantity: it.StockQuantity(),
	}
	if b := it.Book(); b != nil {
		resp.Author, resp.ISBN = b.Author, b.ISBN
	}
	if a := it.Album(); a != nil {
		resp.Artist, resp.Etc = a.Artist, a.Etc
	}
	if m := it.Movie(); m != nil {
		resp.Director, resp.Actor = m.Director, m.Actor
	}
	return resp
}
