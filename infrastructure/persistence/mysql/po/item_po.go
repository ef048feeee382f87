package po

import (
	"database/sql"
	"time"

	"shopapi/domain/item"
)

// ItemPO item row. The closed variant set (book, album, movie) maps to
// a single table with a kind discriminator and nullable variant
// columns.
type ItemPO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	Kind          string    `gorm:"size:16;not null;index"`
	Name          string    `gorm:"size:255;not null"`
	Price         int64     `gorm:"not null"`
	StockQuantity int64     `gorm:"not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`

	// Variant columns; only the pair matching Kind is set.
	Author   sql.NullString `gorm:"size:255"`
	ISBN     sql.NullString `gorm:"size:64"`
	Artist   sql.NullString `gorm:"size:255"`
	Etc      sql.NullString `gorm:"size:255"`
	Director sql.NullString `gorm:"size:255"`
	Actor    sql.NullString `gorm:"size:255"`
}

func (ItemPO) TableName() string { return "items" }

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// FromItemDomain converts the aggregate into a row.
func FromItemDomain(it *item.Item) *ItemPO {
	po := &ItemPO{
		ID:            it.ID(),
		Kind:          string(it.Kind()),
		Name:          it.Name(),
		Price:         it.Price(),
		StockQuantity: it.StockQuantity(),
		CreatedAt:     it.CreatedAt(),
		UpdatedAt:     it.UpdatedAt(),
	}
	if b := it.Book(); b != nil {
		po.Author = nullable(b.Author)
		po.ISBN = nullable(b.ISBN)
	}
	if a := it.Album(); a != nil {
		po.Artist = nullable(a.Artist)
		po.Etc = nullable(a.Etc)
	}
	if m := it.Movie(); m != nil {
		po.Director = nullable(m.Director)
		po.Actor = nullable(m.Actor)
	}
	return po
}

// ToDomain converts the row back into the aggregate.
func (po *ItemPO) ToDomain() *item.Item {
	dto := item.ReconstructionDTO{
		ID:            po.ID,
		Kind:          item.Kind(po.Kind),
		Name:          po.Name,
		Price:         po.Price,
		StockQuantity: po.StockQuantity,
		CreatedAt:     po.CreatedAt,
		UpdatedAt:     po.UpdatedAt,
	}
	switch dto.Kind {
	case item.KindBook:
		dto.Book = &item.BookDetail{Author: po.Author.String, ISBN: po.ISBN.String}
	case item.KindAlbum:
		dto.Album = &item.AlbumDetail{Artist: po.Artist.String, Etc: po.Etc.String}
	case item.KindMovie:
		dto.Movie = &item.MovieDetail{Director: po.Director.String, Actor: po.Actor.String}
	}
	return item.Rebuild(dto)
}
