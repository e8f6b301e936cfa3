package store

import "gorm.io/gorm"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page is a 1-based page request. Zero values fall back to the defaults and
// oversized requests are clamped.
type Page struct {
	Number int
	Size   int
}

func (p Page) normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

func (p Page) apply(db *gorm.DB) *gorm.DB {
	p = p.normalize()
	return db.Offset((p.Number - 1) * p.Size).Limit(p.Size)
}
