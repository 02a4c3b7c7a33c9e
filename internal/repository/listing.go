package repository

import (
	"sort"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// Listing is a marketplace catalog entry.
type Listing struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	Vendor     string `json:"vendor"`
	PriceCents int64  `json:"priceCents"`
}

// Listings is the in-memory marketplace catalog.
type Listings struct {
	items *gocache.Cache
}

// NewListings creates an empty catalog.
func NewListings() *Listings {
	return &Listings{items: newCollection()}
}

// Create adds a listing and returns it with a generated ID.
func (l *Listings) Create(title, category, vendor string, priceCents int64) Listing {
	listing := Listing{
		ID:         uuid.NewString(),
		Title:      title,
		Category:   category,
		Vendor:     vendor,
		PriceCents: priceCents,
	}
	l.put(listing)
	return listing
}

// Get returns a listing by ID.
func (l *Listings) Get(id string) (Listing, bool) {
	v, ok := l.items.Get(id)
	if !ok {
		return Listing{}, false
	}
	return v.(Listing), true
}

// List returns the catalog ordered by title.
func (l *Listings) List() []Listing {
	items := l.items.Items()
	out := make([]Listing, 0, len(items))
	for _, item := range items {
		out = append(out, item.Object.(Listing))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

func (l *Listings) put(listing Listing) {
	l.items.SetDefault(listing.ID, listing)
}
