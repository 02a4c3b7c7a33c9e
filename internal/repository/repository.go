// Package repository holds the process-wide in-memory collections backing
// the demo deployment. Nothing here persists across restarts; the
// collections exist so the gated API routes have something real to serve.
package repository

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Demo bundles all seeded collections for wiring.
type Demo struct {
	Projects    *Projects
	Listings    *Listings
	Memberships *Memberships
	Budgets     *Budgets
}

// SeedDemo creates every collection pre-populated with demo data.
func SeedDemo() *Demo {
	d := &Demo{
		Projects:    NewProjects(),
		Listings:    NewListings(),
		Memberships: NewMemberships(),
		Budgets:     NewBudgets(),
	}
	seed(d)
	return d
}

func newCollection() *gocache.Cache {
	// Demo data never expires; go-cache is used for its concurrent map,
	// not its TTLs.
	return gocache.New(gocache.NoExpiration, time.Hour)
}
