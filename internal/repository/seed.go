package repository

import "time"

// Fixed seed IDs so routes and tests can reference demo records directly.
const (
	SeedWorkspaceID     = "ws-collabverse"
	SeedProjectAtlasID  = "prj-atlas"
	SeedProjectBeaconID = "prj-beacon"
)

func seed(d *Demo) {
	created := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	d.Projects.put(Project{
		ID:          SeedProjectAtlasID,
		WorkspaceID: SeedWorkspaceID,
		Name:        "Atlas Redesign",
		Status:      "active",
		CreatedAt:   created,
	})
	d.Projects.put(Project{
		ID:          SeedProjectBeaconID,
		WorkspaceID: SeedWorkspaceID,
		Name:        "Beacon Launch",
		Status:      "planning",
		CreatedAt:   created.AddDate(0, 1, 0),
	})

	d.Listings.put(Listing{
		ID:         "lst-brand-kit",
		Title:      "Brand Identity Kit",
		Category:   "design",
		Vendor:     "Northwind Studio",
		PriceCents: 149900,
	})
	d.Listings.put(Listing{
		ID:         "lst-seo-audit",
		Title:      "SEO Audit",
		Category:   "marketing",
		Vendor:     "Beacon Labs",
		PriceCents: 89900,
	})
	d.Listings.put(Listing{
		ID:         "lst-api-integration",
		Title:      "API Integration Sprint",
		Category:   "engineering",
		Vendor:     "Forge Collective",
		PriceCents: 249900,
	})

	d.Memberships.Set(SeedProjectAtlasID, "ann@test.io", MemberRoleMember)
	d.Memberships.Set(SeedProjectAtlasID, "lead@test.io", MemberRoleAdmin)
	d.Memberships.Set(SeedProjectBeaconID, "ann@test.io", MemberRoleViewer)

	d.Budgets.Set(Budget{
		ProjectID:  SeedProjectAtlasID,
		Currency:   "USD",
		LimitCents: 5000000,
		SpentCents: 1875000,
	})
	d.Budgets.Set(Budget{
		ProjectID:  SeedProjectBeaconID,
		Currency:   "USD",
		LimitCents: 1200000,
		SpentCents: 0,
	})
}
