package repository

import (
	gocache "github.com/patrickmn/go-cache"
)

// Budget is the per-project finance summary record.
type Budget struct {
	ProjectID  string `json:"projectId"`
	Currency   string `json:"currency"`
	LimitCents int64  `json:"limitCents"`
	SpentCents int64  `json:"spentCents"`
}

// Remaining returns the unspent portion of the budget.
func (b Budget) Remaining() int64 {
	return b.LimitCents - b.SpentCents
}

// Budgets is the in-memory budget table, keyed by project.
type Budgets struct {
	items *gocache.Cache
}

// NewBudgets creates an empty budget table.
func NewBudgets() *Budgets {
	return &Budgets{items: newCollection()}
}

// Set stores the budget for a project, replacing any previous record.
func (b *Budgets) Set(budget Budget) {
	b.items.SetDefault(budget.ProjectID, budget)
}

// Get returns the budget for a project.
func (b *Budgets) Get(projectID string) (Budget, bool) {
	v, ok := b.items.Get(projectID)
	if !ok {
		return Budget{}, false
	}
	return v.(Budget), true
}
