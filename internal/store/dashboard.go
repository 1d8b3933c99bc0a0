package store

import (
	"slices"

	"admin-dashboard/internal/types"

	"go.uber.org/zap"
)

// DashboardState is the mock dashboard data
type DashboardState struct {
	Stats        []types.Stat
	Transactions []types.Transaction
	IsLoading    bool
}

func cloneDashboard(s DashboardState) DashboardState {
	s.Stats = slices.Clone(s.Stats)
	s.Transactions = slices.Clone(s.Transactions)
	return s
}

// DashboardStore owns the dashboard data
type DashboardStore struct {
	c *container[DashboardState]
}

// NewDashboardStore creates a dashboard store seeded with the given state
func NewDashboardStore(seed DashboardState, log *zap.Logger) *DashboardStore {
	return &DashboardStore{c: newContainer("dashboard", seed, cloneDashboard, log)}
}

// Snapshot returns a copy of the whole state
func (s *DashboardStore) Snapshot() DashboardState { return s.c.snapshot() }

func (s *DashboardStore) Stats() []types.Stat { return s.c.snapshot().Stats }

func (s *DashboardStore) Transactions() []types.Transaction { return s.c.snapshot().Transactions }

func (s *DashboardStore) IsLoading() bool { return s.c.snapshot().IsLoading }

// Subscribe registers l and returns the function that removes it
func (s *DashboardStore) Subscribe(l Listener[DashboardState]) func() { return s.c.subscribe(l) }

// SetStats replaces the stat list
func (s *DashboardStore) SetStats(stats []types.Stat) {
	s.c.update("setStats", func(st *DashboardState) bool {
		if slices.Equal(st.Stats, stats) {
			return false
		}
		st.Stats = slices.Clone(stats)
		return true
	})
}

// SetTransactions replaces the transaction list
func (s *DashboardStore) SetTransactions(transactions []types.Transaction) {
	s.c.update("setTransactions", func(st *DashboardState) bool {
		if slices.Equal(st.Transactions, transactions) {
			return false
		}
		st.Transactions = slices.Clone(transactions)
		return true
	})
}

func (s *DashboardStore) SetLoading(loading bool) {
	s.c.update("setLoading", func(st *DashboardState) bool {
		if st.IsLoading == loading {
			return false
		}
		st.IsLoading = loading
		return true
	})
}
