package store

import (
	"sync"
	"testing"

	"admin-dashboard/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededStores(t *testing.T) {
	dash := NewDashboardStore(SeedDashboard(), nil)
	assert.Len(t, dash.Stats(), 4)
	assert.Len(t, dash.Transactions(), 8)
	assert.False(t, dash.IsLoading())

	auth := NewAuthStore(SeedAuth(), nil)
	user := auth.User()
	require.NotNil(t, user)
	assert.Equal(t, "John Doe", user.Name)
	assert.Equal(t, types.RoleAdmin, user.Role)
	assert.True(t, auth.IsAuthenticated())
}

func TestSelectorsReturnCopies(t *testing.T) {
	dash := NewDashboardStore(SeedDashboard(), nil)
	stats := dash.Stats()
	stats[0].Value = "$0.00"
	assert.Equal(t, "$45,231.89", dash.Stats()[0].Value)

	auth := NewAuthStore(SeedAuth(), nil)
	auth.User().Name = "Mallory"
	assert.Equal(t, "John Doe", auth.User().Name)
}

func TestSetStatsIdempotent(t *testing.T) {
	dash := NewDashboardStore(SeedDashboard(), nil)
	calls := 0
	unsubscribe := dash.Subscribe(func(DashboardState) { calls++ })
	defer unsubscribe()

	stats := []types.Stat{
		{ID: "9", Label: "Refunds", Value: "12", Change: "+1", Trend: types.TrendUp},
	}
	dash.SetStats(stats)
	before := dash.Snapshot()

	assert.NotPanics(t, func() { dash.SetStats(stats) })
	assert.Equal(t, before, dash.Snapshot())
	assert.Equal(t, 1, calls, "second identical write does not notify")
}

func TestSetTransactionsAndLoading(t *testing.T) {
	dash := NewDashboardStore(SeedDashboard(), nil)
	var seen []DashboardState
	dash.Subscribe(func(s DashboardState) { seen = append(seen, s) })

	dash.SetTransactions(SeedDashboard().Transactions[:2])
	dash.SetLoading(true)
	dash.SetLoading(true)

	require.Len(t, seen, 2)
	assert.Len(t, seen[0].Transactions, 2)
	assert.True(t, seen[1].IsLoading)
}

func TestUnsubscribe(t *testing.T) {
	dash := NewDashboardStore(SeedDashboard(), nil)
	calls := 0
	unsubscribe := dash.Subscribe(func(DashboardState) { calls++ })

	dash.SetLoading(true)
	unsubscribe()
	unsubscribe()
	dash.SetLoading(false)

	assert.Equal(t, 1, calls)
}

func TestUpdateUserMerges(t *testing.T) {
	auth := NewAuthStore(SeedAuth(), nil)
	name := "Jane Doe"
	auth.UpdateUser(types.UserPatch{Name: &name})

	user := auth.User()
	require.NotNil(t, user)
	assert.Equal(t, "Jane Doe", user.Name)
	assert.Equal(t, "john.doe@example.com", user.Email)
	assert.Equal(t, types.RoleAdmin, user.Role)
}

func TestLogoutAndLogin(t *testing.T) {
	auth := NewAuthStore(SeedAuth(), nil)
	var states []AuthState
	auth.Subscribe(func(s AuthState) { states = append(states, s) })

	auth.Logout()
	assert.Nil(t, auth.User())
	assert.False(t, auth.IsAuthenticated())

	name := "ignored"
	auth.UpdateUser(types.UserPatch{Name: &name})
	assert.Nil(t, auth.User(), "updates need a user")

	auth.Login(types.User{ID: "2", Name: "Ada", Email: "ada@example.com", Role: types.RoleUser})
	assert.Equal(t, "Ada", auth.User().Name)
	assert.Len(t, states, 2)
}

func TestConcurrentReadsAndWrites(t *testing.T) {
	dash := NewDashboardStore(SeedDashboard(), nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			dash.SetLoading(i%2 == 0)
		}(i)
		go func() {
			defer wg.Done()
			_ = dash.Stats()
		}()
	}
	wg.Wait()
	assert.Len(t, dash.Stats(), 4)
}
