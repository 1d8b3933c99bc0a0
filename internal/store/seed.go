package store

import "admin-dashboard/internal/types"

// SeedAuth is the signed in mock user
func SeedAuth() AuthState {
	return AuthState{
		IsAuthenticated: true,
		User: &types.User{
			ID:    "1",
			Name:  "John Doe",
			Email: "john.doe@example.com",
			Role:  types.RoleAdmin,
		},
	}
}

// SeedDashboard is the mock overview data
func SeedDashboard() DashboardState {
	return DashboardState{
		Stats: []types.Stat{
			{ID: "1", Label: "Total Revenue", Value: "$45,231.89", Change: "+20.1%", Trend: types.TrendUp},
			{ID: "2", Label: "Active Users", Value: "2,350", Change: "+180", Trend: types.TrendUp},
			{ID: "3", Label: "Transactions", Value: "12,234", Change: "+19%", Trend: types.TrendUp},
			{ID: "4", Label: "Avg. Order Value", Value: "$89.00", Change: "-4%", Trend: types.TrendDown},
		},
		Transactions: []types.Transaction{
			{ID: "1", User: "Alice Johnson", Amount: "$120.00", Status: types.StatusCompleted, Date: "2024-01-15"},
			{ID: "2", User: "Bob Smith", Amount: "$89.50", Status: types.StatusPending, Date: "2024-01-15"},
			{ID: "3", User: "Charlie Brown", Amount: "$250.00", Status: types.StatusCompleted, Date: "2024-01-14"},
			{ID: "4", User: "Diana Prince", Amount: "$45.00", Status: types.StatusFailed, Date: "2024-01-14"},
			{ID: "5", User: "Ethan Hunt", Amount: "$199.99", Status: types.StatusCompleted, Date: "2024-01-13"},
			{ID: "6", User: "Fiona Gallagher", Amount: "$75.50", Status: types.StatusPending, Date: "2024-01-13"},
			{ID: "7", User: "George Miller", Amount: "$310.00", Status: types.StatusCompleted, Date: "2024-01-12"},
			{ID: "8", User: "Hannah Baker", Amount: "$55.00", Status: types.StatusCompleted, Date: "2024-01-12"},
		},
	}
}
