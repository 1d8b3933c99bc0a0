// Package types: internal types
package types

// Route is a navigable path inside the dashboard shell
type Route string

const (
	RouteRoot      Route = "/"
	RouteDashboard Route = "/dashboard"
	RouteAnalytics Route = "/analytics"
	RouteSettings  Route = "/settings"
)

// NavigationItem describes one entry of the navigation rail
type NavigationItem struct {
	Label string
	Route Route
	Icon  string
}

// Role of the signed in user
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is the mock authenticated user
type User struct {
	ID     string
	Name   string
	Email  string
	Role   Role
	Avatar string
}

// Initial returns the first letter of the user's name, or "U" when unknown.
func (u *User) Initial() string {
	if u == nil || u.Name == "" {
		return "U"
	}
	for _, r := range u.Name {
		return string(r)
	}
	return "U"
}

// DisplayName returns the name or the "User" placeholder
func (u *User) DisplayName() string {
	if u == nil || u.Name == "" {
		return "User"
	}
	return u.Name
}

// DisplayRole returns the role or the "Role" placeholder
func (u *User) DisplayRole() string {
	if u == nil || u.Role == "" {
		return "Role"
	}
	return string(u.Role)
}

// UserPatch carries the fields to merge into the current user. Nil fields are left as they are.
type UserPatch struct {
	Name   *string
	Email  *string
	Role   *Role
	Avatar *string
}

// Trend of a dashboard statistic
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// Stat is a headline number on the overview page
type Stat struct {
	ID     string
	Label  string
	Value  string
	Change string
	Trend  Trend
}

// Status of a transaction
type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusFailed    Status = "failed"
)

// Transaction is a row of the recent transactions table
type Transaction struct {
	ID     string
	User   string
	Amount string
	Status Status
	Date   string
}

// TableData represents formatted rows for display. The first row is the header.
type TableData struct {
	Title string
	Rows  [][]string
}
