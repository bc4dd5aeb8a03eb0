package models

// Membership roles for the course roster
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
)

// Sort orders for the extra posts listing
const (
	SortIncreasing = "increasing"
	SortDecreasing = "decreasing"
)

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
