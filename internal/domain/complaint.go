package domain

import "time"

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
)

// Valid reports whether s is one of the three lifecycle states.
// Any state may follow any other, including Resolved back to Pending.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

type Category string

const (
	CategoryWaterSupply Category = "Water Supply"
	CategoryRoadIssue   Category = "Road Issue"
	CategoryElectricity Category = "Electricity"
	CategorySanitation  Category = "Sanitation"
	CategoryGeneral     Category = "General"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryWaterSupply, CategoryRoadIssue, CategoryElectricity, CategorySanitation, CategoryGeneral:
		return true
	}
	return false
}

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityNormal Priority = "Normal"
)

// AllStatuses and AllCategories enumerate the closed sets in display order,
// used to zero-fill report groupings.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusResolved}
}

func AllCategories() []Category {
	return []Category{CategoryWaterSupply, CategoryRoadIssue, CategoryElectricity, CategorySanitation, CategoryGeneral}
}

// Complaint is a single citizen-submitted grievance. Category and Priority are
// derived from Description at registration and never recomputed. ResolvedAt is
// non-nil exactly when Status is Resolved.
type Complaint struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	Priority    Priority   `json:"priority"`
	Status      Status     `json:"status"`
	Lat         float64    `json:"latitude" validate:"lat"`
	Lng         float64    `json:"longitude" validate:"lng"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}
