package domain

// Report is an aggregate view over a snapshot of complaints. ByCategory and
// ByStatus are zero-filled over the closed enumerations. AvgResolutionHours is
// nil when the snapshot holds no resolved records; zero would conflate "no
// data" with an instant resolution.
type Report struct {
	Total              int64              `json:"total"`
	ByCategory         map[Category]int64 `json:"by_category"`
	ByStatus           map[Status]int64   `json:"by_status"`
	HighPriority       int64              `json:"high_priority"`
	Resolved           int64              `json:"resolved"`
	AvgResolutionHours *float64           `json:"avg_resolution_hours,omitempty"`
}
