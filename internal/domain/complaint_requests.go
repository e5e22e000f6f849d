package domain

type RegisterComplaintRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Lat         *float64 `json:"latitude" validate:"required,lat"`
	Lng         *float64 `json:"longitude" validate:"required,lng"`
}

type TransitionRequest struct {
	Status Status `json:"status" validate:"required"`
}

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// ListFilter narrows a scan to one status and/or category. Zero values mean
// no filtering, mirroring the dashboard's "All" selection.
type ListFilter struct {
	Status   Status   `json:"status,omitempty"`
	Category Category `json:"category,omitempty"`
}

func (f ListFilter) Empty() bool {
	return f.Status == "" && f.Category == ""
}

type ListComplaintsResponse struct {
	Complaints []Complaint `json:"complaints"`
	Total      int         `json:"total"`
}
