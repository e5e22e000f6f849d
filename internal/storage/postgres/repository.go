package postgres

import (
	"context"
	"time"

	"github.com/swetha221234/smart-rural-connect/internal/domain"
)

type ComplaintRepository interface {
	Create(ctx context.Context, c *domain.Complaint) error
	Get(ctx context.Context, id string) (*domain.Complaint, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Complaint, error)
	// UpdateStatus writes status and resolved_at in one statement so a record
	// can never be observed with the pair out of sync.
	UpdateStatus(ctx context.Context, id string, status domain.Status, resolvedAt *time.Time) (*domain.Complaint, error)
}

func (p *Postgres) Complaints() ComplaintRepository { return p.Complaint }
