package postgres

import (
	"errors"
	"fmt"
	"time"

	"context"
	"log/slog"

	"github.com/swetha221234/smart-rural-connect/internal/domain"
	"github.com/swetha221234/smart-rural-connect/pkg/e"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ComplaintRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewComplaintRepo(pool *pgxpool.Pool, logger *slog.Logger) *ComplaintRepo {
	return &ComplaintRepo{pool: pool, logger: logger}
}

const complaintColumns = `id, name, description, category, priority, status, latitude, longitude, created_at, resolved_at`

func (p *ComplaintRepo) Create(ctx context.Context, c *domain.Complaint) error {
	const op = "postgres.Complaint.Create"

	const query = `
		INSERT INTO complaints (id, name, description, category, priority, status, latitude, longitude, created_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if c.Status == "" {
		c.Status = domain.StatusPending
	}

	_, err := p.pool.Exec(ctx, query,
		c.ID,
		c.Name,
		c.Description,
		c.Category,
		c.Priority,
		c.Status,
		c.Lat,
		c.Lng,
		c.CreatedAt,
		c.ResolvedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *ComplaintRepo) Get(ctx context.Context, id string) (*domain.Complaint, error) {
	const op = "postgres.Complaint.Get"

	const query = `
		SELECT ` + complaintColumns + `
		FROM complaints
		WHERE id = $1
	`

	var c domain.Complaint
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Category,
		&c.Priority,
		&c.Status,
		&c.Lat,
		&c.Lng,
		&c.CreatedAt,
		&c.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id))
		return nil, e.WrapError(ctx, op, err)
	}

	return &c, nil
}

func (p *ComplaintRepo) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Complaint, error) {
	const op = "postgres.Complaint.List"

	query := `
		SELECT ` + complaintColumns + `
		FROM complaints
	`
	var (
		args  []any
		where []string
	)
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	for i, cond := range where {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var complaints []*domain.Complaint
	for rows.Next() {
		var c domain.Complaint
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Description,
			&c.Category,
			&c.Priority,
			&c.Status,
			&c.Lat,
			&c.Lng,
			&c.CreatedAt,
			&c.ResolvedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		complaints = append(complaints, &c)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return complaints, nil
}

func (p *ComplaintRepo) UpdateStatus(ctx context.Context, id string, status domain.Status, resolvedAt *time.Time) (*domain.Complaint, error) {
	const op = "postgres.Complaint.UpdateStatus"

	const query = `
		UPDATE complaints
		SET status = $2, resolved_at = $3
		WHERE id = $1
		RETURNING ` + complaintColumns + `
	`

	var c domain.Complaint
	err := p.pool.QueryRow(ctx, query, id, status, resolvedAt).Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Category,
		&c.Priority,
		&c.Status,
		&c.Lat,
		&c.Lng,
		&c.CreatedAt,
		&c.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db update failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id))
		return nil, e.WrapError(ctx, op, err)
	}

	return &c, nil
}
