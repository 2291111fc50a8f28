package repository

import (
	"context"
	"time"

	"laporin/internal/domain/entity"
)

// ComplaintFilter narrows List results. Zero values mean "no constraint".
type ComplaintFilter struct {
	Status       entity.ComplaintStatus
	UserID       string
	TechnicianID string
	Category     string
	Priority     string
}

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *entity.Complaint) error
	GetByID(ctx context.Context, id string) (*entity.Complaint, error)

	// List returns complaints ordered by date descending. cursor is the id of
	// the last document of the previous page; empty for the first page. The
	// second result reports whether more pages exist.
	List(ctx context.Context, filter ComplaintFilter, limit int, cursor string) ([]*entity.Complaint, bool, error)

	// ListAll streams every complaint, for statistics aggregation.
	ListAll(ctx context.Context) ([]*entity.Complaint, error)

	// SetImages records the reporter's uploaded image URLs as part of the
	// creation unit. Images are immutable afterwards.
	SetImages(ctx context.Context, id string, images []string) error

	// Assign, Complete and Rate are conditional transitions: each re-checks
	// the complaint's state inside a store transaction and fails with a
	// CONFLICT error when a concurrent transition got there first.
	Assign(ctx context.Context, id, technicianID string, at time.Time) error
	Complete(ctx context.Context, id, technicianID, image, description string, at time.Time) error
	Rate(ctx context.Context, id string, rating int, feedback string) error

	Delete(ctx context.Context, id string) error
	CountByCategory(ctx context.Context, category string) (int64, error)
}
