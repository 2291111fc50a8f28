package repository

import (
	"context"

	"laporin/internal/domain/entity"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	GetByID(ctx context.Context, id string) (*entity.Notification, error)
	ListByUser(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, id string) error

	// MarkAllRead flips every unread notification for the user in a single
	// atomic commit and returns how many were flipped.
	MarkAllRead(ctx context.Context, userID string) (int64, error)

	UnreadCount(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, id string) error
}
