package usecase

import (
	"context"

	"laporin/internal/domain/entity"
	"laporin/internal/domain/repository"
	"laporin/pkg/errors"
)

// NotificationUseCase fans lifecycle events out into per-recipient inbox
// records and serves the inbox itself.
type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
	}
}

func (uc *NotificationUseCase) Notify(ctx context.Context, userID, title, message, notificationType, complaintID string) error {
	notification := &entity.Notification{
		UserID:      userID,
		Title:       title,
		Message:     message,
		Type:        notificationType,
		ComplaintID: complaintID,
		Read:        false,
	}

	return uc.notificationRepo.Create(ctx, notification)
}

func (uc *NotificationUseCase) ListForUser(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	return uc.notificationRepo.ListByUser(ctx, userID, unreadOnly, limit)
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, actorID, notificationID string) error {
	notification, err := uc.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}

	if notification.UserID != actorID {
		return errors.Forbidden("Notification belongs to another user", nil)
	}

	return uc.notificationRepo.MarkRead(ctx, notificationID)
}

func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return uc.notificationRepo.MarkAllRead(ctx, userID)
}

func (uc *NotificationUseCase) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return uc.notificationRepo.UnreadCount(ctx, userID)
}

func (uc *NotificationUseCase) Delete(ctx context.Context, actorID, notificationID string) error {
	notification, err := uc.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}

	if notification.UserID != actorID {
		return errors.Forbidden("Notification belongs to another user", nil)
	}

	return uc.notificationRepo.Delete(ctx, notificationID)
}
