package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"laporin/internal/domain/entity"
	"laporin/internal/domain/repository"
	"laporin/pkg/errors"
)

type firestoreNotificationRepository struct {
	client *firestore.Client
}

func NewFirestoreNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &firestoreNotificationRepository{
		client: client,
	}
}

func (r *firestoreNotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	if notification.ID == "" {
		doc := r.client.Collection("notifications").NewDoc()
		notification.ID = doc.ID
	}

	if notification.Date.IsZero() {
		notification.Date = time.Now()
	}

	_, err := r.client.Collection("notifications").Doc(notification.ID).Set(ctx, notification)
	if err != nil {
		return errors.Internal("Failed to create notification", err)
	}

	return nil
}

func (r *firestoreNotificationRepository) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	doc, err := r.client.Collection("notifications").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Notification", err)
		}
		return nil, errors.Internal("Failed to get notification", err)
	}

	var notification entity.Notification
	if err := doc.DataTo(&notification); err != nil {
		return nil, errors.Internal("Failed to parse notification data", err)
	}

	return &notification, nil
}

func (r *firestoreNotificationRepository) ListByUser(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*entity.Notification, error) {
	query := r.client.Collection("notifications").
		Where("userId", "==", userID)

	if unreadOnly {
		query = query.Where("read", "==", false)
	}

	ordered := query.OrderBy("date", firestore.Desc)
	if limit > 0 {
		ordered = ordered.Limit(limit)
	}

	iter := ordered.Documents(ctx)
	var notifications []*entity.Notification

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate notifications", err)
		}

		var notification entity.Notification
		if err := doc.DataTo(&notification); err != nil {
			return nil, errors.Internal("Failed to parse notification data", err)
		}
		notifications = append(notifications, &notification)
	}

	return notifications, nil
}

func (r *firestoreNotificationRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.client.Collection("notifications").Doc(id).Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Notification", err)
		}
		return errors.Internal("Failed to mark notification as read", err)
	}

	return nil
}

// MarkAllRead flips every unread notification for the user inside one
// transaction, so the batch is all-or-nothing.
func (r *firestoreNotificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	var count int64

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		count = 0

		query := r.client.Collection("notifications").
			Where("userId", "==", userID).
			Where("read", "==", false)

		docs, err := tx.Documents(query).GetAll()
		if err != nil {
			return err
		}

		for _, doc := range docs {
			if err := tx.Update(doc.Ref, []firestore.Update{
				{Path: "read", Value: true},
			}); err != nil {
				return err
			}
			count++
		}

		return nil
	})
	if err != nil {
		return 0, errors.Internal("Failed to mark notifications as read", err)
	}

	return count, nil
}

func (r *firestoreNotificationRepository) UnreadCount(ctx context.Context, userID string) (int64, error) {
	docs, err := r.client.Collection("notifications").
		Where("userId", "==", userID).
		Where("read", "==", false).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count unread notifications", err)
	}

	return int64(len(docs)), nil
}

func (r *firestoreNotificationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("notifications").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete notification", err)
	}

	return nil
}
