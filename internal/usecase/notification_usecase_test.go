package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laporin/internal/domain/entity"
	"laporin/pkg/errors"
)

func newNotificationTestEnv() (*fakeNotificationRepo, *NotificationUseCase) {
	repo := newFakeNotificationRepo()
	return repo, NewNotificationUseCase(repo)
}

func TestNotify(t *testing.T) {
	ctx := context.Background()
	repo, uc := newNotificationTestEnv()

	err := uc.Notify(ctx, "user-1", "Complaint Update", "Your complaint has been assigned.", entity.NotificationComplaintUpdate, "complaint-1")
	require.NoError(t, err)

	notices := repo.byTypeAndUser(entity.NotificationComplaintUpdate, "user-1")
	require.Len(t, notices, 1)
	assert.False(t, notices[0].Read)
	assert.Equal(t, "complaint-1", notices[0].ComplaintID)
	assert.False(t, notices[0].Date.IsZero())
}

func TestListForUser(t *testing.T) {
	ctx := context.Background()
	repo, uc := newNotificationTestEnv()

	base := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &entity.Notification{
			UserID: "user-1",
			Title:  "Complaint Update",
			Type:   entity.NotificationComplaintUpdate,
			Read:   i%2 == 0,
			Date:   base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.Create(ctx, &entity.Notification{UserID: "user-2", Title: "Other"}))

	all, err := uc.ListForUser(ctx, "user-1", false, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.True(t, all[i].Date.Before(all[i-1].Date))
	}

	unread, err := uc.ListForUser(ctx, "user-1", true, 0)
	require.NoError(t, err)
	assert.Len(t, unread, 2)

	limited, err := uc.ListForUser(ctx, "user-1", false, 3)
	require.NoError(t, err)
	assert.Len(t, limited, 3)
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()
	repo, uc := newNotificationTestEnv()

	notification := &entity.Notification{UserID: "user-1"}
	require.NoError(t, repo.Create(ctx, notification))

	err := uc.MarkRead(ctx, "user-2", notification.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	require.NoError(t, uc.MarkRead(ctx, "user-1", notification.ID))

	stored, err := repo.GetByID(ctx, notification.ID)
	require.NoError(t, err)
	assert.True(t, stored.Read)

	err = uc.MarkRead(ctx, "user-1", "no-such-notification")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestMarkAllRead(t *testing.T) {
	ctx := context.Background()
	repo, uc := newNotificationTestEnv()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &entity.Notification{UserID: "user-1"}))
	}
	require.NoError(t, repo.Create(ctx, &entity.Notification{UserID: "user-2"}))

	flipped, err := uc.MarkAllRead(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), flipped)

	count, err := uc.UnreadCount(ctx, "user-1")
	require.NoError(t, err)
	assert.Zero(t, count)

	// The other user's inbox is untouched.
	count, err = uc.UnreadCount(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Second pass finds nothing left to flip.
	flipped, err = uc.MarkAllRead(ctx, "user-1")
	require.NoError(t, err)
	assert.Zero(t, flipped)
}

func TestDeleteNotification(t *testing.T) {
	ctx := context.Background()
	repo, uc := newNotificationTestEnv()

	notification := &entity.Notification{UserID: "user-1"}
	require.NoError(t, repo.Create(ctx, notification))

	err := uc.Delete(ctx, "user-2", notification.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	require.NoError(t, uc.Delete(ctx, "user-1", notification.ID))

	_, err = repo.GetByID(ctx, notification.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
