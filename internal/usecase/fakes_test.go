package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"laporin/internal/domain/entity"
	"laporin/internal/domain/repository"
	"laporin/pkg/errors"
)

type fakeComplaintRepo struct {
	complaints map[string]*entity.Complaint
	seq        int
}

func newFakeComplaintRepo() *fakeComplaintRepo {
	return &fakeComplaintRepo{complaints: make(map[string]*entity.Complaint)}
}

func (r *fakeComplaintRepo) Create(ctx context.Context, complaint *entity.Complaint) error {
	if complaint.ID == "" {
		r.seq++
		complaint.ID = fmt.Sprintf("complaint-%d", r.seq)
	}
	if complaint.Date.IsZero() {
		complaint.Date = time.Now()
	}
	stored := *complaint
	r.complaints[complaint.ID] = &stored
	return nil
}

func (r *fakeComplaintRepo) GetByID(ctx context.Context, id string) (*entity.Complaint, error) {
	stored, ok := r.complaints[id]
	if !ok {
		return nil, errors.NotFound("Complaint", nil)
	}
	clone := *stored
	return &clone, nil
}

func (r *fakeComplaintRepo) List(ctx context.Context, filter repository.ComplaintFilter, limit int, cursor string) ([]*entity.Complaint, bool, error) {
	var matched []*entity.Complaint
	for _, c := range r.complaints {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.UserID != "" && c.UserID != filter.UserID {
			continue
		}
		if filter.TechnicianID != "" && c.TechnicianID != filter.TechnicianID {
			continue
		}
		if filter.Category != "" && c.Category != filter.Category {
			continue
		}
		if filter.Priority != "" && c.Priority != filter.Priority {
			continue
		}
		clone := *c
		matched = append(matched, &clone)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.After(matched[j].Date)
		}
		return matched[i].ID > matched[j].ID
	})

	start := 0
	if cursor != "" {
		for i, c := range matched {
			if c.ID == cursor {
				start = i + 1
				break
			}
		}
	}
	matched = matched[start:]

	hasMore := len(matched) > limit
	if hasMore {
		matched = matched[:limit]
	}

	return matched, hasMore, nil
}

func (r *fakeComplaintRepo) ListAll(ctx context.Context) ([]*entity.Complaint, error) {
	var all []*entity.Complaint
	for _, c := range r.complaints {
		clone := *c
		all = append(all, &clone)
	}
	return all, nil
}

func (r *fakeComplaintRepo) SetImages(ctx context.Context, id string, images []string) error {
	stored, ok := r.complaints[id]
	if !ok {
		return errors.NotFound("Complaint", nil)
	}
	stored.Images = images
	return nil
}

func (r *fakeComplaintRepo) Assign(ctx context.Context, id, technicianID string, at time.Time) error {
	stored, ok := r.complaints[id]
	if !ok {
		return errors.NotFound("Complaint", nil)
	}
	if stored.Status != entity.StatusPending {
		return errors.Conflict("Complaint state changed, it is no longer pending", nil)
	}
	stored.TechnicianID = technicianID
	stored.AssignedAt = &at
	stored.Status = entity.StatusInProgress
	return nil
}

func (r *fakeComplaintRepo) Complete(ctx context.Context, id, technicianID, image, description string, at time.Time) error {
	stored, ok := r.complaints[id]
	if !ok {
		return errors.NotFound("Complaint", nil)
	}
	if stored.Status != entity.StatusInProgress || stored.TechnicianID != technicianID {
		return errors.Conflict("Complaint state changed, it is no longer in progress for this technician", nil)
	}
	stored.CompletedImage = image
	stored.CompletedDescription = description
	stored.CompletedAt = &at
	stored.Status = entity.StatusCompleted
	return nil
}

func (r *fakeComplaintRepo) Rate(ctx context.Context, id string, rating int, feedback string) error {
	stored, ok := r.complaints[id]
	if !ok {
		return errors.NotFound("Complaint", nil)
	}
	if stored.Status != entity.StatusCompleted {
		return errors.Conflict("Complaint is not completed yet", nil)
	}
	if stored.Rating != nil {
		return errors.Conflict("Complaint has already been rated", nil)
	}
	stored.Rating = &rating
	stored.Feedback = feedback
	return nil
}

func (r *fakeComplaintRepo) Delete(ctx context.Context, id string) error {
	delete(r.complaints, id)
	return nil
}

func (r *fakeComplaintRepo) CountByCategory(ctx context.Context, category string) (int64, error) {
	var count int64
	for _, c := range r.complaints {
		if c.Category == category {
			count++
		}
	}
	return count, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	var matched []*entity.User
	for _, user := range r.users {
		if user.Role == role {
			matched = append(matched, user)
		}
	}
	return matched, nil
}

func (r *fakeUserRepo) ListTechniciansByDepartment(ctx context.Context, department string) ([]*entity.User, error) {
	var matched []*entity.User
	for _, user := range r.users {
		if user.Role != entity.RoleTechnician {
			continue
		}
		if department != "" && user.Department != department {
			continue
		}
		matched = append(matched, user)
	}
	return matched, nil
}

type fakeNotificationRepo struct {
	notifications map[string]*entity.Notification
	seq           int
	failCreate    bool
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[string]*entity.Notification)}
}

func (r *fakeNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	if r.failCreate {
		return errors.Internal("Failed to create notification", nil)
	}
	if notification.ID == "" {
		r.seq++
		notification.ID = fmt.Sprintf("notification-%d", r.seq)
	}
	if notification.Date.IsZero() {
		notification.Date = time.Now()
	}
	stored := *notification
	r.notifications[notification.ID] = &stored
	return nil
}

func (r *fakeNotificationRepo) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	stored, ok := r.notifications[id]
	if !ok {
		return nil, errors.NotFound("Notification", nil)
	}
	clone := *stored
	return &clone, nil
}

func (r *fakeNotificationRepo) ListByUser(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*entity.Notification, error) {
	var matched []*entity.Notification
	for _, n := range r.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		clone := *n
		matched = append(matched, &clone)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})

	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	return matched, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id string) error {
	stored, ok := r.notifications[id]
	if !ok {
		return errors.NotFound("Notification", nil)
	}
	stored.Read = true
	return nil
}

func (r *fakeNotificationRepo) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.Read {
			n.Read = true
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) UnreadCount(ctx context.Context, userID string) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) Delete(ctx context.Context, id string) error {
	delete(r.notifications, id)
	return nil
}

// byTypeAndUser filters the stored notifications for assertions.
func (r *fakeNotificationRepo) byTypeAndUser(notificationType, userID string) []*entity.Notification {
	var matched []*entity.Notification
	for _, n := range r.notifications {
		if n.Type == notificationType && n.UserID == userID {
			matched = append(matched, n)
		}
	}
	return matched
}

type fakeDepartmentRepo struct {
	departments map[string]*entity.Department
	seq         int
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{departments: make(map[string]*entity.Department)}
}

func (r *fakeDepartmentRepo) Create(ctx context.Context, department *entity.Department) error {
	if department.ID == "" {
		r.seq++
		department.ID = fmt.Sprintf("department-%d", r.seq)
	}
	if department.CreatedAt.IsZero() {
		department.CreatedAt = time.Now()
	}
	stored := *department
	r.departments[department.ID] = &stored
	return nil
}

func (r *fakeDepartmentRepo) GetByID(ctx context.Context, id string) (*entity.Department, error) {
	stored, ok := r.departments[id]
	if !ok {
		return nil, errors.NotFound("Department", nil)
	}
	clone := *stored
	return &clone, nil
}

func (r *fakeDepartmentRepo) List(ctx context.Context) ([]*entity.Department, error) {
	var all []*entity.Department
	for _, d := range r.departments {
		clone := *d
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *fakeDepartmentRepo) Update(ctx context.Context, department *entity.Department) error {
	if _, ok := r.departments[department.ID]; !ok {
		return errors.NotFound("Department", nil)
	}
	stored := *department
	r.departments[department.ID] = &stored
	return nil
}

func (r *fakeDepartmentRepo) Delete(ctx context.Context, id string) error {
	delete(r.departments, id)
	return nil
}

type fakeBlobStorage struct {
	uploaded        []string
	deleted         []string
	deletedPrefixes []string
	failSubstring   string
	failAll         bool
}

func (s *fakeBlobStorage) Upload(ctx context.Context, path string, file io.Reader, contentType string) (string, error) {
	if s.failAll || (s.failSubstring != "" && strings.Contains(path, s.failSubstring)) {
		return "", errors.Internal("Failed to upload file", nil)
	}
	s.uploaded = append(s.uploaded, path)
	return "https://storage.test/" + path, nil
}

func (s *fakeBlobStorage) Delete(ctx context.Context, path string) error {
	s.deleted = append(s.deleted, path)
	return nil
}

func (s *fakeBlobStorage) DeletePrefix(ctx context.Context, prefix string) error {
	s.deletedPrefixes = append(s.deletedPrefixes, prefix)
	return nil
}
