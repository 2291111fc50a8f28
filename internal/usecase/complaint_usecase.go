package usecase

import (
	"context"
	"fmt"
	"time"

	"laporin/internal/domain/entity"
	"laporin/internal/domain/repository"
	"laporin/pkg/errors"
	"laporin/pkg/logger"
)

// ComplaintUseCase owns the complaint lifecycle: it validates role, ownership
// and state for every transition, mutates the store, and fans notifications
// out to the affected users. The store mutation is authoritative; notification
// delivery is best-effort and never fails a transition.
type ComplaintUseCase struct {
	complaintRepo  repository.ComplaintRepository
	userRepo       repository.UserRepository
	departmentRepo repository.DepartmentRepository
	notifications  *NotificationUseCase
	uploads        *UploadUseCase
}

func NewComplaintUseCase(
	complaintRepo repository.ComplaintRepository,
	userRepo repository.UserRepository,
	departmentRepo repository.DepartmentRepository,
	notifications *NotificationUseCase,
	uploads *UploadUseCase,
) *ComplaintUseCase {
	return &ComplaintUseCase{
		complaintRepo:  complaintRepo,
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		notifications:  notifications,
		uploads:        uploads,
	}
}

type CreateComplaintInput struct {
	Title       string
	Description string
	Category    string
	Location    string
	Place       string
	Department  string
	Priority    string
	Images      []ImageFile
}

func (uc *ComplaintUseCase) Create(ctx context.Context, actor *entity.User, input CreateComplaintInput) (*entity.Complaint, error) {
	if actor.Role != entity.RoleUser {
		return nil, errors.Forbidden("Only users can file complaints", nil)
	}

	if input.Title == "" || input.Description == "" || input.Category == "" ||
		input.Location == "" || input.Place == "" {
		return nil, errors.BadRequest("Title, description, category, location and place are required", nil)
	}

	complaint := &entity.Complaint{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Location:    input.Location,
		Place:       input.Place,
		Department:  input.Department,
		Priority:    input.Priority,
		UserID:      actor.ID,
		Status:      entity.StatusPending,
		Date:        time.Now(),
	}

	if err := uc.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}

	if len(input.Images) > 0 {
		urls, err := uc.uploads.UploadComplaintImages(ctx, complaint.ID, input.Images)
		if err != nil {
			logger.Warn("Image upload for complaint %s failed: %v", complaint.ID, err)
		} else {
			if err := uc.complaintRepo.SetImages(ctx, complaint.ID, urls); err != nil {
				logger.Warn("Failed to attach images to complaint %s: %v", complaint.ID, err)
			} else {
				complaint.Images = urls
			}
		}
	}

	uc.notifyAdmins(ctx,
		"New Complaint",
		fmt.Sprintf("A new complaint has been submitted: %s", complaint.Title),
		entity.NotificationNewComplaint,
		complaint.ID,
	)

	return complaint, nil
}

func (uc *ComplaintUseCase) Assign(ctx context.Context, actor *entity.User, complaintID, technicianID string) (*entity.Complaint, error) {
	if actor.Role != entity.RoleAdmin {
		return nil, errors.Forbidden("Admin privileges required", nil)
	}

	complaint, err := uc.complaintRepo.GetByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}

	if complaint.Status != entity.StatusPending {
		return nil, errors.BadRequest("Complaint is not pending", nil)
	}

	technician, err := uc.userRepo.GetByID(ctx, technicianID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.NotFound("Technician", err)
		}
		return nil, err
	}

	if technician.Role != entity.RoleTechnician {
		return nil, errors.BadRequest("User is not a technician", nil)
	}

	now := time.Now()
	if err := uc.complaintRepo.Assign(ctx, complaintID, technicianID, now); err != nil {
		return nil, err
	}

	complaint.TechnicianID = technicianID
	complaint.AssignedAt = &now
	complaint.Status = entity.StatusInProgress

	uc.notify(ctx, technicianID,
		"New Assignment",
		fmt.Sprintf("You've been assigned to handle a complaint: %s", complaint.Title),
		entity.NotificationAssignment,
		complaintID,
	)
	uc.notify(ctx, complaint.UserID,
		"Complaint Update",
		fmt.Sprintf("Your complaint %q has been assigned to a technician.", complaint.Title),
		entity.NotificationComplaintUpdate,
		complaintID,
	)

	return complaint, nil
}

type CompleteComplaintInput struct {
	Description string
	Image       ImageFile
}

func (uc *ComplaintUseCase) Complete(ctx context.Context, actor *entity.User, complaintID string, input CompleteComplaintInput) (*entity.Complaint, error) {
	if actor.Role != entity.RoleTechnician {
		return nil, errors.Forbidden("Technician privileges required", nil)
	}

	complaint, err := uc.complaintRepo.GetByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}

	if complaint.Status != entity.StatusInProgress {
		return nil, errors.BadRequest("Complaint is not in progress", nil)
	}
	if complaint.TechnicianID != actor.ID {
		return nil, errors.Forbidden("Complaint is assigned to another technician", nil)
	}

	if input.Description == "" {
		return nil, errors.BadRequest("Completion notes are required", nil)
	}
	if input.Image.Reader == nil {
		return nil, errors.BadRequest("Completion image is required", nil)
	}

	imageURL, err := uc.uploads.UploadCompletionImage(ctx, complaintID, input.Image)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := uc.complaintRepo.Complete(ctx, complaintID, actor.ID, imageURL, input.Description, now); err != nil {
		return nil, err
	}

	complaint.CompletedImage = imageURL
	complaint.CompletedDescription = input.Description
	complaint.CompletedAt = &now
	complaint.Status = entity.StatusCompleted

	uc.notify(ctx, complaint.UserID,
		"Complaint Completed",
		fmt.Sprintf("Your complaint %q has been marked as completed. Please review and provide feedback.", complaint.Title),
		entity.NotificationCompletion,
		complaintID,
	)
	uc.notifyAdmins(ctx,
		"Complaint Completed",
		fmt.Sprintf("Complaint %q has been marked as completed.", complaint.Title),
		entity.NotificationCompletion,
		complaintID,
	)

	return complaint, nil
}

func (uc *ComplaintUseCase) Rate(ctx context.Context, actor *entity.User, complaintID string, rating int, feedback string) (*entity.Complaint, error) {
	complaint, err := uc.complaintRepo.GetByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}

	if complaint.UserID != actor.ID {
		return nil, errors.Forbidden("Only the reporter can rate this complaint", nil)
	}
	if rating < 1 || rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}
	if complaint.Status != entity.StatusCompleted {
		return nil, errors.BadRequest("Complaint is not completed yet", nil)
	}
	if complaint.Rated() {
		return nil, errors.BadRequest("Complaint has already been rated", nil)
	}

	if err := uc.complaintRepo.Rate(ctx, complaintID, rating, feedback); err != nil {
		return nil, err
	}

	complaint.Rating = &rating
	complaint.Feedback = feedback

	if complaint.Assigned() {
		uc.notify(ctx, complaint.TechnicianID,
			"Complaint Rated",
			fmt.Sprintf("Your completed complaint %q has received a rating of %d/5.", complaint.Title, rating),
			entity.NotificationRating,
			complaintID,
		)
	}

	return complaint, nil
}

func (uc *ComplaintUseCase) Delete(ctx context.Context, actor *entity.User, complaintID string) error {
	if actor.Role != entity.RoleAdmin {
		return errors.Forbidden("Admin privileges required", nil)
	}

	complaint, err := uc.complaintRepo.GetByID(ctx, complaintID)
	if err != nil {
		return err
	}

	if err := uc.complaintRepo.Delete(ctx, complaintID); err != nil {
		return err
	}

	uc.uploads.CleanupComplaintImages(ctx, complaintID)

	// The complaint no longer exists, so removal notices carry no link-back.
	if complaint.Assigned() {
		uc.notify(ctx, complaint.TechnicianID,
			"Complaint Removed",
			fmt.Sprintf("The complaint %q that was assigned to you has been removed.", complaint.Title),
			entity.NotificationComplaintRemoved,
			"",
		)
	}
	uc.notify(ctx, complaint.UserID,
		"Complaint Removed",
		fmt.Sprintf("Your complaint %q has been removed by an administrator.", complaint.Title),
		entity.NotificationComplaintRemoved,
		"",
	)

	return nil
}

func (uc *ComplaintUseCase) GetByID(ctx context.Context, id string) (*entity.Complaint, error) {
	return uc.complaintRepo.GetByID(ctx, id)
}

// List returns a date-descending page of complaints plus the cursor for the
// next page (the id of the last returned complaint).
func (uc *ComplaintUseCase) List(ctx context.Context, filter repository.ComplaintFilter, limit int, cursor string) ([]*entity.Complaint, bool, string, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, false, "", errors.BadRequest("Invalid status filter", nil)
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	complaints, hasMore, err := uc.complaintRepo.List(ctx, filter, limit, cursor)
	if err != nil {
		return nil, false, "", err
	}

	nextCursor := ""
	if hasMore && len(complaints) > 0 {
		nextCursor = complaints[len(complaints)-1].ID
	}

	return complaints, hasMore, nextCursor, nil
}

type StatusCounts struct {
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Total      int `json:"total"`
}

type DepartmentCount struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type ComplaintStatistics struct {
	Counts        StatusCounts      `json:"counts"`
	Departments   []DepartmentCount `json:"departmentStats"`
	AverageRating float64           `json:"averageRating"`
}

// Statistics aggregates the whole collection in one scan: counts by status,
// complaint counts per department, and the average rating over rated
// completed complaints (0 when nothing has been rated).
func (uc *ComplaintUseCase) Statistics(ctx context.Context) (*ComplaintStatistics, error) {
	complaints, err := uc.complaintRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &ComplaintStatistics{}
	byCategory := make(map[string]int)
	totalRating := 0
	ratedCount := 0

	for _, complaint := range complaints {
		switch complaint.Status {
		case entity.StatusPending:
			stats.Counts.Pending++
		case entity.StatusInProgress:
			stats.Counts.InProgress++
		case entity.StatusCompleted:
			stats.Counts.Completed++
			if complaint.Rated() {
				totalRating += *complaint.Rating
				ratedCount++
			}
		}
		stats.Counts.Total++

		if complaint.Category != "" {
			byCategory[complaint.Category]++
		}
	}

	departments, err := uc.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, department := range departments {
		stats.Departments = append(stats.Departments, DepartmentCount{
			ID:    department.ID,
			Name:  department.Name,
			Count: byCategory[department.ID],
		})
	}

	if ratedCount > 0 {
		stats.AverageRating = float64(totalRating) / float64(ratedCount)
	}

	return stats, nil
}

func (uc *ComplaintUseCase) notify(ctx context.Context, userID, title, message, notificationType, complaintID string) {
	if err := uc.notifications.Notify(ctx, userID, title, message, notificationType, complaintID); err != nil {
		logger.Warn("Failed to deliver %s notification to %s: %v", notificationType, userID, err)
	}
}

func (uc *ComplaintUseCase) notifyAdmins(ctx context.Context, title, message, notificationType, complaintID string) {
	admins, err := uc.userRepo.ListByRole(ctx, entity.RoleAdmin)
	if err != nil {
		logger.Warn("Failed to resolve admins for %s notification: %v", notificationType, err)
		return
	}

	for _, admin := range admins {
		uc.notify(ctx, admin.ID, title, message, notificationType, complaintID)
	}
}
