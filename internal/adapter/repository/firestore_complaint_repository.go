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

type firestoreComplaintRepository struct {
	client *firestore.Client
}

func NewFirestoreComplaintRepository(client *firestore.Client) repository.ComplaintRepository {
	return &firestoreComplaintRepository{
		client: client,
	}
}

func (r *firestoreComplaintRepository) Create(ctx context.Context, complaint *entity.Complaint) error {
	if complaint.ID == "" {
		doc := r.client.Collection("complaints").NewDoc()
		complaint.ID = doc.ID
	}

	if complaint.Date.IsZero() {
		complaint.Date = time.Now()
	}

	_, err := r.client.Collection("complaints").Doc(complaint.ID).Set(ctx, complaint)
	if err != nil {
		return errors.Internal("Failed to create complaint", err)
	}

	return nil
}

func (r *firestoreComplaintRepository) GetByID(ctx context.Context, id string) (*entity.Complaint, error) {
	doc, err := r.client.Collection("complaints").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Complaint", err)
		}
		return nil, errors.Internal("Failed to get complaint", err)
	}

	var complaint entity.Complaint
	if err := doc.DataTo(&complaint); err != nil {
		return nil, errors.Internal("Failed to parse complaint data", err)
	}

	return &complaint, nil
}

func (r *firestoreComplaintRepository) List(ctx context.Context, filter repository.ComplaintFilter, limit int, cursor string) ([]*entity.Complaint, bool, error) {
	query := r.client.Collection("complaints").Query

	if filter.Status != "" {
		query = query.Where("status", "==", string(filter.Status))
	}
	if filter.UserID != "" {
		query = query.Where("userId", "==", filter.UserID)
	}
	if filter.TechnicianID != "" {
		query = query.Where("technicianId", "==", filter.TechnicianID)
	}
	if filter.Category != "" {
		query = query.Where("category", "==", filter.Category)
	}
	if filter.Priority != "" {
		query = query.Where("priority", "==", filter.Priority)
	}

	// Secondary order on document id keeps the cursor stable when dates tie.
	query = query.OrderBy("date", firestore.Desc).OrderBy(firestore.DocumentID, firestore.Desc)

	if cursor != "" {
		snap, err := r.client.Collection("complaints").Doc(cursor).Get(ctx)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return nil, false, errors.BadRequest("Invalid pagination cursor", err)
			}
			return nil, false, errors.Internal("Failed to resolve pagination cursor", err)
		}
		query = query.StartAfter(snap.Data()["date"], snap.Ref.ID)
	}

	if limit <= 0 {
		limit = 20
	}

	// Fetch one extra row so hasMore never reports a false negative when the
	// result count happens to equal the page size.
	iter := query.Limit(limit + 1).Documents(ctx)
	var complaints []*entity.Complaint

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, false, errors.Internal("Failed to iterate complaints", err)
		}

		var complaint entity.Complaint
		if err := doc.DataTo(&complaint); err != nil {
			return nil, false, errors.Internal("Failed to parse complaint data", err)
		}
		complaints = append(complaints, &complaint)
	}

	hasMore := len(complaints) > limit
	if hasMore {
		complaints = complaints[:limit]
	}

	return complaints, hasMore, nil
}

func (r *firestoreComplaintRepository) ListAll(ctx context.Context) ([]*entity.Complaint, error) {
	docs, err := r.client.Collection("complaints").Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to list complaints", err)
	}

	var complaints []*entity.Complaint
	for _, doc := range docs {
		var complaint entity.Complaint
		if err := doc.DataTo(&complaint); err != nil {
			return nil, errors.Internal("Failed to parse complaint data", err)
		}
		complaints = append(complaints, &complaint)
	}

	return complaints, nil
}

func (r *firestoreComplaintRepository) SetImages(ctx context.Context, id string, images []string) error {
	_, err := r.client.Collection("complaints").Doc(id).Update(ctx, []firestore.Update{
		{Path: "images", Value: images},
	})
	if err != nil {
		return errors.Internal("Failed to store complaint images", err)
	}

	return nil
}

func (r *firestoreComplaintRepository) Assign(ctx context.Context, id, technicianID string, at time.Time) error {
	ref := r.client.Collection("complaints").Doc(id)

	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Complaint", err)
			}
			return errors.Internal("Failed to get complaint", err)
		}

		var complaint entity.Complaint
		if err := doc.DataTo(&complaint); err != nil {
			return errors.Internal("Failed to parse complaint data", err)
		}

		if complaint.Status != entity.StatusPending {
			return errors.Conflict("Complaint state changed, it is no longer pending", nil)
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "technicianId", Value: technicianID},
			{Path: "assignedAt", Value: at},
			{Path: "status", Value: string(entity.StatusInProgress)},
		})
	})
}

func (r *firestoreComplaintRepository) Complete(ctx context.Context, id, technicianID, image, description string, at time.Time) error {
	ref := r.client.Collection("complaints").Doc(id)

	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Complaint", err)
			}
			return errors.Internal("Failed to get complaint", err)
		}

		var complaint entity.Complaint
		if err := doc.DataTo(&complaint); err != nil {
			return errors.Internal("Failed to parse complaint data", err)
		}

		if complaint.Status != entity.StatusInProgress || complaint.TechnicianID != technicianID {
			return errors.Conflict("Complaint state changed, it is no longer in progress for this technician", nil)
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "completedImage", Value: image},
			{Path: "completedDescription", Value: description},
			{Path: "completedAt", Value: at},
			{Path: "status", Value: string(entity.StatusCompleted)},
		})
	})
}

func (r *firestoreComplaintRepository) Rate(ctx context.Context, id string, rating int, feedback string) error {
	ref := r.client.Collection("complaints").Doc(id)

	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Complaint", err)
			}
			return errors.Internal("Failed to get complaint", err)
		}

		var complaint entity.Complaint
		if err := doc.DataTo(&complaint); err != nil {
			return errors.Internal("Failed to parse complaint data", err)
		}

		if complaint.Status != entity.StatusCompleted {
			return errors.Conflict("Complaint is not completed yet", nil)
		}
		if complaint.Rated() {
			return errors.Conflict("Complaint has already been rated", nil)
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "rating", Value: rating},
			{Path: "feedback", Value: feedback},
		})
	})
}

func (r *firestoreComplaintRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("complaints").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete complaint", err)
	}

	return nil
}

func (r *firestoreComplaintRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	docs, err := r.client.Collection("complaints").Where("category", "==", category).Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count complaints", err)
	}

	return int64(len(docs)), nil
}
