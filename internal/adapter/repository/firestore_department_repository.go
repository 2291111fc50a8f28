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

type firestoreDepartmentRepository struct {
	client *firestore.Client
}

func NewFirestoreDepartmentRepository(client *firestore.Client) repository.DepartmentRepository {
	return &firestoreDepartmentRepository{
		client: client,
	}
}

func (r *firestoreDepartmentRepository) Create(ctx context.Context, department *entity.Department) error {
	if department.ID == "" {
		doc := r.client.Collection("departments").NewDoc()
		department.ID = doc.ID
	}

	if department.CreatedAt.IsZero() {
		department.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("departments").Doc(department.ID).Set(ctx, department)
	if err != nil {
		return errors.Internal("Failed to create department", err)
	}

	return nil
}

func (r *firestoreDepartmentRepository) GetByID(ctx context.Context, id string) (*entity.Department, error) {
	doc, err := r.client.Collection("departments").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Department", err)
		}
		return nil, errors.Internal("Failed to get department", err)
	}

	var department entity.Department
	if err := doc.DataTo(&department); err != nil {
		return nil, errors.Internal("Failed to parse department data", err)
	}

	return &department, nil
}

func (r *firestoreDepartmentRepository) List(ctx context.Context) ([]*entity.Department, error) {
	iter := r.client.Collection("departments").Documents(ctx)
	var departments []*entity.Department

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate departments", err)
		}

		var department entity.Department
		if err := doc.DataTo(&department); err != nil {
			return nil, errors.Internal("Failed to parse department data", err)
		}
		departments = append(departments, &department)
	}

	return departments, nil
}

func (r *firestoreDepartmentRepository) Update(ctx context.Context, department *entity.Department) error {
	_, err := r.client.Collection("departments").Doc(department.ID).Set(ctx, department)
	if err != nil {
		return errors.Internal("Failed to update department", err)
	}

	return nil
}

func (r *firestoreDepartmentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("departments").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete department", err)
	}

	return nil
}
