package repository

import (
	"context"

	"laporin/internal/domain/entity"
)

type DepartmentRepository interface {
	Create(ctx context.Context, department *entity.Department) error
	GetByID(ctx context.Context, id string) (*entity.Department, error)
	List(ctx context.Context) ([]*entity.Department, error)
	Update(ctx context.Context, department *entity.Department) error
	Delete(ctx context.Context, id string) error
}
