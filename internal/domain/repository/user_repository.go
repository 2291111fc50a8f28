package repository

import (
	"context"

	"laporin/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)
	ListTechniciansByDepartment(ctx context.Context, department string) ([]*entity.User, error)
}
