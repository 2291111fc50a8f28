package usecase

import (
	"context"

	"laporin/internal/domain/entity"
	"laporin/internal/domain/repository"
	"laporin/pkg/errors"
)

type DepartmentUseCase struct {
	departmentRepo repository.DepartmentRepository
	userRepo       repository.UserRepository
	complaintRepo  repository.ComplaintRepository
}

func NewDepartmentUseCase(
	departmentRepo repository.DepartmentRepository,
	userRepo repository.UserRepository,
	complaintRepo repository.ComplaintRepository,
) *DepartmentUseCase {
	return &DepartmentUseCase{
		departmentRepo: departmentRepo,
		userRepo:       userRepo,
		complaintRepo:  complaintRepo,
	}
}

type DepartmentInput struct {
	Name        string
	Description string
}

func (uc *DepartmentUseCase) Create(ctx context.Context, actor *entity.User, input DepartmentInput) (*entity.Department, error) {
	if actor.Role != entity.RoleAdmin {
		return nil, errors.Forbidden("Admin privileges required", nil)
	}
	if input.Name == "" {
		return nil, errors.BadRequest("Department name is required", nil)
	}

	department := &entity.Department{
		Name:        input.Name,
		Description: input.Description,
	}

	if err := uc.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}

	return department, nil
}

func (uc *DepartmentUseCase) GetByID(ctx context.Context, id string) (*entity.Department, error) {
	return uc.departmentRepo.GetByID(ctx, id)
}

func (uc *DepartmentUseCase) List(ctx context.Context) ([]*entity.Department, error) {
	return uc.departmentRepo.List(ctx)
}

func (uc *DepartmentUseCase) Update(ctx context.Context, actor *entity.User, id string, input DepartmentInput) (*entity.Department, error) {
	if actor.Role != entity.RoleAdmin {
		return nil, errors.Forbidden("Admin privileges required", nil)
	}

	department, err := uc.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		department.Name = input.Name
	}
	if input.Description != "" {
		department.Description = input.Description
	}

	if err := uc.departmentRepo.Update(ctx, department); err != nil {
		return nil, err
	}

	return department, nil
}

// Delete refuses while any technician belongs to the department or any
// complaint still references it; the store itself enforces no referential
// integrity.
func (uc *DepartmentUseCase) Delete(ctx context.Context, actor *entity.User, id string) error {
	if actor.Role != entity.RoleAdmin {
		return errors.Forbidden("Admin privileges required", nil)
	}

	if _, err := uc.departmentRepo.GetByID(ctx, id); err != nil {
		return err
	}

	technicians, err := uc.userRepo.ListTechniciansByDepartment(ctx, id)
	if err != nil {
		return err
	}
	if len(technicians) > 0 {
		return errors.BadRequest("Cannot delete department with assigned technicians", nil)
	}

	count, err := uc.complaintRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.BadRequest("Cannot delete department with existing complaints", nil)
	}

	return uc.departmentRepo.Delete(ctx, id)
}
