package usecase

import (
	"context"

	"laporin/internal/domain/entity"
	"laporin/internal/domain/repository"
)

type UserUseCase struct {
	userRepo repository.UserRepository
	uploads  *UploadUseCase
}

func NewUserUseCase(userRepo repository.UserRepository, uploads *UploadUseCase) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		uploads:  uploads,
	}
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

type UpdateProfileInput struct {
	Name  string
	Phone string
}

// UpdateProfile changes contact fields only; role and email are immutable.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *UserUseCase) UpdateAvatar(ctx context.Context, userID string, image ImageFile) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	url, err := uc.uploads.UploadAvatar(ctx, userID, image)
	if err != nil {
		return nil, err
	}

	user.Avatar = url
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ListTechnicians serves the admin's assignment picker; department narrows
// the list when given.
func (uc *UserUseCase) ListTechnicians(ctx context.Context, department string) ([]*entity.User, error) {
	return uc.userRepo.ListTechniciansByDepartment(ctx, department)
}
