package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/ramadan/internal/error_values"
	"github.com/limbo/ramadan/internal/repository"
	"github.com/limbo/ramadan/pkg/entity"
)

type UserService struct {
	repo repository.UsersRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI) *UserService {
	return &UserService{
		repo: usersRepo,
	}
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

// UpdateTimezone stores the zone used for entries created from now on.
// Existing entries keep the zone snapshotted at their creation.
func (us *UserService) UpdateTimezone(ctx context.Context, id uuid.UUID, req *UpdateTimezoneRequest) (*entity.User, error) {
	if req == nil {
		return nil, errorvalues.ErrInvalidRequest
	}
	if err := validateRequest(req); err != nil {
		return nil, errors.Join(errorvalues.ErrInvalidTimezone, err)
	}
	err := us.repo.UpdateTimezone(ctx, id, req.Zone, req.Source)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository updating error: " + err.Error())
	}
	slog.Info("timezone updated",
		slog.String("uid", id.String()),
		slog.String("zone", req.Zone),
		slog.String("source", string(req.Source)),
	)
	return us.GetByID(ctx, id)
}
