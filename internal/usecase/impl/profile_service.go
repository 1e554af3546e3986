package impl

import (
	"context"
	"log/slog"

	deliverycontext "satoru/internal/delivery/context"
	"satoru/internal/domain/entity"
	domainerrors "satoru/internal/domain/errors"
	"satoru/internal/domain/repository"
	"satoru/internal/errors"
	"satoru/internal/usecase"

	"github.com/google/uuid"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(userRepo repository.UserRepository, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile retrieves the signed-in user's account.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Getting user profile", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(domainerrors.ErrUserNotFound, "failed to get user profile")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return user, nil
}
