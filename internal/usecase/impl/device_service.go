package impl

import (
	"context"
	"log/slog"

	"pernoite/internal/domain/entity"
	domainerrors "pernoite/internal/domain/errors"
	"pernoite/internal/domain/repository"
	"pernoite/internal/domain/service"
	"pernoite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// deviceService manages push-token registration and deactivation.
type deviceService struct {
	logger    *slog.Logger
	tokenRepo repository.TokenRepository
	gateway   service.PushGateway
}

// NewDeviceService creates the device usecase instance.
func NewDeviceService(logger *slog.Logger, tokenRepo repository.TokenRepository, gateway service.PushGateway) usecase.DeviceUsecase {
	return &deviceService{
		logger:    logger,
		tokenRepo: tokenRepo,
		gateway:   gateway,
	}
}

// RegisterToken registers a device token for a user or guest session. Tokens
// that do not match the gateway address format are rejected up front.
func (s *deviceService) RegisterToken(ctx context.Context, info *usecase.TokenInfo) (*entity.PushToken, error) {
	if !s.gateway.IsValidToken(info.Token) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("token does not match the gateway address format")
	}

	token := &entity.PushToken{
		ID:       uuid.New(),
		UserID:   info.UserID,
		Token:    info.Token,
		Platform: info.Platform,
		IsActive: true,
	}

	if err := s.tokenRepo.RegisterToken(ctx, token); err != nil {
		if errors.Is(err, repository.ErrDuplicateToken) {
			return nil, domainerrors.ErrTokenAlreadyRegistered
		}

		return nil, errors.Wrap(err, "failed to register token")
	}

	s.logger.Info("registered push token",
		slog.String("platform", token.Platform),
		slog.Bool("guest", token.IsGuest()),
	)

	return token, nil
}

// DeactivateToken marks a token inactive so it is never targeted again.
func (s *deviceService) DeactivateToken(ctx context.Context, token string) error {
	if err := s.tokenRepo.DeactivateToken(ctx, token); err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return domainerrors.ErrTokenNotFound
		}

		return errors.Wrap(err, "failed to deactivate token")
	}

	return nil
}

// GetUserTokens retrieves all active tokens owned by a user.
func (s *deviceService) GetUserTokens(ctx context.Context, userID uuid.UUID) ([]*entity.PushToken, error) {
	return s.tokenRepo.FindActiveTokensByUser(ctx, userID)
}
