package postgres

import (
	"context"

	"pernoite/internal/domain/entity"
	domainerrors "pernoite/internal/domain/errors"
	"pernoite/internal/domain/repository"
	"pernoite/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tokenRepository implements the repository.TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// RegisterToken persists a new push token for a user or guest device.
func (repo *tokenRepository) RegisterToken(ctx context.Context, token *entity.PushToken) error {
	tokenM := fromTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateToken
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrTokenRegistrationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to register push token")
	}

	// Update the entity with generated values
	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt
	token.UpdatedAt = tokenM.UpdatedAt

	return nil
}

// FindActiveTokensByUser retrieves all active tokens owned by a user.
func (repo *tokenRepository) FindActiveTokensByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushToken, error) {
	var tokenModels []*model.PushTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active tokens by user")
	}

	return toTokenDomains(tokenModels), nil
}

// FindActiveGuestTokens retrieves all active tokens with no owning user.
func (repo *tokenRepository) FindActiveGuestTokens(ctx context.Context) ([]*entity.PushToken, error) {
	var tokenModels []*model.PushTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IS NULL AND is_active = ?", true).
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active guest tokens")
	}

	return toTokenDomains(tokenModels), nil
}

// DeactivateToken marks the token with the given gateway address inactive.
func (repo *tokenRepository) DeactivateToken(ctx context.Context, token string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PushTokenModel{}).
		Where("token = ?", token).
		Update("is_active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toTokenDomain converts a GORM PushTokenModel to a domain PushToken entity.
func toTokenDomain(data *model.PushTokenModel) *entity.PushToken {
	if data == nil {
		return nil
	}

	return &entity.PushToken{
		ID:        data.ID,
		UserID:    data.UserID,
		Token:     data.Token,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toTokenDomains converts a slice of GORM PushTokenModel to domain entities.
func toTokenDomains(data []*model.PushTokenModel) []*entity.PushToken {
	tokens := make([]*entity.PushToken, 0, len(data))
	for _, tokenM := range data {
		tokens = append(tokens, toTokenDomain(tokenM))
	}

	return tokens
}

// fromTokenDomain converts a domain PushToken entity to a GORM PushTokenModel.
func fromTokenDomain(data *entity.PushToken) *model.PushTokenModel {
	if data == nil {
		return nil
	}

	return &model.PushTokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Token:     data.Token,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
