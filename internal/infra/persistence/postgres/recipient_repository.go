package postgres

import (
	"context"

	"pernoite/internal/domain/entity"
	"pernoite/internal/domain/repository"
	"pernoite/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recipientRepository implements the repository.RecipientRepository interface.
// Each resolver method runs one query for the matching user IDs and two bulk
// queries for their tokens and preferences, then assembles in memory. The
// query count stays constant regardless of audience size.
type recipientRepository struct {
	db *gorm.DB
}

// NewRecipientRepository is the constructor for recipientRepository.
func NewRecipientRepository(db *gorm.DB) repository.RecipientRepository {
	return &recipientRepository{
		db: db,
	}
}

// FindRecipientsByIDs retrieves recipients for an explicit user-id list.
// Unknown or inactive IDs are silently dropped.
func (repo *recipientRepository) FindRecipientsByIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entity.Recipient, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	return repo.findRecipients(ctx, repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id IN ? AND is_active = ?", userIDs, true))
}

// FindRecipientsByRole retrieves all active users holding the given role.
func (repo *recipientRepository) FindRecipientsByRole(ctx context.Context, role entity.Role) ([]*entity.Recipient, error) {
	return repo.findRecipients(ctx, repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("role = ? AND is_active = ?", role.String(), true))
}

// FindRecipientsByMotelFavorites retrieves all active users holding an active
// favorite on the given motel.
func (repo *recipientRepository) FindRecipientsByMotelFavorites(ctx context.Context, motelID uuid.UUID) ([]*entity.Recipient, error) {
	return repo.findRecipients(ctx, repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Joins("JOIN favorites ON favorites.user_id = users.id").
		Where("favorites.motel_id = ? AND favorites.is_active = ? AND users.is_active = ?", motelID, true, true))
}

// FindAllRecipients retrieves every active user for broadcast targeting.
func (repo *recipientRepository) FindAllRecipients(ctx context.Context) ([]*entity.Recipient, error) {
	return repo.findRecipients(ctx, repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("is_active = ?", true))
}

// findRecipients runs the prepared user query and attaches each user's active
// tokens and preference row.
func (repo *recipientRepository) findRecipients(ctx context.Context, userQuery *gorm.DB) ([]*entity.Recipient, error) {
	var userIDs []uuid.UUID
	if err := userQuery.Distinct().Pluck("users.id", &userIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to resolve recipient user IDs")
	}
	if len(userIDs) == 0 {
		return nil, nil
	}

	tokensByUser, err := repo.activeTokensByUser(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	prefsByUser, err := repo.preferencesByUser(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	recipients := make([]*entity.Recipient, 0, len(userIDs))
	for _, userID := range userIDs {
		recipients = append(recipients, &entity.Recipient{
			UserID:      userID,
			Tokens:      tokensByUser[userID],
			Preferences: prefsByUser[userID],
		})
	}

	return recipients, nil
}

func (repo *recipientRepository) activeTokensByUser(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]*entity.PushToken, error) {
	var tokenModels []*model.PushTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ? AND is_active = ?", userIDs, true).
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load recipient tokens")
	}

	tokensByUser := make(map[uuid.UUID][]*entity.PushToken, len(userIDs))
	for _, tokenM := range tokenModels {
		if tokenM.UserID == nil {
			continue
		}
		tokensByUser[*tokenM.UserID] = append(tokensByUser[*tokenM.UserID], toTokenDomain(tokenM))
	}

	return tokensByUser, nil
}

func (repo *recipientRepository) preferencesByUser(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.NotificationPreferences, error) {
	var prefsModels []*model.NotificationPreferenceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&prefsModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load recipient preferences")
	}

	prefsByUser := make(map[uuid.UUID]*entity.NotificationPreferences, len(prefsModels))
	for _, prefsM := range prefsModels {
		prefsByUser[prefsM.UserID] = toPreferenceDomain(prefsM)
	}

	return prefsByUser, nil
}
