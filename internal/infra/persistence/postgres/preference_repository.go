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

// preferenceRepository implements the repository.PreferenceRepository interface.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

// FindPreferencesByUser retrieves a user's preference row.
func (repo *preferenceRepository) FindPreferencesByUser(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreferences, error) {
	var prefsM model.NotificationPreferenceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&prefsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferencesNotFound
		}

		return nil, errors.Wrap(err, "failed to find preferences by user")
	}

	return toPreferenceDomain(&prefsM), nil
}

// EnsurePreferences retrieves the preference row, creating the all-enabled
// default row when absent. Two concurrent first reads race on the insert; the
// loser hits the primary-key conflict and re-reads the winner's row.
func (repo *preferenceRepository) EnsurePreferences(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreferences, error) {
	prefs, err := repo.FindPreferencesByUser(ctx, userID)
	if err == nil {
		return prefs, nil
	}
	if !errors.Is(err, repository.ErrPreferencesNotFound) {
		return nil, err
	}

	prefsM := fromPreferenceDomain(entity.DefaultNotificationPreferences(userID))
	if err := repo.db.WithContext(ctx).Create(prefsM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repo.FindPreferencesByUser(ctx, userID)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create default preferences")
	}

	return toPreferenceDomain(prefsM), nil
}

// UpdatePreferences persists changed switches for an existing row.
func (repo *preferenceRepository) UpdatePreferences(ctx context.Context, prefs *entity.NotificationPreferences) error {
	prefsM := fromPreferenceDomain(prefs)

	result := repo.db.WithContext(ctx).
		Model(&model.NotificationPreferenceModel{}).
		Where("user_id = ?", prefs.UserID).
		Updates(map[string]interface{}{
			"enable_notifications":     prefsM.EnableNotifications,
			"enable_push":              prefsM.EnablePush,
			"enable_advertising_push":  prefsM.EnableAdvertisingPush,
			"enable_security_push":     prefsM.EnableSecurityPush,
			"enable_maintenance_push":  prefsM.EnableMaintenancePush,
			"notify_contact_messages":  prefsM.NotifyContactMessages,
			"notify_new_prospects":     prefsM.NotifyNewProspects,
			"notify_payment_reminders": prefsM.NotifyPaymentReminders,
			"notify_motel_approvals":   prefsM.NotifyMotelApprovals,
			"notify_new_promos":        prefsM.NotifyNewPromos,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update preferences")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPreferencesNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPreferenceDomain converts a GORM NotificationPreferenceModel to a domain entity.
func toPreferenceDomain(data *model.NotificationPreferenceModel) *entity.NotificationPreferences {
	if data == nil {
		return nil
	}

	return &entity.NotificationPreferences{
		UserID:                 data.UserID,
		EnableNotifications:    data.EnableNotifications,
		EnablePush:             data.EnablePush,
		EnableAdvertisingPush:  data.EnableAdvertisingPush,
		EnableSecurityPush:     data.EnableSecurityPush,
		EnableMaintenancePush:  data.EnableMaintenancePush,
		NotifyContactMessages:  data.NotifyContactMessages,
		NotifyNewProspects:     data.NotifyNewProspects,
		NotifyPaymentReminders: data.NotifyPaymentReminders,
		NotifyMotelApprovals:   data.NotifyMotelApprovals,
		NotifyNewPromos:        data.NotifyNewPromos,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}

// fromPreferenceDomain converts a domain entity to a GORM NotificationPreferenceModel.
func fromPreferenceDomain(data *entity.NotificationPreferences) *model.NotificationPreferenceModel {
	if data == nil {
		return nil
	}

	return &model.NotificationPreferenceModel{
		UserID:                 data.UserID,
		EnableNotifications:    data.EnableNotifications,
		EnablePush:             data.EnablePush,
		EnableAdvertisingPush:  data.EnableAdvertisingPush,
		EnableSecurityPush:     data.EnableSecurityPush,
		EnableMaintenancePush:  data.EnableMaintenancePush,
		NotifyContactMessages:  data.NotifyContactMessages,
		NotifyNewProspects:     data.NotifyNewProspects,
		NotifyPaymentReminders: data.NotifyPaymentReminders,
		NotifyMotelApprovals:   data.NotifyMotelApprovals,
		NotifyNewPromos:        data.NotifyNewPromos,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}
