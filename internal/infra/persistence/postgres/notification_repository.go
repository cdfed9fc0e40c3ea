// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"pernoite/internal/domain/entity"
	domainerrors "pernoite/internal/domain/errors"
	"pernoite/internal/domain/repository"
	"pernoite/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new scheduled notification.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.ScheduledNotification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrNotificationCreationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt
	notification.UpdatedAt = notificationM.UpdatedAt

	return nil
}

// FindNotificationByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.ScheduledNotification, error) {
	var notificationM model.ScheduledNotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// ListNotifications retrieves notifications newest first with pagination.
func (repo *notificationRepository) ListNotifications(ctx context.Context, limit, offset int) ([]*entity.ScheduledNotification, error) {
	var notificationModels []*model.ScheduledNotificationModel

	query := repo.db.WithContext(ctx).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]*entity.ScheduledNotification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// ListDueNotifications retrieves up to limit unsent notifications whose
// scheduled time has passed, oldest first so a backlog drains in order.
func (repo *notificationRepository) ListDueNotifications(ctx context.Context, now time.Time, limit int) ([]*entity.ScheduledNotification, error) {
	var notificationModels []*model.ScheduledNotificationModel

	query := repo.db.WithContext(ctx).
		Where("sent = ? AND scheduled_for <= ?", false, now).
		Order("scheduled_for ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list due notifications")
	}

	notifications := make([]*entity.ScheduledNotification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// ClaimNotification atomically flips sent from false to true. The WHERE clause
// carries the sent = false guard, so exactly one concurrent caller observes an
// affected row and becomes the deliverer.
func (repo *notificationRepository) ClaimNotification(ctx context.Context, id uuid.UUID, sentAt time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ScheduledNotificationModel{}).
		Where("id = ? AND sent = ?", id, false).
		Updates(map[string]interface{}{
			"sent":    true,
			"sent_at": sentAt,
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to claim notification")
	}

	return result.RowsAffected > 0, nil
}

// FinalizeNotification writes the aggregated counters for a claimed notification.
func (repo *notificationRepository) FinalizeNotification(ctx context.Context, id uuid.UUID, deliveryResult *entity.DeliveryResult) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ScheduledNotificationModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_sent":    deliveryResult.TotalSent,
			"total_failed":  deliveryResult.TotalFailed,
			"total_skipped": deliveryResult.TotalSkipped,
			"error_message": deliveryResult.ErrorMessage,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to finalize notification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM ScheduledNotificationModel to a domain ScheduledNotification entity.
func toNotificationDomain(data *model.ScheduledNotificationModel) *entity.ScheduledNotification {
	if data == nil {
		return nil
	}

	return &entity.ScheduledNotification{
		ID:           data.ID,
		Title:        data.Title,
		Body:         data.Body,
		Data:         map[string]any(data.Data),
		Category:     entity.Category(data.Category),
		ScheduledFor: data.ScheduledFor,
		Targeting: entity.Targeting{
			Kind:          entity.TargetingKind(data.TargetKind),
			UserIDs:       []uuid.UUID(data.TargetUserIDs),
			Role:          entity.Role(data.TargetRole),
			MotelID:       data.TargetMotelID,
			IncludeGuests: data.IncludeGuests,
		},
		Sent:         data.Sent,
		SentAt:       data.SentAt,
		TotalSent:    data.TotalSent,
		TotalFailed:  data.TotalFailed,
		TotalSkipped: data.TotalSkipped,
		ErrorMessage: data.ErrorMessage,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromNotificationDomain converts a domain ScheduledNotification entity to a GORM ScheduledNotificationModel.
func fromNotificationDomain(data *entity.ScheduledNotification) *model.ScheduledNotificationModel {
	if data == nil {
		return nil
	}

	return &model.ScheduledNotificationModel{
		ID:            data.ID,
		Title:         data.Title,
		Body:          data.Body,
		Data:          model.JSONMap(data.Data),
		Category:      data.Category.String(),
		ScheduledFor:  data.ScheduledFor,
		TargetKind:    string(data.Targeting.Kind),
		TargetUserIDs: model.UUIDSlice(data.Targeting.UserIDs),
		TargetRole:    data.Targeting.Role.String(),
		TargetMotelID: data.Targeting.MotelID,
		IncludeGuests: data.Targeting.IncludeGuests,
		Sent:          data.Sent,
		SentAt:        data.SentAt,
		TotalSent:     data.TotalSent,
		TotalFailed:   data.TotalFailed,
		TotalSkipped:  data.TotalSkipped,
		ErrorMessage:  data.ErrorMessage,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
