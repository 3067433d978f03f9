package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Lalo789/weddingplan/internal/logger"
	"github.com/Lalo789/weddingplan/internal/types"
)

type EventServiceRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.EventService) error
	GetByEventAndService(ctx context.Context, tx *gorm.DB, eventID, serviceID uuid.UUID) (*types.EventService, error)
	ListByEventID(ctx context.Context, tx *gorm.DB, eventID uuid.UUID) ([]*types.EventService, error)
	DeleteByEventAndService(ctx context.Context, tx *gorm.DB, eventID, serviceID uuid.UUID) (int64, error)
	DeleteByEventID(ctx context.Context, tx *gorm.DB, eventID uuid.UUID) error
	DeleteByEventIDs(ctx context.Context, tx *gorm.DB, eventIDs []uuid.UUID) error
	CountByServiceID(ctx context.Context, tx *gorm.DB, serviceID uuid.UUID) (int64, error)
}

type eventServiceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEventServiceRepo(db *gorm.DB, baseLog *logger.Logger) EventServiceRepo {
	repoLog := baseLog.With("repo", "EventServiceRepo")
	return &eventServiceRepo{db: db, log: repoLog}
}

func (r *eventServiceRepo) Create(ctx context.Context, tx *gorm.DB, row *types.EventService) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Create(row).Error
}

func (r *eventServiceRepo) GetByEventAndService(ctx context.Context, tx *gorm.DB, eventID, serviceID uuid.UUID) (*types.EventService, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var row types.EventService
	if err := transaction.WithContext(ctx).
		Where("event_id = ? AND service_id = ?", eventID, serviceID).
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *eventServiceRepo) ListByEventID(ctx context.Context, tx *gorm.DB, eventID uuid.UUID) ([]*types.EventService, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.EventService
	if err := transaction.WithContext(ctx).
		Preload("Service").
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *eventServiceRepo) DeleteByEventAndService(ctx context.Context, tx *gorm.DB, eventID, serviceID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("event_id = ? AND service_id = ?", eventID, serviceID).
		Delete(&types.EventService{})
	return res.RowsAffected, res.Error
}

func (r *eventServiceRepo) DeleteByEventID(ctx context.Context, tx *gorm.DB, eventID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("event_id = ?", eventID).
		Delete(&types.EventService{}).Error
}

func (r *eventServiceRepo) DeleteByEventIDs(ctx context.Context, tx *gorm.DB, eventIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(eventIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("event_id IN ?", eventIDs).
		Delete(&types.EventService{}).Error
}

func (r *eventServiceRepo) CountByServiceID(ctx context.Context, tx *gorm.DB, serviceID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.EventService{}).
		Where("service_id = ?", serviceID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
