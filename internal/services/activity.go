package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Lalo789/weddingplan/internal/logger"
	"github.com/Lalo789/weddingplan/internal/repos"
	"github.com/Lalo789/weddingplan/internal/types"
)

type ActivityService interface {
	Record(ctx context.Context, tx *gorm.DB, userID uuid.UUID, activityType string, payload map[string]any)
	ListRecent(ctx context.Context, limit int) ([]*types.ActivityEvent, error)
}

type activityService struct {
	db           *gorm.DB
	log          *logger.Logger
	activityRepo repos.ActivityRepo
}

func NewActivityService(db *gorm.DB, baseLog *logger.Logger, activityRepo repos.ActivityRepo) ActivityService {
	return &activityService{
		db:           db,
		log:          baseLog.With("service", "ActivityService"),
		activityRepo: activityRepo,
	}
}

// Record is best-effort: the audit trail must never fail the mutation it
// describes, so errors are logged and swallowed.
func (s *activityService) Record(ctx context.Context, tx *gorm.DB, userID uuid.UUID, activityType string, payload map[string]any) {
	var data []byte
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			s.log.Warn("activity payload marshal failed", "type", activityType, "error", err)
		} else {
			data = encoded
		}
	}
	row := &types.ActivityEvent{
		ID:     uuid.New(),
		UserID: userID,
		Type:   activityType,
		Data:   data,
	}
	if err := s.activityRepo.Create(ctx, tx, row); err != nil {
		s.log.Warn("activity record failed", "type", activityType, "error", err)
	}
}

func (s *activityService) ListRecent(ctx context.Context, limit int) ([]*types.ActivityEvent, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.activityRepo.ListRecent(ctx, nil, limit)
}
