package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/Lalo789/weddingplan/internal/logger"
	"github.com/Lalo789/weddingplan/internal/types"
)

// ClientRecordRepo is read-only: the legacy clientes rows are kept for
// compatibility and never written by this application.
type ClientRecordRepo interface {
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.ClientRecord, error)
}

type clientRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewClientRecordRepo(db *gorm.DB, baseLog *logger.Logger) ClientRecordRepo {
	repoLog := baseLog.With("repo", "ClientRecordRepo")
	return &clientRecordRepo{db: db, log: repoLog}
}

func (r *clientRecordRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.ClientRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ClientRecord
	if err := transaction.WithContext(ctx).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
