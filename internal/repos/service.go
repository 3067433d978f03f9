package repos

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Lalo789/weddingplan/internal/logger"
	"github.com/Lalo789/weddingplan/internal/types"
)

type ServiceRepo interface {
	Create(ctx context.Context, tx *gorm.DB, service *types.Service) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Service, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Service, error)
	ListAvailable(ctx context.Context, tx *gorm.DB) ([]*types.Service, error)
	SearchAvailable(ctx context.Context, tx *gorm.DB, query string, limit int) ([]*types.Service, error)
	Update(ctx context.Context, tx *gorm.DB, service *types.Service) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type serviceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewServiceRepo(db *gorm.DB, baseLog *logger.Logger) ServiceRepo {
	repoLog := baseLog.With("repo", "ServiceRepo")
	return &serviceRepo{db: db, log: repoLog}
}

func (r *serviceRepo) Create(ctx context.Context, tx *gorm.DB, service *types.Service) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Create(service).Error
}

func (r *serviceRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Service, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var service types.Service
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Service, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Service
	if err := transaction.WithContext(ctx).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *serviceRepo) ListAvailable(ctx context.Context, tx *gorm.DB) ([]*types.Service, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Service
	if err := transaction.WithContext(ctx).
		Where("available = ?", true).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *serviceRepo) SearchAvailable(ctx context.Context, tx *gorm.DB, query string, limit int) ([]*types.Service, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	// LOWER(...) LIKE keeps the match case-insensitive on both Postgres
	// and SQLite.
	pattern := "%" + strings.ToLower(query) + "%"

	var results []*types.Service
	if err := transaction.WithContext(ctx).
		Where("available = ? AND LOWER(name) LIKE ?", true, pattern).
		Order("name ASC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *serviceRepo) Update(ctx context.Context, tx *gorm.DB, service *types.Service) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Save(service).Error
}

func (r *serviceRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Service{}).Error
}

func (r *serviceRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Service{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
