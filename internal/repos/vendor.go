package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Lalo789/weddingplan/internal/logger"
	"github.com/Lalo789/weddingplan/internal/types"
)

type VendorRepo interface {
	Create(ctx context.Context, tx *gorm.DB, vendor *types.Vendor) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Vendor, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Vendor, error)
	Update(ctx context.Context, tx *gorm.DB, vendor *types.Vendor) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type vendorRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVendorRepo(db *gorm.DB, baseLog *logger.Logger) VendorRepo {
	repoLog := baseLog.With("repo", "VendorRepo")
	return &vendorRepo{db: db, log: repoLog}
}

func (r *vendorRepo) Create(ctx context.Context, tx *gorm.DB, vendor *types.Vendor) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Create(vendor).Error
}

func (r *vendorRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Vendor, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var vendor types.Vendor
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&vendor).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Vendor, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Vendor
	if err := transaction.WithContext(ctx).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *vendorRepo) Update(ctx context.Context, tx *gorm.DB, vendor *types.Vendor) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Save(vendor).Error
}

func (r *vendorRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Vendor{}).Error
}
