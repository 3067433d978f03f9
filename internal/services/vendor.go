package services

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Lalo789/weddingplan/internal/logger"
	errs "github.com/Lalo789/weddingplan/internal/pkg/errors"
	"github.com/Lalo789/weddingplan/internal/repos"
	"github.com/Lalo789/weddingplan/internal/types"
)

const (
	vendorNameMinLen = 3
	vendorNameMaxLen = 150
)

var (
	ratingMin = decimal.Zero
	ratingMax = decimal.NewFromInt(5)
)

type VendorInput struct {
	Name        string
	ServiceType string
	ContactName string
	Phone       string
	Email       string
	Rating      *decimal.Decimal
	Notes       string
	Active      bool
}

// VendorService mirrors the catalog CRUD but without the in-use delete
// guard: vendors have no relationship to events and delete unconditionally.
type VendorService interface {
	Create(ctx context.Context, actor *types.User, in VendorInput) (*types.Vendor, error)
	Update(ctx context.Context, actor *types.User, id uuid.UUID, in VendorInput) (*types.Vendor, error)
	Delete(ctx context.Context, actor *types.User, id uuid.UUID) error
	List(ctx context.Context, actor *types.User) ([]*types.Vendor, error)
}

type vendorService struct {
	db         *gorm.DB
	log        *logger.Logger
	vendorRepo repos.VendorRepo
}

func NewVendorService(db *gorm.DB, baseLog *logger.Logger, vendorRepo repos.VendorRepo) VendorService {
	return &vendorService{
		db:         db,
		log:        baseLog.With("service", "VendorService"),
		vendorRepo: vendorRepo,
	}
}

func (s *vendorService) Create(ctx context.Context, actor *types.User, in VendorInput) (*types.Vendor, error) {
	if !RequireAdmin(actor) {
		return nil, errs.ErrForbidden
	}
	in.Name = strings.TrimSpace(in.Name)
	if err := validateVendorInput(in); err != nil {
		return nil, err
	}

	vendor := &types.Vendor{
		ID:          uuid.New(),
		Name:        in.Name,
		ServiceType: in.ServiceType,
		ContactName: in.ContactName,
		Phone:       in.Phone,
		Email:       in.Email,
		Rating:      in.Rating,
		Notes:       in.Notes,
		Active:      in.Active,
	}
	if err := s.vendorRepo.Create(ctx, nil, vendor); err != nil {
		return nil, fmt.Errorf("create vendor: %w", err)
	}

	s.log.Info("vendor created", "vendor_id", vendor.ID, "name", vendor.Name)
	return vendor, nil
}

func (s *vendorService) Update(ctx context.Context, actor *types.User, id uuid.UUID, in VendorInput) (*types.Vendor, error) {
	if !RequireAdmin(actor) {
		return nil, errs.ErrForbidden
	}
	in.Name = strings.TrimSpace(in.Name)
	if err := validateVendorInput(in); err != nil {
		return nil, err
	}

	vendor, err := s.vendorRepo.GetByID(ctx, nil, id)
	if err != nil {
		if repos.IsNotFound(err) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("load vendor: %w", err)
	}

	vendor.Name = in.Name
	vendor.ServiceType = in.ServiceType
	vendor.ContactName = in.ContactName
	vendor.Phone = in.Phone
	vendor.Email = in.Email
	vendor.Rating = in.Rating
	vendor.Notes = in.Notes
	vendor.Active = in.Active
	if err := s.vendorRepo.Update(ctx, nil, vendor); err != nil {
		return nil, fmt.Errorf("update vendor: %w", err)
	}
	return vendor, nil
}

func (s *vendorService) Delete(ctx context.Context, actor *types.User, id uuid.UUID) error {
	if !RequireAdmin(actor) {
		return errs.ErrForbidden
	}
	if _, err := s.vendorRepo.GetByID(ctx, nil, id); err != nil {
		if repos.IsNotFound(err) {
			return errs.ErrNotFound
		}
		return fmt.Errorf("load vendor: %w", err)
	}
	return s.vendorRepo.Delete(ctx, nil, id)
}

func (s *vendorService) List(ctx context.Context, actor *types.User) ([]*types.Vendor, error) {
	if !RequireAdmin(actor) {
		return nil, errs.ErrForbidden
	}
	return s.vendorRepo.ListAll(ctx, nil)
}

func validateVendorInput(in VendorInput) error {
	if l := len(in.Name); l < vendorNameMinLen || l > vendorNameMaxLen {
		return errs.NewValidation("name", fmt.Sprintf("must be between %d and %d characters", vendorNameMinLen, vendorNameMaxLen))
	}
	if in.Email != "" {
		if _, err := mail.ParseAddress(in.Email); err != nil {
			return errs.NewValidation("email", "must be a valid email address")
		}
	}
	if in.Rating != nil {
		if in.Rating.LessThan(ratingMin) || in.Rating.GreaterThan(ratingMax) {
			return errs.NewValidation("rating", "must be between 0.00 and 5.00")
		}
	}
	return nil
}
