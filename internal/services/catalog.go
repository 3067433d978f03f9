package services

import (
	"context"
	"fmt"
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
	serviceNameMinLen = 3
	serviceNameMaxLen = 100
	descriptionMaxLen = 1000
	imageURLMaxLen    = 255

	searchMinQueryLen = 2
	searchMaxResults  = 10
)

type ServiceInput struct {
	Name        string
	Description string
	BasePrice   decimal.Decimal
	Category    string
	Available   bool
	ImageURL    string
}

type CatalogService interface {
	CreateService(ctx context.Context, actor *types.User, in ServiceInput) (*types.Service, error)
	UpdateService(ctx context.Context, actor *types.User, id uuid.UUID, in ServiceInput) (*types.Service, error)
	DeleteService(ctx context.Context, actor *types.User, id uuid.UUID) error
	GetService(ctx context.Context, id uuid.UUID) (*types.Service, error)
	ListAvailable(ctx context.Context) ([]*types.Service, error)
	ListAll(ctx context.Context, actor *types.User) ([]*types.Service, error)
	Search(ctx context.Context, query string) ([]*types.Service, error)
}

type catalogService struct {
	db               *gorm.DB
	log              *logger.Logger
	serviceRepo      repos.ServiceRepo
	eventServiceRepo repos.EventServiceRepo
}

func NewCatalogService(
	db *gorm.DB,
	baseLog *logger.Logger,
	serviceRepo repos.ServiceRepo,
	eventServiceRepo repos.EventServiceRepo,
) CatalogService {
	return &catalogService{
		db:               db,
		log:              baseLog.With("service", "CatalogService"),
		serviceRepo:      serviceRepo,
		eventServiceRepo: eventServiceRepo,
	}
}

func (s *catalogService) CreateService(ctx context.Context, actor *types.User, in ServiceInput) (*types.Service, error) {
	if !RequireAdmin(actor) {
		return nil, errs.ErrForbidden
	}
	in.Name = strings.TrimSpace(in.Name)
	if err := validateServiceInput(in); err != nil {
		return nil, err
	}

	service := &types.Service{
		ID:          uuid.New(),
		Name:        in.Name,
		Description: in.Description,
		BasePrice:   in.BasePrice,
		Category:    in.Category,
		Available:   in.Available,
		ImageURL:    in.ImageURL,
	}
	if err := s.serviceRepo.Create(ctx, nil, service); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	s.log.Info("service created", "service_id", service.ID, "name", service.Name)
	return service, nil
}

func (s *catalogService) UpdateService(ctx context.Context, actor *types.User, id uuid.UUID, in ServiceInput) (*types.Service, error) {
	if !RequireAdmin(actor) {
		return nil, errs.ErrForbidden
	}
	in.Name = strings.TrimSpace(in.Name)
	if err := validateServiceInput(in); err != nil {
		return nil, err
	}

	service, err := s.serviceRepo.GetByID(ctx, nil, id)
	if err != nil {
		if repos.IsNotFound(err) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("load service: %w", err)
	}

	service.Name = in.Name
	service.Description = in.Description
	service.BasePrice = in.BasePrice
	service.Category = in.Category
	service.Available = in.Available
	service.ImageURL = in.ImageURL
	if err := s.serviceRepo.Update(ctx, nil, service); err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	return service, nil
}

// DeleteService refuses, not cascades, when any event still references the
// service. The count of references is surfaced to the caller.
func (s *catalogService) DeleteService(ctx context.Context, actor *types.User, id uuid.UUID) error {
	if !RequireAdmin(actor) {
		return errs.ErrForbidden
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.serviceRepo.GetByID(ctx, tx, id); err != nil {
			if repos.IsNotFound(err) {
				return errs.ErrNotFound
			}
			return fmt.Errorf("load service: %w", err)
		}
		inUse, err := s.eventServiceRepo.CountByServiceID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("count references: %w", err)
		}
		if inUse > 0 {
			return errs.NewInUse(inUse)
		}
		return s.serviceRepo.Delete(ctx, tx, id)
	})
}

func (s *catalogService) GetService(ctx context.Context, id uuid.UUID) (*types.Service, error) {
	service, err := s.serviceRepo.GetByID(ctx, nil, id)
	if err != nil {
		if repos.IsNotFound(err) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("load service: %w", err)
	}
	return service, nil
}

func (s *catalogService) ListAvailable(ctx context.Context) ([]*types.Service, error) {
	return s.serviceRepo.ListAvailable(ctx, nil)
}

func (s *catalogService) ListAll(ctx context.Context, actor *types.User) ([]*types.Service, error) {
	if !RequireAdmin(actor) {
		return nil, errs.ErrForbidden
	}
	return s.serviceRepo.ListAll(ctx, nil)
}

// Search matches available services by case-insensitive substring. Queries
// under two characters return nothing to avoid overly broad scans.
func (s *catalogService) Search(ctx context.Context, query string) ([]*types.Service, error) {
	query = strings.TrimSpace(query)
	if len(query) < searchMinQueryLen {
		return []*types.Service{}, nil
	}
	return s.serviceRepo.SearchAvailable(ctx, nil, query, searchMaxResults)
}

func validateServiceInput(in ServiceInput) error {
	if l := len(in.Name); l < serviceNameMinLen || l > serviceNameMaxLen {
		return errs.NewValidation("name", fmt.Sprintf("must be between %d and %d characters", serviceNameMinLen, serviceNameMaxLen))
	}
	if len(in.Description) > descriptionMaxLen {
		return errs.NewValidation("description", fmt.Sprintf("cannot exceed %d characters", descriptionMaxLen))
	}
	if !in.BasePrice.IsPositive() {
		return errs.NewValidation("base_price", "must be greater than zero")
	}
	if len(in.ImageURL) > imageURLMaxLen {
		return errs.NewValidation("image_url", fmt.Sprintf("cannot exceed %d characters", imageURLMaxLen))
	}
	return nil
}
