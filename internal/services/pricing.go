package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Lalo789/weddingplan/internal/logger"
	errs "github.com/Lalo789/weddingplan/internal/pkg/errors"
	"github.com/Lalo789/weddingplan/internal/repos"
	"github.com/Lalo789/weddingplan/internal/types"
)

type PricingService interface {
	TotalCost(ctx context.Context, actor *types.User, eventID uuid.UUID) (decimal.Decimal, error)
}

type pricingService struct {
	db               *gorm.DB
	log              *logger.Logger
	eventRepo        repos.EventRepo
	eventServiceRepo repos.EventServiceRepo
}

func NewPricingService(
	db *gorm.DB,
	baseLog *logger.Logger,
	eventRepo repos.EventRepo,
	eventServiceRepo repos.EventServiceRepo,
) PricingService {
	return &pricingService{
		db:               db,
		log:              baseLog.With("service", "PricingService"),
		eventRepo:        eventRepo,
		eventServiceRepo: eventServiceRepo,
	}
}

// TotalCost sums the agreed price over the event's attachments with exact
// decimal arithmetic. An event with no attachments totals zero.
func (s *pricingService) TotalCost(ctx context.Context, actor *types.User, eventID uuid.UUID) (decimal.Decimal, error) {
	event, err := s.eventRepo.GetByID(ctx, nil, eventID)
	if err != nil {
		if repos.IsNotFound(err) {
			return decimal.Zero, errs.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("load event: %w", err)
	}
	if !CanViewEvent(actor, event) {
		return decimal.Zero, errs.ErrForbidden
	}

	rows, err := s.eventServiceRepo.ListByEventID(ctx, nil, eventID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("load attachments: %w", err)
	}
	return SumAgreedPrices(rows), nil
}

// SumAgreedPrices totals the attachments' agreed prices.
func SumAgreedPrices(rows []*types.EventService) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		if row == nil {
			continue
		}
		total = total.Add(row.AgreedPrice)
	}
	return total
}
