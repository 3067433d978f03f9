package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/Lalo789/weddingplan/internal/logger"
	errs "github.com/Lalo789/weddingplan/internal/pkg/errors"
	"github.com/Lalo789/weddingplan/internal/repos"
	"github.com/Lalo789/weddingplan/internal/types"
)

const dashboardRecentLimit = 5

type DashboardSummary struct {
	TotalUsers     int64                  `json:"total_users"`
	TotalEvents    int64                  `json:"total_events"`
	TotalServices  int64                  `json:"total_services"`
	PendingEvents  int64                  `json:"pending_events"`
	RecentEvents   []*types.Event         `json:"recent_events"`
	RecentActivity []*types.ActivityEvent `json:"recent_activity"`
}

type DashboardService interface {
	Summary(ctx context.Context, actor *types.User) (*DashboardSummary, error)
}

type dashboardService struct {
	db          *gorm.DB
	log         *logger.Logger
	userRepo    repos.UserRepo
	eventRepo   repos.EventRepo
	serviceRepo repos.ServiceRepo
	activity    ActivityService
}

func NewDashboardService(
	db *gorm.DB,
	baseLog *logger.Logger,
	userRepo repos.UserRepo,
	eventRepo repos.EventRepo,
	serviceRepo repos.ServiceRepo,
	activity ActivityService,
) DashboardService {
	return &dashboardService{
		db:          db,
		log:         baseLog.With("service", "DashboardService"),
		userRepo:    userRepo,
		eventRepo:   eventRepo,
		serviceRepo: serviceRepo,
		activity:    activity,
	}
}

// Summary aggregates the admin dashboard counts and recent rows. The counts
// are independent reads, so they run concurrently.
func (s *dashboardService) Summary(ctx context.Context, actor *types.User) (*DashboardSummary, error) {
	if !RequireAdmin(actor) {
		return nil, errs.ErrForbidden
	}

	summary := &DashboardSummary{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.userRepo.Count(gctx, nil)
		summary.TotalUsers = count
		return err
	})
	g.Go(func() error {
		count, err := s.eventRepo.Count(gctx, nil)
		summary.TotalEvents = count
		return err
	})
	g.Go(func() error {
		count, err := s.serviceRepo.Count(gctx, nil)
		summary.TotalServices = count
		return err
	})
	g.Go(func() error {
		count, err := s.eventRepo.CountByStatus(gctx, nil, types.StatusPending)
		summary.PendingEvents = count
		return err
	})
	g.Go(func() error {
		events, err := s.eventRepo.ListRecent(gctx, nil, dashboardRecentLimit)
		summary.RecentEvents = events
		return err
	})
	g.Go(func() error {
		activity, err := s.activity.ListRecent(gctx, dashboardRecentLimit)
		summary.RecentActivity = activity
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	return summary, nil
}
