package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Lalo789/weddingplan/internal/logger"
	errs "github.com/Lalo789/weddingplan/internal/pkg/errors"
	"github.com/Lalo789/weddingplan/internal/repos"
	"github.com/Lalo789/weddingplan/internal/types"
)

type AccountService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*types.User, error)
	List(ctx context.Context, actor *types.User) ([]*types.User, error)
	ToggleActive(ctx context.Context, actor *types.User, targetID uuid.UUID) (*types.User, error)
	Delete(ctx context.Context, actor *types.User, targetID uuid.UUID) error
	LegacyClients(ctx context.Context) ([]*types.ClientRecord, error)
}

type accountService struct {
	db               *gorm.DB
	log              *logger.Logger
	userRepo         repos.UserRepo
	eventRepo        repos.EventRepo
	eventServiceRepo repos.EventServiceRepo
	clientRecordRepo repos.ClientRecordRepo
	activity         ActivityService
}

func NewAccountService(
	db *gorm.DB,
	baseLog *logger.Logger,
	userRepo repos.UserRepo,
	eventRepo repos.EventRepo,
	eventServiceRepo repos.EventServiceRepo,
	clientRecordRepo repos.ClientRecordRepo,
	activity ActivityService,
) AccountService {
	return &accountService{
		db:               db,
		log:              baseLog.With("service", "AccountService"),
		userRepo:         userRepo,
		eventRepo:        eventRepo,
		eventServiceRepo: eventServiceRepo,
		clientRecordRepo: clientRecordRepo,
		activity:         activity,
	}
}

func (s *accountService) GetByID(ctx context.Context, id uuid.UUID) (*types.User, error) {
	user, err := s.userRepo.GetByID(ctx, nil, id)
	if err != nil {
		if repos.IsNotFound(err) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}

func (s *accountService) List(ctx context.Context, actor *types.User) ([]*types.User, error) {
	if !RequireAdmin(actor) {
		return nil, errs.ErrForbidden
	}
	return s.userRepo.List(ctx, nil)
}

// ToggleActive flips the active flag. Deactivation is a toggle, never a
// delete, and an administrator may never deactivate their own account.
func (s *accountService) ToggleActive(ctx context.Context, actor *types.User, targetID uuid.UUID) (*types.User, error) {
	if !RequireAdmin(actor) {
		return nil, errs.ErrForbidden
	}
	if actor.ID == targetID {
		return nil, errs.ErrSelfDeactivation
	}

	target, err := s.userRepo.GetByID(ctx, nil, targetID)
	if err != nil {
		if repos.IsNotFound(err) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	target.Active = !target.Active
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Update(ctx, tx, target); err != nil {
			return err
		}
		s.activity.Record(ctx, tx, actor.ID, types.ActivityAccountToggled, map[string]any{
			"target_id": target.ID.String(),
			"active":    target.Active,
		})
		return nil
	}); err != nil {
		return nil, fmt.Errorf("toggle active: %w", err)
	}

	s.log.Info("account toggled", "target_id", target.ID, "active", target.Active)
	return target, nil
}

// Delete removes the account and cascades through its events and their
// service attachments in one transaction. The cascade is explicit so the
// aggregate rule holds on any backing store, not just one with FK cascades.
func (s *accountService) Delete(ctx context.Context, actor *types.User, targetID uuid.UUID) error {
	if !RequireAdmin(actor) {
		return errs.ErrForbidden
	}
	if actor.ID == targetID {
		return errs.ErrSelfDeactivation
	}

	if _, err := s.userRepo.GetByID(ctx, nil, targetID); err != nil {
		if repos.IsNotFound(err) {
			return errs.ErrNotFound
		}
		return fmt.Errorf("load user: %w", err)
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		eventIDs, err := s.eventRepo.ListIDsByUserID(ctx, tx, targetID)
		if err != nil {
			return err
		}
		if err := s.eventServiceRepo.DeleteByEventIDs(ctx, tx, eventIDs); err != nil {
			return err
		}
		if err := s.eventRepo.DeleteByUserID(ctx, tx, targetID); err != nil {
			return err
		}
		return s.userRepo.Delete(ctx, tx, targetID)
	}); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	s.log.Info("account deleted", "target_id", targetID)
	return nil
}

// LegacyClients lists the read-only clientes rows kept for compatibility.
func (s *accountService) LegacyClients(ctx context.Context) ([]*types.ClientRecord, error) {
	return s.clientRecordRepo.ListAll(ctx, nil)
}
