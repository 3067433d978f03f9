package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Lalo789/weddingplan/internal/logger"
	errs "github.com/Lalo789/weddingplan/internal/pkg/errors"
	"github.com/Lalo789/weddingplan/internal/repos"
	"github.com/Lalo789/weddingplan/internal/types"
)

// EventDateLayout matches the datetime-local form value the clients submit.
const EventDateLayout = "2006-01-02T15:04"

const (
	titleMinLen    = 5
	titleMaxLen    = 200
	locationMinLen = 5
	locationMaxLen = 255
	guestCountMin  = 1
	guestCountMax  = 10000
)

type EventInput struct {
	Title           string
	Description     string
	EventDate       string // EventDateLayout
	Location        string
	GuestCount      *int
	EstimatedBudget *decimal.Decimal
	Status          string // honored only for administrator actors
}

type AttachInput struct {
	ServiceID   uuid.UUID
	AgreedPrice decimal.Decimal
	Notes       string
}

type EventService interface {
	Create(ctx context.Context, actor *types.User, in EventInput) (*types.Event, error)
	Get(ctx context.Context, actor *types.User, eventID uuid.UUID) (*types.Event, error)
	Edit(ctx context.Context, actor *types.User, eventID uuid.UUID, in EventInput) (*types.Event, error)
	Cancel(ctx context.Context, actor *types.User, eventID uuid.UUID) (*types.Event, error)
	Delete(ctx context.Context, actor *types.User, eventID uuid.UUID) error
	Attach(ctx context.Context, actor *types.User, eventID uuid.UUID, in AttachInput) (*types.EventService, error)
	Detach(ctx context.Context, actor *types.User, eventID, serviceID uuid.UUID) error
	ListForUser(ctx context.Context, actor *types.User) ([]*types.Event, error)
	ListAll(ctx context.Context, actor *types.User) ([]*types.Event, error)
}

type eventService struct {
	db               *gorm.DB
	log              *logger.Logger
	eventRepo        repos.EventRepo
	eventServiceRepo repos.EventServiceRepo
	serviceRepo      repos.ServiceRepo
	activity         ActivityService
}

func NewEventService(
	db *gorm.DB,
	baseLog *logger.Logger,
	eventRepo repos.EventRepo,
	eventServiceRepo repos.EventServiceRepo,
	serviceRepo repos.ServiceRepo,
	activity ActivityService,
) EventService {
	return &eventService{
		db:               db,
		log:              baseLog.With("service", "EventService"),
		eventRepo:        eventRepo,
		eventServiceRepo: eventServiceRepo,
		serviceRepo:      serviceRepo,
		activity:         activity,
	}
}

// Create books a new event for the actor. Events always start pending; a
// submitted status is ignored here regardless of role. A date that fails to
// parse rejects the operation before anything is written.
func (s *eventService) Create(ctx context.Context, actor *types.User, in EventInput) (*types.Event, error) {
	if actor == nil {
		return nil, errs.ErrForbidden
	}
	eventDate, err := validateEventInput(&in)
	if err != nil {
		return nil, err
	}

	event := &types.Event{
		ID:              uuid.New(),
		UserID:          actor.ID,
		Title:           in.Title,
		Description:     in.Description,
		EventDate:       eventDate,
		Location:        in.Location,
		GuestCount:      in.GuestCount,
		EstimatedBudget: in.EstimatedBudget,
		Status:          types.StatusPending,
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.eventRepo.Create(ctx, tx, event); err != nil {
			return err
		}
		s.activity.Record(ctx, tx, actor.ID, types.ActivityEventCreated, map[string]any{
			"event_id": event.ID.String(),
			"title":    event.Title,
		})
		return nil
	}); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.log.Info("event created", "event_id", event.ID, "user_id", actor.ID)
	return event, nil
}

func (s *eventService) Get(ctx context.Context, actor *types.User, eventID uuid.UUID) (*types.Event, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !CanViewEvent(actor, event) {
		return nil, errs.ErrForbidden
	}
	return event, nil
}

// Edit updates event fields behind the mutate gate. Only an administrator
// may change status directly; a client-submitted status is ignored, not
// rejected.
func (s *eventService) Edit(ctx context.Context, actor *types.User, eventID uuid.UUID, in EventInput) (*types.Event, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !CanMutateEvent(actor, event) {
		return nil, errs.ErrForbidden
	}

	eventDate, err := validateEventInput(&in)
	if err != nil {
		return nil, err
	}

	event.Title = in.Title
	event.Description = in.Description
	event.EventDate = eventDate
	event.Location = in.Location
	event.GuestCount = in.GuestCount
	event.EstimatedBudget = in.EstimatedBudget
	if actor.IsAdmin() && in.Status != "" {
		if !types.ValidStatus(in.Status) {
			return nil, errs.NewValidation("status", "unknown status")
		}
		event.Status = in.Status
	}

	if err := s.eventRepo.Update(ctx, nil, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

// Cancel sets the event to cancelled unconditionally once authorized; there
// is no guard on the current status.
func (s *eventService) Cancel(ctx context.Context, actor *types.User, eventID uuid.UUID) (*types.Event, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !CanMutateEvent(actor, event) {
		return nil, errs.ErrForbidden
	}

	event.Status = types.StatusCancelled
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.eventRepo.Update(ctx, tx, event); err != nil {
			return err
		}
		s.activity.Record(ctx, tx, actor.ID, types.ActivityEventCancelled, map[string]any{
			"event_id": event.ID.String(),
		})
		return nil
	}); err != nil {
		return nil, fmt.Errorf("cancel event: %w", err)
	}

	s.log.Info("event cancelled", "event_id", event.ID)
	return event, nil
}

// Delete removes the event and its attachments in one transaction. The
// child rows go first so the aggregate rule holds without relying on
// database-level cascades.
func (s *eventService) Delete(ctx context.Context, actor *types.User, eventID uuid.UUID) error {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if !CanMutateEvent(actor, event) {
		return errs.ErrForbidden
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.eventServiceRepo.DeleteByEventID(ctx, tx, eventID); err != nil {
			return err
		}
		if err := s.eventRepo.Delete(ctx, tx, eventID); err != nil {
			return err
		}
		s.activity.Record(ctx, tx, actor.ID, types.ActivityEventDeleted, map[string]any{
			"event_id": eventID.String(),
			"title":    event.Title,
		})
		return nil
	}); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.log.Info("event deleted", "event_id", eventID)
	return nil
}

// Attach adds a catalog service to the event at the agreed price. The
// (event, service) pair is unique; a duplicate fails with ErrAlreadyAttached
// and leaves state unchanged. The composite unique index settles concurrent
// duplicates.
func (s *eventService) Attach(ctx context.Context, actor *types.User, eventID uuid.UUID, in AttachInput) (*types.EventService, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !CanMutateEvent(actor, event) {
		return nil, errs.ErrForbidden
	}
	if !in.AgreedPrice.IsPositive() {
		return nil, errs.NewValidation("agreed_price", "must be greater than zero")
	}

	if _, err := s.serviceRepo.GetByID(ctx, nil, in.ServiceID); err != nil {
		if repos.IsNotFound(err) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("load service: %w", err)
	}

	if _, err := s.eventServiceRepo.GetByEventAndService(ctx, nil, eventID, in.ServiceID); err == nil {
		return nil, errs.ErrAlreadyAttached
	} else if !repos.IsNotFound(err) {
		return nil, fmt.Errorf("check attachment: %w", err)
	}

	row := &types.EventService{
		ID:          uuid.New(),
		EventID:     eventID,
		ServiceID:   in.ServiceID,
		AgreedPrice: in.AgreedPrice,
		Notes:       in.Notes,
	}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.eventServiceRepo.Create(ctx, tx, row); err != nil {
			return err
		}
		s.activity.Record(ctx, tx, actor.ID, types.ActivityServiceAttached, map[string]any{
			"event_id":     eventID.String(),
			"service_id":   in.ServiceID.String(),
			"agreed_price": in.AgreedPrice.String(),
		})
		return nil
	}); err != nil {
		if repos.IsDuplicate(err) {
			return nil, errs.ErrAlreadyAttached
		}
		return nil, fmt.Errorf("attach service: %w", err)
	}

	s.log.Info("service attached", "event_id", eventID, "service_id", in.ServiceID)
	return row, nil
}

func (s *eventService) Detach(ctx context.Context, actor *types.User, eventID, serviceID uuid.UUID) error {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if !CanMutateEvent(actor, event) {
		return errs.ErrForbidden
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		affected, err := s.eventServiceRepo.DeleteByEventAndService(ctx, tx, eventID, serviceID)
		if err != nil {
			return fmt.Errorf("detach service: %w", err)
		}
		if affected == 0 {
			return errs.ErrNotFound
		}
		s.activity.Record(ctx, tx, actor.ID, types.ActivityServiceDetached, map[string]any{
			"event_id":   eventID.String(),
			"service_id": serviceID.String(),
		})
		return nil
	})
}

func (s *eventService) ListForUser(ctx context.Context, actor *types.User) ([]*types.Event, error) {
	if actor == nil {
		return nil, errs.ErrForbidden
	}
	return s.eventRepo.ListByUserID(ctx, nil, actor.ID)
}

func (s *eventService) ListAll(ctx context.Context, actor *types.User) ([]*types.Event, error) {
	if !RequireAdmin(actor) {
		return nil, errs.ErrForbidden
	}
	return s.eventRepo.ListAll(ctx, nil)
}

func (s *eventService) loadEvent(ctx context.Context, eventID uuid.UUID) (*types.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, nil, eventID)
	if err != nil {
		if repos.IsNotFound(err) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("load event: %w", err)
	}
	return event, nil
}

func validateEventInput(in *EventInput) (time.Time, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Location = strings.TrimSpace(in.Location)

	if l := len(in.Title); l < titleMinLen || l > titleMaxLen {
		return time.Time{}, errs.NewValidation("title", fmt.Sprintf("must be between %d and %d characters", titleMinLen, titleMaxLen))
	}
	if len(in.Description) > descriptionMaxLen {
		return time.Time{}, errs.NewValidation("description", fmt.Sprintf("cannot exceed %d characters", descriptionMaxLen))
	}
	if l := len(in.Location); l < locationMinLen || l > locationMaxLen {
		return time.Time{}, errs.NewValidation("location", fmt.Sprintf("must be between %d and %d characters", locationMinLen, locationMaxLen))
	}
	if in.GuestCount != nil {
		if *in.GuestCount < guestCountMin || *in.GuestCount > guestCountMax {
			return time.Time{}, errs.NewValidation("guest_count", fmt.Sprintf("must be between %d and %d", guestCountMin, guestCountMax))
		}
	}
	if in.EstimatedBudget != nil && in.EstimatedBudget.IsNegative() {
		return time.Time{}, errs.NewValidation("estimated_budget", "cannot be negative")
	}
	eventDate, err := time.Parse(EventDateLayout, in.EventDate)
	if err != nil {
		return time.Time{}, errs.NewValidation("event_date", "invalid date format")
	}
	return eventDate, nil
}
