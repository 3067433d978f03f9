package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	errs "github.com/Lalo789/weddingplan/internal/pkg/errors"
	"github.com/Lalo789/weddingplan/internal/types"
)

func TestListAccountsAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.registerClient(t, "alice")
	admin := env.createAdmin(t, "admin")

	if _, err := env.account.List(ctx, alice); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("client list: want=ErrForbidden got=%v", err)
	}
	users, err := env.account.List(ctx, admin)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("users: want=2 got=%d", len(users))
	}
}

func TestToggleActive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.registerClient(t, "alice")
	admin := env.createAdmin(t, "admin")

	got, err := env.account.ToggleActive(ctx, admin, alice.ID)
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if got.Active {
		t.Fatal("account should be inactive after toggle")
	}

	got, err = env.account.ToggleActive(ctx, admin, alice.ID)
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if !got.Active {
		t.Fatal("account should be active after second toggle")
	}
}

func TestToggleActiveGuards(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.registerClient(t, "alice")
	admin := env.createAdmin(t, "admin")

	if _, err := env.account.ToggleActive(ctx, alice, admin.ID); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("client toggle: want=ErrForbidden got=%v", err)
	}
	if _, err := env.account.ToggleActive(ctx, admin, admin.ID); !errors.Is(err, errs.ErrSelfDeactivation) {
		t.Fatalf("self toggle: want=ErrSelfDeactivation got=%v", err)
	}
	if _, err := env.account.ToggleActive(ctx, admin, uuid.New()); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("missing target: want=ErrNotFound got=%v", err)
	}
}

func TestDeleteAccountCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.registerClient(t, "alice")
	admin := env.createAdmin(t, "admin")
	event := env.createEvent(t, alice, "Beach Wedding")
	catering := env.seedService(t, admin, "Catering", "500.00")

	if _, err := env.event.Attach(ctx, alice, event.ID, AttachInput{
		ServiceID:   catering.ID,
		AgreedPrice: mustDecimal(t, "450.00"),
	}); err != nil {
		t.Fatalf("attach: %v", err)
	}

	if err := env.account.Delete(ctx, admin, alice.ID); err != nil {
		t.Fatalf("delete account: %v", err)
	}

	if _, err := env.account.GetByID(ctx, alice.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("deleted user: want=ErrNotFound got=%v", err)
	}
	if _, err := env.event.Get(ctx, admin, event.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("cascaded event: want=ErrNotFound got=%v", err)
	}
	rows, err := env.eventServiceRepo.ListByEventID(ctx, nil, event.ID)
	if err != nil {
		t.Fatalf("list attachments: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("cascaded attachments: want=0 got=%d", len(rows))
	}
	// The catalog service itself survives the cascade.
	if _, err := env.catalog.GetService(ctx, catering.ID); err != nil {
		t.Fatalf("catalog service must survive: %v", err)
	}
}

func TestDeleteAccountGuards(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.registerClient(t, "alice")
	admin := env.createAdmin(t, "admin")

	if err := env.account.Delete(ctx, alice, admin.ID); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("client delete: want=ErrForbidden got=%v", err)
	}
	if err := env.account.Delete(ctx, admin, admin.ID); !errors.Is(err, errs.ErrSelfDeactivation) {
		t.Fatalf("self delete: want=ErrSelfDeactivation got=%v", err)
	}
	if err := env.account.Delete(ctx, admin, uuid.New()); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("missing target: want=ErrNotFound got=%v", err)
	}
}

func TestLegacyClients(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	record := &types.ClientRecord{
		ID:    uuid.New(),
		Name:  "Imported Client",
		Email: "imported@example.com",
	}
	if err := env.db.WithContext(ctx).Create(record).Error; err != nil {
		t.Fatalf("seed legacy row: %v", err)
	}

	rows, err := env.account.LegacyClients(ctx)
	if err != nil {
		t.Fatalf("legacy clients: %v", err)
	}
	if len(rows) != 1 || rows[0].Email != "imported@example.com" {
		t.Fatalf("legacy rows: got=%+v", rows)
	}
}
