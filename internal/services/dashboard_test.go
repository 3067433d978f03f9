package services

import (
	"context"
	"errors"
	"testing"

	errs "github.com/Lalo789/weddingplan/internal/pkg/errors"
	"github.com/Lalo789/weddingplan/internal/types"
)

func TestDashboardSummary(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.createAdmin(t, "admin")
	alice := env.registerClient(t, "alice")
	bob := env.registerClient(t, "bob")

	env.seedService(t, admin, "Catering", "500.00")
	env.createEvent(t, alice, "Beach Wedding")
	event := env.createEvent(t, bob, "Mountain Wedding")
	if _, err := env.event.Cancel(ctx, bob, event.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	summary, err := env.dashboard.Summary(ctx, admin)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalUsers != 3 {
		t.Fatalf("total users: want=3 got=%d", summary.TotalUsers)
	}
	if summary.TotalEvents != 2 {
		t.Fatalf("total events: want=2 got=%d", summary.TotalEvents)
	}
	if summary.TotalServices != 1 {
		t.Fatalf("total services: want=1 got=%d", summary.TotalServices)
	}
	if summary.PendingEvents != 1 {
		t.Fatalf("pending events: want=1 got=%d", summary.PendingEvents)
	}
	if len(summary.RecentEvents) != 2 {
		t.Fatalf("recent events: want=2 got=%d", len(summary.RecentEvents))
	}
	if len(summary.RecentActivity) == 0 {
		t.Fatal("recent activity must not be empty")
	}
}

func TestDashboardSummaryAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	alice := env.registerClient(t, "alice")
	if _, err := env.dashboard.Summary(context.Background(), alice); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("client summary: want=ErrForbidden got=%v", err)
	}
}

func TestActivityRecorded(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.registerClient(t, "alice")
	env.createEvent(t, alice, "Beach Wedding")

	rows, err := env.activity.ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("list activity: %v", err)
	}
	seen := map[string]bool{}
	for _, row := range rows {
		seen[row.Type] = true
	}
	if !seen[types.ActivityUserRegistered] {
		t.Fatal("registration activity missing")
	}
	if !seen[types.ActivityEventCreated] {
		t.Fatal("event creation activity missing")
	}
}
