package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	errs "github.com/Lalo789/weddingplan/internal/pkg/errors"
	"github.com/Lalo789/weddingplan/internal/types"
)

func TestSumAgreedPrices(t *testing.T) {
	tests := []struct {
		name   string
		prices []string
		want   string
	}{
		{name: "empty", prices: nil, want: "0"},
		{name: "single", prices: []string{"450.00"}, want: "450.00"},
		{name: "cents stay exact", prices: []string{"0.10", "0.20"}, want: "0.30"},
		{name: "mixed", prices: []string{"1200.50", "799.49", "0.01"}, want: "2000.00"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var rows []*types.EventService
			for _, p := range tc.prices {
				rows = append(rows, &types.EventService{AgreedPrice: mustDecimal(t, p)})
			}
			got := SumAgreedPrices(rows)
			if !got.Equal(mustDecimal(t, tc.want)) {
				t.Fatalf("total: want=%s got=%s", tc.want, got)
			}
		})
	}
}

func TestSumAgreedPricesSkipsNilRows(t *testing.T) {
	rows := []*types.EventService{nil, {AgreedPrice: mustDecimal(t, "99.99")}}
	if got := SumAgreedPrices(rows); !got.Equal(mustDecimal(t, "99.99")) {
		t.Fatalf("total: want=99.99 got=%s", got)
	}
}

func TestTotalCost(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.createAdmin(t, "admin")
	alice := env.registerClient(t, "alice")
	event := env.createEvent(t, alice, "Beach Wedding")

	total, err := env.pricing.TotalCost(ctx, alice, event.ID)
	if err != nil {
		t.Fatalf("total on empty event: %v", err)
	}
	if !total.IsZero() {
		t.Fatalf("empty event total: want=0 got=%s", total)
	}

	catering := env.seedService(t, admin, "Catering", "500.00")
	flowers := env.seedService(t, admin, "Flowers", "120.00")
	if _, err := env.event.Attach(ctx, alice, event.ID, AttachInput{ServiceID: catering.ID, AgreedPrice: mustDecimal(t, "450.00")}); err != nil {
		t.Fatalf("attach catering: %v", err)
	}
	if _, err := env.event.Attach(ctx, alice, event.ID, AttachInput{ServiceID: flowers.ID, AgreedPrice: mustDecimal(t, "99.99")}); err != nil {
		t.Fatalf("attach flowers: %v", err)
	}

	total, err = env.pricing.TotalCost(ctx, alice, event.ID)
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if !total.Equal(mustDecimal(t, "549.99")) {
		t.Fatalf("total: want=549.99 got=%s", total)
	}

	// Admins can price any event, strangers cannot.
	if _, err := env.pricing.TotalCost(ctx, admin, event.ID); err != nil {
		t.Fatalf("admin total: %v", err)
	}
	bob := env.registerClient(t, "bob")
	if _, err := env.pricing.TotalCost(ctx, bob, event.ID); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("stranger total: want=ErrForbidden got=%v", err)
	}

	if _, err := env.pricing.TotalCost(ctx, alice, uuid.New()); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("missing event: want=ErrNotFound got=%v", err)
	}
}

func TestTotalCostRestoredAfterDetach(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.createAdmin(t, "admin")
	alice := env.registerClient(t, "alice")
	event := env.createEvent(t, alice, "Beach Wedding")
	catering := env.seedService(t, admin, "Catering", "500.00")

	if _, err := env.event.Attach(ctx, alice, event.ID, AttachInput{
		ServiceID:   catering.ID,
		AgreedPrice: mustDecimal(t, "450.00"),
	}); err != nil {
		t.Fatalf("attach: %v", err)
	}
	total, err := env.pricing.TotalCost(ctx, alice, event.ID)
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if !total.Equal(mustDecimal(t, "450.00")) {
		t.Fatalf("total: want=450.00 got=%s", total)
	}

	if err := env.event.Detach(ctx, alice, event.ID, catering.ID); err != nil {
		t.Fatalf("detach: %v", err)
	}
	total, err = env.pricing.TotalCost(ctx, alice, event.ID)
	if err != nil {
		t.Fatalf("total after detach: %v", err)
	}
	if !total.IsZero() {
		t.Fatalf("total after detach: want=0 got=%s", total)
	}
}
