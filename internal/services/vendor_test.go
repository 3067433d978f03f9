package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	errs "github.com/Lalo789/weddingplan/internal/pkg/errors"
)

func TestVendorCRUD(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.createAdmin(t, "admin")

	rating := mustDecimal(t, "4.5")
	vendor, err := env.vendor.Create(ctx, admin, VendorInput{
		Name:        "Flores del Valle",
		ServiceType: "florist",
		ContactName: "Maria",
		Email:       "maria@floresdelvalle.mx",
		Rating:      &rating,
		Active:      true,
	})
	if err != nil {
		t.Fatalf("create vendor: %v", err)
	}

	updated, err := env.vendor.Update(ctx, admin, vendor.ID, VendorInput{
		Name:        "Flores del Valle",
		ServiceType: "florist",
		Active:      false,
	})
	if err != nil {
		t.Fatalf("update vendor: %v", err)
	}
	if updated.Active {
		t.Fatal("vendor should be inactive after update")
	}

	list, err := env.vendor.List(ctx, admin)
	if err != nil {
		t.Fatalf("list vendors: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("vendors: want=1 got=%d", len(list))
	}

	if err := env.vendor.Delete(ctx, admin, vendor.ID); err != nil {
		t.Fatalf("delete vendor: %v", err)
	}
	if err := env.vendor.Delete(ctx, admin, vendor.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("delete missing: want=ErrNotFound got=%v", err)
	}
}

func TestVendorCreatedInactiveStaysInactive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.createAdmin(t, "admin")

	vendor, err := env.vendor.Create(ctx, admin, VendorInput{
		Name:        "Sonido Norteño",
		ServiceType: "music",
		Active:      false,
	})
	if err != nil {
		t.Fatalf("create vendor: %v", err)
	}
	if vendor.Active {
		t.Fatal("returned vendor should be inactive")
	}

	// The stored row must agree, not just the returned struct.
	list, err := env.vendor.List(ctx, admin)
	if err != nil {
		t.Fatalf("list vendors: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("vendors: want=1 got=%d", len(list))
	}
	if list[0].Active {
		t.Fatal("persisted vendor should be inactive")
	}
}

func TestVendorAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.registerClient(t, "alice")

	in := VendorInput{Name: "Flores del Valle", Active: true}
	if _, err := env.vendor.Create(ctx, alice, in); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("client create: want=ErrForbidden got=%v", err)
	}
	if _, err := env.vendor.List(ctx, alice); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("client list: want=ErrForbidden got=%v", err)
	}
	if err := env.vendor.Delete(ctx, alice, uuid.New()); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("client delete: want=ErrForbidden got=%v", err)
	}
}

func TestVendorValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.createAdmin(t, "admin")

	badRating := mustDecimal(t, "5.5")
	tests := []struct {
		name  string
		in    VendorInput
		field string
	}{
		{name: "short name", in: VendorInput{Name: "AB"}, field: "name"},
		{name: "bad email", in: VendorInput{Name: "Flores del Valle", Email: "nope"}, field: "email"},
		{name: "rating out of range", in: VendorInput{Name: "Flores del Valle", Rating: &badRating}, field: "rating"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.vendor.Create(ctx, admin, tc.in)
			var verr *errs.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("want validation error, got=%v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("field: want=%q got=%q", tc.field, verr.Field)
			}
		})
	}
}
