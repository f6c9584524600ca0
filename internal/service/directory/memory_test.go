package directory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lfmorais/nara/backend/internal/service/directory"
)

func TestFindPersonByCPF(t *testing.T) {
	store := directory.NewMemoryStore()
	store.AddPerson("12345678901", "João da Silva", 1)
	ctx := context.Background()

	person, err := store.FindPersonByCPF(ctx, "12345678901")
	if err != nil {
		t.Fatalf("FindPersonByCPF err: %v", err)
	}
	if person.Name != "João da Silva" {
		t.Fatalf("unexpected name: %q", person.Name)
	}
	if !person.Known() {
		t.Fatal("classification 1 should be a known person")
	}

	if _, err := store.FindPersonByCPF(ctx, "00000000000"); !errors.Is(err, directory.ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound, got %v", err)
	}
}

func TestDuplicateDetection(t *testing.T) {
	store := directory.NewMemoryStore()
	store.AddPerson("12345678901", "João da Silva", 1)
	ctx := context.Background()

	grant := directory.GrantRequest{
		CPF:       "12345678901",
		TagNumber: "1234567890",
		Plate:     "ABC1234",
	}
	if err := store.GrantVehicleAccess(ctx, grant); err != nil {
		t.Fatalf("GrantVehicleAccess err: %v", err)
	}

	cases := []struct {
		tag, plate string
		want       bool
	}{
		{"1234567890", "XYZ0A00", true},  // same tag
		{"0000000000", "ABC1234", true},  // same plate
		{"0000000000", "XYZ0A00", false}, // neither
	}
	for _, tc := range cases {
		got, err := store.IsTagOrPlateDuplicate(ctx, tc.tag, tc.plate)
		if err != nil {
			t.Fatalf("IsTagOrPlateDuplicate err: %v", err)
		}
		if got != tc.want {
			t.Fatalf("duplicate(%s, %s) = %v, want %v", tc.tag, tc.plate, got, tc.want)
		}
	}
}

func TestGrantRequiresKnownPerson(t *testing.T) {
	store := directory.NewMemoryStore()

	err := store.GrantVehicleAccess(context.Background(), directory.GrantRequest{CPF: "12345678901"})
	if !errors.Is(err, directory.ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound, got %v", err)
	}
	if len(store.Grants()) != 0 {
		t.Fatal("failed grant must not be recorded")
	}
}
