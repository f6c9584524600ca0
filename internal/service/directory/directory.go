package directory

import (
	"context"
	"errors"
)

var (
	// ErrPersonNotFound signals that a CPF resolved to no resident record.
	ErrPersonNotFound = errors.New("person not found")
)

// ClassificationUnknown is the sentinel the residents table uses for
// records that exist but are not real residents; lookups treat it the
// same as not found.
const ClassificationUnknown = 99

// Person is a resident record as stored by the condo administration.
type Person struct {
	Sequence       int64  `json:"sequence"`
	Name           string `json:"name"`
	Classification int    `json:"classification"`
}

// Known reports whether the record belongs to a real resident.
func (p Person) Known() bool {
	return p.Classification != ClassificationUnknown
}

// GrantRequest carries everything needed to persist a completed TAG
// registration.
type GrantRequest struct {
	CPF          string
	TagNumber    string
	Plate        string
	Brand        string
	Model        string
	Color        string
	TagPhoto     []byte
	VehiclePhoto []byte
}

// Store is the identity and access persistence the bot relies on.
type Store interface {
	// FindPersonByCPF resolves a sanitized 11-digit CPF to a resident.
	// Returns ErrPersonNotFound when no record exists.
	FindPersonByCPF(ctx context.Context, cpf string) (Person, error)
	// IsTagOrPlateDuplicate reports whether the TAG number or the plate
	// is already registered to any vehicle.
	IsTagOrPlateDuplicate(ctx context.Context, tagNumber, plate string) (bool, error)
	// GrantVehicleAccess persists the vehicle, its access credential and
	// both photos for the resident owning the CPF.
	GrantVehicleAccess(ctx context.Context, req GrantRequest) error
}
