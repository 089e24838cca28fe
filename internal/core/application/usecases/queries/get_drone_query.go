package queries

import (
	"context"
	"errors"
	"fmt"

	"dronedash/internal/pkg/errs"
	"dronedash/internal/pkg/guard"
)

var (
	ErrGetDroneQueryIsNotConstructed = errors.New(
		"GetDroneQuery must be created via NewGetDroneQuery constructor",
	)
)

// GetDroneQuery retrieves a single drone read model by identifier.
type GetDroneQuery struct {
	droneID int

	guard guard.ConstructorGuard
}

// NewGetDroneQuery creates a query for one drone. The id must be positive.
func NewGetDroneQuery(droneID int) (GetDroneQuery, error) {
	if droneID <= 0 {
		return GetDroneQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"droneID", fmt.Errorf("%d is not greater than 0", droneID),
		)
	}

	return GetDroneQuery{
		droneID: droneID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDroneQuery) Validate() error {
	return q.guard.Validate(ErrGetDroneQueryIsNotConstructed)
}

// DroneID returns the drone identifier from the query.
func (q GetDroneQuery) DroneID() int {
	return q.droneID
}

// GetDroneQueryHandler resolves a single drone lookup.
// An unknown id surfaces as an error unwrapping to errs.ErrObjectNotFound.
type GetDroneQueryHandler struct {
	fleet FleetReader
}

// NewGetDroneQueryHandler creates a handler for single-drone lookups.
func NewGetDroneQueryHandler(fleet FleetReader) GetDroneQueryHandler {
	return GetDroneQueryHandler{fleet: fleet}
}

// Handle executes the lookup and converts the drone into a read model.
func (h GetDroneQueryHandler) Handle(ctx context.Context, query GetDroneQuery) (DroneResponse, error) {
	if err := query.Validate(); err != nil {
		return DroneResponse{}, err
	}

	d, err := h.fleet.Get(ctx, query.DroneID())
	if err != nil {
		return DroneResponse{}, err
	}

	return DroneResponse{
		ID:     d.ID(),
		Name:   d.Name(),
		Status: d.Status(),
	}, nil
}
