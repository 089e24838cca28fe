package queries

import (
	"errors"

	"dronedash/internal/core/domain/model/drone"
	"dronedash/internal/pkg/guard"
)

var (
	ErrListDronesQueryIsNotConstructed = errors.New(
		"ListDronesQuery must be created via NewListDronesQuery constructor",
	)
)

// ListDronesQuery retrieves drones in creation order, optionally restricted
// to a single status. The absence of a filter is an explicit nil, not a
// sentinel status value.
//
// Example:
//
//	// all drones
//	query, _ := NewListDronesQuery(nil)
//
//	// only active drones
//	query, _ := NewListDronesQuery(pointer.To(drone.Active))
type ListDronesQuery struct {
	filter *drone.Status

	guard guard.ConstructorGuard
}

// NewListDronesQuery creates a query for the drone list.
// A nil filter selects every drone; a non-nil filter must be a valid status.
func NewListDronesQuery(filter *drone.Status) (ListDronesQuery, error) {
	if filter != nil {
		if err := filter.Validate(); err != nil {
			return ListDronesQuery{}, err
		}
	}

	return ListDronesQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListDronesQueryIsNotConstructed if validation fails.
func (q ListDronesQuery) Validate() error {
	return q.guard.Validate(ErrListDronesQueryIsNotConstructed)
}

// Filter returns the optional status filter (nil means no filter).
func (q ListDronesQuery) Filter() *drone.Status {
	return q.filter
}
