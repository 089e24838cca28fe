package queries

import (
	"errors"

	"dronedash/internal/pkg/guard"
)

var (
	ErrCustomerOrderCountsQueryIsNotConstructed = errors.New(
		"CustomerOrderCountsQuery must be created via NewCustomerOrderCountsQuery constructor",
	)
)

// CustomerOrderCountsQuery aggregates orders per customer full name.
// Every order counts regardless of status. Grouping is by exact "First Last"
// string equality, so two customers sharing a name are merged — accepted
// behavior, not an oversight.
type CustomerOrderCountsQuery struct {
	guard guard.ConstructorGuard
}

// NewCustomerOrderCountsQuery creates a query for per-customer order counts.
func NewCustomerOrderCountsQuery() CustomerOrderCountsQuery {
	return CustomerOrderCountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrCustomerOrderCountsQueryIsNotConstructed if validation fails.
func (q CustomerOrderCountsQuery) Validate() error {
	return q.guard.Validate(ErrCustomerOrderCountsQueryIsNotConstructed)
}
