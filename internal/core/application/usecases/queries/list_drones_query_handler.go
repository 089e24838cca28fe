package queries

import (
	"context"
)

// ListDronesQueryHandler retrieves drone read models from the fleet registry.
// Results come back in registry insertion order (creation order), which is
// stable across calls.
type ListDronesQueryHandler struct {
	fleet FleetReader
}

// NewListDronesQueryHandler creates a handler for drone list queries.
func NewListDronesQueryHandler(fleet FleetReader) ListDronesQueryHandler {
	return ListDronesQueryHandler{fleet: fleet}
}

// Handle executes the query and converts matching drones into read models.
func (h ListDronesQueryHandler) Handle(ctx context.Context, query ListDronesQuery) ([]DroneResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drones, err := h.fleet.GetAll(ctx, query.Filter())
	if err != nil {
		return nil, err
	}

	response := make([]DroneResponse, 0, len(drones))
	for _, d := range drones {
		response = append(response, DroneResponse{
			ID:     d.ID(),
			Name:   d.Name(),
			Status: d.Status(),
		})
	}

	return response, nil
}
