package inmem

import (
	"context"
	"fmt"
	"sync"

	"dronedash/internal/core/domain/model/drone"
	"dronedash/internal/pkg/errs"
)

// Seed fleet present at startup. The id sequence continues after them.
const (
	seedDroneOneName = "Bob"
	seedDroneTwoName = "Rick"
)

// FleetRepo is the in-memory fleet registry. It owns the drone id sequence
// and keeps drones in creation order; drones are never deleted.
//
// A fresh instance starts with the two seed drones (#1 "Bob", #2 "Rick") and
// hands out ids from 3. Constructing a new instance resets the sequence,
// which keeps tests isolated from each other.
//
// All methods are safe for concurrent use; the single mutex serializes
// mutation per registry, matching the one-mutator-at-a-time requirement.
type FleetRepo struct {
	mu     sync.Mutex
	drones []*drone.Drone
	index  map[int]*drone.Drone
	nextID int
}

// NewFleetRepo creates a fleet registry pre-populated with the seed drones.
func NewFleetRepo() (*FleetRepo, error) {
	r := &FleetRepo{
		index:  make(map[int]*drone.Drone),
		nextID: 1,
	}

	for _, name := range []string{seedDroneOneName, seedDroneTwoName} {
		d, err := drone.NewDrone(r.nextID, name)
		if err != nil {
			return nil, fmt.Errorf("seed fleet: %w", err)
		}
		r.nextID++
		r.drones = append(r.drones, d)
		r.index[d.ID()] = d
	}

	return r, nil
}

// NextID returns the next drone identifier and advances the sequence.
// Drawn ids are never reissued, even if the corresponding Add never happens.
func (r *FleetRepo) NextID(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	return id, nil
}

// Add appends a drone to the registry.
// Fails when the drone is invalid or its id is already present.
func (r *FleetRepo) Add(_ context.Context, d *drone.Drone) error {
	if err := d.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[d.ID()]; exists {
		return errs.NewValueIsInvalidErrorWithCause("drone", fmt.Errorf("id %d already exists", d.ID()))
	}

	r.drones = append(r.drones, d)
	r.index[d.ID()] = d
	return nil
}

// Update persists changes to an existing drone.
// The registry stores live aggregates, so the write is a presence check plus
// re-index; an unknown id yields an ObjectNotFoundError.
func (r *FleetRepo) Update(_ context.Context, d *drone.Drone) error {
	if err := d.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.index[d.ID()]
	if !exists {
		return errs.NewObjectNotFoundError("droneId", d.ID())
	}

	if stored != d {
		r.index[d.ID()] = d
		for i, existing := range r.drones {
			if existing.ID() == d.ID() {
				r.drones[i] = d
				break
			}
		}
	}

	return nil
}

// Get retrieves a drone by id, or an ObjectNotFoundError when absent.
func (r *FleetRepo) Get(_ context.Context, id int) (*drone.Drone, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, exists := r.index[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("droneId", id)
	}
	return d, nil
}

// GetAll returns drones in creation order. A nil filter selects every drone;
// otherwise only drones with the matching status are returned.
func (r *FleetRepo) GetAll(_ context.Context, filter *drone.Status) ([]*drone.Drone, error) {
	if filter != nil {
		if err := filter.Validate(); err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*drone.Drone, 0, len(r.drones))
	for _, d := range r.drones {
		if filter == nil || d.Status() == *filter {
			out = append(out, d)
		}
	}
	return out, nil
}
