// Package generator produces random order requests from configurable pools of
// cities, streets, and customer names.
package generator

import (
	"math/rand"
)

// Draw is one randomly generated order request.
type Draw struct {
	FirstName string
	LastName  string
	City      string
	Street    string
}

// RandomOrderGenerator draws uniformly from its pools.
// Not safe for concurrent use; the dispatcher console is single-actor.
type RandomOrderGenerator struct {
	pools Pools
	rand  *rand.Rand
}

// NewRandomOrderGenerator creates a generator over the given pools.
// The seed makes a run reproducible.
func NewRandomOrderGenerator(pools Pools, seed int64) (*RandomOrderGenerator, error) {
	if err := pools.Validate(); err != nil {
		return nil, err
	}

	return &RandomOrderGenerator{
		pools: pools,
		rand:  rand.New(rand.NewSource(seed)),
	}, nil
}

// Generate draws one order request.
func (g *RandomOrderGenerator) Generate() Draw {
	name := g.pools.Names[g.rand.Intn(len(g.pools.Names))]
	return Draw{
		FirstName: name.First,
		LastName:  name.Last,
		City:      g.pools.Cities[g.rand.Intn(len(g.pools.Cities))],
		Street:    g.pools.Streets[g.rand.Intn(len(g.pools.Streets))],
	}
}
