// Package inmem provides in-memory implementations of the fleet and order
// repositories. State lives for the lifetime of the process; identifiers are
// handed out by each repository and are never reused within an instance.
package inmem
