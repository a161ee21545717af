package room

import (
	"github.com/noiseless47/doodlesphere-backend/internal/room"
)

const (
	InMemoryStorageType = "in-memory"
)

// Storage owns every live Room, keyed by the client-chosen room id. Rooms are
// created lazily on first join and deleted when their last member leaves.
// Membership changes go through the store, not through the Room directly, so
// that creating-and-adding and removing-and-deleting are each one critical
// section: a join racing the last leave either lands before the emptiness
// check or gets a fresh room, never a deleted one.
type Storage interface {
	// Join returns the room for the id, allocating an empty one if needed,
	// and registers the connection as a member in the same critical section.
	// The bool reports whether a new room was created.
	Join(id, connID, username string) (*room.Room, bool)
	Get(id string) (*room.Room, error)
	// Leave drops the connection from the room's members and, when it was the
	// last one, deletes the room in the same critical section. The bool
	// reports whether the room was deleted.
	Leave(id, connID string) (bool, error)
	Count() int
}
