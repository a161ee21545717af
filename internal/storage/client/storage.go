package client

import (
	"github.com/noiseless47/doodlesphere-backend/internal/client"
)

const (
	InMemoryStorageType = "in-memory"
)

// Storage is the connection registry: every live connection keyed by its
// connection id. Lookup of a connection's room on disconnect is a single Get.
type Storage interface {
	Set(key string, value *client.Client) error
	Get(key string) (*client.Client, error)
	Delete(key string) error
	// GetAllWhere returns every client matching the predicate, in no
	// particular order. Used to fan a message out to a room.
	GetAllWhere(predicate func(*client.Client) bool) []*client.Client
}
