package rest

import (
	"go.uber.org/zap"
)

type Config struct {
	// Port is the port where the server will listen
	Port int

	// AllowedOrigins is the CORS allowlist for browser clients
	AllowedOrigins []string

	// RoomsStorageType selects the room store backend
	RoomsStorageType string

	// ChatHistoryLimit caps the retained chat log per room
	ChatHistoryLimit int

	Logger *zap.Logger
}
