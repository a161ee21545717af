package ws

import (
	"go.uber.org/zap"

	"github.com/noiseless47/doodlesphere-backend/internal/client"
	cStorage "github.com/noiseless47/doodlesphere-backend/internal/storage/client"
)

// Dispatcher fans engine output out to live connections. It implements
// session.Broadcaster: delivery is fire-and-forget, and a write failure to
// one member only drops that member's frame. Dead connections are reaped by
// their own read loop, not here.
type Dispatcher struct {
	clients cStorage.Storage
	logger  *zap.Logger
}

func NewDispatcher(clients cStorage.Storage, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		clients: clients,
		logger:  logger,
	}
}

func (d *Dispatcher) ToRoom(roomID, event string, payload interface{}, excludeConnID string) {
	members := d.clients.GetAllWhere(func(c *client.Client) bool {
		return c.RoomID == roomID
	})

	for _, c := range members {
		if c.ID == excludeConnID {
			continue
		}
		if err := c.Send(Envelope{Event: event, Data: payload}); err != nil {
			d.logger.Debug("Failed to write frame",
				zap.String("connID", c.ID),
				zap.String("event", event),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) ToOne(connID, event string, payload interface{}) {
	c, err := d.clients.Get(connID)
	if err != nil {
		return
	}
	if err := c.Send(Envelope{Event: event, Data: payload}); err != nil {
		d.logger.Debug("Failed to write frame",
			zap.String("connID", connID),
			zap.String("event", event),
			zap.Error(err),
		)
	}
}
