package client

import "sync"

// Conn is the write side of the underlying websocket connection. Satisfied
// by *websocket.Conn.
type Conn interface {
	WriteJSON(v interface{}) error
}

// Client is one live connection, bound to at most one room under a display
// name for its whole lifetime. Rooms and the session engine only ever hold
// connection ids; the Client is looked up through storage when a frame
// actually has to be written.
type Client struct {
	// ID is the server-assigned connection id
	ID string

	// RoomID is the room this connection joined
	RoomID string

	// Name is the display name supplied on join
	Name string

	conn    Conn
	writeMu sync.Mutex
}

func New(id, roomID, name string, conn Conn) *Client {
	return &Client{
		ID:     id,
		RoomID: roomID,
		Name:   name,
		conn:   conn,
	}
}

// Send writes one JSON frame. The websocket allows a single concurrent
// writer, so writes are serialized with a per-connection mutex.
func (c *Client) Send(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(v)
}
