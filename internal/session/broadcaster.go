package session

// Outbound event names.
const (
	EventInitialState = "initial-state"
	EventDraw         = "draw"
	EventUndo         = "undo"
	EventRedo         = "redo"
	EventClearBoard   = "clear-board"
	EventChatMessage  = "chat-message"
	EventUserTyping   = "user-typing"
	EventUserLeft     = "user-left"
)

// Broadcaster is how the engine reaches clients. The engine only decides
// what to send and to whom; delivery is fire-and-forget and owned by the
// transport layer. A failed delivery to one member must never surface here.
type Broadcaster interface {
	// ToRoom sends an event to every member of a room. A non-empty
	// excludeConnID skips that one connection (the originator).
	ToRoom(roomID, event string, payload interface{}, excludeConnID string)

	// ToOne sends an event to a single connection.
	ToOne(connID, event string, payload interface{})
}

// TypingNotice is the pass-through payload for typing indicators. It is
// never stored.
type TypingNotice struct {
	Username string `json:"username"`
	IsTyping bool   `json:"isTyping"`
}
