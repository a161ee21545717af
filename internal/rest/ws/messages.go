package ws

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidMessage = errors.New("invalid message")

// Inbound event names. Outbound names live in the session package.
const (
	EventJoinRoom    = "join-room"
	EventDraw        = "draw"
	EventUndo        = "undo"
	EventRedo        = "redo"
	EventClearBoard  = "clear-board"
	EventChatMessage = "chat-message"
	EventTyping      = "typing"
)

// Message is the envelope every inbound frame starts with.
type Message struct {
	Event string `json:"event"`
}

// Envelope is the outbound frame: an event name plus its payload.
type Envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

type JoinRoomRequest struct {
	Message
	RoomID   string `json:"roomId"`
	Username string `json:"username"`
}

// DrawRequest keeps the drawable as raw bytes: the flat payload is decoded
// into its tagged variant by the models package, not here.
type DrawRequest struct {
	Message
	RoomID string          `json:"roomId"`
	Raw    json.RawMessage `json:"-"`
}

// RoomRequest covers the events whose payload is just the room id:
// undo, redo and clear-board.
type RoomRequest struct {
	Message
	RoomID string `json:"roomId"`
}

type ChatMessageRequest struct {
	Message
	RoomID   string `json:"roomId"`
	Body     string `json:"message"`
	Kind     string `json:"type"`
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
	FileData string `json:"fileData"`
}

type TypingRequest struct {
	Message
	RoomID   string `json:"roomId"`
	IsTyping bool   `json:"isTyping"`
}

// messageDefiner decodes an inbound frame into its typed request based on
// the envelope's event name. Frames with a missing room id, or an event name
// the server does not know, are invalid.
func messageDefiner(msg []byte) (interface{}, error) {
	var message Message
	if err := json.Unmarshal(msg, &message); err != nil {
		return nil, ErrInvalidMessage
	}

	switch message.Event {
	case EventJoinRoom:
		var request JoinRoomRequest
		if err := json.Unmarshal(msg, &request); err != nil {
			return nil, fmt.Errorf("error unmarshaling JoinRoomRequest: %w", err)
		}
		if request.RoomID == "" || request.Username == "" {
			return nil, ErrInvalidMessage
		}
		return request, nil
	case EventDraw:
		var request DrawRequest
		if err := json.Unmarshal(msg, &request); err != nil {
			return nil, fmt.Errorf("error unmarshaling DrawRequest: %w", err)
		}
		if request.RoomID == "" {
			return nil, ErrInvalidMessage
		}
		request.Raw = msg
		return request, nil
	case EventUndo, EventRedo, EventClearBoard:
		var request RoomRequest
		if err := json.Unmarshal(msg, &request); err != nil {
			return nil, fmt.Errorf("error unmarshaling RoomRequest: %w", err)
		}
		if request.RoomID == "" {
			return nil, ErrInvalidMessage
		}
		return request, nil
	case EventChatMessage:
		var request ChatMessageRequest
		if err := json.Unmarshal(msg, &request); err != nil {
			return nil, fmt.Errorf("error unmarshaling ChatMessageRequest: %w", err)
		}
		if request.RoomID == "" {
			return nil, ErrInvalidMessage
		}
		return request, nil
	case EventTyping:
		var request TypingRequest
		if err := json.Unmarshal(msg, &request); err != nil {
			return nil, fmt.Errorf("error unmarshaling TypingRequest: %w", err)
		}
		if request.RoomID == "" {
			return nil, ErrInvalidMessage
		}
		return request, nil
	}
	return nil, ErrInvalidMessage
}
