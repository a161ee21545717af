package ws

import (
	"bytes"
	"errors"
	"testing"
)

func TestMessageDefinerJoinRoom(t *testing.T) {
	msg := []byte(`{"event": "join-room", "roomId": "r1", "username": "alice"}`)

	defined, err := messageDefiner(msg)
	if err != nil {
		t.Fatalf("messageDefiner failed: %v", err)
	}
	request, ok := defined.(JoinRoomRequest)
	if !ok {
		t.Fatalf("Expected JoinRoomRequest, got %T", defined)
	}
	if request.RoomID != "r1" || request.Username != "alice" {
		t.Errorf("Unexpected request: %+v", request)
	}
}

func TestMessageDefinerJoinRoomMissingUsername(t *testing.T) {
	msg := []byte(`{"event": "join-room", "roomId": "r1"}`)

	if _, err := messageDefiner(msg); !errors.Is(err, ErrInvalidMessage) {
		t.Errorf("Expected ErrInvalidMessage, got %v", err)
	}
}

func TestMessageDefinerDraw(t *testing.T) {
	msg := []byte(`{"event": "draw", "roomId": "r1", "tool": "pen", "path": [{"x":1,"y":1},{"x":2,"y":2}]}`)

	defined, err := messageDefiner(msg)
	if err != nil {
		t.Fatalf("messageDefiner failed: %v", err)
	}
	request, ok := defined.(DrawRequest)
	if !ok {
		t.Fatalf("Expected DrawRequest, got %T", defined)
	}
	if request.RoomID != "r1" {
		t.Errorf("Expected roomId r1, got %q", request.RoomID)
	}
	if !bytes.Equal(request.Raw, msg) {
		t.Error("DrawRequest should carry the raw payload for the codec")
	}
}

func TestMessageDefinerRoomEvents(t *testing.T) {
	for _, event := range []string{"undo", "redo", "clear-board"} {
		msg := []byte(`{"event": "` + event + `", "roomId": "r1"}`)

		defined, err := messageDefiner(msg)
		if err != nil {
			t.Fatalf("messageDefiner failed for %s: %v", event, err)
		}
		request, ok := defined.(RoomRequest)
		if !ok {
			t.Fatalf("Expected RoomRequest for %s, got %T", event, defined)
		}
		if request.Event != event || request.RoomID != "r1" {
			t.Errorf("Unexpected request for %s: %+v", event, request)
		}
	}
}

func TestMessageDefinerChatMessage(t *testing.T) {
	msg := []byte(`{"event": "chat-message", "roomId": "r1", "message": "hi", "type": "text"}`)

	defined, err := messageDefiner(msg)
	if err != nil {
		t.Fatalf("messageDefiner failed: %v", err)
	}
	request, ok := defined.(ChatMessageRequest)
	if !ok {
		t.Fatalf("Expected ChatMessageRequest, got %T", defined)
	}
	if request.Body != "hi" || request.Kind != "text" {
		t.Errorf("Unexpected request: %+v", request)
	}
}

func TestMessageDefinerTyping(t *testing.T) {
	msg := []byte(`{"event": "typing", "roomId": "r1", "isTyping": true}`)

	defined, err := messageDefiner(msg)
	if err != nil {
		t.Fatalf("messageDefiner failed: %v", err)
	}
	request, ok := defined.(TypingRequest)
	if !ok {
		t.Fatalf("Expected TypingRequest, got %T", defined)
	}
	if !request.IsTyping {
		t.Error("Expected isTyping true")
	}
}

func TestMessageDefinerUnknownEvent(t *testing.T) {
	msg := []byte(`{"event": "teleport", "roomId": "r1"}`)

	if _, err := messageDefiner(msg); !errors.Is(err, ErrInvalidMessage) {
		t.Errorf("Expected ErrInvalidMessage, got %v", err)
	}
}

func TestMessageDefinerMissingRoom(t *testing.T) {
	for _, event := range []string{"draw", "undo", "redo", "clear-board", "chat-message", "typing"} {
		msg := []byte(`{"event": "` + event + `"}`)

		if _, err := messageDefiner(msg); !errors.Is(err, ErrInvalidMessage) {
			t.Errorf("Expected ErrInvalidMessage for %s, got %v", event, err)
		}
	}
}

func TestMessageDefinerGarbage(t *testing.T) {
	if _, err := messageDefiner([]byte(`{broken`)); !errors.Is(err, ErrInvalidMessage) {
		t.Errorf("Expected ErrInvalidMessage, got %v", err)
	}
}
