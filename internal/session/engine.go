package session

import (
	"time"

	"go.uber.org/zap"

	"github.com/noiseless47/doodlesphere-backend/internal/metrics"
	"github.com/noiseless47/doodlesphere-backend/internal/models"
	cStorage "github.com/noiseless47/doodlesphere-backend/internal/storage/client"
	rStorage "github.com/noiseless47/doodlesphere-backend/internal/storage/room"
)

// Engine is the room session state machine: one operation per event kind.
// Each operation applies the event to the room's shared state and decides
// what to broadcast. Per-room atomicity comes from the Room mutex; events
// for different rooms interleave freely.
//
// Every operation is best-effort: events referencing an unknown room, an
// empty undo/redo source, or a degenerate drawable are dropped silently.
type Engine struct {
	rooms      rStorage.Storage
	clients    cStorage.Storage
	dispatcher Broadcaster
	logger     *zap.Logger

	// now stamps chat messages; replaceable in tests
	now func() time.Time
}

// ChatInput is the client-supplied part of a chat message, before the server
// stamps sender identity and receipt time.
type ChatInput struct {
	Body     string
	Kind     string
	FileURL  string
	FileName string
	FileData string
}

func NewEngine(
	rooms rStorage.Storage,
	clients cStorage.Storage,
	dispatcher Broadcaster,
	logger *zap.Logger,
) *Engine {
	return &Engine{
		rooms:      rooms,
		clients:    clients,
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// Join ensures the room exists, adds the connection to its members and sends
// the catch-up snapshot to the joiner only. Late joiners replay the snapshot
// linearly to reconstruct the canvas.
func (e *Engine) Join(connID, roomID, username string) {
	rm, created := e.rooms.Join(roomID, connID, username)
	if created {
		metrics.ActiveRooms.Inc()
		e.logger.Info("Room created", zap.String("roomID", roomID))
	}
	metrics.EventsProcessed.WithLabelValues("join-room").Inc()

	e.dispatcher.ToOne(connID, EventInitialState, rm.Snapshot())
	e.logger.Info("User joined room",
		zap.String("connID", connID),
		zap.String("roomID", roomID),
		zap.String("username", username),
	)
}

// Draw appends a validated drawable to the room history, invalidates any
// pending redo and rebroadcasts the raw drawable to every other member. The
// originator already rendered it locally.
func (e *Engine) Draw(connID, roomID string, d models.Drawable) {
	if err := d.Validate(); err != nil {
		metrics.EventsDropped.WithLabelValues(metrics.ReasonDegenerate).Inc()
		e.logger.Debug("Dropped invalid drawable", zap.String("roomID", roomID), zap.Error(err))
		return
	}

	rm, err := e.rooms.Get(roomID)
	if err != nil {
		metrics.EventsDropped.WithLabelValues(metrics.ReasonUnknownRoom).Inc()
		return
	}

	rm.AppendDraw(d)
	metrics.EventsProcessed.WithLabelValues("draw").Inc()

	e.dispatcher.ToRoom(roomID, EventDraw, d, connID)
}

// Undo pops the latest history entry onto the redo stack and broadcasts the
// resulting {drawings, history, redoStack} triple to every member, the actor
// included. A no-op when there is nothing to undo.
func (e *Engine) Undo(roomID string) {
	rm, err := e.rooms.Get(roomID)
	if err != nil {
		metrics.EventsDropped.WithLabelValues(metrics.ReasonUnknownRoom).Inc()
		return
	}

	state, ok := rm.Undo()
	if !ok {
		metrics.EventsDropped.WithLabelValues(metrics.ReasonEmptyStack).Inc()
		return
	}
	metrics.EventsProcessed.WithLabelValues("undo").Inc()

	e.dispatcher.ToRoom(roomID, EventUndo, state, "")
}

// Redo re-applies the top of the redo stack and broadcasts the resulting
// triple to every member. A no-op on an empty redo stack.
func (e *Engine) Redo(roomID string) {
	rm, err := e.rooms.Get(roomID)
	if err != nil {
		metrics.EventsDropped.WithLabelValues(metrics.ReasonUnknownRoom).Inc()
		return
	}

	state, ok := rm.Redo()
	if !ok {
		metrics.EventsDropped.WithLabelValues(metrics.ReasonEmptyStack).Inc()
		return
	}
	metrics.EventsProcessed.WithLabelValues("redo").Inc()

	e.dispatcher.ToRoom(roomID, EventRedo, state, "")
}

// ClearBoard wipes the room history down to the clear sentinel and tells
// every member to reset their canvas.
func (e *Engine) ClearBoard(roomID string) {
	rm, err := e.rooms.Get(roomID)
	if err != nil {
		metrics.EventsDropped.WithLabelValues(metrics.ReasonUnknownRoom).Inc()
		return
	}

	rm.Clear()
	metrics.EventsProcessed.WithLabelValues("clear-board").Inc()

	e.dispatcher.ToRoom(roomID, EventClearBoard, nil, "")
}

// Chat stamps the message with the sender's identity and the server receipt
// time, stores it and broadcasts it to every member including the sender, so
// everyone renders from the same authoritative copy.
func (e *Engine) Chat(connID, roomID string, in ChatInput) {
	c, err := e.clients.Get(connID)
	if err != nil {
		return
	}
	rm, err := e.rooms.Get(roomID)
	if err != nil {
		metrics.EventsDropped.WithLabelValues(metrics.ReasonUnknownRoom).Inc()
		return
	}

	kind := in.Kind
	if kind == "" {
		kind = models.ChatText
	}

	msg := models.ChatMessage{
		SenderID:  connID,
		UserID:    connID,
		Username:  c.Name,
		Body:      in.Body,
		Kind:      kind,
		FileURL:   in.FileURL,
		FileName:  in.FileName,
		FileData:  in.FileData,
		Timestamp: e.now().Format("15:04:05"),
	}

	rm.AddMessage(msg)
	metrics.EventsProcessed.WithLabelValues("chat-message").Inc()

	e.dispatcher.ToRoom(roomID, EventChatMessage, msg, "")
}

// Typing forwards a typing indicator to every other member. Nothing is
// stored.
func (e *Engine) Typing(connID, roomID string, isTyping bool) {
	c, err := e.clients.Get(connID)
	if err != nil {
		return
	}

	if _, err := e.rooms.Get(roomID); err != nil {
		metrics.EventsDropped.WithLabelValues(metrics.ReasonUnknownRoom).Inc()
		return
	}
	metrics.EventsProcessed.WithLabelValues("typing").Inc()

	e.dispatcher.ToRoom(roomID, EventUserTyping, TypingNotice{
		Username: c.Name,
		IsTyping: isTyping,
	}, connID)
}

// Leave removes the connection from its room: the room is destroyed when its
// last member leaves, otherwise the remaining members are told who left.
// Idempotent, so duplicate disconnect notifications are harmless.
func (e *Engine) Leave(connID string) {
	c, err := e.clients.Get(connID)
	if err != nil {
		return
	}
	_ = e.clients.Delete(connID)

	// Removal and the empty-room delete are one store operation, so a join
	// racing the last leave can never land on a deleted room.
	deleted, err := e.rooms.Leave(c.RoomID, connID)
	if err != nil {
		return
	}
	metrics.EventsProcessed.WithLabelValues("leave").Inc()

	if deleted {
		metrics.ActiveRooms.Dec()
		e.logger.Info("Room destroyed", zap.String("roomID", c.RoomID))
		return
	}

	e.dispatcher.ToRoom(c.RoomID, EventUserLeft, connID, "")
	e.logger.Info("User left room",
		zap.String("connID", connID),
		zap.String("roomID", c.RoomID),
	)
}
