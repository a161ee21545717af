package room

import (
	"sync"

	"github.com/noiseless47/doodlesphere-backend/internal/models"
)

// Room owns every piece of shared state for one collaboration session: the
// member set, the ordered draw history, the redo stack and the chat log. All
// mutation goes through methods holding the room mutex, so compound
// operations (append + redo invalidation, pop + push) are atomic with respect
// to concurrent events for the same room.
type Room struct {
	// ID is the client-chosen identifier of the room
	ID string

	mtx       sync.Mutex
	members   map[string]string // connection id -> display name
	history   []models.HistoryEntry
	redoStack []models.HistoryEntry
	messages  []models.ChatMessage

	// chatLimit caps the retained chat log; zero means unbounded
	chatLimit int
}

// State is the {drawings, history, redoStack} triple broadcast after every
// undo/redo. Drawings is the flattened projection for older clients.
type State struct {
	Drawings  []models.Drawable     `json:"drawings"`
	History   []models.HistoryEntry `json:"history"`
	RedoStack []models.HistoryEntry `json:"redoStack"`
}

// Snapshot is the catch-up payload sent only to a joining connection.
type Snapshot struct {
	State
	Messages []models.ChatMessage `json:"messages"`
}

// NewRoom creates an empty room.
func NewRoom(id string, chatLimit int) *Room {
	return &Room{
		ID:        id,
		members:   make(map[string]string),
		history:   make([]models.HistoryEntry, 0),
		redoStack: make([]models.HistoryEntry, 0),
		messages:  make([]models.ChatMessage, 0),
		chatLimit: chatLimit,
	}
}

// AddMember registers a connection under its display name.
func (r *Room) AddMember(connID, name string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.members[connID] = name
}

// RemoveMember drops a connection and reports how many members remain. Safe
// to call twice for the same connection.
func (r *Room) RemoveMember(connID string) int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	delete(r.members, connID)
	return len(r.members)
}

func (r *Room) MemberCount() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return len(r.members)
}

// AppendDraw appends a draw entry to the history and invalidates any pending
// redo: new work always empties the redo stack.
func (r *Room) AppendDraw(d models.Drawable) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.history = append(r.history, models.NewDrawEntry(d))
	r.redoStack = r.redoStack[:0]
}

// Undo moves the latest history entry onto the redo stack and returns the
// resulting state. It reports false, with no state change, when there is
// nothing to undo: an empty history, or a history whose latest entry is the
// clear sentinel. Nothing before a clear is ever reachable.
func (r *Room) Undo() (State, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	n := len(r.history)
	if n == 0 || r.history[n-1].Type == models.EntryClear {
		return State{}, false
	}

	entry := r.history[n-1]
	r.history = r.history[:n-1]
	r.redoStack = append(r.redoStack, entry)

	return r.stateLocked(), true
}

// Redo re-applies the top of the redo stack and returns the resulting state.
// Reports false on an empty redo stack.
func (r *Room) Redo() (State, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	n := len(r.redoStack)
	if n == 0 {
		return State{}, false
	}

	entry := r.redoStack[n-1]
	r.redoStack = r.redoStack[:n-1]
	r.history = append(r.history, entry)

	return r.stateLocked(), true
}

// Clear wipes the board: the history becomes the single clear sentinel and
// any pending redo is discarded.
func (r *Room) Clear() {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.history = []models.HistoryEntry{models.NewClearEntry()}
	r.redoStack = r.redoStack[:0]
}

// AddMessage appends a chat message, dropping the oldest entries once the
// configured cap is reached.
func (r *Room) AddMessage(m models.ChatMessage) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.messages = append(r.messages, m)
	if r.chatLimit > 0 && len(r.messages) > r.chatLimit {
		r.messages = r.messages[len(r.messages)-r.chatLimit:]
	}
}

// State returns a copy of the current {drawings, history, redoStack} triple.
func (r *Room) State() State {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.stateLocked()
}

// Snapshot returns the catch-up payload for a joining connection.
func (r *Room) Snapshot() Snapshot {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	messages := make([]models.ChatMessage, len(r.messages))
	copy(messages, r.messages)

	return Snapshot{
		State:    r.stateLocked(),
		Messages: messages,
	}
}

// stateLocked copies the current state so broadcasts never alias the live
// slices. Callers must hold the room mutex.
func (r *Room) stateLocked() State {
	history := make([]models.HistoryEntry, len(r.history))
	copy(history, r.history)

	redoStack := make([]models.HistoryEntry, len(r.redoStack))
	copy(redoStack, r.redoStack)

	return State{
		Drawings:  models.ProjectDrawings(history),
		History:   history,
		RedoStack: redoStack,
	}
}
