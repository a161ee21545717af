package models

// Entry types for the room history log.
const (
	EntryDraw  = "draw"
	EntryClear = "clear"
)

// HistoryEntry is one applied action in a room's ordered log. Data is set
// only for draw entries; a clear entry is a bare sentinel.
type HistoryEntry struct {
	Type string   `json:"type"`
	Data Drawable `json:"data,omitempty"`
}

func NewDrawEntry(d Drawable) HistoryEntry {
	return HistoryEntry{Type: EntryDraw, Data: d}
}

func NewClearEntry() HistoryEntry {
	return HistoryEntry{Type: EntryClear}
}

// ProjectDrawings flattens a history log into the drawables currently
// visible: replaying in order, a clear entry resets the canvas and a draw
// entry adds to it. Older clients render this flat list instead of replaying
// entry types themselves.
func ProjectDrawings(history []HistoryEntry) []Drawable {
	drawings := make([]Drawable, 0, len(history))
	for _, entry := range history {
		switch entry.Type {
		case EntryClear:
			drawings = drawings[:0]
		case EntryDraw:
			if entry.Data != nil {
				drawings = append(drawings, entry.Data)
			}
		}
	}
	return drawings
}
