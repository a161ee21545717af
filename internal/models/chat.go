package models

// Chat message kinds.
const (
	ChatText  = "text"
	ChatImage = "image"
	ChatFile  = "file"
)

// ChatMessage is a single room chat entry. SenderID, Username and Timestamp
// are stamped server-side on receipt; ordering is server-receipt order. File
// and image payloads are carried opaquely as data URLs.
type ChatMessage struct {
	SenderID  string `json:"senderId"`
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	Body      string `json:"message"`
	Kind      string `json:"type"`
	FileURL   string `json:"fileUrl,omitempty"`
	FileName  string `json:"fileName,omitempty"`
	FileData  string `json:"fileData,omitempty"`
	Timestamp string `json:"timestamp"`
}
