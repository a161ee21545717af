package ws

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/noiseless47/doodlesphere-backend/internal/client"
	"github.com/noiseless47/doodlesphere-backend/internal/models"
	"github.com/noiseless47/doodlesphere-backend/internal/session"
	cStorage "github.com/noiseless47/doodlesphere-backend/internal/storage/client"
)

// WebSocketHandler owns the persistent connections: it upgrades HTTP,
// assigns connection ids, decodes inbound frames and feeds them to the
// session engine. Frames are processed inline on the read loop, so each
// connection's events reach the engine in arrival order.
type WebSocketHandler struct {
	// upgrader is used to upgrade the HTTP connection to a WebSocket connection
	upgrader *websocket.Upgrader

	engine  *session.Engine
	clients cStorage.Storage

	logger *zap.Logger
}

func NewWebSocketHandler(
	engine *session.Engine,
	clients cStorage.Storage,
	logger *zap.Logger,
) *WebSocketHandler {
	return &WebSocketHandler{
		upgrader: &websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
		engine:  engine,
		clients: clients,
		logger:  logger,
	}
}

func (ws *WebSocketHandler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := ws.upgrader.Upgrade(w, r, nil)
	if err != nil {
		ws.logger.Error("Failed to upgrade connection", zap.Error(err))
		return
	}
	defer conn.Close()

	connID := uuid.NewString()
	ws.logger.Info("Connection upgraded", zap.String("connID", connID))

	for {
		mt, msg, err := conn.ReadMessage()
		if err != nil || mt == websocket.CloseMessage {
			// Transport failure doubles as an implicit leave.
			ws.engine.Leave(connID)
			ws.logger.Info("Connection closed", zap.String("connID", connID))
			break
		}

		ws.messageHandler(conn, connID, msg)
	}
}

func (ws *WebSocketHandler) messageHandler(conn *websocket.Conn, connID string, msg []byte) {
	message, err := messageDefiner(msg)
	if err != nil {
		ws.logger.Debug("Failed to define message", zap.String("connID", connID), zap.Error(err))
		return
	}

	switch v := message.(type) {
	case JoinRoomRequest:
		ws.joinRoom(conn, connID, v)
	case DrawRequest:
		drawable, err := models.DecodeDrawable(v.Raw)
		if err != nil {
			ws.logger.Debug("Dropped draw payload", zap.String("connID", connID), zap.Error(err))
			return
		}
		ws.engine.Draw(connID, v.RoomID, drawable)
	case RoomRequest:
		switch v.Event {
		case EventUndo:
			ws.engine.Undo(v.RoomID)
		case EventRedo:
			ws.engine.Redo(v.RoomID)
		case EventClearBoard:
			ws.engine.ClearBoard(v.RoomID)
		}
	case ChatMessageRequest:
		ws.engine.Chat(connID, v.RoomID, session.ChatInput{
			Body:     v.Body,
			Kind:     v.Kind,
			FileURL:  v.FileURL,
			FileName: v.FileName,
			FileData: v.FileData,
		})
	case TypingRequest:
		ws.engine.Typing(connID, v.RoomID, v.IsTyping)
	}
}

// joinRoom registers the connection and hands the join to the engine. A
// connection holds one room association for its whole lifetime; repeated
// joins from the same connection are dropped.
func (ws *WebSocketHandler) joinRoom(conn *websocket.Conn, connID string, request JoinRoomRequest) {
	if existing, _ := ws.clients.Get(connID); existing != nil {
		ws.logger.Debug("Connection already joined a room", zap.String("connID", connID))
		return
	}

	newClient := client.New(connID, request.RoomID, request.Username, conn)
	if err := ws.clients.Set(connID, newClient); err != nil {
		return
	}

	ws.engine.Join(connID, request.RoomID, request.Username)
}
