package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/noiseless47/doodlesphere-backend/internal/metrics"
	"github.com/noiseless47/doodlesphere-backend/internal/rest/ws"
	"github.com/noiseless47/doodlesphere-backend/internal/session"
	clientStorage "github.com/noiseless47/doodlesphere-backend/internal/storage/client"
	inmemClient "github.com/noiseless47/doodlesphere-backend/internal/storage/client/inmemory"
	roomStorage "github.com/noiseless47/doodlesphere-backend/internal/storage/room"
	inmemRoom "github.com/noiseless47/doodlesphere-backend/internal/storage/room/inmemory"
)

type Rest struct {
	config *Config

	server *http.Server
}

func NewRest(config *Config) *Rest {
	return &Rest{
		config: config,
	}
}

func (rest *Rest) Start() {
	router := chi.NewRouter()

	// Service banner
	router.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{
			"message": "DoodleSphere Backend API",
			"status":  "running",
		})
	})

	// Health probe
	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	// Define the /ws endpoint
	roomsStorage, clientsStorage := rest.defineStorage()

	dispatcher := ws.NewDispatcher(clientsStorage, rest.config.Logger)
	engine := session.NewEngine(roomsStorage, clientsStorage, dispatcher, rest.config.Logger)
	wsServer := ws.NewWebSocketHandler(engine, clientsStorage, rest.config.Logger)
	router.HandleFunc("/ws", wsServer.Handle)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   rest.config.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	rest.server = &http.Server{
		Addr:              ":" + strconv.Itoa(rest.config.Port),
		Handler:           corsHandler.Handler(router),
		ReadHeaderTimeout: 0,
	}
	if err := rest.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		rest.config.Logger.Error("server error", zap.Error(err))
		return
	}
}

func (rest *Rest) Stop() {
	if err := rest.server.Shutdown(context.Background()); err != nil {
		rest.config.Logger.Error("server error", zap.Error(err))
	}
}

func (rest *Rest) defineStorage() (roomStorage.Storage, clientStorage.Storage) {
	var roomsStorage roomStorage.Storage

	switch rest.config.RoomsStorageType {
	case roomStorage.InMemoryStorageType:
		rest.config.Logger.Info("Using in-memory storage for rooms")
		roomsStorage = inmemRoom.NewStorage(rest.config.ChatHistoryLimit, rest.config.Logger)
	default:
		rest.config.Logger.Info("Using in-memory storage for rooms")
		roomsStorage = inmemRoom.NewStorage(rest.config.ChatHistoryLimit, rest.config.Logger)
	}

	clientsStorage := inmemClient.NewStorage(rest.config.Logger)

	return roomsStorage, clientsStorage
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return
	}
}
