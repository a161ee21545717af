package inmemory

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/noiseless47/doodlesphere-backend/internal/room"
)

var ErrRoomNotFound = errors.New("room not found")

type Storage struct {
	data      map[string]*room.Room
	chatLimit int
	logger    *zap.Logger

	mtx *sync.Mutex
}

func NewStorage(chatLimit int, logger *zap.Logger) *Storage {
	return &Storage{
		data:      make(map[string]*room.Room),
		chatLimit: chatLimit,
		logger:    logger,
		mtx:       &sync.Mutex{},
	}
}

func (s *Storage) Join(id, connID, username string) (*room.Room, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	r, ok := s.data[id]
	created := false
	if !ok {
		r = room.NewRoom(id, s.chatLimit)
		s.data[id] = r
		created = true
		s.logger.Debug("room added to storage", zap.String("key", id))
	}
	r.AddMember(connID, username)
	return r, created
}

func (s *Storage) Get(id string) (*room.Room, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	r, ok := s.data[id]
	if !ok {
		s.logger.Debug("room not found in storage", zap.String("key", id))
		return nil, ErrRoomNotFound
	}
	return r, nil
}

func (s *Storage) Leave(id, connID string) (bool, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	r, ok := s.data[id]
	if !ok {
		s.logger.Debug("room not found in storage", zap.String("key", id))
		return false, ErrRoomNotFound
	}
	if r.RemoveMember(connID) == 0 {
		delete(s.data, id)
		s.logger.Debug("room deleted from storage", zap.String("key", id))
		return true, nil
	}
	return false, nil
}

func (s *Storage) Count() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return len(s.data)
}
