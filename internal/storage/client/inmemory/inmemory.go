package inmemory

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/noiseless47/doodlesphere-backend/internal/client"
)

var ErrClientNotFound = errors.New("client not found")

type Storage struct {
	data   map[string]*client.Client
	logger *zap.Logger

	mtx *sync.Mutex
}

func NewStorage(logger *zap.Logger) *Storage {
	return &Storage{
		data:   make(map[string]*client.Client),
		logger: logger,
		mtx:    &sync.Mutex{},
	}
}

func (s *Storage) Set(key string, value *client.Client) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.data[key] = value
	s.logger.Debug("client added to storage", zap.String("key", key))
	return nil
}

func (s *Storage) Get(key string) (*client.Client, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	v, ok := s.data[key]
	if !ok {
		return nil, ErrClientNotFound
	}
	return v, nil
}

func (s *Storage) Delete(key string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	delete(s.data, key)
	s.logger.Debug("client deleted from storage", zap.String("key", key))
	return nil
}

func (s *Storage) GetAllWhere(predicate func(*client.Client) bool) []*client.Client {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	matched := make([]*client.Client, 0, len(s.data))
	for _, v := range s.data {
		if predicate(v) {
			matched = append(matched, v)
		}
	}
	return matched
}
