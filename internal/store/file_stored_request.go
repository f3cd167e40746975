package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-gate/models"
)

// fileStoredRequestStorage is a JSON-file [StoredRequestStorage] for local
// development. An empty path keeps everything in memory.
type fileStoredRequestStorage struct {
	path     string
	inMemory bool

	mu       sync.RWMutex
	requests map[string]models.StoredRequest
}

type filePersistedState struct {
	Requests map[string]models.StoredRequest `json:"requests"`
}

// NewFileStorage constructs a [StoredRequestStorage] persisting to path, or
// an in-memory store when path is empty.
func NewFileStorage(path string) (StoredRequestStorage, error) {
	s := &fileStoredRequestStorage{
		path:     path,
		inMemory: path == "",
		requests: make(map[string]models.StoredRequest),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileStoredRequestStorage) Get(_ context.Context, ticketID string) (*models.StoredRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	request, ok := s.requests[ticketID]
	if !ok {
		return nil, nil
	}
	return &request, nil
}

func (s *fileStoredRequestStorage) Save(_ context.Context, request models.StoredRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests[request.TicketID] = request
	return s.persist()
}

func (s *fileStoredRequestStorage) Clear(_ context.Context, ticketID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.requests, ticketID)
	return s.persist()
}

func (s *fileStoredRequestStorage) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for ticketID, request := range s.requests {
		if request.Timestamp.Before(cutoff) {
			delete(s.requests, ticketID)
			removed++
		}
	}
	if removed > 0 {
		if err := s.persist(); err != nil {
			return removed, err
		}
	}
	return removed, nil
}

func (s *fileStoredRequestStorage) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read file store: %w", err)
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode file store: %w", err)
	}
	if st.Requests != nil {
		s.requests = st.Requests
	}
	return nil
}

// persist writes the whole state out. Callers hold s.mu.
func (s *fileStoredRequestStorage) persist() error {
	if s.inMemory {
		return nil
	}

	data, err := json.MarshalIndent(filePersistedState{Requests: s.requests}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode file store: %w", err)
	}
	if err = os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write file store: %w", err)
	}
	return nil
}
