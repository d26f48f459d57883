package storage

import (
	"sync"

	"github.com/discshelf/discnamer/internal/models"
)

// IdentificationStore keeps recent identifications in memory for the web
// interface. Nothing is persisted across restarts.
type IdentificationStore struct {
	identifications map[string]*models.Identification
	mu              sync.RWMutex
}

func New() *IdentificationStore {
	return &IdentificationStore{
		identifications: make(map[string]*models.Identification),
	}
}

func (s *IdentificationStore) Get(id string) (*models.Identification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ident, exists := s.identifications[id]
	return ident, exists
}

func (s *IdentificationStore) Set(id string, ident *models.Identification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identifications[id] = ident
}

func (s *IdentificationStore) GetAll() []*models.Identification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Identification, 0, len(s.identifications))
	for _, ident := range s.identifications {
		result = append(result, ident)
	}
	return result
}

func (s *IdentificationStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.identifications, id)
}
