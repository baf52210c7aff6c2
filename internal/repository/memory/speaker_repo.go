package memory

import (
	"context"
	"sync"

	"speakerregistration/internal/domain"

	"github.com/google/uuid"
)

// InMemorySpeakerStore keeps registered speakers in a map. Safe for concurrent use.
type InMemorySpeakerStore struct {
	mu       sync.RWMutex
	speakers map[string]*domain.Speaker
}

func NewSpeakerStore() *InMemorySpeakerStore {
	return &InMemorySpeakerStore{
		speakers: make(map[string]*domain.Speaker),
	}
}

// Save stores a copy of speaker under a new UUID.
func (s *InMemorySpeakerStore) Save(_ context.Context, speaker *domain.Speaker) (string, error) {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.speakers[id] = cloneSpeaker(speaker)
	return id, nil
}

// Get returns a copy of the speaker stored under id, or domain.ErrNotFound.
func (s *InMemorySpeakerStore) Get(_ context.Context, id string) (*domain.Speaker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	speaker, ok := s.speakers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneSpeaker(speaker), nil
}

func (s *InMemorySpeakerStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.speakers)
}

func cloneSpeaker(speaker *domain.Speaker) *domain.Speaker {
	c := *speaker
	c.Certifications = append([]string(nil), speaker.Certifications...)
	c.Sessions = make([]*domain.Session, 0, len(speaker.Sessions))
	for _, sess := range speaker.Sessions {
		if sess == nil {
			continue
		}
		cs := *sess
		c.Sessions = append(c.Sessions, &cs)
	}
	return &c
}
