package runtime

import (
	"context"
	"sync"

	"match-gateway/domain"
	"match-gateway/domain/event"
)

// memorySink records everything delivered to it, for assertions.
type memorySink struct {
	mu          sync.Mutex
	envelopes   []event.Envelope
	closeReason *domain.CloseReason
}

func newMemorySink() *memorySink {
	return &memorySink{}
}

func (s *memorySink) Deliver(_ context.Context, e event.Envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.envelopes = append(s.envelopes, e)
	return nil
}

func (s *memorySink) Close(reason domain.CloseReason) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeReason = &reason
}

func (s *memorySink) received() []event.Envelope {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]event.Envelope{}, s.envelopes...)
}

func (s *memorySink) events() []event.Name {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]event.Name, 0, len(s.envelopes))
	for _, e := range s.envelopes {
		names = append(names, e.Event)
	}
	return names
}

func (s *memorySink) closedWith() (domain.CloseReason, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closeReason == nil {
		return "", false
	}
	return *s.closeReason, true
}
