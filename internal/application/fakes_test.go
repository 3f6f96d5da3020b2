package application

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/podium/internal/domain"
	"github.com/stretchr/testify/mock"
)

type memoryStore struct {
	mu      sync.Mutex
	records map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{records: map[string]string{}}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.records[key]
	if !ok {
		return "", domain.ErrRecordNotFound
	}
	return value, nil
}

func (s *memoryStore) Put(_ context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[key] = value
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, key)
	return nil
}

type stepClock struct {
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	current := c.now
	c.now = c.now.Add(c.step)
	return current
}

func newStepClock() *stepClock {
	return &stepClock{now: time.Date(2026, 3, 7, 9, 0, 0, 0, time.UTC), step: time.Minute}
}

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(context.Context) bool { return true })
}

func mockAnyString() interface{} {
	return mock.AnythingOfType("string")
}
