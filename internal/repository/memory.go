package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/nitinmeharia/rule-engine/internal/domain"
)

// memoryNamespaceStore implements NamespaceStore for mock mode, so the API
// can run without Postgres during token smoke tests.
type memoryNamespaceStore struct {
	mu         sync.RWMutex
	namespaces map[string]*domain.Namespace
}

// NewMemoryNamespaceStore creates an in-memory store seeded with a couple of
// namespaces for manual testing.
func NewMemoryNamespaceStore() NamespaceStore {
	store := &memoryNamespaceStore{
		namespaces: make(map[string]*domain.Namespace),
	}

	seed := []*domain.Namespace{
		{ID: "payments", Description: "Payment routing rules", CreatedBy: "system"},
		{ID: "fraud-checks", Description: "Fraud screening rules", CreatedBy: "system"},
	}
	now := time.Now()
	for i, ns := range seed {
		ns.CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
		store.namespaces[ns.ID] = ns
	}

	return store
}

func (s *memoryNamespaceStore) Create(ctx context.Context, namespace *domain.Namespace) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.namespaces[namespace.ID]; exists {
		return domain.ErrAlreadyExists
	}

	copied := *namespace
	copied.CreatedAt = time.Now()
	s.namespaces[copied.ID] = &copied
	namespace.CreatedAt = copied.CreatedAt
	return nil
}

func (s *memoryNamespaceStore) GetByID(ctx context.Context, id string) (*domain.Namespace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ns, exists := s.namespaces[id]
	if !exists {
		return nil, domain.ErrNotFound
	}
	copied := *ns
	return &copied, nil
}

func (s *memoryNamespaceStore) List(ctx context.Context) ([]*domain.Namespace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Namespace, 0, len(s.namespaces))
	for _, ns := range s.namespaces {
		copied := *ns
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (s *memoryNamespaceStore) Ping(ctx context.Context) error {
	return nil
}

func (s *memoryNamespaceStore) Close() {}
