package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/compoundpro/compound-calculator/internal/domain"
)

// MemoryStore keeps scenarios in process memory.
type MemoryStore struct {
	opts      Options
	mu        sync.Mutex
	scenarios []domain.SavedScenario
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(opts Options) *MemoryStore {
	return &MemoryStore{opts: opts.withDefaults()}
}

func (m *MemoryStore) List(ctx context.Context) ([]domain.SavedScenario, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]domain.SavedScenario(nil), m.scenarios...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (m *MemoryStore) Get(ctx context.Context, id string) (domain.SavedScenario, error) {
	if err := ctx.Err(); err != nil {
		return domain.SavedScenario{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, sc := range m.scenarios {
		if sc.ID == id {
			return sc, nil
		}
	}
	return domain.SavedScenario{}, ErrNotFound
}

func (m *MemoryStore) Add(ctx context.Context, name string, data domain.Configuration) (domain.SavedScenario, error) {
	if err := ctx.Err(); err != nil {
		return domain.SavedScenario{}, err
	}
	record, err := m.opts.NewRecord(name, data)
	if err != nil {
		return domain.SavedScenario{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, sc := range m.scenarios {
		if sc.ID == record.ID {
			return domain.SavedScenario{}, fmt.Errorf("%w: %s", ErrAlreadyExists, record.ID)
		}
	}
	m.scenarios = append(m.scenarios, record)
	return record, nil
}

func (m *MemoryStore) Remove(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, sc := range m.scenarios {
		if sc.ID == id {
			m.scenarios = append(m.scenarios[:i], m.scenarios[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error { return nil }
