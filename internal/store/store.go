// Package store keeps named scenarios: saved plan configurations that can be
// listed, loaded and deleted. Last write wins; there are no durability
// guarantees beyond what a backend provides.
package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/compoundpro/compound-calculator/internal/domain"
	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no scenario has the requested id.
	ErrNotFound = errors.New("scenario not found")
	// ErrAlreadyExists is returned when a scenario id is reused.
	ErrAlreadyExists = errors.New("scenario already exists")
)

// Repository is the capability set of a scenario store.
type Repository interface {
	// List returns every scenario ordered by save date, oldest first.
	List(ctx context.Context) ([]domain.SavedScenario, error)
	Get(ctx context.Context, id string) (domain.SavedScenario, error)
	// Add stores data under a freshly generated id and returns the saved record.
	Add(ctx context.Context, name string, data domain.Configuration) (domain.SavedScenario, error)
	Remove(ctx context.Context, id string) error
	Close() error
}

// Clock returns the current time (override in tests for determinism).
type Clock func() time.Time

// IDGenerator returns collision-resistant scenario ids.
type IDGenerator func() string

// Options configure record stamping shared by all backends.
type Options struct {
	Now   Clock
	NewID IDGenerator
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	return o
}

// NewRecord validates name and stamps a new scenario record.
func (o Options) NewRecord(name string, data domain.Configuration) (domain.SavedScenario, error) {
	o = o.withDefaults()
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.SavedScenario{}, errors.New("scenario name is required")
	}
	return domain.SavedScenario{
		ID:   o.NewID(),
		Name: name,
		Date: o.Now().UTC().Truncate(time.Millisecond),
		Data: data,
	}, nil
}

// FindByName returns the most recently saved scenario with the given name.
func FindByName(ctx context.Context, repo Repository, name string) (domain.SavedScenario, error) {
	scenarios, err := repo.List(ctx)
	if err != nil {
		return domain.SavedScenario{}, err
	}
	for i := len(scenarios) - 1; i >= 0; i-- {
		if strings.EqualFold(scenarios[i].Name, strings.TrimSpace(name)) {
			return scenarios[i], nil
		}
	}
	return domain.SavedScenario{}, ErrNotFound
}

// Resolve looks a scenario up by id, falling back to its name.
func Resolve(ctx context.Context, repo Repository, ref string) (domain.SavedScenario, error) {
	sc, err := repo.Get(ctx, ref)
	if err == nil {
		return sc, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return domain.SavedScenario{}, err
	}
	return FindByName(ctx, repo, ref)
}
