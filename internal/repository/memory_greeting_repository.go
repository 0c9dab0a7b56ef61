package repository

import (
	"context"
	"sync"

	"github.com/sebasr/greeting-service/internal/models"
)

// MemoryGreetingRepository keeps greeting state in process memory.
// State is lost on restart.
type MemoryGreetingRepository struct {
	mu    sync.RWMutex
	state *models.GreetingState
}

// NewMemoryGreetingRepository creates a repository holding the default state
func NewMemoryGreetingRepository() *MemoryGreetingRepository {
	return &MemoryGreetingRepository{
		state: models.NewGreetingState(),
	}
}

// Get implements GreetingRepository.Get
func (r *MemoryGreetingRepository) Get(_ context.Context) (*models.GreetingState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.state.Clone(), nil
}

// SetName implements GreetingRepository.SetName
func (r *MemoryGreetingRepository) SetName(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.Name = name
	return nil
}

// AddAdjective implements GreetingRepository.AddAdjective
func (r *MemoryGreetingRepository) AddAdjective(_ context.Context, adjective string) ([]string, error) {
	if adjective == "" {
		return nil, ErrEmptyAdjective
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.Adjectives = append(r.state.Adjectives, adjective)
	return r.state.Clone().Adjectives, nil
}

// Reset implements GreetingRepository.Reset
func (r *MemoryGreetingRepository) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state = models.NewGreetingState()
	return nil
}
