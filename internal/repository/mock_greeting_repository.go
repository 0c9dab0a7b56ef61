package repository

import (
	"context"

	"github.com/sebasr/greeting-service/internal/models"
)

// MockGreetingRepository is a mock implementation of GreetingRepository for testing
type MockGreetingRepository struct {
	GetFunc          func(ctx context.Context) (*models.GreetingState, error)
	SetNameFunc      func(ctx context.Context, name string) error
	AddAdjectiveFunc func(ctx context.Context, adjective string) ([]string, error)
	ResetFunc        func(ctx context.Context) error
}

// NewMockGreetingRepository creates a new mock greeting repository with default implementations
func NewMockGreetingRepository() *MockGreetingRepository {
	return &MockGreetingRepository{
		GetFunc: func(_ context.Context) (*models.GreetingState, error) {
			return models.NewGreetingState(), nil
		},
		SetNameFunc: func(_ context.Context, _ string) error {
			return nil
		},
		AddAdjectiveFunc: func(_ context.Context, adjective string) ([]string, error) {
			return []string{adjective}, nil
		},
		ResetFunc: func(_ context.Context) error {
			return nil
		},
	}
}

// Get implements GreetingRepository.Get
func (m *MockGreetingRepository) Get(ctx context.Context) (*models.GreetingState, error) {
	return m.GetFunc(ctx)
}

// SetName implements GreetingRepository.SetName
func (m *MockGreetingRepository) SetName(ctx context.Context, name string) error {
	return m.SetNameFunc(ctx, name)
}

// AddAdjective implements GreetingRepository.AddAdjective
func (m *MockGreetingRepository) AddAdjective(ctx context.Context, adjective string) ([]string, error) {
	return m.AddAdjectiveFunc(ctx, adjective)
}

// Reset implements GreetingRepository.Reset
func (m *MockGreetingRepository) Reset(ctx context.Context) error {
	return m.ResetFunc(ctx)
}
