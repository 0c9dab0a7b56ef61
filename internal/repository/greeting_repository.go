// Package repository provides data access interfaces and implementations.
package repository

import (
	"context"
	"errors"

	"github.com/sebasr/greeting-service/internal/models"
)

// ErrEmptyAdjective is returned when a blank adjective is added
var ErrEmptyAdjective = errors.New("adjective must not be empty")

// GreetingRepository defines the interface for greeting state access
type GreetingRepository interface {
	// Get returns a snapshot of the current greeting state
	Get(ctx context.Context) (*models.GreetingState, error)

	// SetName replaces the world's name
	SetName(ctx context.Context, name string) error

	// AddAdjective appends an adjective and returns the adjective list after the append
	AddAdjective(ctx context.Context, adjective string) ([]string, error)

	// Reset restores the default name and clears all adjectives
	Reset(ctx context.Context) error
}
