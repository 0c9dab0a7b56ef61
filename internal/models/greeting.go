// Package models contains the data types shared across the service.
package models

import (
	"fmt"
	"strings"
)

// DefaultWorldName is the name greeted before any PUT and after a reset
const DefaultWorldName = "World"

// GreetingState holds the world's name and the adjectives collected so far.
// Adjectives keep insertion order and may contain duplicates.
type GreetingState struct {
	Name       string   `json:"name"`
	Adjectives []string `json:"worldAdjectives"`
}

// NewGreetingState returns the default state
func NewGreetingState() *GreetingState {
	return &GreetingState{
		Name:       DefaultWorldName,
		Adjectives: []string{},
	}
}

// Clone returns a deep copy of the state
func (s *GreetingState) Clone() *GreetingState {
	adjectives := make([]string, len(s.Adjectives))
	copy(adjectives, s.Adjectives)
	return &GreetingState{
		Name:       s.Name,
		Adjectives: adjectives,
	}
}

// Greeting formats the greeting for the given adjective. An empty adjective
// greets the bare name.
func (s *GreetingState) Greeting(adjective string) string {
	name := s.Name
	if adjective != "" {
		name = strings.Join([]string{adjective, s.Name}, " ")
	}
	return fmt.Sprintf("Hello, %s!", name)
}
