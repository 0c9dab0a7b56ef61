package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGreetingState(t *testing.T) {
	state := NewGreetingState()

	assert.Equal(t, "World", state.Name)
	assert.NotNil(t, state.Adjectives)
	assert.Empty(t, state.Adjectives)
}

func TestGreetingState_Greeting(t *testing.T) {
	tests := []struct {
		name      string
		worldName string
		adjective string
		expected  string
	}{
		{
			name:      "default name without adjective",
			worldName: DefaultWorldName,
			expected:  "Hello, World!",
		},
		{
			name:      "default name with adjective",
			worldName: DefaultWorldName,
			adjective: "wonderful",
			expected:  "Hello, wonderful World!",
		},
		{
			name:      "custom name with multi-word adjective",
			worldName: "Earth",
			adjective: "pale blue",
			expected:  "Hello, pale blue Earth!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &GreetingState{Name: tt.worldName}
			assert.Equal(t, tt.expected, state.Greeting(tt.adjective))
		})
	}
}

func TestGreetingState_Clone(t *testing.T) {
	state := &GreetingState{Name: "Earth", Adjectives: []string{"round", "blue"}}

	clone := state.Clone()
	clone.Adjectives[0] = "flat"
	clone.Name = "Mars"

	assert.Equal(t, "Earth", state.Name)
	assert.Equal(t, []string{"round", "blue"}, state.Adjectives)
}
