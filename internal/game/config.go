package game

import (
	"fmt"
	"strings"
)

type RunConfig struct {
	PlayerName string
	Seed       int64
	// Sick starts the explorer with a fever that only a campfire cures.
	Sick bool
	// MaxWaitTurns caps how many turns a single wait command may skip.
	MaxWaitTurns int
}

const DefaultMaxWaitTurns = 10

func (c RunConfig) Validate() error {
	if len(strings.TrimSpace(c.PlayerName)) > 32 {
		return fmt.Errorf("player name must be at most 32 characters, got %d", len(strings.TrimSpace(c.PlayerName)))
	}
	if c.MaxWaitTurns < 0 {
		return fmt.Errorf("max wait turns must not be negative, got %d", c.MaxWaitTurns)
	}
	return nil
}
