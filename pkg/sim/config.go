package sim

import (
	"errors"

	"codeberg.org/tslocum/backgammon"
	"codeberg.org/tslocum/backgammon/pkg/bot"
)

const DefaultMaxTurns = 1000

// Config describes a series of games between two bot policies.
type Config struct {
	Games int
	// Seed for the random layout and dice of the first game. Game n uses
	// Seed+n. A zero seed is replaced with a random one.
	Seed int64
	// MaxTurns abandons a game that has not finished after this many turns.
	MaxTurns int

	Policy1 bot.Policy
	Policy2 bot.Policy

	Layout         backgammon.Layout
	AllowOvershoot bool

	// Verbose logs every game event.
	Verbose bool
}

func (c *Config) validate() error {
	if c.Games <= 0 {
		return errors.New("number of games must be greater than zero")
	}
	if c.MaxTurns < 0 {
		return errors.New("maximum turns must not be negative")
	}
	if c.MaxTurns == 0 {
		c.MaxTurns = DefaultMaxTurns
	}
	if c.Seed == 0 {
		c.Seed = int64(backgammon.RandInt(1<<31-1)) + 1
	}
	return nil
}
