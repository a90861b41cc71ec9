package service

import (
	"time"

	"bulls_cows_backend/internal/model"
)

// Clock abstracts the wall clock so time-dependent behavior is testable.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }

// GameClock answers how much of a game's time budget has been used.
type GameClock struct {
	clock Clock
}

func NewGameClock(clock Clock) *GameClock {
	return &GameClock{clock: clock}
}

// Elapsed returns whole seconds since the game was created.
func (c *GameClock) Elapsed(game *model.Game) int {
	return int(c.clock.Now().Sub(game.CreatedAt).Seconds())
}

// Remaining returns the seconds left of the budget, clamped at zero. A
// return of zero is what marks the game as expired.
func (c *GameClock) Remaining(game *model.Game, budget int) int {
	elapsed := c.Elapsed(game)
	if elapsed < budget {
		return budget - elapsed
	}
	return 0
}
