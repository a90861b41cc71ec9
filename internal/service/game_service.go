package service

import (
	"context"
	"sync/atomic"
	"time"

	"bulls_cows_backend/internal/model"
	"bulls_cows_backend/internal/util"
)

// GameStore is the persistence collaborator for games. FindByID returns
// (nil, nil) when the game does not exist; every mutation is expected to
// run inside its own transaction.
type GameStore interface {
	Create(game *model.Game) error
	FindByID(id string) (*model.Game, error)
	Update(id string, fields map[string]interface{}) error
	Delete(id string) error
}

// AttemptCache is the TTL store holding each game's attempt history. Get
// returns nil when the entry is absent or expired. Put replaces the whole
// sequence and resets the TTL.
type AttemptCache interface {
	Get(ctx context.Context, gameID string) ([]model.Attempt, error)
	Put(ctx context.Context, gameID string, attempts []model.Attempt, ttl time.Duration) error
	Delete(ctx context.Context, gameID string) error
}

// GameService runs the four game use cases. The attempt-history
// read-check-then-write in ProposeCombination is deliberately not locked
// across requests: two concurrent proposals for the same game can both
// pass the duplicate check and both be recorded with the same attempt
// number. The history is a best-effort cache, not a ledger.
type GameService struct {
	Games      GameStore
	Attempts   AttemptCache
	Generator  *CombinationGenerator
	Calculator *BullsCowsCalculator
	Clock      *GameClock

	timeLimit atomic.Int64
}

func NewGameService(games GameStore, attempts AttemptCache, clock Clock, timeLimitSeconds int) *GameService {
	s := &GameService{
		Games:      games,
		Attempts:   attempts,
		Generator:  NewCombinationGenerator(),
		Calculator: NewBullsCowsCalculator(),
		Clock:      NewGameClock(clock),
	}
	s.timeLimit.Store(int64(timeLimitSeconds))
	return s
}

// SetTimeLimit swaps the per-game time budget. Called from the config
// reload callback.
func (s *GameService) SetTimeLimit(seconds int) {
	s.timeLimit.Store(int64(seconds))
}

func (s *GameService) TimeLimit() int {
	return int(s.timeLimit.Load())
}

// CreateGame generates a secret and persists a new game for the player.
func (s *GameService) CreateGame(ctx context.Context, username string, age int) (*model.Game, error) {
	game := &model.Game{
		Username:    username,
		Age:         age,
		Combination: s.Generator.Generate(),
	}
	if err := s.Games.Create(game); err != nil {
		return nil, err
	}
	return game, nil
}

// ProposeCombination evaluates one guess against a game. Expected domain
// outcomes come back as util errors: ErrGameNotFound, ErrDuplicateCombination
// and TimeExpiredError (which reveals the secret). Anything else is a
// collaborator failure.
func (s *GameService) ProposeCombination(ctx context.Context, gameID, combination string) (*model.Attempt, error) {
	game, err := s.Games.FindByID(gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, util.ErrGameNotFound
	}

	cached, err := s.Attempts.Get(ctx, gameID)
	if err != nil {
		return nil, err
	}
	for i := range cached {
		if cached[i].Combination == combination {
			return nil, util.ErrDuplicateCombination
		}
	}

	timeAvailable := s.Clock.Remaining(game, s.TimeLimit())
	if timeAvailable == 0 {
		return nil, &util.TimeExpiredError{Combination: game.Combination}
	}

	// The attempt number is whatever the cache remembers plus this one.
	attempts := len(cached) + 1

	bulls, cows := s.Calculator.Calculate(game.Combination, combination)

	updated := map[string]interface{}{}
	if bulls == 4 {
		updated["won"] = true
	}
	score := s.Clock.Elapsed(game)/2 + attempts
	updated["score"] = score

	if err := s.Games.Update(game.ID, updated); err != nil {
		return nil, err
	}

	attempt := model.Attempt{
		Combination:   combination,
		Bulls:         bulls,
		Cows:          cows,
		Attempts:      attempts,
		TimeAvailable: timeAvailable,
		Score:         score,
	}

	// Keep the history around for the time the game still has plus a
	// minute, so the last attempts stay queryable shortly after expiry.
	cached = append(cached, attempt)
	ttl := time.Duration(timeAvailable+60) * time.Second
	if err := s.Attempts.Put(ctx, gameID, cached, ttl); err != nil {
		return nil, err
	}

	return &attempt, nil
}

// PreviousCombination re-reads an earlier attempt from the history. The
// attempt parameter follows the calling convention of the public API:
// attempt N addresses the result returned after accepting attempt N, so
// index N-2 of the stored sequence; passing nil returns the latest one.
func (s *GameService) PreviousCombination(ctx context.Context, gameID string, attempt *int) (*model.Attempt, error) {
	cached, err := s.Attempts.Get(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if len(cached) == 0 {
		return nil, util.ErrAttemptNotFound
	}

	if attempt != nil {
		idx := *attempt - 2
		if idx < 0 || idx >= len(cached) {
			return nil, util.ErrAttemptNotFound
		}
		return &cached[idx], nil
	}
	return &cached[len(cached)-1], nil
}

// DeleteGame removes the game row and invalidates its cached history.
func (s *GameService) DeleteGame(ctx context.Context, gameID string) error {
	game, err := s.Games.FindByID(gameID)
	if err != nil {
		return err
	}
	if game == nil {
		return util.ErrGameNotFound
	}

	if err := s.Games.Delete(game.ID); err != nil {
		return err
	}

	return s.Attempts.Delete(ctx, game.ID)
}
