package util

import "errors"

var (
	ErrGameNotFound         = errors.New("no game exists with the specified identifier")
	ErrAttemptNotFound      = errors.New("no game exists with the specified identifier or no attempt with that number")
	ErrDuplicateCombination = errors.New("duplicated combination")
)

// TimeExpiredError is returned once a game's time budget is exhausted. It
// carries the secret so the caller can reveal it in the final response.
type TimeExpiredError struct {
	Combination string
}

func (e *TimeExpiredError) Error() string {
	return "the time for the game has run out"
}
