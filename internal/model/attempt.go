package model

// Attempt is one accepted guess and its evaluation. Attempts are not
// persisted in the database; the full per-game sequence lives in Redis
// until its TTL runs out.
//
// swagger:model Attempt
type Attempt struct {
	Combination   string `json:"combination"`
	Bulls         int    `json:"bulls"`
	Cows          int    `json:"cows"`
	Attempts      int    `json:"attempts"`
	TimeAvailable int    `json:"time_available"`
	Score         int    `json:"score"`
}
