package service

// BullsCowsCalculator scores a guess against the secret combination.
type BullsCowsCalculator struct{}

func NewBullsCowsCalculator() *BullsCowsCalculator {
	return &BullsCowsCalculator{}
}

// Calculate compares every guess position against every secret position: a
// match on the same index is a bull, a match on a different index is a cow.
//
// The secret always has distinct digits but the guess may not, so a
// repeated guess digit is counted once per matching pair (secret "1234" vs
// guess "1123" yields 1 bull and 3 cows). That pairwise counting is the
// published rule of the game; do not replace it with a multiset formula.
func (c *BullsCowsCalculator) Calculate(secret, guess string) (bulls, cows int) {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if guess[i] == secret[j] {
				if i == j {
					bulls++
				} else {
					cows++
				}
			}
		}
	}
	return bulls, cows
}
