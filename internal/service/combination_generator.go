package service

import "math/rand"

// CombinationGenerator produces the hidden combination for a new game.
type CombinationGenerator struct{}

func NewCombinationGenerator() *CombinationGenerator {
	return &CombinationGenerator{}
}

// Generate returns 4 distinct decimal digits. Shuffling the full digit set
// and keeping the head is what guarantees no digit repeats; four
// independent draws would not.
func (g *CombinationGenerator) Generate() string {
	digits := []byte("0123456789")
	rand.Shuffle(len(digits), func(i, j int) {
		digits[i], digits[j] = digits[j], digits[i]
	})
	return string(digits[:4])
}
