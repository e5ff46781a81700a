package tetris

import "math/rand"

// Randomizer produces the piece sequence. The randomness source is always
// injected so games replay identically under a fixed seed.
type Randomizer interface {
	Next() PieceType
}

// BagRandomizer implements the 7-bag system: pieces are drawn from a
// shuffled permutation of all seven types, and the bag is reshuffled only
// once exhausted. Any seven draws aligned to a bag boundary therefore
// contain each type exactly once.
type BagRandomizer struct {
	rng *rand.Rand
	bag []PieceType
}

// NewBagRandomizer creates a 7-bag randomizer drawing from rng.
func NewBagRandomizer(rng *rand.Rand) *BagRandomizer {
	return &BagRandomizer{rng: rng}
}

// Next pops a piece from the current bag, refilling it first if empty.
func (r *BagRandomizer) Next() PieceType {
	if len(r.bag) == 0 {
		r.refill()
	}
	p := r.bag[len(r.bag)-1]
	r.bag = r.bag[:len(r.bag)-1]
	return p
}

func (r *BagRandomizer) refill() {
	r.bag = AllPieceTypes()
	r.rng.Shuffle(len(r.bag), func(i, j int) {
		r.bag[i], r.bag[j] = r.bag[j], r.bag[i]
	})
}

// UniformRandomizer draws every piece independently and uniformly, with no
// fairness guarantee. Selectable via config for classic-style behavior.
type UniformRandomizer struct {
	rng *rand.Rand
}

// NewUniformRandomizer creates a memoryless randomizer drawing from rng.
func NewUniformRandomizer(rng *rand.Rand) *UniformRandomizer {
	return &UniformRandomizer{rng: rng}
}

// Next returns a uniformly random piece type.
func (r *UniformRandomizer) Next() PieceType {
	return PieceType(r.rng.Intn(pieceCount))
}
