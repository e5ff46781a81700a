package tetris

import (
	"math/rand"
	"testing"
)

func TestBagFairness(t *testing.T) {
	// Every seven draws aligned to a bag boundary contain each tetromino
	// exactly once.
	r := NewBagRandomizer(rand.New(rand.NewSource(7)))

	for bag := 0; bag < 10; bag++ {
		seen := make(map[PieceType]int)
		for i := 0; i < 7; i++ {
			seen[r.Next()]++
		}
		for _, typ := range AllPieceTypes() {
			if seen[typ] != 1 {
				t.Errorf("Bag %d: piece %s drawn %d times, want 1", bag, typ, seen[typ])
			}
		}
	}
}

func TestBagDeterminism(t *testing.T) {
	r1 := NewBagRandomizer(rand.New(rand.NewSource(99)))
	r2 := NewBagRandomizer(rand.New(rand.NewSource(99)))

	for i := 0; i < 70; i++ {
		if a, b := r1.Next(), r2.Next(); a != b {
			t.Fatalf("Draw %d diverged: %s vs %s", i, a, b)
		}
	}
}

func TestUniformRandomizerRange(t *testing.T) {
	r := NewUniformRandomizer(rand.New(rand.NewSource(3)))
	for i := 0; i < 200; i++ {
		p := r.Next()
		if p < PieceI || p > PieceL {
			t.Fatalf("Draw %d out of range: %d", i, p)
		}
	}
}
