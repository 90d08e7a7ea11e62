// Package dice provides the pluggable random source for rolls and card
// draws. Tests substitute a deterministic Source.
package dice

import (
	"math/rand"
	"time"
)

// Source yields uniform integers in [0, n). Both the dice and the card draws
// in a game share one source.
type Source interface {
	Intn(n int) int
}

// NewSource returns a time-seeded math/rand source.
func NewSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Dice rolls a fixed number of dice with a fixed number of sides.
type Dice struct {
	count int
	sides int
	src   Source
}

func New(count, sides int, src Source) *Dice {
	return &Dice{count: count, sides: sides, src: src}
}

// Roll produces count face values, each uniform in 1..sides.
func (d *Dice) Roll() []int {
	roll := make([]int, d.count)
	for i := range roll {
		roll[i] = d.src.Intn(d.sides) + 1
	}
	return roll
}

// CheckDoubles is true iff the roll is exactly two equal faces.
func (d *Dice) CheckDoubles(roll []int) bool {
	return len(roll) == 2 && roll[0] == roll[1]
}

// Sum adds up the face values of a roll.
func Sum(roll []int) int {
	total := 0
	for _, n := range roll {
		total += n
	}
	return total
}
