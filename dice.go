package backgammon

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	mathrand "math/rand"
)

// Rand is the source of die rolls. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Dice holds the last physical roll and the pool of values not yet played this turn.
type Dice struct {
	Roll1  int8
	Roll2  int8
	r      Rand
	values []int8
}

// NewDice returns dice rolled with r. A nil r uses a randomly seeded generator.
func NewDice(r Rand) *Dice {
	if r == nil {
		r = newRand()
	}
	return &Dice{
		r: r,
	}
}

// Roll rolls both dice and returns the move pool. Doubles are played four times.
func (d *Dice) Roll() []int8 {
	d.set(d.rollDie(), d.rollDie())
	return d.Values()
}

// Set forces the next pool to the given values.
func (d *Dice) Set(roll1 int8, roll2 int8) error {
	if roll1 < 1 || roll1 > 6 || roll2 < 1 || roll2 > 6 {
		return fmt.Errorf("invalid dice %d-%d", roll1, roll2)
	}
	d.set(roll1, roll2)
	return nil
}

func (d *Dice) set(roll1 int8, roll2 int8) {
	d.Roll1, d.Roll2 = roll1, roll2
	d.values = ExpandRoll(roll1, roll2)
}

func (d *Dice) rollDie() int8 {
	return int8(d.r.Intn(6) + 1)
}

// RemoveValue consumes one occurrence of v from the pool.
func (d *Dice) RemoveValue(v int8) error {
	for i, value := range d.values {
		if value == v {
			d.values = append(d.values[:i], d.values[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %d", ErrDieUnavailable, v)
}

// Values returns a copy of the remaining pool.
func (d *Dice) Values() []int8 {
	if len(d.values) == 0 {
		return nil
	}
	v := make([]int8, len(d.values))
	copy(v, d.values)
	return v
}

func (d *Dice) Has(v int8) bool {
	return containsDie(d.values, v)
}

func (d *Dice) Empty() bool {
	return len(d.values) == 0
}

func (d *Dice) Doubles() bool {
	return d.Roll1 != 0 && d.Roll1 == d.Roll2
}

// Clear empties the pool and forgets the last roll.
func (d *Dice) Clear() {
	d.Roll1, d.Roll2 = 0, 0
	d.values = nil
}

// ExpandRoll returns the move pool for a physical roll.
func ExpandRoll(roll1 int8, roll2 int8) []int8 {
	if roll1 == roll2 {
		return []int8{roll1, roll1, roll1, roll1}
	}
	return []int8{roll1, roll2}
}

func newRand() *mathrand.Rand {
	return mathrand.New(mathrand.NewSource(int64(RandInt(math.MaxInt32))))
}

// RandInt returns a uniformly random value in [0, max) read from crypto/rand.
func RandInt(max int) int {
	i, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}
	return int(i.Int64())
}
