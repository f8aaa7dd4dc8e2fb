package backgammon

import (
	"errors"
	"math/rand"
	"testing"
)

// scriptedRand returns the scripted die faces in order, repeating when exhausted.
type scriptedRand struct {
	faces []int
	i     int
}

func newScriptedRand(faces ...int) *scriptedRand {
	return &scriptedRand{faces: faces}
}

func (r *scriptedRand) Intn(n int) int {
	face := r.faces[r.i%len(r.faces)]
	r.i++
	return (face - 1) % n
}

func TestDiceRollDistinct(t *testing.T) {
	d := NewDice(newScriptedRand(2, 5))
	values := d.Roll()
	if len(values) != 2 || values[0] != 2 || values[1] != 5 {
		t.Fatalf("expected pool [2 5], got %v", values)
	}
	if d.Doubles() {
		t.Fatalf("expected non-doubles roll")
	}
}

func TestDiceRollDoubles(t *testing.T) {
	d := NewDice(newScriptedRand(3, 3))
	values := d.Roll()
	if len(values) != 4 {
		t.Fatalf("expected 4 values for doubles, got %v", values)
	}
	for _, v := range values {
		if v != 3 {
			t.Fatalf("expected only 3s, got %v", values)
		}
	}
	if !d.Doubles() {
		t.Fatalf("expected doubles roll")
	}
}

func TestDiceSeededRange(t *testing.T) {
	d := NewDice(rand.New(rand.NewSource(1)))
	for i := 0; i < 1000; i++ {
		for _, v := range d.Roll() {
			if v < 1 || v > 6 {
				t.Fatalf("roll %d out of range: %d", i, v)
			}
		}
	}
}

func TestDiceRemoveValue(t *testing.T) {
	d := NewDice(newScriptedRand(4, 4))
	d.Roll()
	for i := 0; i < 4; i++ {
		if err := d.RemoveValue(4); err != nil {
			t.Fatalf("remove %d returned error: %v", i, err)
		}
	}
	if !d.Empty() {
		t.Fatalf("expected empty pool, got %v", d.Values())
	}
	err := d.RemoveValue(4)
	if !errors.Is(err, ErrDieUnavailable) {
		t.Fatalf("expected ErrDieUnavailable, got %v", err)
	}
}

func TestDiceRemoveUnavailableKeepsPool(t *testing.T) {
	d := NewDice(newScriptedRand(1, 6))
	d.Roll()
	if err := d.RemoveValue(3); !errors.Is(err, ErrDieUnavailable) {
		t.Fatalf("expected ErrDieUnavailable, got %v", err)
	}
	values := d.Values()
	if len(values) != 2 || values[0] != 1 || values[1] != 6 {
		t.Fatalf("expected pool unchanged, got %v", values)
	}
}

func TestDiceValuesIsCopy(t *testing.T) {
	d := NewDice(newScriptedRand(2, 3))
	d.Roll()
	values := d.Values()
	values[0] = 6
	if d.Has(6) || !d.Has(2) {
		t.Fatalf("modifying Values changed the pool: %v", d.Values())
	}
}

func TestDiceSet(t *testing.T) {
	d := NewDice(nil)
	if err := d.Set(0, 3); err == nil {
		t.Fatalf("expected error for die 0")
	}
	if err := d.Set(6, 6); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if len(d.Values()) != 4 {
		t.Fatalf("expected doubles pool, got %v", d.Values())
	}
	d.Clear()
	if !d.Empty() || d.Roll1 != 0 || d.Roll2 != 0 {
		t.Fatalf("expected cleared dice, got %d-%d %v", d.Roll1, d.Roll2, d.Values())
	}
}

func TestRandInt(t *testing.T) {
	for i := 0; i < 100; i++ {
		if v := RandInt(6); v < 0 || v >= 6 {
			t.Fatalf("RandInt out of range: %d", v)
		}
	}
}
