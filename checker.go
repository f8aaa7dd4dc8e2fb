package backgammon

// Checker is a single piece. Ownership never changes: a hit relocates the
// checker to its owner's bar.
type Checker struct {
	owner Player
}

func NewChecker(owner Player) Checker {
	return Checker{
		owner: owner,
	}
}

func (c Checker) Owner() Player {
	return c.owner
}

func (c Checker) String() string {
	return "Checker(" + c.owner.Name + ")"
}

func checkersOf(owner Player, count int8) []Checker {
	if count <= 0 {
		return nil
	}
	c := make([]Checker, count)
	for i := range c {
		c[i] = Checker{owner: owner}
	}
	return c
}
