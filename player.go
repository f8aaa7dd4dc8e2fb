package backgammon

import "fmt"

// Direction is the sign of a player's movement along the points.
type Direction int8

const (
	Forward  Direction = 1  // Toward point 23. Historically black.
	Backward Direction = -1 // Toward point 0. Historically white.
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int8(d))
	}
}

// Color returns the traditional checker color for the direction.
func (d Direction) Color() string {
	switch d {
	case Forward:
		return "black"
	case Backward:
		return "white"
	default:
		return ""
	}
}

type Player struct {
	Name      string
	Direction Direction
}

func NewPlayer(name string, direction Direction) Player {
	return Player{
		Name:      name,
		Direction: direction,
	}
}

// Equal reports whether both players have the same name. Direction is not compared.
func (p Player) Equal(o Player) bool {
	return p.Name == o.Name
}

// Key is the identity used to seat a player on a board.
func (p Player) Key() string {
	return p.Name
}

// Bar returns the origin the player enters from after being hit.
func (p Player) Bar() Origin {
	if p.Direction == Forward {
		return SpaceBarForward
	}
	return SpaceBarBackward
}

// HomeRange returns the first and last point of the player's home region,
// the point nearest the bear-off edge first.
func (p Player) HomeRange() (from int8, to int8) {
	if p.Direction == Forward {
		return NumPoints - 1, NumPoints - HomeSize
	}
	return 0, HomeSize - 1
}

// InHome reports whether point lies within the player's home region.
func (p Player) InHome(point int8) bool {
	from, to := p.HomeRange()
	if from > to {
		from, to = to, from
	}
	return point >= from && point <= to
}

// EdgeDistance returns the number of pips needed to bear a checker off from point.
func (p Player) EdgeDistance(point int8) int8 {
	if p.Direction == Forward {
		return NumPoints - point
	}
	return point + 1
}

func (p Player) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Direction.Color())
}
