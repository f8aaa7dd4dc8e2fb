package backgammon

import "fmt"

type EventType int8

const (
	EventRolled EventType = iota + 1
	EventMoved
	EventTurnEnded
	EventWin
)

func (t EventType) String() string {
	switch t {
	case EventRolled:
		return "rolled"
	case EventMoved:
		return "moved"
	case EventTurnEnded:
		return "turn"
	case EventWin:
		return "win"
	default:
		return fmt.Sprintf("EventType(%d)", int8(t))
	}
}

// Event describes something that happened in a game. Only the fields relevant
// to the event type are set.
type Event struct {
	Game   string // ID of the game.
	Type   EventType
	Player string
	Turn   int

	Roll1 int8
	Roll2 int8
	Roll  []int8 // Dice pool after an EventRolled.

	Move Move // EventMoved.

	Points int8 // EventWin.
}

func (e *Event) String() string {
	switch e.Type {
	case EventRolled:
		return fmt.Sprintf("rolled %s %d %d", e.Player, e.Roll1, e.Roll2)
	case EventMoved:
		return fmt.Sprintf("moved %s %s", e.Player, e.Move)
	case EventTurnEnded:
		return fmt.Sprintf("turn %d ended by %s", e.Turn, e.Player)
	case EventWin:
		return fmt.Sprintf("win %s wins %d points!", e.Player, e.Points)
	default:
		return e.Type.String()
	}
}
