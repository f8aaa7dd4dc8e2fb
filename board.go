package backgammon

import (
	"fmt"
	"log"
	"strings"
)

// Points are indexed 0-23. A backward player travels from 23 to 0 and bears off
// below 0, a forward player travels from 0 to 23 and bears off above 23.
// Bar origins are the virtual points just beyond the entering edge, so every
// move lands on origin + direction*die.
const (
	NumPoints   = 24
	NumCheckers = 15
	HomeSize    = 6

	SpaceBarForward  Origin = -1
	SpaceBarBackward Origin = NumPoints

	SpaceOff int8 = 25
)

type Layout int8

const (
	LayoutStandard Layout = iota
	LayoutRandom
	LayoutEmpty
)

func (l Layout) String() string {
	switch l {
	case LayoutStandard:
		return "standard"
	case LayoutRandom:
		return "random"
	case LayoutEmpty:
		return "empty"
	default:
		return fmt.Sprintf("Layout(%d)", int8(l))
	}
}

// ParseLayout returns the layout with the provided name.
func ParseLayout(name string) (Layout, error) {
	for _, l := range []Layout{LayoutStandard, LayoutRandom, LayoutEmpty} {
		if strings.EqualFold(strings.TrimSpace(name), l.String()) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown layout %q", name)
}

// Board is a plain value: assigning it copies the whole position.
type Board struct {
	space   [NumPoints]int8 // Positive values represent player 1, negative values represent player 2.
	bar     [2]int8
	off     [2]int8
	players [2]Player
	turn    int8 // Seat of the current player, 1 or 2.
	winner  int8

	// AllowOvershoot permits bearing off with a die larger than needed when no
	// checker sits farther from the edge. Only exact dice bear off otherwise.
	AllowOvershoot bool
}

// NewBoard seats two players with distinct names and opposite directions.
// Player 1 moves first. A random layout uses a randomly seeded generator.
func NewBoard(player1 Player, player2 Player, layout Layout) *Board {
	return newBoard(player1, player2, layout, nil)
}

// newBoard is NewBoard with the generator for a random layout. A nil r uses a
// randomly seeded generator.
func newBoard(player1 Player, player2 Player, layout Layout, r Rand) *Board {
	if player1.Equal(player2) {
		log.Panicf("players must have distinct names: %q", player1.Name)
	}
	if player1.Direction+player2.Direction != 0 || player1.Direction == 0 {
		log.Panicf("players must move in opposite directions: %s, %s", player1.Direction, player2.Direction)
	}

	b := &Board{
		players: [2]Player{player1, player2},
		turn:    1,
	}
	switch layout {
	case LayoutStandard:
		b.setStandard()
	case LayoutRandom:
		if r == nil {
			r = newRand()
		}
		b.Randomize(r)
	case LayoutEmpty:
	default:
		log.Panicf("unknown layout: %d", layout)
	}
	return b
}

func (b *Board) setStandard() {
	for seat := int8(1); seat <= 2; seat++ {
		p := b.players[seat-1]
		for _, start := range [...]struct {
			pips  int8
			count int8
		}{{24, 2}, {13, 5}, {8, 3}, {6, 5}} {
			b.space[pointAt(p, start.pips)] = start.count * seatSign(seat)
		}
	}
}

// Randomize clears the board and drops each player's checkers on random points.
// A point only ever receives checkers of one player.
func (b *Board) Randomize(r Rand) {
	b.Clear()
	for seat := int8(1); seat <= 2; seat++ {
		for placed := 0; placed < NumCheckers; {
			point := r.Intn(NumPoints)
			if numOpponentCheckers(b.space[point], seat) != 0 {
				continue
			}
			b.space[point] += seatSign(seat)
			placed++
		}
	}
}

// Clear removes every checker and resets the winner. The players and turn are kept.
func (b *Board) Clear() {
	b.space = [NumPoints]int8{}
	b.bar = [2]int8{}
	b.off = [2]int8{}
	b.winner = 0
}

// Snapshot returns a copy of the board.
func (b *Board) Snapshot() Board {
	return *b
}

// Restore replaces the board with a snapshot.
func (b *Board) Restore(s Board) {
	*b = s
}

// Players returns player 1 and player 2.
func (b *Board) Players() (Player, Player) {
	return b.players[0], b.players[1]
}

// Point returns the checkers stacked on a point.
func (b *Board) Point(index int) ([]Checker, error) {
	if index < 0 || index >= NumPoints {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	checkers := b.space[index]
	switch {
	case checkers > 0:
		return checkersOf(b.players[0], checkers), nil
	case checkers < 0:
		return checkersOf(b.players[1], -checkers), nil
	default:
		return nil, nil
	}
}

// Owner returns the player holding a point. The result is false for empty or invalid points.
func (b *Board) Owner(index int) (Player, bool) {
	if index < 0 || index >= NumPoints || b.space[index] == 0 {
		return Player{}, false
	}
	if b.space[index] > 0 {
		return b.players[0], true
	}
	return b.players[1], true
}

// Count returns the number of the player's checkers on a point.
func (b *Board) Count(index int, player Player) int8 {
	seat := b.seat(player)
	if seat == 0 || index < 0 || index >= NumPoints {
		return 0
	}
	return numPlayerCheckers(b.space[index], seat)
}

// BarCheckers returns the player's checkers waiting to re-enter.
func (b *Board) BarCheckers(player Player) []Checker {
	seat := b.seat(player)
	if seat == 0 {
		return nil
	}
	return checkersOf(b.players[seat-1], b.bar[seat-1])
}

func (b *Board) BarCount(player Player) int8 {
	seat := b.seat(player)
	if seat == 0 {
		return 0
	}
	return b.bar[seat-1]
}

func (b *Board) OffCount(player Player) int8 {
	seat := b.seat(player)
	if seat == 0 {
		return 0
	}
	return b.off[seat-1]
}

// Checkers returns the number of the player's checkers on the board, on the bar and borne off.
func (b *Board) Checkers(player Player) int {
	seat := b.seat(player)
	if seat == 0 {
		return 0
	}
	total := int(b.bar[seat-1]) + int(b.off[seat-1])
	for _, checkers := range b.space {
		total += int(numPlayerCheckers(checkers, seat))
	}
	return total
}

// TotalCheckers returns the number of checkers of both players in every location.
func (b *Board) TotalCheckers() int {
	return b.Checkers(b.players[0]) + b.Checkers(b.players[1])
}

func (b *Board) CurrentPlayer() Player {
	return b.players[b.turn-1]
}

// Opponent returns the other seated player.
func (b *Board) Opponent(player Player) Player {
	if b.seat(player) == 2 {
		return b.players[0]
	}
	return b.players[1]
}

func (b *Board) SwitchPlayer() {
	b.turn = opponentSeat(b.turn)
}

func (b *Board) setCurrentPlayer(seat int8) {
	b.turn = seat
}

func (b *Board) IsGameOver() bool {
	return b.winner != 0 || b.off[0] == NumCheckers || b.off[1] == NumCheckers
}

// Winner returns the player who bore off all checkers.
func (b *Board) Winner() (Player, error) {
	if !b.IsGameOver() {
		return Player{}, ErrGameNotOver
	}
	if b.winner == 0 {
		b.checkWinner()
	}
	return b.players[b.winner-1], nil
}

func (b *Board) checkWinner() {
	for seat := int8(1); seat <= 2; seat++ {
		if b.off[seat-1] == NumCheckers {
			b.winner = seat
			return
		}
	}
}

// WinType returns 1 for a single game, 2 for a gammon and 3 for a backgammon.
// It returns 0 while the game is in progress.
func (b *Board) WinType() int8 {
	winner, err := b.Winner()
	if err != nil {
		return 0
	}
	loser := opponentSeat(b.seat(winner))
	if b.off[loser-1] != 0 {
		return 1
	}
	if b.bar[loser-1] != 0 {
		return 3
	}
	for point := int8(0); point < NumPoints; point++ {
		if winner.InHome(point) && numPlayerCheckers(b.space[point], loser) != 0 {
			return 3
		}
	}
	return 2
}

// PipCount returns the total number of pips the player needs to bear off every checker.
func (b *Board) PipCount(player Player) int {
	seat := b.seat(player)
	if seat == 0 {
		return 0
	}
	pips := int(b.bar[seat-1]) * (NumPoints + 1)
	for point := int8(0); point < NumPoints; point++ {
		pips += int(numPlayerCheckers(b.space[point], seat)) * int(player.EdgeDistance(point))
	}
	return pips
}

// CanBearOff reports whether all of the player's remaining checkers are in their home region.
func (b *Board) CanBearOff(player Player) bool {
	seat := b.seat(player)
	if seat == 0 || b.bar[seat-1] != 0 {
		return false
	}
	for point := int8(0); point < NumPoints; point++ {
		if !player.InHome(point) && numPlayerCheckers(b.space[point], seat) != 0 {
			return false
		}
	}
	return true
}

// SetPoint places count checkers of a player on a point, replacing what was there.
func (b *Board) SetPoint(index int, player Player, count int8) error {
	seat := b.seat(player)
	switch {
	case index < 0 || index >= NumPoints:
		return fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	case seat == 0:
		return fmt.Errorf("unknown player %s", player.Name)
	case count < 0 || count > NumCheckers:
		return fmt.Errorf("invalid checker count %d", count)
	}
	b.space[index] = count * seatSign(seat)
	return nil
}

func (b *Board) SetBar(player Player, count int8) error {
	seat := b.seat(player)
	switch {
	case seat == 0:
		return fmt.Errorf("unknown player %s", player.Name)
	case count < 0 || count > NumCheckers:
		return fmt.Errorf("invalid checker count %d", count)
	}
	b.bar[seat-1] = count
	return nil
}

func (b *Board) SetOff(player Player, count int8) error {
	seat := b.seat(player)
	switch {
	case seat == 0:
		return fmt.Errorf("unknown player %s", player.Name)
	case count < 0 || count > NumCheckers:
		return fmt.Errorf("invalid checker count %d", count)
	}
	b.off[seat-1] = count
	b.winner = 0
	b.checkWinner()
	return nil
}

// seat returns 1 or 2 for a seated player, matched by name, and 0 otherwise.
func (b *Board) seat(player Player) int8 {
	switch player.Key() {
	case b.players[0].Key():
		return 1
	case b.players[1].Key():
		return 2
	default:
		return 0
	}
}

// pointAt returns the index of a player's point numbered by pips from their bear-off edge.
func pointAt(player Player, pips int8) int8 {
	if player.Direction == Forward {
		return NumPoints - pips
	}
	return pips - 1
}

func seatSign(seat int8) int8 {
	if seat == 2 {
		return -1
	}
	return 1
}

func opponentSeat(seat int8) int8 {
	if seat == 2 {
		return 1
	}
	return 2
}

func numPlayerCheckers(checkers int8, seat int8) int8 {
	if seat == 1 {
		if checkers > 0 {
			return checkers
		}
		return 0
	}
	if checkers < 0 {
		return checkers * -1
	}
	return 0
}

func numOpponentCheckers(checkers int8, seat int8) int8 {
	return numPlayerCheckers(checkers, opponentSeat(seat))
}
