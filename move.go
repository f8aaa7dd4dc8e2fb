package backgammon

import (
	"strconv"
	"strings"
)

// Origin is a point index 0-23 or one of the bar sentinels SpaceBarForward and SpaceBarBackward.
type Origin int8

func (o Origin) IsBar() bool {
	return o == SpaceBarForward || o == SpaceBarBackward
}

func (o Origin) String() string {
	if o.IsBar() {
		return "bar"
	}
	return strconv.Itoa(int(o))
}

// Candidate is a legal (origin, die) pair.
type Candidate struct {
	Origin Origin
	Die    int8
}

// Move records an executed move.
type Move struct {
	Player  Player
	From    Origin
	To      int8 // SpaceOff when the checker was borne off.
	Die     int8
	Hit     bool
	BearOff bool
}

func (m Move) String() string {
	to := "off"
	if !m.BearOff {
		to = strconv.Itoa(int(m.To))
	}
	s := m.From.String() + "/" + to
	if m.Hit {
		s += "*"
	}
	return s
}

// FormatMoves formats moves as space separated from/to pairs. Hits are marked with an asterisk.
func FormatMoves(moves []Move) string {
	var b strings.Builder
	for i, m := range moves {
		if i != 0 {
			b.WriteByte(' ')
		}
		b.WriteString(m.String())
	}
	return b.String()
}

// IsValidMove reports whether the player may move a checker from origin with die.
func (b *Board) IsValidMove(origin Origin, die int8, player Player) bool {
	_, err := b.validate(origin, die, player)
	return err == nil
}

// ValidateMove returns a *MoveError describing why a move is illegal, or nil.
func (b *Board) ValidateMove(origin Origin, die int8, player Player) error {
	_, err := b.validate(origin, die, player)
	return err
}

func (b *Board) validate(origin Origin, die int8, player Player) (int8, error) {
	reject := func(reason Reason) (int8, error) {
		return 0, &MoveError{Origin: origin, Die: die, Reason: reason}
	}

	seat := b.seat(player)
	if seat == 0 {
		return reject(ReasonUnknownPlayer)
	}
	if b.IsGameOver() {
		return reject(ReasonGameOver)
	}
	if die < 1 || die > 6 {
		return reject(ReasonDieOutOfRange)
	}
	player = b.players[seat-1]

	onBar := b.bar[seat-1] > 0
	if onBar && origin != player.Bar() {
		return reject(ReasonBarNeeded)
	}
	if origin.IsBar() {
		if origin != player.Bar() {
			return reject(ReasonWrongBar)
		} else if !onBar {
			return reject(ReasonEmptyOrigin)
		}
	} else {
		if origin < 0 || origin >= NumPoints {
			return reject(ReasonOutOfRange)
		}
		checkers := b.space[origin]
		if checkers == 0 {
			return reject(ReasonEmptyOrigin)
		} else if numPlayerCheckers(checkers, seat) == 0 {
			return reject(ReasonOpponentChecker)
		}
	}

	to := int8(origin) + int8(player.Direction)*die
	if to < 0 || to >= NumPoints {
		if !b.bearOffAllowed(int8(origin), die, player, seat) {
			return reject(ReasonCannotBearOff)
		}
		return SpaceOff, nil
	}
	if numOpponentCheckers(b.space[to], seat) >= 2 {
		return reject(ReasonBlocked)
	}
	return to, nil
}

func (b *Board) bearOffAllowed(point int8, die int8, player Player, seat int8) bool {
	if !b.CanBearOff(player) {
		return false
	}
	distance := player.EdgeDistance(point)
	if die == distance {
		return true
	} else if die < distance || !b.AllowOvershoot {
		return false
	}
	// A larger die may only be used for the checker farthest from the edge.
	for p := int8(0); p < NumPoints; p++ {
		if player.EdgeDistance(p) > distance && numPlayerCheckers(b.space[p], seat) != 0 {
			return false
		}
	}
	return true
}

// MovePiece validates and executes a move. A single opposing checker on the
// destination is sent to its owner's bar. Nothing changes when the move is rejected.
func (b *Board) MovePiece(origin Origin, die int8, player Player) (Move, error) {
	to, err := b.validate(origin, die, player)
	if err != nil {
		return Move{}, err
	}
	seat := b.seat(player)
	sign := seatSign(seat)

	m := Move{
		Player: b.players[seat-1],
		From:   origin,
		To:     to,
		Die:    die,
	}

	switch {
	case origin.IsBar():
		b.bar[seat-1]--
	default:
		b.space[origin] -= sign
	}

	if to == SpaceOff {
		m.BearOff = true
		b.off[seat-1]++
		if b.off[seat-1] == NumCheckers {
			b.winner = seat
		}
		return m, nil
	}

	if numOpponentCheckers(b.space[to], seat) == 1 {
		m.Hit = true
		b.space[to] = 0
		b.bar[opponentSeat(seat)-1]++
	}
	b.space[to] += sign
	return m, nil
}

// LegalMoves returns every legal (origin, die) pair for the distinct values in dice.
// While the player has checkers on the bar only entering moves are returned.
// Points are visited in the order the player travels them.
func (b *Board) LegalMoves(player Player, dice []int8) []Candidate {
	seat := b.seat(player)
	if seat == 0 {
		return nil
	}
	player = b.players[seat-1]

	var values []int8
	for _, die := range dice {
		if !containsDie(values, die) {
			values = append(values, die)
		}
	}

	var moves []Candidate
	if b.bar[seat-1] > 0 {
		for _, die := range values {
			if b.IsValidMove(player.Bar(), die, player) {
				moves = append(moves, Candidate{Origin: player.Bar(), Die: die})
			}
		}
		return moves
	}

	for _, die := range values {
		b.iterateRoute(player, func(point int8) {
			if numPlayerCheckers(b.space[point], seat) == 0 {
				return
			}
			if b.IsValidMove(Origin(point), die, player) {
				moves = append(moves, Candidate{Origin: Origin(point), Die: die})
			}
		})
	}
	return moves
}

// HasLegalMove reports whether any value in dice can be played.
func (b *Board) HasLegalMove(player Player, dice []int8) bool {
	return len(b.LegalMoves(player, dice)) != 0
}

// iterateRoute visits every point from the player's starting end to their bear-off edge.
func (b *Board) iterateRoute(player Player, f func(point int8)) {
	if player.Direction == Forward {
		for point := int8(0); point < NumPoints; point++ {
			f(point)
		}
		return
	}
	for point := int8(NumPoints - 1); point >= 0; point-- {
		f(point)
	}
}

func containsDie(values []int8, die int8) bool {
	for _, v := range values {
		if v == die {
			return true
		}
	}
	return false
}
