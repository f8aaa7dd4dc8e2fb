package backgammon

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

type TurnState int8

const (
	StateAwaitingRoll TurnState = iota
	StateAwaitingMove
	StateTurnComplete
	StateGameOver
)

func (s TurnState) String() string {
	switch s {
	case StateAwaitingRoll:
		return "awaiting roll"
	case StateAwaitingMove:
		return "awaiting move"
	case StateTurnComplete:
		return "turn complete"
	case StateGameOver:
		return "game over"
	default:
		return fmt.Sprintf("TurnState(%d)", int8(s))
	}
}

// Chooser selects the next move for the player on roll. The state always
// lists at least one available move.
type Chooser interface {
	ChooseMove(ctx context.Context, state *GameState) (Candidate, error)
}

// Game drives a board through rolls, moves and turn changes.
// A Game is not safe for concurrent use.
type Game struct {
	ID    string
	Board *Board
	Dice  *Dice
	State TurnState
	Turn  int    // Starts at 1 and increases every time a turn ends.
	Moves []Move // Moves played this turn.

	Started time.Time

	// OnEvent is called after every roll, move, turn change and win. Events
	// carry the game ID.
	OnEvent func(ev *Event)

	replay  [][]byte
	opening bool
}

// NewGame returns a game between two players. Player 1 is on roll unless
// OpeningRoll decides otherwise. A random layout is drawn and the dice are
// rolled with r, or a randomly seeded generator when r is nil.
func NewGame(player1 Player, player2 Player, layout Layout, r Rand) *Game {
	dice := NewDice(r)
	return &Game{
		ID:      uuid.NewString(),
		Board:   newBoard(player1, player2, layout, dice.r),
		Dice:    dice,
		State:   StateAwaitingRoll,
		Turn:    1,
		Started: time.Now(),
		opening: true,
	}
}

// OpeningRoll rolls one die for each player until they differ. The player
// with the higher die moves first using both values. It is only allowed
// before the first roll of the game.
func (g *Game) OpeningRoll() error {
	if !g.opening || g.State != StateAwaitingRoll {
		return fmt.Errorf("%w: opening roll in state %s", ErrInvalidState, g.State)
	}
	var roll1, roll2 int8
	for roll1 == roll2 {
		roll1, roll2 = g.Dice.rollDie(), g.Dice.rollDie()
	}
	if roll2 > roll1 {
		g.Board.setCurrentPlayer(2)
	} else {
		g.Board.setCurrentPlayer(1)
	}
	g.Dice.set(roll1, roll2)
	g.rolled()
	return nil
}

// Roll rolls the dice for the player on roll.
func (g *Game) Roll() error {
	if g.State != StateAwaitingRoll {
		return fmt.Errorf("%w: roll in state %s", ErrInvalidState, g.State)
	}
	g.Dice.Roll()
	g.rolled()
	return nil
}

// SetRoll starts the turn with fixed dice instead of rolling.
func (g *Game) SetRoll(roll1 int8, roll2 int8) error {
	if g.State != StateAwaitingRoll {
		return fmt.Errorf("%w: roll in state %s", ErrInvalidState, g.State)
	}
	err := g.Dice.Set(roll1, roll2)
	if err != nil {
		return err
	}
	g.rolled()
	return nil
}

func (g *Game) rolled() {
	g.opening = false
	player := g.Board.CurrentPlayer()
	g.emit(&Event{
		Type:   EventRolled,
		Player: player.Name,
		Turn:   g.Turn,
		Roll1:  g.Dice.Roll1,
		Roll2:  g.Dice.Roll2,
		Roll:   g.Dice.Values(),
	})
	if g.Board.HasLegalMove(player, g.Dice.values) {
		g.State = StateAwaitingMove
	} else {
		g.State = StateTurnComplete
	}
}

// Move plays one die for the player on roll. The die must still be in the
// pool and the board must accept the move. Rejected moves change nothing.
func (g *Game) Move(origin Origin, die int8) (Move, error) {
	if g.State != StateAwaitingMove {
		return Move{}, fmt.Errorf("%w: move in state %s", ErrInvalidState, g.State)
	}
	if !g.Dice.Has(die) {
		return Move{}, fmt.Errorf("%w: %d", ErrDieUnavailable, die)
	}
	player := g.Board.CurrentPlayer()
	m, err := g.Board.MovePiece(origin, die, player)
	if err != nil {
		return Move{}, err
	}
	err = g.Dice.RemoveValue(die)
	if err != nil {
		log.Panicf("failed to consume die %d after a successful move: %s", die, err)
	}
	g.Moves = append(g.Moves, m)
	g.emit(&Event{
		Type:   EventMoved,
		Player: player.Name,
		Turn:   g.Turn,
		Move:   m,
	})

	switch {
	case g.Board.IsGameOver():
		g.handleWin()
	case g.Dice.Empty() || !g.Board.HasLegalMove(player, g.Dice.values):
		g.State = StateTurnComplete
	}
	return m, nil
}

// EndTurn passes the dice to the opponent.
func (g *Game) EndTurn() error {
	if g.State != StateTurnComplete {
		return fmt.Errorf("%w: end turn in state %s", ErrInvalidState, g.State)
	}
	player := g.Board.CurrentPlayer()
	g.recordEvent()
	g.emit(&Event{
		Type:   EventTurnEnded,
		Player: player.Name,
		Turn:   g.Turn,
	})
	g.Board.SwitchPlayer()
	g.Dice.Clear()
	g.Moves = nil
	g.Turn++
	g.State = StateAwaitingRoll
	return nil
}

// PlayTurn plays the rest of the current turn with moves selected by c.
// When ctx is done before a move, its error is returned and the moves
// already played stay on the board.
func (g *Game) PlayTurn(ctx context.Context, c Chooser) error {
	if g.State == StateAwaitingRoll {
		err := ctx.Err()
		if err != nil {
			return err
		}
		err = g.Roll()
		if err != nil {
			return err
		}
	}
	for g.State == StateAwaitingMove {
		err := ctx.Err()
		if err != nil {
			return err
		}
		candidate, err := c.ChooseMove(ctx, g.GameState())
		if err != nil {
			return fmt.Errorf("failed to choose move: %w", err)
		}
		_, err = g.Move(candidate.Origin, candidate.Die)
		if err != nil {
			return err
		}
	}
	if g.State == StateTurnComplete {
		return g.EndTurn()
	}
	return nil
}

// Play runs the game to completion. The opening roll decides who starts when
// the game has not begun yet.
func (g *Game) Play(ctx context.Context, player1 Chooser, player2 Chooser) (Player, error) {
	if g.opening && g.State == StateAwaitingRoll {
		err := g.OpeningRoll()
		if err != nil {
			return Player{}, err
		}
	}
	for g.State != StateGameOver {
		c := player1
		if g.Board.turn == 2 {
			c = player2
		}
		err := g.PlayTurn(ctx, c)
		if err != nil {
			return Player{}, err
		}
	}
	return g.Board.Winner()
}

// Winner returns the winner and the points awarded, 1 to 3.
func (g *Game) Winner() (Player, int8, error) {
	winner, err := g.Board.Winner()
	if err != nil {
		return Player{}, 0, err
	}
	return winner, g.Board.WinType(), nil
}

// GameState returns a copy of the game from the point of view of the player on roll.
func (g *Game) GameState() *GameState {
	player := g.Board.CurrentPlayer()
	s := &GameState{
		Board:  g.Board.Snapshot(),
		Player: player,
		Dice:   g.Dice.Values(),
	}
	if g.State == StateAwaitingMove {
		s.Available = g.Board.LegalMoves(player, s.Dice)
	}
	return s
}

// Replay returns the recorded turns. Once the game is over the first line is
// an "i" header with the game ID, start time, both names, the winning seat
// and points.
func (g *Game) Replay() [][]byte {
	replay := make([][]byte, len(g.replay))
	for i := range g.replay {
		replay[i] = append([]byte(nil), g.replay[i]...)
	}
	return replay
}

func (g *Game) recordEvent() {
	r1, r2 := g.Dice.Roll1, g.Dice.Roll2
	if r2 > r1 {
		r1, r2 = r2, r1
	}
	var movesFormatted []byte
	if len(g.Moves) != 0 {
		movesFormatted = append([]byte(" "), FormatMoves(g.Moves)...)
	}
	line := []byte(fmt.Sprintf("%d r %d-%d", g.Board.turn, r1, r2))
	line = append(line, movesFormatted...)
	g.replay = append(g.replay, line)
}

func (g *Game) handleWin() {
	g.State = StateGameOver
	g.recordEvent()

	winner, winPoints, err := g.Winner()
	if err != nil {
		log.Panicf("failed to determine winner: %s", err)
	}
	player1, player2 := g.Board.Players()
	g.replay = append([][]byte{[]byte(fmt.Sprintf("i %s %d %s %s %d %d", g.ID, g.Started.Unix(), player1.Name, player2.Name, g.Board.winner, winPoints))}, g.replay...)

	g.emit(&Event{
		Type:   EventWin,
		Player: winner.Name,
		Turn:   g.Turn,
		Points: winPoints,
	})
}

func (g *Game) emit(ev *Event) {
	ev.Game = g.ID
	if g.OnEvent != nil {
		g.OnEvent(ev)
	}
}
