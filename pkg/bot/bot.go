// Package bot implements computer opponents that select moves by policy.
package bot

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"codeberg.org/tslocum/backgammon"
)

var ErrNoMove = errors.New("no legal move")

// Policy selects how a bot picks among legal moves.
type Policy int8

const (
	// PolicyFirst plays the first legal move, entering from the bar first.
	PolicyFirst Policy = iota
	// PolicyGreedy plays the move leading to the best scored position.
	PolicyGreedy
	// PolicyLookahead plays the first move of the best scored sequence using
	// as many dice as possible.
	PolicyLookahead
)

var policyNames = map[Policy]string{
	PolicyFirst:     "first",
	PolicyGreedy:    "greedy",
	PolicyLookahead: "lookahead",
}

func (p Policy) String() string {
	name, ok := policyNames[p]
	if !ok {
		return fmt.Sprintf("Policy(%d)", int8(p))
	}
	return name
}

// ParsePolicy returns the policy with the provided name.
func ParsePolicy(name string) (Policy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range policyNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown policy %q", name)
}

// Bot chooses moves for a single player.
type Bot struct {
	Policy  Policy
	Weights Weights
}

func New(policy Policy) *Bot {
	return &Bot{
		Policy:  policy,
		Weights: DefaultWeights,
	}
}

// Choose returns the move the bot would play next. It returns false when no
// value in dice can be played.
func (b *Bot) Choose(board *backgammon.Board, player backgammon.Player, dice []int8) (backgammon.Candidate, bool) {
	candidates := board.LegalMoves(player, dice)
	if len(candidates) == 0 {
		return backgammon.Candidate{}, false
	}
	switch b.Policy {
	case PolicyGreedy:
		return b.greedy(board, player, candidates), true
	case PolicyLookahead:
		return b.lookahead(board, player, dice), true
	default:
		return candidates[0], true
	}
}

// ChooseMove implements backgammon.Chooser.
func (b *Bot) ChooseMove(ctx context.Context, state *backgammon.GameState) (backgammon.Candidate, error) {
	err := ctx.Err()
	if err != nil {
		return backgammon.Candidate{}, err
	}
	board := state.Board
	c, ok := b.Choose(&board, state.Player, state.Dice)
	if !ok {
		return backgammon.Candidate{}, ErrNoMove
	}
	return c, nil
}

// PlayTurn plays dice for player directly on board until no value can be
// played, and returns the moves made.
func (b *Bot) PlayTurn(board *backgammon.Board, player backgammon.Player, dice []int8) ([]backgammon.Move, error) {
	pool := append([]int8(nil), dice...)
	var moves []backgammon.Move
	for len(pool) != 0 && !board.IsGameOver() {
		c, ok := b.Choose(board, player, pool)
		if !ok {
			break
		}
		m, err := board.MovePiece(c.Origin, c.Die, player)
		if err != nil {
			return moves, fmt.Errorf("failed to play %s with %d: %w", c.Origin, c.Die, err)
		}
		moves = append(moves, m)
		pool = removeDie(pool, c.Die)
	}
	return moves, nil
}

func (b *Bot) greedy(board *backgammon.Board, player backgammon.Player, candidates []backgammon.Candidate) backgammon.Candidate {
	best := candidates[0]
	bestScore := math.Inf(-1)
	for _, c := range candidates {
		next := board.Snapshot()
		_, err := next.MovePiece(c.Origin, c.Die, player)
		if err != nil {
			continue
		}
		score := b.Weights.Evaluate(&next, player)
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

func removeDie(dice []int8, die int8) []int8 {
	for i, v := range dice {
		if v == die {
			return append(dice[:i:i], dice[i+1:]...)
		}
	}
	return dice
}
