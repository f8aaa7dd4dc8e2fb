package bot

import (
	"math"
	"sort"

	"codeberg.org/tslocum/backgammon"
)

// searchKey identifies a position reached during a search together with the
// dice still to be played.
type searchKey struct {
	board backgammon.Board
	dice  [4]int8
}

type sequence struct {
	first backgammon.Candidate
	used  int
	score float64
}

// better prefers sequences playing more dice, then higher scores.
func (s sequence) better(o sequence) bool {
	if s.used != o.used {
		return s.used > o.used
	}
	return s.score > o.score
}

func (b *Bot) lookahead(board *backgammon.Board, player backgammon.Player, dice []int8) backgammon.Candidate {
	seen := make(map[searchKey]struct{})
	best := sequence{used: -1, score: math.Inf(-1)}
	for _, c := range board.LegalMoves(player, dice) {
		next := board.Snapshot()
		_, err := next.MovePiece(c.Origin, c.Die, player)
		if err != nil {
			continue
		}
		s := b.search(&next, player, removeDie(dice, c.Die), 1, seen)
		s.first = c
		if s.better(best) {
			best = s
		}
	}
	return best.first
}

// search returns the best continuation from board. Positions already visited
// with the same dice are skipped.
func (b *Bot) search(board *backgammon.Board, player backgammon.Player, dice []int8, used int, seen map[searchKey]struct{}) sequence {
	leaf := sequence{used: used, score: b.Weights.Evaluate(board, player)}
	if len(dice) == 0 || board.IsGameOver() {
		return leaf
	}

	key := searchKey{board: *board, dice: diceKey(dice)}
	if _, ok := seen[key]; ok {
		return sequence{used: -1, score: math.Inf(-1)}
	}
	seen[key] = struct{}{}

	best := leaf
	for _, c := range board.LegalMoves(player, dice) {
		next := board.Snapshot()
		_, err := next.MovePiece(c.Origin, c.Die, player)
		if err != nil {
			continue
		}
		s := b.search(&next, player, removeDie(dice, c.Die), used+1, seen)
		if s.better(best) {
			best = s
		}
	}
	return best
}

func diceKey(dice []int8) [4]int8 {
	var key [4]int8
	copy(key[:], dice)
	sort.Slice(key[:], func(i, j int) bool {
		return key[i] < key[j]
	})
	return key
}
