package bot

import (
	"codeberg.org/tslocum/backgammon"
)

// Weights scales the features of a position. Positive features favor the
// evaluated player.
type Weights struct {
	Off   float64 // Checkers borne off.
	Pips  float64 // Pip count lead over the opponent.
	Point float64 // Points made with two or more checkers.
	Home  float64 // Extra for points made in the home region.
	Blot  float64 // Single checkers the opponent can reach.
	Bar   float64 // Opponent checkers on the bar, minus own.
}

var DefaultWeights = Weights{
	Off:   4,
	Pips:  0.5,
	Point: 1,
	Home:  1.5,
	Blot:  2,
	Bar:   3,
}

const winScore = 1e6

// Evaluate scores the position for player. Higher is better.
func (w Weights) Evaluate(board *backgammon.Board, player backgammon.Player) float64 {
	opponent := board.Opponent(player)
	if board.IsGameOver() {
		winner, _ := board.Winner()
		if winner.Equal(player) {
			return winScore
		}
		return -winScore
	}

	score := w.Off * float64(board.OffCount(player))
	score += w.Pips * float64(board.PipCount(opponent)-board.PipCount(player))
	score += w.Bar * float64(board.BarCount(opponent)-board.BarCount(player))
	for point := 0; point < backgammon.NumPoints; point++ {
		switch board.Count(point, player) {
		case 0:
		case 1:
			if exposed(board, opponent, int8(point)) {
				score -= w.Blot
			}
		default:
			score += w.Point
			if player.InHome(int8(point)) {
				score += w.Home
			}
		}
	}
	return score
}

// exposed reports whether an opponent checker within direct range could land on point.
func exposed(board *backgammon.Board, opponent backgammon.Player, point int8) bool {
	const reach = 12
	if board.BarCount(opponent) != 0 {
		distance := (point - int8(opponent.Bar())) * int8(opponent.Direction)
		if distance > 0 && distance <= reach {
			return true
		}
	}
	for from := int8(0); from < backgammon.NumPoints; from++ {
		if board.Count(int(from), opponent) == 0 {
			continue
		}
		distance := (point - from) * int8(opponent.Direction)
		if distance > 0 && distance <= reach {
			return true
		}
	}
	return false
}
