package backgammon

// GameState is a copy of a game as seen by the player on roll.
type GameState struct {
	Board     Board
	Player    Player
	Dice      []int8      // Remaining dice pool.
	Available []Candidate // Legal moves.
}

func (s *GameState) Opponent() Player {
	return s.Board.Opponent(s.Player)
}

// MayMove reports whether the player has any legal move left.
func (s *GameState) MayMove() bool {
	return len(s.Available) != 0
}
