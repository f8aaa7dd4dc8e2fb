package backgammon

import "encoding/base64"

// PositionID returns the gnubg position ID of the board from the point of
// view of the player on roll.
func (b *Board) PositionID() string {
	var bits []bool
	for _, seat := range [2]int8{b.turn, opponentSeat(b.turn)} {
		player := b.players[seat-1]
		for pips := int8(1); pips <= NumPoints; pips++ {
			checkers := numPlayerCheckers(b.space[pointAt(player, pips)], seat)
			for i := int8(0); i < checkers; i++ {
				bits = append(bits, true)
			}
			bits = append(bits, false)
		}
		for i := int8(0); i < b.bar[seat-1]; i++ {
			bits = append(bits, true)
		}
		bits = append(bits, false)
	}

	out := make([]byte, 10)
	for i, set := range bits {
		if set {
			out[i/8] |= 1 << (i % 8)
		}
	}
	return base64.RawStdEncoding.EncodeToString(out)
}
