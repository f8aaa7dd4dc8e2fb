package backgammon

import (
	"bytes"
	"fmt"
)

var boardTop = []byte("+13-14-15-16-17-18-+---+19-20-21-22-23-24-+")
var boardBottom = []byte("+12-11-10--9--8--7-+---+-6--5--4--3--2--1-+")

const (
	VerticalBar rune = '\u2502' // │
)

// Render draws the board as text with points numbered from the perspective
// player's bear-off edge. Their checkers are drawn as x, the opponent's as o.
func (b *Board) Render(perspective Player) []byte {
	seat := b.seat(perspective)
	if seat == 0 {
		seat = b.turn
	}
	player, opponent := b.players[seat-1], b.players[opponentSeat(seat)-1]

	renderStack := func(count int8, color byte, depth int) []byte {
		switch {
		case int(count) <= depth || depth > 4:
			return []byte("   ")
		case depth == 4 && count > 5:
			return []byte(fmt.Sprintf("%2d ", count))
		default:
			return []byte{' ', color, ' '}
		}
	}
	renderPoint := func(pips int8, depth int) []byte {
		point := pointAt(player, pips)
		if c := numPlayerCheckers(b.space[point], seat); c != 0 {
			return renderStack(c, 'x', depth)
		}
		return renderStack(numOpponentCheckers(b.space[point], seat), 'o', depth)
	}

	var t bytes.Buffer
	t.Write(boardTop)
	t.WriteByte('\n')
	for row := 0; row < 11; row++ {
		top := row < 5
		depth := row
		if !top {
			depth = 10 - row
		}

		t.WriteRune(VerticalBar)
		for col := 0; col < 12; col++ {
			var pips int8
			if top {
				pips = int8(13 + col)
			} else {
				pips = int8(12 - col)
			}
			if row == 5 {
				t.WriteString("   ")
			} else {
				t.Write(renderPoint(pips, depth))
			}

			if col == 5 {
				t.WriteRune(VerticalBar)
				switch {
				case row == 5:
					t.WriteString("   ")
				case top:
					t.Write(renderStack(b.bar[opponentSeat(seat)-1], 'o', depth))
				default:
					t.Write(renderStack(b.bar[seat-1], 'x', depth))
				}
				t.WriteRune(VerticalBar)
			}
		}
		t.WriteRune(VerticalBar)

		switch row {
		case 0:
			t.WriteString("  o " + opponent.Name)
			if off := b.off[opponentSeat(seat)-1]; off != 0 {
				t.WriteString(fmt.Sprintf("  %d off", off))
			}
		case 10:
			t.WriteString("  x " + player.Name)
			if off := b.off[seat-1]; off != 0 {
				t.WriteString(fmt.Sprintf("  %d off", off))
			}
		}
		t.WriteByte('\n')
	}
	t.Write(boardBottom)
	t.WriteByte('\n')
	return t.Bytes()
}
