package backgammon

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func testPlayers() (Player, Player) {
	return NewPlayer("white", Backward), NewPlayer("black", Forward)
}

func newTestBoard(layout Layout) (*Board, Player, Player) {
	white, black := testPlayers()
	return NewBoard(white, black, layout), white, black
}

func TestNewBoardStandard(t *testing.T) {
	b, white, black := newTestBoard(LayoutStandard)

	expected := []struct {
		point  int
		player Player
		count  int8
	}{
		{23, white, 2}, {12, white, 5}, {7, white, 3}, {5, white, 5},
		{0, black, 2}, {11, black, 5}, {16, black, 3}, {18, black, 5},
	}
	for _, e := range expected {
		if c := b.Count(e.point, e.player); c != e.count {
			t.Errorf("point %d: expected %d %s checkers, got %d", e.point, e.count, e.player.Name, c)
		}
		owner, ok := b.Owner(e.point)
		if !ok || !owner.Equal(e.player) {
			t.Errorf("point %d: expected owner %s, got %s", e.point, e.player.Name, owner.Name)
		}
	}
	if total := b.TotalCheckers(); total != 30 {
		t.Fatalf("expected 30 checkers, got %d", total)
	}
	if pips := b.PipCount(white); pips != 167 {
		t.Fatalf("expected white pip count 167, got %d", pips)
	}
	if pips := b.PipCount(black); pips != 167 {
		t.Fatalf("expected black pip count 167, got %d", pips)
	}
	if !b.CurrentPlayer().Equal(white) {
		t.Fatalf("expected player 1 to start, got %s", b.CurrentPlayer())
	}
}

func TestNewBoardEmpty(t *testing.T) {
	b, white, _ := newTestBoard(LayoutEmpty)
	if total := b.TotalCheckers(); total != 0 {
		t.Fatalf("expected no checkers, got %d", total)
	}
	if !b.CanBearOff(white) {
		t.Fatalf("expected a player without checkers to be able to bear off")
	}
}

func TestNewBoardRandom(t *testing.T) {
	b, white, black := newTestBoard(LayoutEmpty)
	b.Randomize(rand.New(rand.NewSource(7)))
	if c := b.Checkers(white); c != NumCheckers {
		t.Fatalf("expected %d white checkers, got %d", NumCheckers, c)
	}
	if c := b.Checkers(black); c != NumCheckers {
		t.Fatalf("expected %d black checkers, got %d", NumCheckers, c)
	}

	b = NewBoard(white, black, LayoutRandom)
	if total := b.TotalCheckers(); total != 30 {
		t.Fatalf("expected 30 checkers, got %d", total)
	}
}

func TestNewBoardPanics(t *testing.T) {
	tests := []struct {
		name    string
		player1 Player
		player2 Player
	}{
		{"same name", NewPlayer("a", Backward), NewPlayer("a", Forward)},
		{"same direction", NewPlayer("a", Backward), NewPlayer("b", Backward)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected NewBoard to panic")
				}
			}()
			NewBoard(tt.player1, tt.player2, LayoutEmpty)
		})
	}
}

func TestPointInvalidIndex(t *testing.T) {
	b, _, _ := newTestBoard(LayoutStandard)
	for _, index := range []int{-1, 24, 100} {
		_, err := b.Point(index)
		if !errors.Is(err, ErrInvalidIndex) {
			t.Fatalf("index %d: expected ErrInvalidIndex, got %v", index, err)
		}
	}
	checkers, err := b.Point(23)
	if err != nil {
		t.Fatalf("Point returned error: %v", err)
	}
	if len(checkers) != 2 || checkers[0].Owner().Name != "white" {
		t.Fatalf("unexpected checkers on point 23: %v", checkers)
	}
}

func TestWinnerBeforeGameOver(t *testing.T) {
	b, _, _ := newTestBoard(LayoutStandard)
	if b.IsGameOver() {
		t.Fatalf("expected game in progress")
	}
	_, err := b.Winner()
	if !errors.Is(err, ErrGameNotOver) {
		t.Fatalf("expected ErrGameNotOver, got %v", err)
	}
	if b.WinType() != 0 {
		t.Fatalf("expected no win type while in progress")
	}
}

func TestWinType(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *Board, black Player)
		want  int8
	}{
		{"single", func(b *Board, black Player) {
			b.SetOff(black, 1)
			b.SetPoint(20, black, 14)
		}, 1},
		{"gammon", func(b *Board, black Player) {
			b.SetPoint(20, black, 15)
		}, 2},
		{"backgammon home", func(b *Board, black Player) {
			b.SetPoint(20, black, 14)
			b.SetPoint(3, black, 1)
		}, 3},
		{"backgammon bar", func(b *Board, black Player) {
			b.SetPoint(20, black, 14)
			b.SetBar(black, 1)
		}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, white, black := newTestBoard(LayoutEmpty)
			tt.setup(b, black)
			b.SetOff(white, NumCheckers)
			winner, err := b.Winner()
			if err != nil {
				t.Fatalf("Winner returned error: %v", err)
			}
			if !winner.Equal(white) {
				t.Fatalf("expected white to win, got %s", winner)
			}
			if got := b.WinType(); got != tt.want {
				t.Fatalf("expected win type %d, got %d", tt.want, got)
			}
		})
	}
}

func TestSnapshotRestore(t *testing.T) {
	b, white, _ := newTestBoard(LayoutStandard)
	snapshot := b.Snapshot()
	if _, err := b.MovePiece(23, 1, white); err != nil {
		t.Fatalf("MovePiece returned error: %v", err)
	}
	if *b == snapshot {
		t.Fatalf("expected board to differ from snapshot after a move")
	}
	b.Restore(snapshot)
	if *b != snapshot {
		t.Fatalf("expected restored board to equal snapshot")
	}
	if c := b.Count(23, white); c != 2 {
		t.Fatalf("expected 2 checkers on 23 after restore, got %d", c)
	}
}

func TestSwitchPlayer(t *testing.T) {
	b, white, black := newTestBoard(LayoutStandard)
	b.SwitchPlayer()
	if !b.CurrentPlayer().Equal(black) {
		t.Fatalf("expected black on roll, got %s", b.CurrentPlayer())
	}
	if !b.Opponent(black).Equal(white) {
		t.Fatalf("expected white to be black's opponent")
	}
	b.SwitchPlayer()
	if !b.CurrentPlayer().Equal(white) {
		t.Fatalf("expected white on roll, got %s", b.CurrentPlayer())
	}
}

func TestPositionIDStandard(t *testing.T) {
	b, _, _ := newTestBoard(LayoutStandard)
	if id := b.PositionID(); id != "4HPwATDgc/ABMA" {
		t.Fatalf("expected starting position ID 4HPwATDgc/ABMA, got %s", id)
	}
	b.SwitchPlayer()
	if id := b.PositionID(); id != "4HPwATDgc/ABMA" {
		t.Fatalf("expected symmetric starting position ID, got %s", id)
	}
}

func TestRender(t *testing.T) {
	b, white, _ := newTestBoard(LayoutStandard)
	out := string(b.Render(white))
	if len(out) == 0 {
		t.Fatalf("expected rendered board")
	}
	for _, s := range []string{"+13-14-15-16-17-18-+", "x white", "o black"} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected rendered board to contain %q:\n%s", s, out)
		}
	}
}

func TestParseLayout(t *testing.T) {
	for _, l := range []Layout{LayoutStandard, LayoutRandom, LayoutEmpty} {
		parsed, err := ParseLayout(l.String())
		if err != nil || parsed != l {
			t.Fatalf("ParseLayout(%q) = %s, %v", l, parsed, err)
		}
	}
	if _, err := ParseLayout("hypergammon"); err == nil {
		t.Fatalf("expected error for unknown layout")
	}
}
