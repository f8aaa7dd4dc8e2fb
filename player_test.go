package backgammon

import "testing"

func TestPlayerEqualByName(t *testing.T) {
	a := NewPlayer("white", Backward)
	b := NewPlayer("white", Forward)
	if !a.Equal(b) {
		t.Fatalf("expected players with the same name to be equal")
	}
	if a.Equal(NewPlayer("black", Backward)) {
		t.Fatalf("expected players with different names to differ")
	}
}

func TestPlayerSeatedByName(t *testing.T) {
	white, black := NewPlayer("white", Backward), NewPlayer("black", Forward)
	b := NewBoard(white, black, LayoutStandard)

	alias := Player{Name: "white"}
	if c := b.Count(23, alias); c != 2 {
		t.Fatalf("expected 2 checkers for a player with the same name, got %d", c)
	}
	if !b.IsValidMove(23, 1, alias) {
		t.Fatalf("expected a player with the same name to move white's checkers")
	}
}

func TestPlayerHome(t *testing.T) {
	tests := []struct {
		player Player
		point  int8
		home   bool
		edge   int8
	}{
		{NewPlayer("white", Backward), 0, true, 1},
		{NewPlayer("white", Backward), 5, true, 6},
		{NewPlayer("white", Backward), 6, false, 7},
		{NewPlayer("black", Forward), 23, true, 1},
		{NewPlayer("black", Forward), 18, true, 6},
		{NewPlayer("black", Forward), 17, false, 7},
	}
	for _, tt := range tests {
		if home := tt.player.InHome(tt.point); home != tt.home {
			t.Errorf("%s InHome(%d) = %v, want %v", tt.player, tt.point, home, tt.home)
		}
		if edge := tt.player.EdgeDistance(tt.point); edge != tt.edge {
			t.Errorf("%s EdgeDistance(%d) = %d, want %d", tt.player, tt.point, edge, tt.edge)
		}
	}
}

func TestPlayerHomeRange(t *testing.T) {
	tests := []struct {
		player   Player
		from, to int8
	}{
		{NewPlayer("white", Backward), 0, 5},
		{NewPlayer("black", Forward), 23, 18},
	}
	for _, tt := range tests {
		from, to := tt.player.HomeRange()
		if from != tt.from || to != tt.to {
			t.Errorf("%s HomeRange() = %d, %d, want %d, %d", tt.player, from, to, tt.from, tt.to)
		}
		if !tt.player.InHome(from) || !tt.player.InHome(to) {
			t.Errorf("%s expected both ends of the home range to be in home", tt.player)
		}
	}
}

func TestPlayerBar(t *testing.T) {
	if NewPlayer("white", Backward).Bar() != SpaceBarBackward {
		t.Fatalf("expected backward player to enter from %d", SpaceBarBackward)
	}
	if NewPlayer("black", Forward).Bar() != SpaceBarForward {
		t.Fatalf("expected forward player to enter from %d", SpaceBarForward)
	}
	if !SpaceBarForward.IsBar() || !SpaceBarBackward.IsBar() || Origin(0).IsBar() {
		t.Fatalf("unexpected IsBar results")
	}
}
