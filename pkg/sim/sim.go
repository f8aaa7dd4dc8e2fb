// Package sim plays series of games between computer opponents and
// aggregates their results.
package sim

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"codeberg.org/tslocum/backgammon"
	"codeberg.org/tslocum/backgammon/pkg/bot"
)

// Competitor is one side of a series. Competitors swap seats every game.
type Competitor struct {
	Name   string
	Policy bot.Policy

	Wins   int
	Points int

	Rating float64
	RD     float64
	Sigma  float64
}

// Result holds the statistics of a finished series.
type Result struct {
	Games        int
	Abandoned    int
	// AbandonedIDs holds the game ID of every abandoned game.
	AbandonedIDs []string

	Competitors [2]*Competitor

	// WinTypes counts finished games by points awarded, 1 to 3.
	WinTypes [4]int
	// Turns holds the number of turns of every finished game.
	Turns []float64
	Hits  int
	// Faces counts every die face rolled, including opening rolls.
	Faces [6]int

	Elapsed time.Duration
}

// Run plays cfg.Games games sequentially. It stops early with the context's
// error when ctx is done, and fails when a game loses track of a checker.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	err := cfg.validate()
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for i, policy := range [2]bot.Policy{cfg.Policy1, cfg.Policy2} {
		res.Competitors[i] = &Competitor{
			Name:   fmt.Sprintf("%s%d", policy, i+1),
			Policy: policy,
			Rating: initialRating,
			RD:     initialRD,
			Sigma:  initialSigma,
		}
	}

	start := time.Now()
	defer func() {
		res.Elapsed = time.Since(start)
	}()
	for i := 0; i < cfg.Games; i++ {
		err := ctx.Err()
		if err != nil {
			return res, err
		}
		err = res.play(ctx, &cfg, i)
		if err != nil {
			return res, fmt.Errorf("game %d: %w", i+1, err)
		}
		res.Games++
	}
	return res, nil
}

// play runs a single game. Competitor 1 sits in seat 1 on even games.
func (res *Result) play(ctx context.Context, cfg *Config, index int) error {
	first, second := res.Competitors[0], res.Competitors[1]
	if index%2 == 1 {
		first, second = second, first
	}
	player1 := backgammon.NewPlayer(first.Name, backgammon.Backward)
	player2 := backgammon.NewPlayer(second.Name, backgammon.Forward)
	bot1, bot2 := bot.New(first.Policy), bot.New(second.Policy)

	r := rand.New(rand.NewSource(cfg.Seed + int64(index)))
	g := backgammon.NewGame(player1, player2, cfg.Layout, r)
	g.Board.AllowOvershoot = cfg.AllowOvershoot

	var invariantErr error
	g.OnEvent = func(ev *backgammon.Event) {
		if cfg.Verbose {
			log.Printf("game %d %s -> %s", index+1, ev.Game, ev)
		}
		switch ev.Type {
		case backgammon.EventRolled:
			res.Faces[ev.Roll1-1]++
			res.Faces[ev.Roll2-1]++
		case backgammon.EventMoved:
			if ev.Move.Hit {
				res.Hits++
			}
			if total := g.Board.TotalCheckers(); total != 2*backgammon.NumCheckers && invariantErr == nil {
				invariantErr = fmt.Errorf("%d checkers in play after %s", total, ev.Move)
			}
		}
	}

	err := g.OpeningRoll()
	if err != nil {
		return err
	}
	for g.State != backgammon.StateGameOver {
		if g.Turn > cfg.MaxTurns {
			res.Abandoned++
			res.AbandonedIDs = append(res.AbandonedIDs, g.ID)
			if cfg.Verbose {
				log.Printf("game %d %s abandoned after %d turns", index+1, g.ID, cfg.MaxTurns)
			}
			return nil
		}
		c := backgammon.Chooser(bot1)
		if g.Board.CurrentPlayer().Equal(player2) {
			c = bot2
		}
		err := g.PlayTurn(ctx, c)
		if err != nil {
			return err
		}
		if invariantErr != nil {
			return invariantErr
		}
	}

	winner, points, err := g.Winner()
	if err != nil {
		return err
	}
	winning, losing := first, second
	if winner.Equal(player2) {
		winning, losing = second, first
	}
	winning.Wins++
	winning.Points += int(points)
	updateRatings(winning, losing)

	res.WinTypes[points]++
	res.Turns = append(res.Turns, float64(g.Turn))
	if cfg.Verbose {
		for _, line := range g.Replay() {
			log.Printf("game %d %s replay: %s", index+1, g.ID, line)
		}
	}
	return nil
}
