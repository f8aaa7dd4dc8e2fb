package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"codeberg.org/tslocum/backgammon"
	"codeberg.org/tslocum/backgammon/pkg/bot"
	"codeberg.org/tslocum/backgammon/pkg/locale"
	"codeberg.org/tslocum/backgammon/pkg/sim"
	"github.com/caarlos0/env/v11"
)

type options struct {
	Games     int    `env:"BGAMMON_SIM_GAMES" envDefault:"100"`
	Seed      int64  `env:"BGAMMON_SIM_SEED"`
	MaxTurns  int    `env:"BGAMMON_SIM_MAX_TURNS" envDefault:"1000"`
	Player1   string `env:"BGAMMON_SIM_PLAYER1" envDefault:"lookahead"`
	Player2   string `env:"BGAMMON_SIM_PLAYER2" envDefault:"greedy"`
	Layout    string `env:"BGAMMON_SIM_LAYOUT" envDefault:"standard"`
	Lang      string `env:"BGAMMON_SIM_LANG" envDefault:"en"`
	Overshoot bool   `env:"BGAMMON_SIM_OVERSHOOT"`
	Verbose   bool   `env:"BGAMMON_SIM_VERBOSE"`
}

func main() {
	op := &options{}
	err := env.Parse(op)
	if err != nil {
		log.Fatalf("failed to parse environment: %s", err)
	}

	var (
		showBoard      bool
		rollStatistics bool
	)
	flag.IntVar(&op.Games, "games", op.Games, "Number of games to play")
	flag.Int64Var(&op.Seed, "seed", op.Seed, "Seed for the dice of the first game (0 for random)")
	flag.IntVar(&op.MaxTurns, "max-turns", op.MaxTurns, "Abandon games after this many turns")
	flag.StringVar(&op.Player1, "player1", op.Player1, "Policy of the first bot (first, greedy or lookahead)")
	flag.StringVar(&op.Player2, "player2", op.Player2, "Policy of the second bot (first, greedy or lookahead)")
	flag.StringVar(&op.Layout, "layout", op.Layout, "Starting position (standard or random)")
	flag.StringVar(&op.Lang, "lang", op.Lang, "Language of the report")
	flag.BoolVar(&op.Overshoot, "overshoot", op.Overshoot, "Allow bearing off with a larger die from the farthest point")
	flag.BoolVar(&op.Verbose, "verbose", op.Verbose, "Print all game events")
	flag.BoolVar(&showBoard, "board", false, "print the starting position and exit")
	flag.BoolVar(&rollStatistics, "statistics", false, "print dice roll statistics and exit")
	flag.Parse()

	catalog, err := locale.Load()
	if err != nil {
		log.Fatalf("failed to load locales: %s", err)
	}

	if rollStatistics {
		printRollStatistics(catalog, op.Lang)
		return
	}

	layout, err := backgammon.ParseLayout(op.Layout)
	if err != nil {
		log.Fatalf("Error: %s", err)
	} else if layout == backgammon.LayoutEmpty {
		log.Fatal("Error: Games can not be played without checkers.")
	}

	if showBoard {
		white := backgammon.NewPlayer("white", backgammon.Backward)
		black := backgammon.NewPlayer("black", backgammon.Forward)
		b := backgammon.NewBoard(white, black, layout)
		os.Stdout.Write(b.Render(white))
		fmt.Println(b.PositionID())
		return
	}

	policy1, err := bot.ParsePolicy(op.Player1)
	if err != nil {
		log.Fatalf("Error: %s", err)
	}
	policy2, err := bot.ParsePolicy(op.Player2)
	if err != nil {
		log.Fatalf("Error: %s", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := sim.Run(ctx, sim.Config{
		Games:          op.Games,
		Seed:           op.Seed,
		MaxTurns:       op.MaxTurns,
		Policy1:        policy1,
		Policy2:        policy2,
		Layout:         layout,
		AllowOvershoot: op.Overshoot,
		Verbose:        op.Verbose,
	})
	if errors.Is(err, context.Canceled) {
		log.Printf("Interrupted after %d games.", res.Games)
	} else if err != nil {
		log.Fatalf("failed to run simulation: %s", err)
	}
	fmt.Print(res.Report(catalog, op.Lang))
}

func printRollStatistics(c *locale.Catalog, lang string) {
	var oneSame, doubles int
	var lastroll1, lastroll2 int
	res := &sim.Result{}

	const total = 10000000
	for i := 0; i < total; i++ {
		roll1 := backgammon.RandInt(6) + 1
		roll2 := backgammon.RandInt(6) + 1

		res.Faces[roll1-1]++
		res.Faces[roll2-1]++

		if roll1 == lastroll1 || roll1 == lastroll2 || roll2 == lastroll1 || roll2 == lastroll2 {
			oneSame++
		}

		if roll1 == roll2 {
			doubles++
		}

		lastroll1, lastroll2 = roll1, roll2
	}

	p := c.Printer(lang)
	p.Printf(c.Get(lang, "Rolled %d pairs of dice.")+"\n", total)
	p.Printf(c.Get(lang, "Doubles: %d (%.0f%%). One same as last: %d (%.0f%%).")+"\n", doubles, float64(doubles)/float64(total)*100, oneSame, float64(oneSame)/float64(total)*100)
	for face, count := range res.Faces {
		p.Printf("%ds: %d (%.0f%%)\n", face+1, count, float64(count)/float64(total*2)*100)
	}
	p.Printf(c.Get(lang, "Chi-square of dice faces: %.2f.")+"\n", res.FaceChiSquare())
}
