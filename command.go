package backgammon

import (
	"fmt"
	"strconv"
	"strings"
)

// Commands are text instructions for the player on roll, written the same
// way moves are recorded in a replay:
//
//	roll
//	roll 5-3
//	move 12/7 7/4
//	move bar/20 5/off
//	end
type CommandType int8

const (
	CommandRoll CommandType = iota + 1
	CommandMove
	CommandEndTurn
)

// Step is one from/to pair of a move command.
type Step struct {
	FromBar bool
	From    int8
	Off     bool
	To      int8
}

type Command struct {
	Type  CommandType
	Roll1 int8 // Fixed roll, zero to roll the dice.
	Roll2 int8
	Steps []Step
}

// ParseCommand parses a single command line.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}
	params := fields[1:]
	switch fields[0] {
	case "roll", "r":
		cmd := Command{Type: CommandRoll}
		if len(params) == 0 {
			return cmd, nil
		} else if len(params) != 1 {
			return Command{}, fmt.Errorf("invalid roll command: %s", line)
		}
		dice := strings.Split(params[0], "-")
		if len(dice) != 2 {
			return Command{}, fmt.Errorf("invalid roll: %s", params[0])
		}
		for i, value := range dice {
			v, err := strconv.ParseInt(value, 10, 8)
			if err != nil || v < 1 || v > 6 {
				return Command{}, fmt.Errorf("invalid die: %s", value)
			}
			if i == 0 {
				cmd.Roll1 = int8(v)
			} else {
				cmd.Roll2 = int8(v)
			}
		}
		return cmd, nil
	case "move", "m", "mv":
		if len(params) == 0 {
			return Command{}, fmt.Errorf("move command requires at least one move")
		}
		cmd := Command{Type: CommandMove}
		for _, param := range params {
			step, err := parseStep(param)
			if err != nil {
				return Command{}, err
			}
			cmd.Steps = append(cmd.Steps, step)
		}
		return cmd, nil
	case "end", "e", "ok":
		return Command{Type: CommandEndTurn}, nil
	default:
		return Command{}, fmt.Errorf("unknown command: %s", fields[0])
	}
}

func parseStep(s string) (Step, error) {
	from, to, ok := strings.Cut(strings.TrimSuffix(s, "*"), "/")
	if !ok {
		return Step{}, fmt.Errorf("invalid move: %s", s)
	}
	var step Step
	if from == "bar" {
		step.FromBar = true
	} else {
		v, err := parsePoint(from)
		if err != nil {
			return Step{}, fmt.Errorf("invalid move %s: %s", s, err)
		}
		step.From = v
	}
	if to == "off" {
		step.Off = true
	} else {
		v, err := parsePoint(to)
		if err != nil {
			return Step{}, fmt.Errorf("invalid move %s: %s", s, err)
		}
		step.To = v
	}
	if step.FromBar && step.Off {
		return Step{}, fmt.Errorf("invalid move: %s", s)
	}
	return step, nil
}

func parsePoint(s string) (int8, error) {
	v, err := strconv.ParseInt(s, 10, 8)
	if err != nil || v < 0 || v >= NumPoints {
		return 0, fmt.Errorf("invalid point %q", s)
	}
	return int8(v), nil
}

// Execute applies a command for the player on roll. Steps of a move command
// are played in order and the steps played before a rejected one remain.
func (g *Game) Execute(cmd Command) error {
	switch cmd.Type {
	case CommandRoll:
		if cmd.Roll1 != 0 {
			return g.SetRoll(cmd.Roll1, cmd.Roll2)
		}
		return g.Roll()
	case CommandMove:
		for _, step := range cmd.Steps {
			origin, die := g.resolveStep(step)
			_, err := g.Move(origin, die)
			if err != nil {
				return fmt.Errorf("failed to move %s: %w", step, err)
			}
		}
		return nil
	case CommandEndTurn:
		return g.EndTurn()
	default:
		return fmt.Errorf("unknown command type %d", cmd.Type)
	}
}

// resolveStep converts a step into an origin and die for the player on roll.
func (g *Game) resolveStep(step Step) (Origin, int8) {
	player := g.Board.CurrentPlayer()
	origin := Origin(step.From)
	if step.FromBar {
		origin = player.Bar()
	}
	if !step.Off {
		return origin, (step.To - int8(origin)) * int8(player.Direction)
	}

	distance := player.EdgeDistance(int8(origin))
	if g.Dice.Has(distance) || !g.Board.AllowOvershoot {
		return origin, distance
	}
	var die int8
	for _, v := range g.Dice.values {
		if v > distance && (die == 0 || v < die) {
			die = v
		}
	}
	if die == 0 {
		return origin, distance
	}
	return origin, die
}

func (s Step) String() string {
	from, to := "bar", "off"
	if !s.FromBar {
		from = strconv.Itoa(int(s.From))
	}
	if !s.Off {
		to = strconv.Itoa(int(s.To))
	}
	return from + "/" + to
}
