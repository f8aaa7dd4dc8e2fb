package sim

import (
	"strings"
	"time"

	"codeberg.org/tslocum/backgammon/pkg/locale"
	"gonum.org/v1/gonum/stat"
)

// TurnStats returns the mean and standard deviation of the length of finished games.
func (res *Result) TurnStats() (mean float64, stdDev float64) {
	switch len(res.Turns) {
	case 0:
		return 0, 0
	case 1:
		return res.Turns[0], 0
	}
	return stat.MeanStdDev(res.Turns, nil)
}

// FaceChiSquare returns the chi-square statistic of the rolled faces against
// a fair die.
func (res *Result) FaceChiSquare() float64 {
	var total float64
	observed := make([]float64, len(res.Faces))
	for i, count := range res.Faces {
		observed[i] = float64(count)
		total += float64(count)
	}
	if total == 0 {
		return 0
	}
	expected := make([]float64, len(res.Faces))
	for i := range expected {
		expected[i] = total / float64(len(expected))
	}
	return stat.ChiSquare(observed, expected)
}

// Report renders the result in lang.
func (res *Result) Report(c *locale.Catalog, lang string) string {
	var b strings.Builder
	line := func(format string, a ...interface{}) {
		b.WriteString(c.Sprintf(lang, format, a...))
		b.WriteByte('\n')
	}

	line("Played %d games in %s.", res.Games, res.Elapsed.Round(time.Millisecond).String())
	for _, competitor := range res.Competitors {
		if competitor == nil {
			continue
		}
		line("%s (%s): %d wins, %d points, rating %.0f (deviation %.0f)", competitor.Name, competitor.Policy.String(), competitor.Wins, competitor.Points, competitor.Rating, competitor.RD)
	}
	line("Singles: %d. Gammons: %d. Backgammons: %d.", res.WinTypes[1], res.WinTypes[2], res.WinTypes[3])
	if res.Abandoned != 0 {
		line("Abandoned: %d.", res.Abandoned)
	}
	mean, stdDev := res.TurnStats()
	line("Turns per game: mean %.1f, standard deviation %.1f.", mean, stdDev)
	line("Checkers hit: %d.", res.Hits)

	faces := make([]string, len(res.Faces))
	for i, count := range res.Faces {
		faces[i] = c.Printer(lang).Sprintf("%d: %d", i+1, count)
	}
	line("Dice faces: %s.", strings.Join(faces, ", "))
	line("Chi-square of dice faces: %.2f.", res.FaceChiSquare())
	return b.String()
}
