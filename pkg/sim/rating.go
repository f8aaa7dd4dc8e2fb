package sim

import "github.com/jlouis/glicko2"

const (
	initialRating = 1500
	initialRD     = 350
	initialSigma  = 0.06

	ratingTau = 0.6
)

type ratingPlayer struct {
	r       float64
	rd      float64
	sigma   float64
	outcome float64
}

func (p ratingPlayer) R() float64 {
	return p.r
}

func (p ratingPlayer) RD() float64 {
	return p.rd
}

func (p ratingPlayer) Sigma() float64 {
	return p.sigma
}

func (p ratingPlayer) SJ() float64 {
	return p.outcome
}

// updateRatings rates a single game. Both competitors are rated against
// each other's rating before the game.
func updateRatings(winner *Competitor, loser *Competitor) {
	w, l := *winner, *loser
	winner.Rating, winner.RD, winner.Sigma = glicko2.Rank(w.Rating, w.RD, w.Sigma, []glicko2.Opponent{ratingPlayer{l.Rating, l.RD, l.Sigma, 1}}, ratingTau)
	loser.Rating, loser.RD, loser.Sigma = glicko2.Rank(l.Rating, l.RD, l.Sigma, []glicko2.Opponent{ratingPlayer{w.Rating, w.RD, w.Sigma, 0}}, ratingTau)
}
