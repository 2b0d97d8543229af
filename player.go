package chairs

import (
	"sync/atomic"
	"time"
)

// Player competes for a chair once per round until it is eliminated or
// the game ends.
type Player struct {
	id         int
	game       *Game
	pace       time.Duration
	lastRound  int
	eliminated atomic.Bool
}

// NewPlayer returns player id of game g. Ids start at 1. pace is the
// pause after a successful claim before waiting for the next round.
func NewPlayer(g *Game, id int, pace time.Duration) *Player {
	return &Player{
		id:   id,
		game: g,
		pace: pace,
	}
}

func (p *Player) ID() int {
	return p.id
}

// Eliminated reports whether the player is out of the game.
func (p *Player) Eliminated() bool {
	return p.eliminated.Load()
}

// Run plays until the player is eliminated or the game is over.
func (p *Player) Run() {
	for !p.Eliminated() {
		if p.turn() == GameOver {
			return
		}
		if !p.Eliminated() && p.pace > 0 {
			time.Sleep(p.pace)
		}
	}
}

// turn makes a single claim.
func (p *Player) turn() Outcome {
	round, outcome := p.game.Claim(p.id, p.lastRound)

	switch outcome {
	case Seated:
		p.lastRound = round
	case Eliminated:
		p.eliminated.Store(true)
	}

	return outcome
}
