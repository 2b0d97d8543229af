package chairs

import (
	"context"
	"time"
)

// Coordinator runs the rounds of a game: it plays the music, stops it,
// waits out the claim window and then sets up the next round.
type Coordinator struct {
	game   *Game
	music  MusicTimer
	window time.Duration
}

func NewCoordinator(g *Game, music MusicTimer, window time.Duration) *Coordinator {
	return &Coordinator{
		game:   g,
		music:  music,
		window: window,
	}
}

// Run drives rounds until the game is over. If ctx is canceled first the
// game is closed and the context's error returned.
func (c *Coordinator) Run(ctx context.Context) error {
	for c.game.playMusic() {
		if !c.sleep(ctx, c.music.Next()) {
			break
		}

		c.game.StopMusic()

		// Give the players time to sit down.
		if !c.sleep(ctx, c.window) {
			break
		}

		c.game.StartRound()
		c.game.ResetMusic()
	}

	if err := ctx.Err(); err != nil {
		c.game.Close()
		return err
	}

	return nil
}

// sleep waits for d, reporting false if the game ended or ctx was canceled first.
func (c *Coordinator) sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return true
	case <-c.game.Done():
		return false
	case <-ctx.Done():
		return false
	}
}
