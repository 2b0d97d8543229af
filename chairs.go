// Package chairs plays musical chairs between goroutines. A coordinator
// starts and stops the music; when it stops, every player still in the
// game races for one of a shrinking number of chairs, and a player who
// finds none is eliminated. The game ends when a single player remains.
package chairs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Config describes a complete game.
type Config struct {
	Players     int           // Number of players, at least two.
	Music       MusicTimer    // How long the music plays each round.
	ClaimWindow time.Duration // How long claims stay open after the music stops.
	Pace        time.Duration // Pause a seated player takes before waiting for the next round.

	Narrator Narrator
	Latency  LatencyRecorder
	Logger   *slog.Logger
}

// Result is the outcome of a finished game.
type Result struct {
	Winner int
	Rounds int
}

// Play runs a whole game and waits for the coordinator and every player
// to finish.
func Play(ctx context.Context, cfg Config) (Result, error) {
	if cfg.Music == nil {
		return Result{}, fmt.Errorf("play: %w", ErrMusicRange)
	}

	g, err := New(Options{
		Players:  cfg.Players,
		Narrator: cfg.Narrator,
		Latency:  cfg.Latency,
		Logger:   cfg.Logger,
	})
	if err != nil {
		return Result{}, fmt.Errorf("play: %w", err)
	}

	eg := errgroup.Group{}

	eg.Go(func() error {
		return NewCoordinator(g, cfg.Music, cfg.ClaimWindow).Run(ctx)
	})

	for id := 1; id <= cfg.Players; id++ {
		p := NewPlayer(g, id, cfg.Pace)
		eg.Go(func() error {
			p.Run()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return Result{Rounds: g.Round()}, err
	}

	winner, _ := g.Winner()
	return Result{Winner: winner, Rounds: g.Round()}, nil
}
