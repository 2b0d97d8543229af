package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joshbohde/chairs"
	"github.com/joshbohde/chairs/stats"
)

func summary(res chairs.Result, latency *stats.Stats) string {
	return fmt.Sprintf("winner=%d rounds=%d claims=%d p50=%s p95=%s p99=%s",
		res.Winner, res.Rounds, latency.Count(),
		latency.Query(0.5), latency.Query(0.95), latency.Query(0.99))
}

// playersFromEnv lets CHAIRS_PLAYERS override the -players flag.
func playersFromEnv(players int) (int, error) {
	env := os.Getenv("CHAIRS_PLAYERS")
	if env == "" {
		return players, nil
	}

	n, err := strconv.Atoi(env)
	if err != nil {
		return 0, fmt.Errorf("CHAIRS_PLAYERS: %w", err)
	}
	return n, nil
}

func run() int {
	players := flag.Int("players", 5, "Number of players, at least 2")
	musicMin := flag.Duration("music-min", 1*time.Second, "Shortest time the music plays")
	musicMax := flag.Duration("music-max", 3*time.Second, "Longest time the music plays")
	window := flag.Duration("claim-window", 1*time.Second, "Time players have to sit down once the music stops")
	pace := flag.Duration("pace", 100*time.Millisecond, "Pause a seated player takes before the next round")
	plain := flag.Bool("no-color", false, "Disable colored narration")
	verbose := flag.Bool("v", false, "Log round transitions to stderr")

	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("game", uuid.NewString())

	n, err := playersFromEnv(*players)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return 2
	}

	music, err := chairs.NewRandomMusic(*musicMin, *musicMax, uint64(time.Now().UnixNano()))
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	latency := stats.New()

	logger.Debug("starting game", "players", n)
	res, err := chairs.Play(ctx, chairs.Config{
		Players:     n,
		Music:       music,
		ClaimWindow: *window,
		Pace:        *pace,
		Narrator:    chairs.NewConsoleNarrator(os.Stdout, *plain),
		Latency:     latency,
		Logger:      logger,
	})
	latency.Close()

	switch {
	case errors.Is(err, chairs.ErrTooFewPlayers):
		logger.Error("invalid configuration", "error", err)
		return 2
	case err != nil:
		logger.Error("game aborted", "error", err, "rounds", res.Rounds)
		return 1
	}

	logger.Info(summary(res, latency))
	return 0
}

func main() {
	os.Exit(run())
}
