package chairs

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"
)

// ErrTooFewPlayers is returned when a game is created with fewer than two players.
var ErrTooFewPlayers = errors.New("chairs: at least two players are required")

// Outcome is the result of a single claim.
type Outcome int

const (
	// Seated means the player took a chair and stays in the game.
	Seated Outcome = iota
	// Eliminated means no chair was left and the player is out.
	Eliminated
	// GameOver means the game ended before the player could claim.
	GameOver
)

func (o Outcome) String() string {
	switch o {
	case Seated:
		return "seated"
	case Eliminated:
		return "eliminated"
	case GameOver:
		return "game over"
	}
	return "unknown"
}

// LatencyRecorder observes how long after the music stopped each claim landed.
type LatencyRecorder interface {
	Observe(time.Duration)
}

// Options are options to configure a Game.
type Options struct {
	Players  int             // Number of players, at least two. Chairs start at Players-1.
	Narrator Narrator        // Receives game events. Defaults to discarding them.
	Latency  LatencyRecorder // Optional claim latency sink.
	Logger   *slog.Logger    // Diagnostics. Defaults to discarding them.
}

// Game is the state shared by the coordinator and every player. All of
// its fields are guarded by mu, and cond (on mu) carries both the music
// stop broadcast and the end of game broadcast.
type Game struct {
	mu   sync.Mutex
	cond *sync.Cond

	capacity  int
	pool      *pool
	remaining int
	round     int

	claimsOpen bool
	openRound  int
	stoppedAt  time.Time

	active bool
	winner int
	alive  map[int]struct{}
	done   chan struct{}

	narrator Narrator
	latency  LatencyRecorder
	log      *slog.Logger
}

func New(opts Options) (*Game, error) {
	if opts.Players < 2 {
		return nil, ErrTooFewPlayers
	}

	g := Game{
		capacity:  opts.Players - 1,
		remaining: opts.Players,
		round:     1,
		active:    true,
		alive:     make(map[int]struct{}, opts.Players),
		done:      make(chan struct{}),
		narrator:  opts.Narrator,
		latency:   opts.Latency,
		log:       opts.Logger,
	}
	g.cond = sync.NewCond(&g.mu)
	g.pool = newPool(g.capacity)

	for id := 1; id <= opts.Players; id++ {
		g.alive[id] = struct{}{}
	}

	if g.narrator == nil {
		g.narrator = discard{}
	}
	if g.log == nil {
		g.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &g, nil
}

// StartRound removes a chair and refills the pool for the next round.
// Chairs nobody claimed in the previous round are discarded.
func (g *Game) StartRound() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.capacity > 0 {
		g.capacity--
	}
	g.round++
	g.pool.reset(g.capacity)

	g.log.Debug("round started", "round", g.round, "chairs", g.capacity, "remaining", g.remaining)
}

// StopMusic opens claims for the current round and wakes every waiting player.
func (g *Game) StopMusic() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.claimsOpen = true
	g.openRound = g.round
	g.stoppedAt = time.Now()
	g.narrator.MusicStopped(g.round)

	g.cond.Broadcast()
}

// ResetMusic closes claims. Call it only after StartRound, once the
// claim window of the previous round is over.
func (g *Game) ResetMusic() {
	g.mu.Lock()
	g.claimsOpen = false
	g.mu.Unlock()
}

// EliminateOne removes the player from the game. It reports false if the
// player was already out or the game is over. When a single player
// remains the game ends and the winner is announced.
func (g *Game) EliminateOne(id int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.eliminate(id)
}

func (g *Game) eliminate(id int) bool {
	if !g.active {
		return false
	}
	if _, ok := g.alive[id]; !ok {
		return false
	}

	delete(g.alive, id)
	g.remaining--
	if g.remaining < 1 {
		panic("chairs: no players remaining")
	}

	if g.remaining == 1 {
		for last := range g.alive {
			g.winner = last
		}
		g.narrator.Winner(g.winner)
		g.log.Debug("game won", "round", g.round, "winner", g.winner)
		g.finish()
	}

	return true
}

// finish is the terminal transition. Must hold mu.
func (g *Game) finish() {
	g.active = false
	close(g.done)
	g.cond.Broadcast()
}

// Claim blocks until claims open for a round after lastRound, then tries
// to take a chair without waiting for one. A player who finds no chair is
// eliminated before Claim returns. The round the claim was made in is
// returned alongside the outcome.
func (g *Game) Claim(id, lastRound int) (int, Outcome) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for g.active && !g.claimable(lastRound) {
		g.cond.Wait()
	}

	if !g.active {
		return g.round, GameOver
	}
	if _, ok := g.alive[id]; !ok {
		return g.round, Eliminated
	}

	if g.latency != nil {
		g.latency.Observe(time.Since(g.stoppedAt))
	}

	if g.pool.tryClaim() {
		g.narrator.Seated(id, g.round)
		return g.round, Seated
	}

	g.narrator.Eliminated(id, g.round)
	g.eliminate(id)

	return g.round, Eliminated
}

// claimable is the wait predicate. Must hold mu.
func (g *Game) claimable(lastRound int) bool {
	return g.claimsOpen && g.openRound == g.round && g.round > lastRound
}

// Close ends the game without a winner and releases every waiting player.
func (g *Game) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.active {
		g.log.Debug("game closed", "round", g.round, "remaining", g.remaining)
		g.finish()
	}
}

// Done is closed once the game is over, won or closed.
func (g *Game) Done() <-chan struct{} {
	return g.done
}

func (g *Game) ClaimsOpen() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.claimsOpen
}

func (g *Game) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}

func (g *Game) Round() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.round
}

func (g *Game) Remaining() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.remaining
}

// Chairs reports this round's capacity and how many chairs are still free.
func (g *Game) Chairs() (capacity, free int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pool.capacity(), g.pool.free()
}

// Winner returns the last player standing, if the game has been won.
func (g *Game) Winner() (int, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.winner, !g.active && g.remaining == 1
}

// playMusic announces the current round. It reports false once the game is over.
func (g *Game) playMusic() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.active {
		return false
	}
	g.narrator.MusicPlaying(g.round)
	return true
}
