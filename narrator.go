package chairs

//go:generate mockgen -destination=mock_narrator_test.go -package=chairs . Narrator

import (
	"io"
	"sync"

	"github.com/fatih/color"
)

// Narrator receives the events of a game as they happen. The game calls
// it while holding its lock, so implementations must not call back into
// the game and should return quickly.
type Narrator interface {
	MusicPlaying(round int)
	MusicStopped(round int)
	Seated(player, round int)
	Eliminated(player, round int)
	Winner(player int)
}

type discard struct{}

func (discard) MusicPlaying(int)    {}
func (discard) MusicStopped(int)    {}
func (discard) Seated(int, int)     {}
func (discard) Eliminated(int, int) {}
func (discard) Winner(int)          {}

// ConsoleNarrator writes one human readable line per event.
type ConsoleNarrator struct {
	mu     sync.Mutex
	w      io.Writer
	music  *color.Color
	stop   *color.Color
	seated *color.Color
	out    *color.Color
	winner *color.Color
}

// NewConsoleNarrator narrates to w. Colors follow color.NoColor unless
// plain is set, in which case they are always off.
func NewConsoleNarrator(w io.Writer, plain bool) *ConsoleNarrator {
	n := &ConsoleNarrator{
		w:      w,
		music:  color.New(color.FgCyan),
		stop:   color.New(color.FgYellow, color.Bold),
		seated: color.New(color.FgGreen),
		out:    color.New(color.FgRed),
		winner: color.New(color.FgMagenta, color.Bold),
	}

	if plain {
		for _, c := range []*color.Color{n.music, n.stop, n.seated, n.out, n.winner} {
			c.DisableColor()
		}
	}

	return n
}

func (n *ConsoleNarrator) MusicPlaying(round int) {
	n.printf(n.music, "Round %d: the music is playing...\n", round)
}

func (n *ConsoleNarrator) MusicStopped(round int) {
	n.printf(n.stop, "Round %d: the music stopped! Grab a chair!\n", round)
}

func (n *ConsoleNarrator) Seated(player, round int) {
	n.printf(n.seated, "Player %d got a chair.\n", player)
}

func (n *ConsoleNarrator) Eliminated(player, round int) {
	n.printf(n.out, "Player %d was eliminated!\n", player)
}

func (n *ConsoleNarrator) Winner(player int) {
	n.printf(n.winner, "We have a winner: player %d!\n", player)
}

func (n *ConsoleNarrator) printf(c *color.Color, format string, args ...interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()

	c.Fprintf(n.w, format, args...)
}
