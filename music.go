package chairs

import (
	"errors"
	"math/rand/v2"
	"time"
)

// ErrMusicRange is returned for an empty or non-positive music duration range.
var ErrMusicRange = errors.New("chairs: music duration range must satisfy 0 < min <= max")

// MusicTimer decides how long the music plays each round.
type MusicTimer interface {
	Next() time.Duration
}

// FixedMusic plays for the same duration every round.
type FixedMusic time.Duration

func (f FixedMusic) Next() time.Duration {
	return time.Duration(f)
}

// RandomMusic plays for a duration drawn uniformly from [min, max]. It
// is not safe for concurrent use.
type RandomMusic struct {
	min, max time.Duration
	rng      *rand.Rand
}

// NewRandomMusic returns a RandomMusic drawing from a PCG source seeded with seed.
func NewRandomMusic(min, max time.Duration, seed uint64) (*RandomMusic, error) {
	if min <= 0 || min > max {
		return nil, ErrMusicRange
	}

	return &RandomMusic{
		min: min,
		max: max,
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}, nil
}

func (r *RandomMusic) Next() time.Duration {
	return r.min + time.Duration(r.rng.Int64N(int64(r.max-r.min)+1))
}
