package chairs

import (
	"errors"
	"testing"
	"time"
)

func TestRandomMusicRange(t *testing.T) {
	m, err := NewRandomMusic(time.Second, 3*time.Second, 42)
	if err != nil {
		t.Fatal("Got an error:", err)
	}

	for i := 0; i < 1000; i++ {
		d := m.Next()
		if d < time.Second || d > 3*time.Second {
			t.Fatalf("Expected a duration in [1s, 3s], got %s", d)
		}
	}
}

func TestRandomMusicIsSeeded(t *testing.T) {
	a, _ := NewRandomMusic(time.Millisecond, time.Second, 7)
	b, _ := NewRandomMusic(time.Millisecond, time.Second, 7)

	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatal("Expected the same seed to give the same durations")
		}
	}
}

func TestRandomMusicSingleValue(t *testing.T) {
	m, err := NewRandomMusic(time.Second, time.Second, 1)
	if err != nil {
		t.Fatal("Got an error:", err)
	}
	if d := m.Next(); d != time.Second {
		t.Errorf("Expected 1s, got %s", d)
	}
}

func TestRandomMusicRejectsBadRange(t *testing.T) {
	for _, r := range [][2]time.Duration{{0, time.Second}, {-time.Second, time.Second}, {2 * time.Second, time.Second}} {
		if _, err := NewRandomMusic(r[0], r[1], 1); !errors.Is(err, ErrMusicRange) {
			t.Errorf("%v: expected ErrMusicRange, got %v", r, err)
		}
	}
}

func TestFixedMusic(t *testing.T) {
	if d := FixedMusic(time.Minute).Next(); d != time.Minute {
		t.Errorf("Expected 1m, got %s", d)
	}
}
