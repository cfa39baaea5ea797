package main

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// frameStats counts frames and produces the window title once per second.
type frameStats struct {
	title  string
	frames int
	since  time.Time
	fps    int
}

func newFrameStats(title string, now time.Time) *frameStats {
	return &frameStats{title: title, since: now}
}

// frame records one presented frame. It returns a new title when at least a
// second has passed since the last one.
func (s *frameStats) frame(now time.Time, pos mgl32.Vec3, drawCalls int) (string, bool) {
	s.frames++
	elapsed := now.Sub(s.since)
	if elapsed < time.Second {
		return "", false
	}
	s.fps = int(float64(s.frames)/elapsed.Seconds() + 0.5)
	s.frames = 0
	s.since = now
	return fmt.Sprintf("%s | FPS: %d | Draws: %d | (%.1f, %.1f, %.1f)",
		s.title, s.fps, drawCalls, pos[0], pos[1], pos[2]), true
}
