// Package animations paces sprite frames on the wall clock. Playback speed
// depends only on fps and the "now" readings passed to Advance, never on the
// simulation delta.
package animations

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidArgument is returned for an empty frame set or a non-positive fps.
var ErrInvalidArgument = errors.New("invalid argument")

// Animation plays an ordered, non-empty set of frames. F is whatever the
// asset loader resolved a sprite to; the animation only stores references.
type Animation[F any] struct {
	frames []F
	frame  int
	fps    int
	loop   bool
	// last is the "now" of the latest frame change. The zero value means the
	// animation was just reset and is due immediately.
	last time.Time
}

// NewAnimation builds an animation that starts on frame 0.
func NewAnimation[F any](frames []F, fps int, loop bool) (*Animation[F], error) {
	if err := checkFPS(fps); err != nil {
		return nil, err
	}
	a := &Animation[F]{fps: fps, loop: loop}
	if err := a.ChangeFrameSet(frames); err != nil {
		return nil, err
	}
	return a, nil
}

// Advance moves to the next frame when a full period has passed since the
// last change. A looping animation wraps to frame 0; otherwise it holds the
// final frame. The first Advance after a reset lands on frame 0 and starts
// the period from now.
func (a *Animation[F]) Advance(now time.Time) {
	if a.last.IsZero() {
		a.frame = 0
		a.last = now
		return
	}
	if now.Before(a.last.Add(a.Period())) {
		return
	}

	a.frame++
	if a.frame >= len(a.frames) {
		if a.loop {
			a.frame = 0
		} else {
			a.frame = len(a.frames) - 1
		}
	}
	a.last = now
}

// Reset rewinds to frame 0 and makes the next Advance due immediately.
func (a *Animation[F]) Reset() {
	a.frame = 0
	a.last = time.Time{}
}

// ChangeFrameSet swaps the frames and resets playback. On error the current
// frames and position are kept.
func (a *Animation[F]) ChangeFrameSet(frames []F) error {
	if len(frames) == 0 {
		return fmt.Errorf("%w: animation needs at least one frame", ErrInvalidArgument)
	}
	a.frames = append(a.frames[:0:0], frames...)
	a.Reset()
	return nil
}

// Period is the wall-clock time each frame is shown.
func (a *Animation[F]) Period() time.Duration {
	return time.Second / time.Duration(a.fps)
}

func (a *Animation[F]) Frame() F        { return a.frames[a.frame] }
func (a *Animation[F]) Index() int      { return a.frame }
func (a *Animation[F]) Len() int        { return len(a.frames) }
func (a *Animation[F]) FPS() int        { return a.fps }
func (a *Animation[F]) IsLooping() bool { return a.loop }

// Finished reports whether a non-looping animation is holding its last frame.
func (a *Animation[F]) Finished() bool {
	return !a.loop && a.frame == len(a.frames)-1
}

// SetFPS changes the playback rate. Non-positive values are rejected and the
// old rate is kept.
func (a *Animation[F]) SetFPS(fps int) error {
	if err := checkFPS(fps); err != nil {
		return err
	}
	a.fps = fps
	return nil
}

func (a *Animation[F]) SetLoop(loop bool) {
	a.loop = loop
}

func checkFPS(fps int) error {
	if fps <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidArgument, fps)
	}
	return nil
}
