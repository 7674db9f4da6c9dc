// Package cooldown rate-limits actions on a monotonic clock.
package cooldown

import "time"

// Cooldown lets an action fire at most once per Window. The zero value of
// the trigger time means the action has never fired and is ready.
type Cooldown struct {
	Window time.Duration
	last   time.Time
}

func New(window time.Duration) Cooldown {
	return Cooldown{Window: window}
}

// Ready reports whether a full window has passed since the last trigger.
func (c *Cooldown) Ready(now time.Time) bool {
	return c.last.IsZero() || now.Sub(c.last) >= c.Window
}

// Trigger records now as the last firing.
func (c *Cooldown) Trigger(now time.Time) {
	c.last = now
}

// TryFire triggers and returns true when ready; otherwise it returns false
// and leaves the timer alone.
func (c *Cooldown) TryFire(now time.Time) bool {
	if !c.Ready(now) {
		return false
	}
	c.Trigger(now)
	return true
}

// Remaining returns how long until the action is ready again.
func (c *Cooldown) Remaining(now time.Time) time.Duration {
	if c.Ready(now) {
		return 0
	}
	return c.Window - now.Sub(c.last)
}

// Clear makes the action ready immediately.
func (c *Cooldown) Clear() {
	c.last = time.Time{}
}
