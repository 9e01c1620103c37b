package component

import "time"

// Cooldown gates an action for Duration after it is armed. It is checked
// against the caller's clock on every tick instead of being cleared by a
// timer, so an expired cooldown is only observed at the next tick boundary.
type Cooldown struct {
	Duration time.Duration

	expiresAt time.Time
	armed     bool
}

// NewCooldown creates an inactive cooldown.
func NewCooldown(d time.Duration) Cooldown {
	return Cooldown{Duration: d}
}

// Arm starts the cooldown at now. Re-arming an active cooldown restarts it.
func (c *Cooldown) Arm(now time.Time) {
	c.armed = true
	c.expiresAt = now.Add(c.Duration)
}

// Active reports whether the cooldown is still running at now.
func (c *Cooldown) Active(now time.Time) bool {
	if !c.armed {
		return false
	}
	if now.Before(c.expiresAt) {
		return true
	}
	c.armed = false
	return false
}
