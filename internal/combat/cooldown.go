package combat

// Cooldown counts turns until an action can be used again. The zero value
// is always ready.
type Cooldown struct {
	Length    int // turns to wait after triggering
	remaining int
}

// NewCooldown returns a ready cooldown of the given length.
func NewCooldown(length int) Cooldown {
	return Cooldown{Length: length}
}

// Ready reports whether the action can be used.
func (c *Cooldown) Ready() bool { return c.remaining <= 0 }

// Remaining returns the turns left before the action is ready.
func (c *Cooldown) Remaining() int { return max(c.remaining, 0) }

// Trigger starts the cooldown.
func (c *Cooldown) Trigger() { c.remaining = c.Length }

// Tick advances the cooldown by one turn.
func (c *Cooldown) Tick() {
	if c.remaining > 0 {
		c.remaining--
	}
}
