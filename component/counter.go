package component

// Counter is a non-negative integer resource such as hit points or crystals.
// Max of zero means unbounded.
type Counter struct {
	Current int
	Max     int
}

// NewCounter creates a counter starting at current. A positive max also caps it.
func NewCounter(current, max int) Counter {
	c := Counter{Max: max}
	c.Set(current)
	return c
}

// Dec subtracts one and reports whether anything was subtracted.
func (c *Counter) Dec() bool {
	if c == nil || c.Current <= 0 {
		return false
	}
	c.Current--
	return true
}

// Inc adds one unless the counter is already at Max.
func (c *Counter) Inc() {
	if c == nil {
		return
	}
	if c.Max > 0 && c.Current >= c.Max {
		return
	}
	c.Current++
}

// Set assigns v clamped to [0, Max].
func (c *Counter) Set(v int) {
	if c == nil {
		return
	}
	if v < 0 {
		v = 0
	}
	if c.Max > 0 && v > c.Max {
		v = c.Max
	}
	c.Current = v
}

// Empty reports whether the counter is at zero.
func (c Counter) Empty() bool {
	return c.Current <= 0
}

// Fraction returns Current/Max, or 0 when unbounded.
func (c Counter) Fraction() float64 {
	if c.Max <= 0 {
		return 0
	}
	return float64(c.Current) / float64(c.Max)
}
