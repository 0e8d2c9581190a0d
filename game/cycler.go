package game

// Cycler walks the seat indices 0..size-1 in round-robin order.
type Cycler struct {
	size    int
	current int
}

func NewCycler(size int) *Cycler {
	return &Cycler{size: size}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Next() int {
	if c.size == 0 {
		return 0
	}
	c.current = (c.current + 1) % c.size
	return c.current
}

func (c *Cycler) Reset() {
	c.current = 0
}
