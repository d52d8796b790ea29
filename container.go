package rectray

// Container arranges a node's direct children through a layout. The
// margin separates cells and always refers to the X and Y axes,
// regardless of the layout's directions. The padding grows the
// container around its content.
type Container struct {
	// Layout of the container.
	Layout Layout
	// Margin between cells.
	Margin Vec2
	// Padding around the container.
	Padding Vec2
	// Range optionally displays only a subset of children.
	Range LayoutRange
	// Maximum is the windowing total computed by the last placement:
	// items, rows, or pages depending on the layout.
	Maximum int
}

// NewContainer returns a container using the given layout.
func NewContainer(layout Layout) *Container {
	return &Container{Layout: layout}
}

// Place runs the container's layout over the ordered items, resolving
// the range in place.
func (c *Container) Place(info LayoutInfo, items []LayoutItem) LayoutOutput {
	return c.Layout.place(info, items, &c.Range)
}

// Fac returns the window position as a normalized [0, 1] scroll
// factor. The denominator is policy specific: remaining positions for
// bounded windows, the total for capped ones, and the page count for
// stepped ones.
func (c *Container) Fac() float64 {
	var fac float64
	switch c.Range.Kind {
	case RangeBounded:
		if c.Maximum > c.Range.Len {
			fac = float64(c.Range.Min) / float64(c.Maximum-c.Range.Len)
		}
	case RangeCapped:
		if c.Maximum > 0 {
			fac = float64(c.Range.Min) / float64(c.Maximum)
		}
	case RangeStepped:
		if c.Range.Len > 0 {
			if count := c.Maximum / c.Range.Len; count > 0 {
				fac = float64(c.Range.Min) / float64(count)
			}
		}
	}
	return min(max(fac, 0), 1)
}

// SetFac positions the window from a normalized [0, 1] scroll factor.
func (c *Container) SetFac(fac float64) {
	fac = min(max(fac, 0), 1)
	switch c.Range.Kind {
	case RangeBounded:
		if c.Maximum > c.Range.Len {
			c.Range.Min = int(float64(c.Maximum-c.Range.Len) * fac)
		} else {
			c.Range.Min = 0
		}
	case RangeCapped:
		if c.Maximum > 0 {
			c.Range.Min = int(float64(c.Maximum) * fac)
		} else {
			c.Range.Min = 0
		}
	case RangeStepped:
		if c.Range.Len > 0 {
			if count := c.Maximum / c.Range.Len; count > 0 {
				c.Range.Min = int(float64(count) * fac)
			} else {
				c.Range.Min = 0
			}
		}
	}
}

// Increment scrolls the window forward one unit; the next placement
// clamps it.
func (c *Container) Increment() {
	c.Range.Increment()
}

// Decrement scrolls the window back one unit.
func (c *Container) Decrement() {
	c.Range.Decrement()
}
