package rectray

// RangeKind selects the windowing policy of a LayoutRange.
type RangeKind uint8

const (
	// RangeAll shows everything.
	RangeAll RangeKind = iota
	// RangeBounded is a fixed-size window; Min is clamped so
	// Min+Len <= total.
	RangeBounded
	// RangeCapped is a window whose Min may run up to total-1,
	// shrinking the trailing window near the end.
	RangeCapped
	// RangeStepped selects page Step of size Len.
	RangeStepped
)

// LayoutRange selects a contiguous visible subset of a container's
// logical children. What one unit means depends on the layout: items
// for bounds, stack, and span layouts, rows for paragraphs.
//
// A range is never rejected: Resolve clamps any misconfiguration.
type LayoutRange struct {
	Kind RangeKind
	// Min is the first visible unit (bounded/capped), or the page
	// index (stepped).
	Min int
	// Len is the window length (bounded/capped) or page size
	// (stepped).
	Len int
}

// Window returns a fixed-size bounded window.
func Window(min, length int) LayoutRange {
	return LayoutRange{Kind: RangeBounded, Min: min, Len: length}
}

// CappedWindow returns a window that shrinks near the end instead of
// sliding back.
func CappedWindow(min, length int) LayoutRange {
	return LayoutRange{Kind: RangeCapped, Min: min, Len: length}
}

// Pages returns a page-based window on page step of size length.
func Pages(step, length int) LayoutRange {
	return LayoutRange{Kind: RangeStepped, Min: step, Len: length}
}

// IsUnbounded reports whether the range shows everything.
func (r LayoutRange) IsUnbounded() bool {
	return r.Kind == RangeAll
}

// Resolve clamps the window position against the given total. It must
// run once per placement before ToRange; Increment and Decrement defer
// their clamping to the next Resolve.
func (r *LayoutRange) Resolve(total int) {
	switch r.Kind {
	case RangeBounded:
		r.Min = min(r.Min, max(total-r.Len, 0))
	case RangeCapped:
		r.Min = min(r.Min, max(total-1, 0))
	case RangeStepped:
		if r.Len > 0 {
			r.Min = min(r.Min, total/r.Len)
		}
	}
}

// ToRange converts the resolved policy to a concrete half-open index
// interval within [0, total].
func (r LayoutRange) ToRange(total int) (lo, hi int) {
	switch r.Kind {
	case RangeAll:
		return 0, total
	case RangeBounded, RangeCapped:
		lo = min(max(r.Min, 0), total)
		return lo, min(lo+max(r.Len, 0), total)
	default: // RangeStepped
		lo = min(max(r.Min*r.Len, 0), total)
		return lo, min(lo+max(r.Len, 0), total)
	}
}

// Increment steps the window forward one unit. Clamping happens on the
// next Resolve.
func (r *LayoutRange) Increment() {
	if r.Kind != RangeAll {
		r.Min++
	}
}

// Decrement steps the window back one unit, saturating at zero.
func (r *LayoutRange) Decrement() {
	if r.Kind != RangeAll && r.Min > 0 {
		r.Min--
	}
}
