package rectray

import "testing"

// --- Resolve ---

func TestResolveBoundedClampsToEnd(t *testing.T) {
	r := Window(10, 4)
	r.Resolve(6)
	if r.Min != 2 {
		t.Errorf("Min = %d, want 2", r.Min)
	}
}

func TestResolveBoundedSmallTotal(t *testing.T) {
	r := Window(3, 10)
	r.Resolve(5)
	if r.Min != 0 {
		t.Errorf("Min = %d, want 0", r.Min)
	}
}

func TestResolveCappedRunsToLastItem(t *testing.T) {
	r := CappedWindow(10, 4)
	r.Resolve(6)
	if r.Min != 5 {
		t.Errorf("Min = %d, want 5", r.Min)
	}
}

func TestResolveSteppedClampsPage(t *testing.T) {
	r := Pages(9, 4)
	r.Resolve(10)
	if r.Min != 2 {
		t.Errorf("Min = %d, want 2", r.Min)
	}
}

func TestResolveAllIsNoOp(t *testing.T) {
	r := LayoutRange{Kind: RangeAll, Min: 99}
	r.Resolve(3)
	if r.Min != 99 {
		t.Errorf("Min = %d, want untouched 99", r.Min)
	}
}

// --- ToRange ---

func TestToRangeVariants(t *testing.T) {
	cases := []struct {
		name   string
		rng    LayoutRange
		total  int
		lo, hi int
	}{
		{"all", LayoutRange{}, 7, 0, 7},
		{"bounded", Window(2, 3), 7, 2, 5},
		{"bounded at end", Window(4, 3), 7, 4, 7},
		{"capped shrinks", CappedWindow(5, 4), 7, 5, 7},
		{"page 0", Pages(0, 3), 7, 0, 3},
		{"page 2 partial", Pages(2, 3), 7, 6, 7},
		{"empty total", Window(0, 4), 0, 0, 0},
	}
	for _, c := range cases {
		lo, hi := c.rng.ToRange(c.total)
		if lo != c.lo || hi != c.hi {
			t.Errorf("%s: ToRange(%d) = [%d, %d), want [%d, %d)", c.name, c.total, lo, hi, c.lo, c.hi)
		}
	}
}

func TestToRangeAlwaysWithinBounds(t *testing.T) {
	ranges := []LayoutRange{
		{Kind: RangeAll},
		Window(-3, 4), Window(100, 4), Window(0, -1),
		CappedWindow(100, 4), CappedWindow(0, 0),
		Pages(-1, 3), Pages(100, 3), Pages(0, 0),
	}
	for total := 0; total <= 12; total++ {
		for _, r := range ranges {
			r.Resolve(total)
			lo, hi := r.ToRange(total)
			if lo < 0 || hi > total || lo > hi {
				t.Fatalf("ToRange(total=%d, %+v) = [%d, %d) out of bounds", total, r, lo, hi)
			}
		}
	}
}

// --- Stepping ---

func TestIncrementDecrement(t *testing.T) {
	r := Window(0, 4)
	r.Increment()
	r.Increment()
	if r.Min != 2 {
		t.Errorf("Min after two increments = %d, want 2", r.Min)
	}
	r.Decrement()
	if r.Min != 1 {
		t.Errorf("Min after decrement = %d, want 1", r.Min)
	}
}

func TestDecrementSaturatesAtZero(t *testing.T) {
	r := Window(0, 4)
	r.Decrement()
	if r.Min != 0 {
		t.Errorf("Min = %d, want 0", r.Min)
	}
}

func TestIncrementDefersClampToResolve(t *testing.T) {
	r := Window(0, 4)
	for i := 0; i < 100; i++ {
		r.Increment()
	}
	if r.Min != 100 {
		t.Errorf("Min = %d, want unclamped 100", r.Min)
	}
	r.Resolve(10)
	if r.Min != 6 {
		t.Errorf("Min after Resolve = %d, want 6", r.Min)
	}
}

func TestIncrementIgnoredWhenUnbounded(t *testing.T) {
	var r LayoutRange
	r.Increment()
	if r.Min != 0 {
		t.Errorf("Min = %d, want 0", r.Min)
	}
	if !r.IsUnbounded() {
		t.Error("zero value should be unbounded")
	}
}
