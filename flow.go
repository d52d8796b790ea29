package rectray

import "math"

// flowMode distinguishes the three row-based layouts that share the
// placer below.
type flowMode uint8

const (
	flowStack flowMode = iota
	flowSpan
	flowParagraph
)

// flowItem is one placed item inside a row: the item plus its
// primary-axis start offset, before direction reversal is applied.
type flowItem struct {
	item  LayoutItem
	start float64
}

// flowRow is one line of a flow layout.
type flowRow struct {
	items   []flowItem
	mainLen float64
	cross   float64
}

// placeFlow runs the shared stack/span/paragraph placer.
//
// Rows are built in abstract flow coordinates (primary-axis offsets
// grow with the run, rows stack one after another), then mapped into
// the [0, W] x [0, H] content box honoring direction reversal, and
// finally normalized to [-0.5, 0.5] anchors.
func (l Layout) placeFlow(info LayoutInfo, items []LayoutItem, rng *LayoutRange, mode flowMode) LayoutOutput {
	p := l.Primary
	marginMain := p.along(info.Margin)
	marginCross := p.across(info.Margin)

	fixed := mode != flowStack
	limit := math.Inf(1)
	if fixed {
		limit = p.along(info.Dimension)
	}

	// Paragraphs window rows; stacks and spans window items.
	var rows []flowRow
	var maxCount int
	if mode == flowParagraph {
		all := buildRows(p, items, limit, true, marginMain)
		maxCount = len(all)
		rng.Resolve(maxCount)
		lo, hi := rng.ToRange(maxCount)
		rows = all[lo:hi]
	} else {
		maxCount = len(items)
		rng.Resolve(maxCount)
		lo, hi := rng.ToRange(maxCount)
		rows = buildRows(p, items[lo:hi], limit, false, marginMain)
	}

	totalCross := 0.0
	mainExtent := 0.0
	placed := 0
	for i, r := range rows {
		totalCross += r.cross
		if i > 0 {
			totalCross += marginCross
		}
		mainExtent = math.Max(mainExtent, r.mainLen)
		placed += len(r.items)
	}
	if fixed {
		mainExtent = limit
	}
	dim := p.point(mainExtent, totalCross)

	anchors := make([]ItemAnchor, 0, placed)
	crossCursor := 0.0
	for _, r := range rows {
		rowStart := crossCursor
		if l.Secondary.reversed() {
			rowStart = totalCross - crossCursor - r.cross
		}

		gapExtra := 0.0
		if l.Stretch && fixed && len(r.items) > 1 {
			if leftover := mainExtent - r.mainLen; leftover > 0 {
				gapExtra = leftover / float64(len(r.items)-1)
			}
		}

		for i, fi := range r.items {
			length := p.along(fi.item.Dimension)
			center := fi.start + gapExtra*float64(i) + length/2
			if p.reversed() {
				center = mainExtent - center
			}

			crossLen := p.across(fi.item.Dimension)
			var crossCenter float64
			switch p.crossBucket(fi.item.Anchor) {
			case TrinaryNeg:
				crossCenter = rowStart + crossLen/2
			case TrinaryPos:
				crossCenter = rowStart + r.cross - crossLen/2
			default:
				crossCenter = rowStart + r.cross/2
			}

			cell := p.point(center, crossCenter)
			pt := cell.Add(fi.item.Anchor.Mul(fi.item.Dimension))
			anchors = append(anchors, ItemAnchor{Node: fi.item.Node, Anchor: normalizeAnchor(pt, dim)})
		}
		crossCursor += r.cross + marginCross
	}

	return LayoutOutput{ItemAnchors: anchors, Dimension: dim, MaxCount: maxCount}
}

// buildRows splits the ordered items into rows. With wrap set, a row
// breaks before the first item whose inclusion would overflow limit,
// unless that item would start the row (an oversize item occupies its
// own row). Explicit linebreaks end a row in every mode.
func buildRows(p Direction, items []LayoutItem, limit float64, wrap bool, marginMain float64) []flowRow {
	var rows []flowRow
	var cur flowRow
	gap := 0.0

	flush := func() {
		rows = append(rows, cur)
		cur = flowRow{}
		gap = 0
	}

	for _, it := range items {
		mainLen := p.along(it.Dimension)
		cross := p.across(it.Dimension)

		switch it.Control {
		case ControlWhiteSpace:
			// Trimmed at row edges: contributes only between placed
			// items, as extent plus surrounding margins.
			if len(cur.items) > 0 {
				gap += mainLen + marginMain
			}
			continue
		case ControlLinebreakMarker:
			// Takes no space along the line; its cross extent sets
			// the line height of an otherwise empty row.
			cur.cross = math.Max(cur.cross, cross)
			flush()
			continue
		}

		start := cur.mainLen + gap
		if len(cur.items) > 0 {
			start += marginMain
		}
		if wrap && len(cur.items) > 0 && start+mainLen > limit {
			flush()
			start = 0
		}

		cur.items = append(cur.items, flowItem{item: it, start: start})
		cur.mainLen = start + mainLen
		cur.cross = math.Max(cur.cross, cross)
		gap = 0

		if it.Control == ControlLinebreak {
			flush()
		}
	}
	if len(cur.items) > 0 {
		flush()
	}
	return rows
}

// normalizeAnchor converts a point in the [0, dim] content box to a
// [-0.5, 0.5] anchor. Degenerate axes resolve to the center instead of
// propagating a division by zero.
func normalizeAnchor(pt, dim Vec2) Anchor {
	var a Anchor
	if dim.X > 0 {
		a.X = pt.X/dim.X - 0.5
	}
	if dim.Y > 0 {
		a.Y = pt.Y/dim.Y - 0.5
	}
	return a
}
