package marquee

// GlyphMetrics measures glyph advances as a fraction of the font size.
type GlyphMetrics interface {
	Advance(r rune) float64
}

// WordLayout holds the resting geometry of the word and of the inserted
// glyph, in world units.
type WordLayout struct {
	// Runes and Widths describe each letter of the word in order.
	Runes  []rune
	Widths []float64
	// HomeX is the left edge of each letter before any insertion shift.
	HomeX []float64
	// HomeY is the shared baseline offset that vertically centres the word.
	HomeY float64
	// Height is the glyph height.
	Height float64

	Insert      rune
	InsertWidth float64
	// InsertX is the left edge of the inserted glyph in its final slot.
	InsertX float64
	// InsertAt is the first letter index that moves right on insertion.
	InsertAt int
	// Shift is how far letters at InsertAt and after move at full insertion.
	Shift float64
	// GroupShift recentres the whole word at full insertion.
	GroupShift float64
}

// layoutWord centres the word around x = 0 and computes the insertion gap.
func layoutWord(cfg TextConfig, metrics GlyphMetrics) WordLayout {
	runes := []rune(cfg.Word)
	l := WordLayout{
		Runes:    runes,
		Widths:   make([]float64, len(runes)),
		HomeX:    make([]float64, len(runes)),
		Height:   cfg.CapHeight * cfg.Size,
		InsertAt: cfg.InsertAt,
	}
	l.HomeY = -l.Height / 2

	total := 0.0
	for i, r := range runes {
		l.Widths[i] = metrics.Advance(r) * cfg.Size
		total += l.Widths[i]
		if i < len(runes)-1 {
			total += cfg.Spacing
		}
	}

	cursor := -total / 2
	for i := range runes {
		l.HomeX[i] = cursor
		cursor += l.Widths[i] + cfg.Spacing
	}

	for _, r := range cfg.Insert {
		l.Insert = r
		break
	}
	l.InsertWidth = metrics.Advance(l.Insert) * cfg.Size
	if n := len(runes); n > 0 {
		at := min(max(cfg.InsertAt, 1), n)
		l.InsertAt = at
		l.InsertX = l.HomeX[at-1] + l.Widths[at-1] + cfg.Spacing
	}
	l.Shift = l.InsertWidth + cfg.Spacing
	l.GroupShift = -l.Shift / 2
	return l
}
