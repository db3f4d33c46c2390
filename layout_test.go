package marquee

import "testing"

// fixedMetrics gives every glyph the same advance.
type fixedMetrics float64

func (m fixedMetrics) Advance(rune) float64 { return float64(m) }

// mapMetrics looks advances up per rune, defaulting to 0.5.
type mapMetrics map[rune]float64

func (m mapMetrics) Advance(r rune) float64 {
	if v, ok := m[r]; ok {
		return v
	}
	return 0.5
}

func TestLayoutWordCentred(t *testing.T) {
	cfg := DefaultConfig().Text
	l := layoutWord(cfg, fixedMetrics(0.5))

	if len(l.Runes) != 6 || string(l.Runes) != "SAMUEL" {
		t.Fatalf("Runes = %q", string(l.Runes))
	}
	width := 0.5 * cfg.Size
	total := 6*width + 5*cfg.Spacing
	if !approxEqual(l.HomeX[0], -total/2, epsilon) {
		t.Errorf("HomeX[0] = %v, want %v", l.HomeX[0], -total/2)
	}
	last := l.HomeX[5] + l.Widths[5]
	if !approxEqual(last, total/2, epsilon) {
		t.Errorf("right edge = %v, want %v", last, total/2)
	}
	if !approxEqual(l.HomeY, -cfg.CapHeight*cfg.Size/2, epsilon) {
		t.Errorf("HomeY = %v", l.HomeY)
	}
}

func TestLayoutWordInsertionGap(t *testing.T) {
	cfg := DefaultConfig().Text
	l := layoutWord(cfg, mapMetrics{'C': 0.7, 'S': 0.6})

	if l.Insert != 'C' {
		t.Errorf("Insert = %q, want C", l.Insert)
	}
	if l.InsertAt != 1 {
		t.Errorf("InsertAt = %d, want 1", l.InsertAt)
	}
	wantInsertX := l.HomeX[0] + 0.6*cfg.Size + cfg.Spacing
	if !approxEqual(l.InsertX, wantInsertX, epsilon) {
		t.Errorf("InsertX = %v, want %v", l.InsertX, wantInsertX)
	}
	wantShift := 0.7*cfg.Size + cfg.Spacing
	if !approxEqual(l.Shift, wantShift, epsilon) {
		t.Errorf("Shift = %v, want %v", l.Shift, wantShift)
	}
	if !approxEqual(l.GroupShift, -wantShift/2, epsilon) {
		t.Errorf("GroupShift = %v, want %v", l.GroupShift, -wantShift/2)
	}
	// At full insertion the shifted letter starts one gap after the glyph.
	shifted := l.HomeX[1] + l.Shift
	if !approxEqual(shifted, l.InsertX+l.InsertWidth+cfg.Spacing, epsilon) {
		t.Errorf("shifted letter at %v, want %v", shifted, l.InsertX+l.InsertWidth+cfg.Spacing)
	}
}

func TestLayoutWordInsertAtClamped(t *testing.T) {
	cfg := DefaultConfig().Text
	cfg.Word = "AB"
	cfg.InsertAt = 9
	l := layoutWord(cfg, fixedMetrics(0.5))
	if l.InsertAt != 2 {
		t.Errorf("InsertAt = %d, want 2", l.InsertAt)
	}
}
