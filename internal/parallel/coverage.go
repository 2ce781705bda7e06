package parallel

import (
	"math/bits"
	"sync/atomic"
)

// Coverage records which rows of a frame have been rendered, one bit per
// row. Marking is lock-free so progress can be read while workers run.
type Coverage struct {
	words []atomic.Uint64
	rows  int
}

// NewCoverage returns an empty coverage map for the given number of rows.
// A non-positive count yields a map that is always complete.
func NewCoverage(rows int) *Coverage {
	rows = max(rows, 0)
	return &Coverage{
		words: make([]atomic.Uint64, (rows+63)/64),
		rows:  rows,
	}
}

// Mark records row y. Out-of-range rows are ignored.
func (c *Coverage) Mark(y int) {
	if y < 0 || y >= c.rows {
		return
	}
	c.words[y/64].Or(1 << (y & 63))
}

// MarkRange records rows [y0, y1), clamped to the map.
func (c *Coverage) MarkRange(y0, y1 int) {
	y0 = max(y0, 0)
	y1 = min(y1, c.rows)
	for y := y0; y < y1; y++ {
		c.Mark(y)
	}
}

// Covered reports whether row y has been recorded.
func (c *Coverage) Covered(y int) bool {
	if y < 0 || y >= c.rows {
		return false
	}
	return c.words[y/64].Load()&(1<<(y&63)) != 0
}

// Count returns the number of recorded rows.
func (c *Coverage) Count() int {
	n := 0
	for i := range c.words {
		n += bits.OnesCount64(c.words[i].Load())
	}
	return n
}

// Rows returns the number of rows tracked.
func (c *Coverage) Rows() int {
	return c.rows
}

// Fraction returns the covered share of rows in [0, 1].
func (c *Coverage) Fraction() float64 {
	if c.rows == 0 {
		return 1
	}
	return float64(c.Count()) / float64(c.rows)
}

// Complete reports whether every row has been recorded.
func (c *Coverage) Complete() bool {
	return c.Count() == c.rows
}

// NextGap returns the first unrecorded row at or after y, or Rows() if there
// is none.
func (c *Coverage) NextGap(y int) int {
	for y = max(y, 0); y < c.rows; y++ {
		w := ^c.words[y/64].Load() >> (y & 63)
		if w != 0 {
			y += bits.TrailingZeros64(w)
			return min(y, c.rows)
		}
		y |= 63
	}
	return c.rows
}

// Reset clears every row.
func (c *Coverage) Reset() {
	for i := range c.words {
		c.words[i].Store(0)
	}
}
