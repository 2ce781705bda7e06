package parallel

// Band is the half-open row range [Y0, Y1) owned by one task.
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in b.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// Split partitions rows [y0, y1) into at most n contiguous, non-empty bands
// whose sizes differ by at most one. It returns nil for an empty range.
func Split(y0, y1, n int) []Band {
	rows := y1 - y0
	if rows <= 0 {
		return nil
	}
	n = max(min(n, rows), 1)

	size, extra := rows/n, rows%n
	bands := make([]Band, n)
	y := y0
	for i := range bands {
		h := size
		if i < extra {
			h++
		}
		bands[i] = Band{Y0: y, Y1: y + h}
		y += h
	}
	return bands
}
