package hmi

// DecimatedPoint summarizes the samples that fall into one pixel
// column: their extremes, the last value (used to connect columns),
// and how many samples contributed.
type DecimatedPoint struct {
	Column int
	Min    float64
	Max    float64
	Last   float64
	Count  int
}

// Decimate reduces the samples of buf inside window to at most one
// point per pixel column. Columns with no samples produce no point, so
// gaps in the data stay visible as gaps on screen.
//
// When the window holds no more samples than columns the reduction is
// lossless: every sample becomes its own point with Min == Max == Last.
// Otherwise a single pass assigns each sample to its column and folds
// it into that column's running min/max.
//
// dst is reused when its capacity allows, so a caller that decimates
// every frame allocates nothing in steady state.
func Decimate(buf *SampleBuffer, window TimeWindow, pixelWidth int, dst []DecimatedPoint) []DecimatedPoint {
	dst = dst[:0]
	if buf == nil || pixelWidth <= 0 {
		return dst
	}
	span := window.Span()
	if span <= 0 {
		return dst
	}

	lo, hi := buf.IndexRange(window.Start, window.End)
	count := hi - lo
	if count <= 0 {
		return dst
	}

	colOf := func(t float64) int {
		c := int((t - window.Start) / span * float64(pixelWidth))
		if c < 0 {
			c = 0
		}
		if c >= pixelWidth {
			c = pixelWidth - 1
		}
		return c
	}

	if count <= pixelWidth {
		// Lossless pass-through
		for i := lo; i < hi; i++ {
			s := buf.at(i)
			dst = append(dst, DecimatedPoint{
				Column: colOf(s.Time),
				Min:    s.Value,
				Max:    s.Value,
				Last:   s.Value,
				Count:  1,
			})
		}
		return dst
	}

	cur := DecimatedPoint{Column: -1}
	for i := lo; i < hi; i++ {
		s := buf.at(i)
		col := colOf(s.Time)
		if col != cur.Column {
			if cur.Count > 0 {
				dst = append(dst, cur)
			}
			cur = DecimatedPoint{
				Column: col,
				Min:    s.Value,
				Max:    s.Value,
				Last:   s.Value,
				Count:  1,
			}
			continue
		}
		if s.Value < cur.Min {
			cur.Min = s.Value
		}
		if s.Value > cur.Max {
			cur.Max = s.Value
		}
		cur.Last = s.Value
		cur.Count++
	}
	if cur.Count > 0 {
		dst = append(dst, cur)
	}
	return dst
}
