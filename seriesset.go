package hmi

// DisplayMeta describes how a series is presented.
type DisplayMeta struct {
	Label   string // Human-readable name shown in legends and tooltips
	Unit    string // Engineering unit suffix, e.g. "degC" or "bar"
	Color   uint32
	Visible bool
}

// Series pairs a sample buffer with its display metadata.
type Series struct {
	ID   string
	Meta DisplayMeta
	Buf  *SampleBuffer
}

// SeriesSet is an ordered collection of named series. Iteration order
// is the order series were added, which keeps legends and draw order
// stable between frames.
type SeriesSet struct {
	byID  map[string]*Series
	order []string
}

// NewSeriesSet creates an empty series collection.
func NewSeriesSet() *SeriesSet {
	return &SeriesSet{
		byID: make(map[string]*Series),
	}
}

// Add registers a new series with its own buffer of the given capacity.
// Returns ErrDuplicateSeries if the ID is already in use.
func (ss *SeriesSet) Add(id string, meta DisplayMeta, capacity int) error {
	if _, ok := ss.byID[id]; ok {
		return ErrDuplicateSeries
	}
	ss.byID[id] = &Series{
		ID:   id,
		Meta: meta,
		Buf:  NewSampleBuffer(capacity),
	}
	ss.order = append(ss.order, id)
	return nil
}

// Remove deletes a series and its buffered data.
// Returns ErrUnknownSeries if the ID is not present.
func (ss *SeriesSet) Remove(id string) error {
	if _, ok := ss.byID[id]; !ok {
		return ErrUnknownSeries
	}
	delete(ss.byID, id)
	for i, sid := range ss.order {
		if sid == id {
			ss.order = append(ss.order[:i], ss.order[i+1:]...)
			break
		}
	}
	return nil
}

// Push appends a sample to the named series.
func (ss *SeriesSet) Push(id string, s Sample) error {
	sr, ok := ss.byID[id]
	if !ok {
		return ErrUnknownSeries
	}
	return sr.Buf.Push(s)
}

// Get returns the series with the given ID, or nil.
func (ss *SeriesSet) Get(id string) *Series {
	return ss.byID[id]
}

// SetMeta replaces the display metadata of a series.
func (ss *SeriesSet) SetMeta(id string, meta DisplayMeta) error {
	sr, ok := ss.byID[id]
	if !ok {
		return ErrUnknownSeries
	}
	sr.Meta = meta
	return nil
}

// SetVisible toggles whether a series is drawn.
func (ss *SeriesSet) SetVisible(id string, visible bool) error {
	sr, ok := ss.byID[id]
	if !ok {
		return ErrUnknownSeries
	}
	sr.Meta.Visible = visible
	return nil
}

// Len returns the number of series.
func (ss *SeriesSet) Len() int { return len(ss.order) }

// All calls fn for each series in insertion order.
func (ss *SeriesSet) All(fn func(*Series) bool) {
	for _, id := range ss.order {
		if !fn(ss.byID[id]) {
			return
		}
	}
}

// Visible calls fn for each visible series in insertion order.
func (ss *SeriesSet) Visible(fn func(*Series) bool) {
	for _, id := range ss.order {
		sr := ss.byID[id]
		if !sr.Meta.Visible {
			continue
		}
		if !fn(sr) {
			return
		}
	}
}

// LatestTime returns the largest sample timestamp across all series,
// or false when every buffer is empty. The trend widget follows this
// edge in auto-follow mode.
func (ss *SeriesSet) LatestTime() (float64, bool) {
	var latest float64
	found := false
	for _, id := range ss.order {
		if s, ok := ss.byID[id].Buf.Latest(); ok {
			if !found || s.Time > latest {
				latest = s.Time
				found = true
			}
		}
	}
	return latest, found
}
