package rollup

// Builder accumulates query fragments and a target table, and compiles
// them into a single SELECT statement. Mutators return the builder so
// calls can be chained. A Builder is a plain mutable value owned by one
// building session; it is not safe for concurrent use.
type Builder struct {
	table     string
	timeGrain *TimeGrain
	slices    []Slice
	measures  []Measure
	ratios    []Ratio
	filters   []Filter
}

// New creates a Builder targeting the given table.
func New(table string) *Builder {
	return &Builder{table: table}
}

// SetTable replaces the target table name.
func (b *Builder) SetTable(name string) *Builder {
	b.table = name
	return b
}

// SetTimeGrain sets the time bucket, replacing any existing one.
func (b *Builder) SetTimeGrain(g TimeGrain) *Builder {
	b.timeGrain = &g
	return b
}

// AddSlice appends a dimension column.
func (b *Builder) AddSlice(s Slice) *Builder {
	b.slices = append(b.slices, s)
	return b
}

// AddMeasure appends an aggregate measure.
func (b *Builder) AddMeasure(m Measure) *Builder {
	b.measures = append(b.measures, m)
	return b
}

// AddRatio appends a ratio measure.
func (b *Builder) AddRatio(r Ratio) *Builder {
	b.ratios = append(b.ratios, r)
	return b
}

// AddFilter appends a WHERE filter.
func (b *Builder) AddFilter(f Filter) *Builder {
	b.filters = append(b.filters, f)
	return b
}

// RemoveByLabel removes the time grain if its label matches, and removes
// every slice, measure, and ratio whose label matches. Filters are not
// touched; they have no label and must be cleared by rebuilding the
// filter list. Removing an absent label is a no-op.
func (b *Builder) RemoveByLabel(label string) *Builder {
	if b.timeGrain != nil && b.timeGrain.Label == label {
		b.timeGrain = nil
	}

	slices := b.slices[:0]
	for _, s := range b.slices {
		if s.Label != label {
			slices = append(slices, s)
		}
	}
	b.slices = slices

	measures := b.measures[:0]
	for _, m := range b.measures {
		if m.Label != label {
			measures = append(measures, m)
		}
	}
	b.measures = measures

	ratios := b.ratios[:0]
	for _, r := range b.ratios {
		if r.Label != label {
			ratios = append(ratios, r)
		}
	}
	b.ratios = ratios

	return b
}
