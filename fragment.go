// Package rollup assembles analytical SELECT statements from composable,
// named query fragments: a time bucket, dimension columns, aggregate
// measures, zero-safe ratios, and filters. Fragments render themselves to
// SQL text and a Builder concatenates them into a single statement.
//
// The package produces strings only. It does not execute queries, parse
// SQL, or validate identifiers; column and table names, measure
// expressions, and filter values are interpolated verbatim, so callers
// are the trust boundary.
package rollup

import (
	"fmt"
	"strings"
)

// Grain is a time-bucketing granularity passed to date_trunc.
type Grain string

const (
	GrainDay     Grain = "day"
	GrainWeek    Grain = "week"
	GrainMonth   Grain = "month"
	GrainQuarter Grain = "quarter"
	GrainYear    Grain = "year"
)

// FilterKind selects how a Filter renders.
type FilterKind string

const (
	// FilterList renders a whitelist membership test: column IN ('a', 'b').
	FilterList FilterKind = "list"
	// FilterCustom emits an opaque expression verbatim.
	FilterCustom FilterKind = "custom"
)

// Fragment is a self-rendering piece of a SQL clause. Rendering is pure:
// no side effects and no dependency on builder state.
type Fragment interface {
	Render() (string, error)
}

// TimeGrain buckets a timestamp column with date_trunc. A query holds at
// most one; it always occupies SELECT position 1.
type TimeGrain struct {
	Column string
	Grain  Grain
	Label  string
}

// Render returns the date_trunc expression with its aliased label.
func (g TimeGrain) Render() (string, error) {
	return fmt.Sprintf("date_trunc('%s', %s) AS \"%s\"", g.Grain, g.Column, g.Label), nil
}

// Slice is a non-aggregated dimension column, selected and grouped by.
type Slice struct {
	Column string
	Label  string
}

// NewSlice returns a Slice whose label defaults to the column name.
func NewSlice(column string) Slice {
	return Slice{Column: column, Label: column}
}

// As returns a copy of the slice with the given label.
func (s Slice) As(label string) Slice {
	s.Label = label
	return s
}

func (s Slice) Render() (string, error) {
	label := s.Label
	if label == "" {
		label = s.Column
	}
	return fmt.Sprintf("%s AS \"%s\"", s.Column, label), nil
}

// Measure is an aggregate expression included in SELECT but never in
// GROUP BY. The expression is raw SQL.
type Measure struct {
	Expression string
	Label      string
}

func (m Measure) Render() (string, error) {
	return fmt.Sprintf("%s AS \"%s\"", m.Expression, m.Label), nil
}

// Ratio is a derived measure dividing two expressions. The denominator is
// wrapped in NULLIF so division by zero yields NULL instead of an error.
type Ratio struct {
	Numerator   string
	Denominator string
	Label       string
}

func (r Ratio) Render() (string, error) {
	return fmt.Sprintf("(%s) / NULLIF(%s, 0) AS \"%s\"", r.Numerator, r.Denominator, r.Label), nil
}

// Filter restricts the WHERE clause. FilterList needs Values; FilterCustom
// needs Expression. Filters carry no label and are not subject to
// Builder.RemoveByLabel.
type Filter struct {
	Column     string
	Kind       FilterKind
	Values     []string
	Expression string
}

// ListFilter returns a whitelist filter on column. The value list is
// never nil, so a filter with no values still renders.
func ListFilter(column string, values ...string) Filter {
	if values == nil {
		values = []string{}
	}
	return Filter{Column: column, Kind: FilterList, Values: values}
}

// CustomFilter returns a filter emitting expr verbatim.
func CustomFilter(expr string) Filter {
	return Filter{Kind: FilterCustom, Expression: expr}
}

// Render returns the filter's WHERE fragment. A list filter renders with
// a trailing newline; each value is wrapped in single quotes without
// escaping.
func (f Filter) Render() (string, error) {
	switch f.Kind {
	case FilterList:
		if f.Values == nil {
			return "", fmt.Errorf("filter on %q: %w", f.Column, ErrInvalidFilterValue)
		}
		quoted := make([]string, len(f.Values))
		for i, v := range f.Values {
			quoted[i] = "'" + v + "'"
		}
		return fmt.Sprintf("%s IN (%s)\n", f.Column, strings.Join(quoted, ", ")), nil
	case FilterCustom:
		if f.Expression == "" {
			return "", ErrMissingExpression
		}
		return f.Expression, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFilterKind, f.Kind)
	}
}
