package rollup

import (
	"strconv"
	"strings"
)

// Compile renders the accumulated fragments into a SELECT statement.
//
// The statement is five newline-joined clauses in fixed order: SELECT,
// FROM, WHERE, GROUP BY, ORDER BY. The SELECT list is the time grain,
// then slices, measures, and ratios in insertion order. The WHERE clause
// starts with a TRUE sentinel so it stays valid with no filters. GROUP BY
// and ORDER BY address columns by position: 1 is always the time bucket,
// 2..N+1 are the slices; measures and ratios are never grouped. The
// primary sort is the time bucket descending, slices ascending.
//
// Compile is pure with respect to builder state and fails with
// ErrMissingTimeGrain when no time grain is set; on any error no partial
// statement is returned.
func (b *Builder) Compile() (string, error) {
	if b.timeGrain == nil {
		return "", ErrMissingTimeGrain
	}

	selectParts := make([]string, 0, 1+len(b.slices)+len(b.measures)+len(b.ratios))
	grain, err := b.timeGrain.Render()
	if err != nil {
		return "", err
	}
	selectParts = append(selectParts, grain)
	for _, s := range b.slices {
		part, err := s.Render()
		if err != nil {
			return "", err
		}
		selectParts = append(selectParts, part)
	}
	for _, m := range b.measures {
		part, err := m.Render()
		if err != nil {
			return "", err
		}
		selectParts = append(selectParts, part)
	}
	for _, r := range b.ratios {
		part, err := r.Render()
		if err != nil {
			return "", err
		}
		selectParts = append(selectParts, part)
	}

	whereParts := make([]string, 0, 1+len(b.filters))
	whereParts = append(whereParts, "TRUE")
	for _, f := range b.filters {
		part, err := f.Render()
		if err != nil {
			return "", err
		}
		whereParts = append(whereParts, part)
	}

	groupParts := make([]string, 0, 1+len(b.slices))
	groupParts = append(groupParts, "1")
	orderParts := make([]string, 0, 1+len(b.slices))
	orderParts = append(orderParts, "1 DESC")
	for i := range b.slices {
		pos := strconv.Itoa(i + 2)
		groupParts = append(groupParts, pos)
		orderParts = append(orderParts, pos)
	}

	clauses := []string{
		"SELECT\n  " + strings.Join(selectParts, ",\n  "),
		"FROM " + b.table,
		"WHERE " + strings.Join(whereParts, " AND\n  "),
		"GROUP BY " + strings.Join(groupParts, ", "),
		"ORDER BY " + strings.Join(orderParts, ", "),
	}
	return strings.Join(clauses, "\n"), nil
}

// MustCompile is like Compile but panics on error.
func (b *Builder) MustCompile() string {
	sql, err := b.Compile()
	if err != nil {
		panic(err)
	}
	return sql
}
