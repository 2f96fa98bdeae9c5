package repository

import (
	"strings"

	"gorm.io/gorm"

	"catalogo/internal/listing"
)

// estadoScope applies the soft-delete view selected by the estado parameter.
// col is the qualified deleted_at column; listings that join parent tables
// must disambiguate it.
func estadoScope(q *gorm.DB, estado, col string) *gorm.DB {
	switch estado {
	case listing.EstadoEliminados:
		return q.Where(col + " IS NOT NULL")
	case listing.EstadoTodos:
		return q
	default:
		return q.Where(col + " IS NULL")
	}
}

// searchScope ORs an ILIKE over the entity's searchable columns.
func searchScope(q *gorm.DB, term string, cols ...string) *gorm.DB {
	if term == "" || len(cols) == 0 {
		return q
	}
	pattern := "%" + term + "%"
	clauses := make([]string, len(cols))
	args := make([]interface{}, len(cols))
	for i, col := range cols {
		clauses[i] = col + " ILIKE ?"
		args[i] = pattern
	}
	return q.Where(strings.Join(clauses, " OR "), args...)
}

// dateScope restricts the qualified created_at column to the inclusive window.
func dateScope(q *gorm.DB, dr listing.DateRange, col string) *gorm.DB {
	if dr.From != nil {
		q = q.Where(col+" >= ?", *dr.From)
	}
	if dr.To != nil {
		q = q.Where(col+" <= ?", *dr.To)
	}
	return q
}

// boolScope applies a tri-state boolean filter.
func boolScope(q *gorm.DB, col string, v *bool) *gorm.DB {
	if v == nil {
		return q
	}
	return q.Where(col+" = ?", *v)
}

// countByParent runs a GROUP BY count over child rows keyed by a parent
// column, used for the *_count fields in listing responses.
func countByParent(q *gorm.DB, parentCol string) (map[string]int64, error) {
	type row struct {
		Parent string
		N      int64
	}
	var rows []row
	err := q.Select(parentCol + " AS parent, COUNT(*) AS n").Group(parentCol).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Parent] = r.N
	}
	return out, nil
}
