// Package query builds parameterized SELECT statements from structured predicates.
//
// It is a thin layer over squirrel that drops empty predicates, so callers can
// assemble optional filters without checking each one. Column names come from the
// caller's code and every value is bound as a "?" placeholder.
//
//	where := query.Or(
//	    query.And(query.Eq("country_name", "India"), query.Eq("driver_gender", "F")),
//	    query.In("vehicle_number", "AB1", "CD2"),
//	)
//	sql, args, err := query.NewSelect("traffic_project").Where(where).Limit(1).Build()
//	// SELECT * FROM traffic_project WHERE ((country_name = ? AND driver_gender = ?) OR vehicle_number IN (?,?)) LIMIT 1
package query

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Predicate is a WHERE fragment.
type Predicate = sq.Sqlizer

// Eq matches column = value.
func Eq(column string, value interface{}) Predicate {
	return sq.Eq{column: value}
}

// In matches column IN (values...). With no values it returns nil, which the
// composites and the builder skip.
func In(column string, values ...interface{}) Predicate {
	if len(values) == 0 {
		return nil
	}
	return sq.Eq{column: values}
}

// And joins predicates with AND. Nil predicates are dropped; with nothing left it returns nil.
func And(predicates ...Predicate) Predicate {
	children := compact(predicates)
	if len(children) < 2 {
		return single(children)
	}
	return sq.And(children)
}

// Or joins predicates with OR. Nil predicates are dropped; with nothing left it returns nil.
func Or(predicates ...Predicate) Predicate {
	children := compact(predicates)
	if len(children) < 2 {
		return single(children)
	}
	return sq.Or(children)
}

func compact(predicates []Predicate) []sq.Sqlizer {
	children := make([]sq.Sqlizer, 0, len(predicates))
	for _, p := range predicates {
		if p != nil {
			children = append(children, p)
		}
	}
	return children
}

func single(children []sq.Sqlizer) Predicate {
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// Render returns the SQL and arguments for a single predicate.
func Render(p Predicate) (string, []interface{}, error) {
	if p == nil {
		return "", nil, nil
	}
	return p.ToSql()
}

// Builder constructs a single-table SELECT.
type Builder struct {
	table   string
	columns []string
	where   Predicate
	limit   int
}

// NewSelect creates a builder for the given table.
func NewSelect(table string) *Builder {
	return &Builder{table: table}
}

// Columns sets the selected columns. Without columns the builder selects *.
func (b *Builder) Columns(columns ...string) *Builder {
	b.columns = append(b.columns, columns...)
	return b
}

// Where sets the WHERE predicate. A nil predicate means no WHERE clause.
func (b *Builder) Where(p Predicate) *Builder {
	b.where = p
	return b
}

// Limit sets the maximum number of rows. Zero means no LIMIT clause.
func (b *Builder) Limit(n int) *Builder {
	b.limit = n
	return b
}

// Build returns the SQL text and its ordered arguments.
func (b *Builder) Build() (string, []interface{}, error) {
	if b.table == "" {
		return "", nil, fmt.Errorf("table name is required")
	}
	if b.limit < 0 {
		return "", nil, fmt.Errorf("limit must not be negative, got %d", b.limit)
	}

	columns := b.columns
	if len(columns) == 0 {
		columns = []string{"*"}
	}

	stmt := sq.Select(columns...).From(b.table)
	if b.where != nil {
		stmt = stmt.Where(b.where)
	}
	if b.limit > 0 {
		stmt = stmt.Limit(uint64(b.limit))
	}

	return stmt.ToSql()
}
