package querybuilder

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Condition renders one predicate of a WHERE clause. Conditions are joined
// with AND.
type Condition interface {
	appendSQL(w *sqlWriter)
}

type eqCondition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) appendSQL(w *sqlWriter) {
	w.WriteString(c.column)
	w.WriteString(" = ")
	w.bind(c.value)
}

// sqlWriter accumulates SQL text and its positional arguments.
type sqlWriter struct {
	strings.Builder
	args []any
}

func (w *sqlWriter) bind(value any) {
	w.args = append(w.args, value)
	w.WriteString("$")
	w.WriteString(strconv.Itoa(len(w.args)))
}

func (w *sqlWriter) list(parts []string) {
	w.WriteString(strings.Join(parts, ", "))
}

func (w *sqlWriter) where(conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	w.WriteString(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			w.WriteString(" AND ")
		}
		c.appendSQL(w)
	}
}

func (w *sqlWriter) returning(columns []string) {
	if len(columns) == 0 {
		return
	}
	w.WriteString(" RETURNING ")
	w.list(columns)
}

func (w *sqlWriter) result() (string, []any, error) {
	return w.String(), w.args, nil
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: slices.Clone(columns)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var w sqlWriter
	w.WriteString("SELECT ")
	w.list(b.columns)
	w.WriteString(" FROM ")
	w.WriteString(b.table)
	w.where(b.where)
	if len(b.orderBy) > 0 {
		w.WriteString(" ORDER BY ")
		w.list(b.orderBy)
	}
	if b.limit > 0 {
		w.WriteString(" LIMIT ")
		w.WriteString(strconv.Itoa(b.limit))
	}
	return w.result()
}

type conflictAction int

const (
	conflictNone conflictAction = iota
	conflictDoNothing
	conflictUpdate
)

// InsertBuilder renders a single-row INSERT with an optional ON CONFLICT
// clause.
type InsertBuilder struct {
	table     string
	columns   []string
	values    []any
	action    conflictAction
	target    []string
	touched   []string
	returning []string
	err       error
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = slices.Clone(columns)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.values = slices.Clone(values)
	return b
}

// OnConflictDoNothing skips the row when target is already taken.
func (b *InsertBuilder) OnConflictDoNothing(target ...string) *InsertBuilder {
	b.action = conflictDoNothing
	b.target = slices.Clone(target)
	return b
}

// OnConflictUpdate overwrites every inserted column outside target with the
// proposed value and stamps touched columns with CURRENT_TIMESTAMP.
func (b *InsertBuilder) OnConflictUpdate(target []string, touched ...string) *InsertBuilder {
	b.action = conflictUpdate
	b.target = slices.Clone(target)
	b.touched = slices.Clone(touched)
	return b
}

func (b *InsertBuilder) Returning(columns ...string) *InsertBuilder {
	b.returning = slices.Clone(columns)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if b.err != nil {
		return "", nil, b.err
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.values) != len(b.columns) {
		return "", nil, fmt.Errorf("insert has %d values, expected %d", len(b.values), len(b.columns))
	}

	var w sqlWriter
	w.WriteString("INSERT INTO ")
	w.WriteString(b.table)
	w.WriteString(" (")
	w.list(b.columns)
	w.WriteString(") VALUES (")
	for i, v := range b.values {
		if i > 0 {
			w.WriteString(", ")
		}
		w.bind(v)
	}
	w.WriteString(")")

	if err := b.appendConflict(&w); err != nil {
		return "", nil, err
	}
	w.returning(b.returning)
	return w.result()
}

func (b *InsertBuilder) appendConflict(w *sqlWriter) error {
	if b.action == conflictNone {
		return nil
	}
	if len(b.target) == 0 {
		return fmt.Errorf("conflict target is required")
	}

	w.WriteString(" ON CONFLICT (")
	w.list(b.target)
	w.WriteString(")")
	if b.action == conflictDoNothing {
		w.WriteString(" DO NOTHING")
		return nil
	}

	sets := make([]string, 0, len(b.columns)+len(b.touched))
	for _, col := range b.columns {
		if slices.Contains(b.target, col) {
			continue
		}
		sets = append(sets, col+" = EXCLUDED."+col)
	}
	for _, col := range b.touched {
		sets = append(sets, col+" = CURRENT_TIMESTAMP")
	}
	if len(sets) == 0 {
		return fmt.Errorf("conflict update has no columns to set")
	}
	w.WriteString(" DO UPDATE SET ")
	w.list(sets)
	return nil
}

type setClause struct {
	column string
	value  any
	now    bool
}

type UpdateBuilder struct {
	table string
	sets  []setClause
	where []Condition
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, setClause{column: column, value: value})
	return b
}

// SetNow assigns CURRENT_TIMESTAMP to column.
func (b *UpdateBuilder) SetNow(column string) *UpdateBuilder {
	b.sets = append(b.sets, setClause{column: column, now: true})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("update table is required")
	}
	if len(b.sets) == 0 {
		return "", nil, fmt.Errorf("update sets are required")
	}

	var w sqlWriter
	w.WriteString("UPDATE ")
	w.WriteString(b.table)
	w.WriteString(" SET ")
	for i, s := range b.sets {
		if i > 0 {
			w.WriteString(", ")
		}
		w.WriteString(s.column)
		w.WriteString(" = ")
		if s.now {
			w.WriteString("CURRENT_TIMESTAMP")
			continue
		}
		w.bind(s.value)
	}
	w.where(b.where)
	return w.result()
}

type DeleteBuilder struct {
	table string
	where []Condition
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	b.where = append(b.where, conditions...)
	return b
}

// ToSQL renders the statement. A builder without conditions deletes every row.
func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("delete table is required")
	}

	var w sqlWriter
	w.WriteString("DELETE FROM ")
	w.WriteString(b.table)
	w.where(b.where)
	return w.result()
}
