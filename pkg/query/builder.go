package query

import (
	"fmt"
	"strings"
)

// placeholder marks where a positional parameter is numbered at build time.
const placeholder = "$?"

type condition struct {
	clause string
	args   []any
}

// Builder assembles SELECT statements with numbered parameters.
type Builder struct {
	projection  *ProjectionMap
	conditions  []condition
	sort        []SortField
	defaultSort SortField
}

// NewBuilder creates a Builder ordering by defaultSort when no sort is applied.
// A leading "-" on defaultSort sorts descending.
func NewBuilder(projection *ProjectionMap, defaultSort string) *Builder {
	def := SortField{Field: defaultSort}
	if fields := ParseSortFields(defaultSort); len(fields) > 0 {
		def = fields[0]
	}
	return &Builder{
		projection:  projection,
		defaultSort: def,
	}
}

// BuildCount returns a COUNT(*) statement over the current conditions.
func (b *Builder) BuildCount() (string, []any) {
	where, args := b.buildWhere()
	return fmt.Sprintf("SELECT COUNT(*) FROM %s%s", b.projection.Table(), where), args
}

// BuildPage returns an ordered SELECT limited to one page.
func (b *Builder) BuildPage(page, pageSize int) (string, []any) {
	if page < 1 {
		page = 1
	}
	where, args := b.buildWhere()

	sql := fmt.Sprintf(
		"SELECT %s FROM %s%s%s LIMIT %d OFFSET %d",
		b.projection.Columns(),
		b.projection.Table(),
		where,
		b.buildOrderBy(),
		pageSize,
		(page-1)*pageSize,
	)
	return sql, args
}

// BuildSingle returns a SELECT for the row whose idField equals id.
// Conditions added to the builder are ANDed after the id match.
func (b *Builder) BuildSingle(idField string, id any) (string, []any) {
	b.conditions = append([]condition{{
		clause: b.projection.Column(idField) + " = " + placeholder,
		args:   []any{id},
	}}, b.conditions...)

	where, args := b.buildWhere()
	return fmt.Sprintf("SELECT %s FROM %s%s", b.projection.Columns(), b.projection.Table(), where), args
}

// OrderBy replaces the sort with a single field. Empty field keeps the default.
func (b *Builder) OrderBy(field string, descending bool) *Builder {
	if field == "" {
		b.sort = nil
		b.defaultSort.Descending = descending
		return b
	}
	b.sort = []SortField{{Field: field, Descending: descending}}
	return b
}

// Sort applies sort fields parsed from a client request. Fields that are not
// projected are dropped so raw input never reaches the statement.
func (b *Builder) Sort(fields []SortField) *Builder {
	for _, f := range fields {
		if b.projection.Known(f.Field) {
			b.sort = append(b.sort, f)
		}
	}
	return b
}

// WhereContains adds a case-insensitive substring match. Nil or empty values are ignored.
func (b *Builder) WhereContains(field string, value *string) *Builder {
	if value == nil || *value == "" {
		return b
	}
	return b.where(b.projection.Column(field)+" ILIKE "+placeholder, "%"+*value+"%")
}

// WhereEquals adds an equality condition. Nil values are ignored.
func (b *Builder) WhereEquals(field string, value any) *Builder {
	if value == nil {
		return b
	}
	return b.where(b.projection.Column(field)+" = "+placeholder, value)
}

// WhereIn adds an IN condition. Empty slices are ignored.
func (b *Builder) WhereIn(field string, values []any) *Builder {
	if len(values) == 0 {
		return b
	}
	marks := make([]string, len(values))
	for i := range values {
		marks[i] = placeholder
	}
	return b.where(
		fmt.Sprintf("%s IN (%s)", b.projection.Column(field), strings.Join(marks, ", ")),
		values...,
	)
}

// WhereNull adds an IS NULL condition.
func (b *Builder) WhereNull(field string) *Builder {
	return b.where(b.projection.Column(field) + " IS NULL")
}

// WhereNotNull adds an IS NOT NULL condition.
func (b *Builder) WhereNotNull(field string) *Builder {
	return b.where(b.projection.Column(field) + " IS NOT NULL")
}

// WhereSearch matches search against any of fields. Nil or empty search is ignored.
func (b *Builder) WhereSearch(search *string, fields ...string) *Builder {
	if search == nil || *search == "" || len(fields) == 0 {
		return b
	}

	clauses := make([]string, len(fields))
	args := make([]any, len(fields))
	pattern := "%" + *search + "%"

	for i, field := range fields {
		clauses[i] = b.projection.Column(field) + " ILIKE " + placeholder
		args[i] = pattern
	}

	return b.where("("+strings.Join(clauses, " OR ")+")", args...)
}

func (b *Builder) where(clause string, args ...any) *Builder {
	b.conditions = append(b.conditions, condition{clause: clause, args: args})
	return b
}

func (b *Builder) buildOrderBy() string {
	fields := b.sort
	if len(fields) == 0 {
		fields = []SortField{b.defaultSort}
	}

	terms := make([]string, len(fields))
	for i, f := range fields {
		dir := "ASC"
		if f.Descending {
			dir = "DESC"
		}
		terms[i] = b.projection.Column(f.Field) + " " + dir
	}
	return " ORDER BY " + strings.Join(terms, ", ")
}

func (b *Builder) buildWhere() (string, []any) {
	if len(b.conditions) == 0 {
		return "", nil
	}

	clauses := make([]string, 0, len(b.conditions))
	var args []any
	n := 1

	for _, cond := range b.conditions {
		clause := cond.clause
		for _, arg := range cond.args {
			clause = strings.Replace(clause, placeholder, fmt.Sprintf("$%d", n), 1)
			args = append(args, arg)
			n++
		}
		clauses = append(clauses, clause)
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}
