// Package query builds parameterized PostgreSQL statements from a projection
// of view field names onto table columns.
package query

import "strings"

// ProjectionMap maps view field names onto qualified columns of one table.
// Column order follows the order of Project calls, which is also the scan order.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	columns []string
	views   map[string]string
}

// NewProjectionMap starts a projection over schema.table referenced through alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		views:  make(map[string]string),
	}
}

// Project adds column under the given view name.
func (p *ProjectionMap) Project(column, view string) *ProjectionMap {
	qualified := p.alias + "." + column
	p.columns = append(p.columns, qualified)
	p.views[view] = qualified
	return p
}

func (p *ProjectionMap) Alias() string {
	return p.alias
}

// Table returns the FROM target, e.g. "public.articles a".
func (p *ProjectionMap) Table() string {
	return p.schema + "." + p.table + " " + p.alias
}

// Column resolves a view name. Unknown names are returned unchanged so raw
// expressions can be passed through.
func (p *ProjectionMap) Column(view string) string {
	if col, ok := p.views[view]; ok {
		return col
	}
	return view
}

// Known reports whether view has been projected.
func (p *ProjectionMap) Known(view string) bool {
	_, ok := p.views[view]
	return ok
}

func (p *ProjectionMap) Columns() string {
	return strings.Join(p.columns, ", ")
}

func (p *ProjectionMap) ColumnList() []string {
	out := make([]string, len(p.columns))
	copy(out, p.columns)
	return out
}
