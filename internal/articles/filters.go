package articles

import (
	"net/url"
	"strconv"

	"github.com/JaimeStill/ministry-cms/pkg/query"
)

// Filters contains optional filtering criteria for article queries.
type Filters struct {
	Category  *string
	Published *bool
}

// FiltersFromQuery extracts filter values from URL query parameters.
// Unparseable published values are ignored.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if c := values.Get("category"); c != "" {
		f.Category = &c
	}
	if p, err := strconv.ParseBool(values.Get("published")); err == nil {
		f.Published = &p
	}

	return f
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.Category != nil {
		b.WhereEquals("Category", *f.Category)
	}
	if f.Published != nil {
		b.WhereEquals("Published", *f.Published)
	}
	return b
}
