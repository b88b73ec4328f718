package pagination

import (
	"net/url"
	"strconv"

	"github.com/JaimeStill/ministry-cms/pkg/query"
)

// Query parameter names read by PageRequestFromQuery.
const (
	ParamPage   = "page"
	ParamLimit  = "limit"
	ParamSearch = "search"
	ParamSort   = "sort"
)

// PageRequest is a 1-based page of at most Limit rows with optional search and sort.
type PageRequest struct {
	Page   int               `json:"page"`
	Limit  int               `json:"limit"`
	Search *string           `json:"search,omitempty"`
	Sort   []query.SortField `json:"sort,omitempty"`
}

// Normalize clamps Page to at least 1 and Limit into [1, cfg.MaxPageSize],
// substituting cfg.DefaultPageSize when Limit is unset.
func (r *PageRequest) Normalize(cfg Config) {
	r.Page = max(r.Page, 1)
	if r.Limit < 1 {
		r.Limit = cfg.DefaultPageSize
	}
	r.Limit = min(r.Limit, cfg.MaxPageSize)
}

func (r *PageRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

// PageRequestFromQuery reads page, limit, search and sort from values. Sort
// is a comma-separated field list with "-" marking descending order.
// Unparseable numbers fall back to defaults.
func PageRequestFromQuery(values url.Values, cfg Config) PageRequest {
	req := PageRequest{
		Page:  atoi(values.Get(ParamPage)),
		Limit: atoi(values.Get(ParamLimit)),
		Sort:  query.ParseSortFields(values.Get(ParamSort)),
	}
	if s := values.Get(ParamSearch); s != "" {
		req.Search = &s
	}

	req.Normalize(cfg)
	return req
}

// Apply adds the request's search and sort to b. Search matches any of fields.
func (r *PageRequest) Apply(b *query.Builder, fields ...string) *query.Builder {
	return b.WhereSearch(r.Search, fields...).Sort(r.Sort)
}

// PageResult is one page of rows with the counts a client needs to page on.
type PageResult[T any] struct {
	Data       []T  `json:"data"`
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
}

// NewPageResult builds a result for req. TotalPages is at least 1 and Data is never nil.
func NewPageResult[T any](data []T, total int, req PageRequest) PageResult[T] {
	totalPages := 1
	if req.Limit > 0 && total > 0 {
		totalPages = (total + req.Limit - 1) / req.Limit
	}

	if data == nil {
		data = []T{}
	}

	return PageResult[T]{
		Data:       data,
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: totalPages,
		HasNext:    req.Page < totalPages,
	}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
