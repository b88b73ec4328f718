package query

import "strings"

// SortField is one ORDER BY term expressed in view names.
type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// ParseSortFields parses a comma-separated sort expression such as
// "-createdAt,title". A leading "-" sorts descending, a leading "+" ascending.
func ParseSortFields(expr string) []SortField {
	if strings.TrimSpace(expr) == "" {
		return nil
	}

	var fields []SortField
	for part := range strings.SplitSeq(expr, ",") {
		part = strings.TrimSpace(part)
		desc := false
		switch {
		case strings.HasPrefix(part, "-"):
			desc = true
			part = part[1:]
		case strings.HasPrefix(part, "+"):
			part = part[1:]
		}
		if part == "" {
			continue
		}
		fields = append(fields, SortField{Field: part, Descending: desc})
	}
	return fields
}
