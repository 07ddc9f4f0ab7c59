package importer

import "strings"

// Record is one raw source row keyed by normalized header name. Values stay
// strings until parsing so errors stay attributable to row and column.
type Record struct {
	RowNumber int
	Values    map[string]string
}

func normalizeHeader(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
