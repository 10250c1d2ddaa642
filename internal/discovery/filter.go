package discovery

import (
	"strings"

	"simtool/internal/domain"
)

// Filter selects tests whose dotted names contain a query string.
type Filter struct{}

// NewFilter creates a new Filter.
func NewFilter() *Filter {
	return &Filter{}
}

// ByQuery returns the tests whose full dotted name contains query as a
// case-sensitive substring, preserving discovery order. An empty query
// matches everything.
func (f *Filter) ByQuery(tests []domain.TestID, query string) []domain.TestID {
	if query == "" {
		return tests
	}

	var filtered []domain.TestID
	for _, test := range tests {
		if strings.Contains(test.Name, query) {
			filtered = append(filtered, test)
		}
	}
	return filtered
}

// ByNames returns the tests whose dotted names appear in names,
// preserving discovery order. Used by --failed to re-select the
// previous run's failures.
func (f *Filter) ByNames(tests []domain.TestID, names map[string]struct{}) []domain.TestID {
	var filtered []domain.TestID
	for _, test := range tests {
		if _, ok := names[test.Name]; ok {
			filtered = append(filtered, test)
		}
	}
	return filtered
}
