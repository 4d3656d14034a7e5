// Package search filters and sorts small in-memory content collections.
package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// Record is anything the filter can match against.
type Record interface {
	// SearchFields are the free-text fields matched by the query
	// (title, description and page-specific extras).
	SearchFields() []string
	// TagValues are matched by the query and by the tag predicate.
	TagValues() []string
	// CategoryValue is the single-valued classification used by the
	// category predicate.
	CategoryValue() string
}

// Criteria holds the active predicates. Zero value matches everything.
type Criteria struct {
	Query      string
	Categories []string
	Tags       []string
}

// ActiveCount is the number of active filters as shown next to a filter
// button: one per selected category and tag, plus one for a query.
func (c Criteria) ActiveCount() int {
	n := len(c.Categories) + len(c.Tags)
	if c.Query != "" {
		n++
	}
	return n
}

// Filter returns the records satisfying the text, category and tag
// predicates and every extra predicate, in input order. The result is
// never nil.
func Filter[T Record](records []T, c Criteria, extra ...func(T) bool) []T {
	m := newMatcher(c)
	out := make([]T, 0, len(records))
	for _, r := range records {
		if !m.match(r) {
			continue
		}
		if !all(r, extra) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Matches reports whether a single record satisfies c.
func Matches[T Record](r T, c Criteria) bool {
	return newMatcher(c).match(r)
}

type matcher struct {
	fold       cases.Caser
	query      string
	categories map[string]struct{}
	tags       map[string]struct{}
}

func newMatcher(c Criteria) *matcher {
	m := &matcher{fold: cases.Fold()}
	if c.Query != "" {
		m.query = m.fold.String(c.Query)
	}
	if len(c.Categories) > 0 {
		m.categories = toSet(c.Categories)
	}
	if len(c.Tags) > 0 {
		m.tags = toSet(c.Tags)
	}
	return m
}

func (m *matcher) match(r Record) bool {
	return m.matchText(r) && m.matchCategory(r) && m.matchTags(r)
}

func (m *matcher) matchText(r Record) bool {
	if m.query == "" {
		return true
	}
	for _, f := range r.SearchFields() {
		if m.contains(f) {
			return true
		}
	}
	for _, t := range r.TagValues() {
		if m.contains(t) {
			return true
		}
	}
	return false
}

func (m *matcher) contains(s string) bool {
	return strings.Contains(m.fold.String(s), m.query)
}

func (m *matcher) matchCategory(r Record) bool {
	if m.categories == nil {
		return true
	}
	_, ok := m.categories[r.CategoryValue()]
	return ok
}

func (m *matcher) matchTags(r Record) bool {
	if m.tags == nil {
		return true
	}
	for _, t := range r.TagValues() {
		if _, ok := m.tags[t]; ok {
			return true
		}
	}
	return false
}

func all[T any](r T, preds []func(T) bool) bool {
	for _, p := range preds {
		if p != nil && !p(r) {
			return false
		}
	}
	return true
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// DistinctTags returns every tag of records once, in first-seen order.
func DistinctTags[T Record](records []T) []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, r := range records {
		for _, t := range r.TagValues() {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	return tags
}
