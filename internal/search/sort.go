package search

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOrder selects the comparator used by Sort.
type SortOrder string

const (
	SortNumberDesc SortOrder = "salary-high"
	SortNumberAsc  SortOrder = "salary-low"
	SortTitleAsc   SortOrder = "title-az"
	SortTitleDesc  SortOrder = "title-za"
)

// DefaultSortOrder is used when no order is chosen.
const DefaultSortOrder = SortTitleAsc

// SortOrders lists the orders in menu order.
func SortOrders() []SortOrder {
	return []SortOrder{SortNumberDesc, SortNumberAsc, SortTitleAsc, SortTitleDesc}
}

// Label is the menu text of the order.
func (o SortOrder) Label() string {
	switch o {
	case SortNumberDesc:
		return "Salary (High → Low)"
	case SortNumberAsc:
		return "Salary (Low → High)"
	case SortTitleAsc:
		return "Title (A–Z)"
	case SortTitleDesc:
		return "Title (Z–A)"
	default:
		return string(o)
	}
}

// Valid reports whether o is one of SortOrders.
func (o SortOrder) Valid() bool {
	return slices.Contains(SortOrders(), o)
}

// Sortable records expose a title and a numeric key.
type Sortable interface {
	Record
	SortTitle() string
	SortNumber() int
}

// Sort orders records in place with a stable sort. An unknown order
// leaves the slice as it is.
func Sort[T Sortable](records []T, order SortOrder) {
	switch order {
	case SortNumberDesc:
		slices.SortStableFunc(records, func(a, b T) int {
			return cmp.Compare(b.SortNumber(), a.SortNumber())
		})
	case SortNumberAsc:
		slices.SortStableFunc(records, func(a, b T) int {
			return cmp.Compare(a.SortNumber(), b.SortNumber())
		})
	case SortTitleAsc:
		c := collate.New(language.English)
		slices.SortStableFunc(records, func(a, b T) int {
			return c.CompareString(a.SortTitle(), b.SortTitle())
		})
	case SortTitleDesc:
		c := collate.New(language.English)
		slices.SortStableFunc(records, func(a, b T) int {
			return c.CompareString(b.SortTitle(), a.SortTitle())
		})
	}
}
