// Package engine holds the pure list and statistics computations used by the
// client screens and the record store: facet filtering, pin-first ordering,
// reminders, period bucketing, rankings and distributions.
//
// Every function works on in-memory slices and never mutates its input.
package engine

import (
	"cmp"
	"slices"
	"strings"

	"github.com/MKhiriev/gumi-collection/models"
)

// StatusAll is the status filter value that matches every item.
const StatusAll = "全部"

// noDateSentinel sorts undated reminders after every real date.
const noDateSentinel = "9999-12-31"

// ListFilter is the conjunction of the home screen filters.
// An empty facet slice does not restrict anything.
type ListFilter struct {
	// Status is either StatusAll (or "") or a concrete status label.
	Status string

	// Query is matched case-insensitively against name, IP and character.
	Query string

	Sources    []models.SourceType
	IPs        []string
	Characters []string
	Categories []models.ItemCategory
}

// Matches reports whether item satisfies every active predicate of f.
func (f ListFilter) Matches(item models.CollectionItem) bool {
	if f.Status != "" && f.Status != StatusAll && string(item.Status) != f.Status {
		return false
	}

	if q := strings.ToLower(f.Query); q != "" {
		if !strings.Contains(strings.ToLower(item.Name), q) &&
			!strings.Contains(strings.ToLower(item.IP), q) &&
			!strings.Contains(strings.ToLower(item.Character), q) {
			return false
		}
	}

	if len(f.Sources) > 0 && !slices.Contains(f.Sources, item.SourceType) {
		return false
	}
	if len(f.IPs) > 0 && !slices.Contains(f.IPs, item.IP) {
		return false
	}
	if len(f.Characters) > 0 && !slices.Contains(f.Characters, item.Character) {
		return false
	}
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, item.Category) {
		return false
	}

	return true
}

// FilterItems returns the items matching f in input order.
func FilterItems(items []models.CollectionItem, f ListFilter) []models.CollectionItem {
	out := make([]models.CollectionItem, 0, len(items))
	for _, item := range items {
		if f.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}

// PinFirst returns the items with pinned ones first, keeping the relative
// order inside both groups.
func PinFirst(items []models.CollectionItem) []models.CollectionItem {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b models.CollectionItem) int {
		switch {
		case a.IsPinned == b.IsPinned:
			return 0
		case a.IsPinned:
			return -1
		default:
			return 1
		}
	})
	return out
}

// ByIP is the per-IP list: items of one IP, optionally narrowed by status,
// pinned first.
func ByIP(items []models.CollectionItem, ip string, status string) []models.CollectionItem {
	return PinFirst(FilterItems(items, ListFilter{Status: status, IPs: []string{ip}}))
}

// Reminders returns transit and reserved items ordered by purchase date,
// earliest first. Items without a date come last.
func Reminders(items []models.CollectionItem) []models.CollectionItem {
	out := make([]models.CollectionItem, 0)
	for _, item := range items {
		if item.Status.NeedsReminder() {
			out = append(out, item)
		}
	}

	slices.SortStableFunc(out, func(a, b models.CollectionItem) int {
		return cmp.Compare(reminderKey(a), reminderKey(b))
	})
	return out
}

func reminderKey(item models.CollectionItem) string {
	if item.PurchaseDate == "" {
		return noDateSentinel
	}
	return item.PurchaseDate
}

// FacetValues collects the distinct non-empty IPs and characters of items in
// first-seen order. The server computes the same lists in SQL.
func FacetValues(items []models.CollectionItem) models.FilterFacets {
	facets := models.FilterFacets{IPs: []string{}, Characters: []string{}}
	for _, item := range items {
		if item.IP != "" && !slices.Contains(facets.IPs, item.IP) {
			facets.IPs = append(facets.IPs, item.IP)
		}
		if item.Character != "" && !slices.Contains(facets.Characters, item.Character) {
			facets.Characters = append(facets.Characters, item.Character)
		}
	}
	return facets
}
