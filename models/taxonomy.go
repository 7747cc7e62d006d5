package models

import (
	"slices"
	"strings"
)

// Taxonomy is a user-editable ordered list of option labels offered by the
// item form. It is presentation state only; stored items keep the closed enum
// value they were saved with.
type Taxonomy struct {
	labels []string
}

// NewTaxonomy returns a taxonomy seeded with labels (blank and duplicate
// labels are dropped).
func NewTaxonomy(labels ...string) *Taxonomy {
	t := &Taxonomy{labels: make([]string, 0, len(labels))}
	for _, l := range labels {
		t.Add(l)
	}
	return t
}

// DefaultCategoryTaxonomy lists every category in enum order.
func DefaultCategoryTaxonomy() *Taxonomy {
	labels := make([]string, 0, len(AllCategories()))
	for _, c := range AllCategories() {
		labels = append(labels, string(c))
	}
	return NewTaxonomy(labels...)
}

// DefaultSourceTaxonomy lists every source type in enum order.
func DefaultSourceTaxonomy() *Taxonomy {
	labels := make([]string, 0, len(AllSourceTypes()))
	for _, s := range AllSourceTypes() {
		labels = append(labels, string(s))
	}
	return NewTaxonomy(labels...)
}

// Labels returns a copy of the current labels.
func (t *Taxonomy) Labels() []string {
	return slices.Clone(t.labels)
}

// Add appends a trimmed label. It reports false for blank or existing labels.
func (t *Taxonomy) Add(label string) bool {
	label = strings.TrimSpace(label)
	if label == "" || slices.Contains(t.labels, label) {
		return false
	}
	t.labels = append(t.labels, label)
	return true
}

// Remove deletes label and reports whether it was present.
func (t *Taxonomy) Remove(label string) bool {
	i := slices.Index(t.labels, label)
	if i < 0 {
		return false
	}
	t.labels = slices.Delete(t.labels, i, i+1)
	return true
}

// Move swaps the label at index with its neighbour. up moves it towards the
// front. Moves past either end are ignored.
func (t *Taxonomy) Move(index int, up bool) bool {
	target := index + 1
	if up {
		target = index - 1
	}
	if index < 0 || index >= len(t.labels) || target < 0 || target >= len(t.labels) {
		return false
	}
	t.labels[index], t.labels[target] = t.labels[target], t.labels[index]
	return true
}
