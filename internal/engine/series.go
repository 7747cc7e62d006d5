package engine

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/MKhiriev/gumi-collection/models"
	"github.com/shopspring/decimal"
)

// OtherKey labels records without an IP in rankings and distributions.
const OtherKey = "其他"

var weekdayNames = []string{"周一", "周二", "周三", "周四", "周五", "周六", "周日"}

// RankKey selects the grouping of [Rank] and [Distribute].
type RankKey int

const (
	ByCategory RankKey = iota
	ByIPKey
)

func (k RankKey) of(category models.ItemCategory, ip string) string {
	if k == ByCategory {
		return string(category)
	}
	if ip == "" {
		return OtherKey
	}
	return ip
}

// Series is a period split into fixed sub-period buckets.
type Series struct {
	Granularity Granularity
	Label       string
	Names       []string
	Values      []decimal.Decimal
}

// InPeriod returns the records whose date falls in the labelled period.
// Records with unparseable dates are skipped.
func InPeriod(records []models.DatedValue, g Granularity, label string) []models.DatedValue {
	out := make([]models.DatedValue, 0, len(records))
	for _, r := range records {
		t, ok := ParseDate(r.Date)
		if !ok {
			continue
		}
		if LabelFor(g, t) == label {
			out = append(out, r)
		}
	}
	return out
}

// Bucketize sums the records of one period into buckets: 7 weekdays (Monday
// first) for a week, one per day for a month, 12 months for a year.
func Bucketize(records []models.DatedValue, g Granularity, label string) (Series, error) {
	var names []string
	switch g {
	case Week:
		names = slices.Clone(weekdayNames)
	case Month:
		days, err := DaysInMonthLabel(label)
		if err != nil {
			return Series{}, err
		}
		names = make([]string, days)
		for i := range names {
			names[i] = fmt.Sprintf("%02d", i+1)
		}
	case Year:
		names = make([]string, 12)
		for i := range names {
			names[i] = strconv.Itoa(i+1) + "月"
		}
	default:
		return Series{}, fmt.Errorf("%w: %d", ErrUnknownGranularity, g)
	}

	values := make([]decimal.Decimal, len(names))
	for i := range values {
		values[i] = decimal.Zero
	}

	for _, r := range InPeriod(records, g, label) {
		t, _ := ParseDate(r.Date)

		var idx int
		switch g {
		case Week:
			idx = (int(t.Weekday()) + 6) % 7
		case Month:
			idx = t.Day() - 1
		case Year:
			idx = int(t.Month()) - 1
		}
		if idx >= 0 && idx < len(values) {
			values[idx] = values[idx].Add(r.Value)
		}
	}

	return Series{Granularity: g, Label: label, Names: names, Values: values}, nil
}

// Summarize returns the total, the average over non-zero buckets and the
// maximum bucket (never below zero).
func Summarize(values []decimal.Decimal) models.SeriesSummary {
	total := decimal.Zero
	maxVal := decimal.Zero
	nonZero := 0

	for _, v := range values {
		total = total.Add(v)
		if v.GreaterThan(decimal.Zero) {
			nonZero++
		}
		if v.GreaterThan(maxVal) {
			maxVal = v
		}
	}

	avg := decimal.Zero
	if nonZero > 0 {
		avg = total.Div(decimal.NewFromInt(int64(nonZero)))
	}

	return models.SeriesSummary{Total: total, Average: avg, Max: maxVal}
}

// Rank groups the records of one period by key, sorts the groups by sum
// descending and reports each group's share of the period total.
func Rank(records []models.DatedValue, g Granularity, label string, key RankKey) []models.RankEntry {
	filtered := InPeriod(records, g, label)

	order := make([]string, 0)
	sums := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, r := range filtered {
		k := key.of(r.Category, r.IP)
		if _, seen := sums[k]; !seen {
			order = append(order, k)
			sums[k] = decimal.Zero
		}
		sums[k] = sums[k].Add(r.Value)
		total = total.Add(r.Value)
	}

	ranking := make([]models.RankEntry, 0, len(order))
	for _, k := range order {
		ranking = append(ranking, models.RankEntry{
			Key:     k,
			Sum:     sums[k],
			Percent: percentOf(sums[k], total),
		})
	}

	slices.SortStableFunc(ranking, func(a, b models.RankEntry) int {
		return b.Sum.Cmp(a.Sum)
	})
	return ranking
}

func percentOf(part, total decimal.Decimal) float64 {
	if !total.GreaterThan(decimal.Zero) {
		return 0
	}
	return part.Div(total).Mul(decimal.NewFromInt(100)).Round(1).InexactFloat64()
}

// SortDistribution orders entries by the chosen measure, largest first.
func SortDistribution(entries []models.DistributionEntry, byAmount bool) []models.DistributionEntry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b models.DistributionEntry) int {
		if byAmount {
			return b.Amount.Cmp(a.Amount)
		}
		return cmp.Compare(b.Count, a.Count)
	})
	return out
}
