// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package engine

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/gumi-collection/models"
)

// Granularity is the length of a statistics period.
type Granularity int

const (
	Week Granularity = iota
	Month
	Year
)

// ErrUnknownGranularity is returned by [ParseGranularity].
var ErrUnknownGranularity = errors.New("unknown granularity")

// ErrInvalidPeriodLabel is returned when a label does not match its granularity.
var ErrInvalidPeriodLabel = errors.New("invalid period label")

// ParseGranularity accepts "week", "month" and "year" as well as the
// single-character labels shown in the UI.
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "week", "w", "周":
		return Week, nil
	case "month", "m", "月":
		return Month, nil
	case "year", "y", "年":
		return Year, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGranularity, s)
}

func (g Granularity) String() string {
	switch g {
	case Week:
		return "week"
	case Month:
		return "month"
	case Year:
		return "year"
	}
	return "unknown"
}

// WeekLabel returns "{year}-{ww}周". The week number follows ISO-8601
// (weeks start on Monday and belong to the year holding their Thursday) but the
// year part is the calendar year of t, so week numbering restarts every year.
func WeekLabel(t time.Time) string {
	_, week := t.ISOWeek()
	return fmt.Sprintf("%d-%02d周", t.Year(), week)
}

// MonthLabel returns "{year}-{mm}月".
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%d-%02d月", t.Year(), int(t.Month()))
}

// YearLabel returns "{year}年".
func YearLabel(t time.Time) string {
	return fmt.Sprintf("%d年", t.Year())
}

// LabelFor returns the period label containing t.
func LabelFor(g Granularity, t time.Time) string {
	switch g {
	case Week:
		return WeekLabel(t)
	case Month:
		return MonthLabel(t)
	default:
		return YearLabel(t)
	}
}

// ParseDate parses a YYYY-MM-DD purchase date.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(models.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// TimeRanges lists every label from the earliest date up to December 31 of the
// year after now, stepping a week, a month or a year at a time. Duplicates are
// dropped and the order is ascending. No dates means no ranges.
func TimeRanges(g Granularity, dates []time.Time, now time.Time) []string {
	if len(dates) == 0 {
		return nil
	}

	current := slices.MinFunc(dates, func(a, b time.Time) int { return a.Compare(b) })
	end := time.Date(now.Year()+1, time.December, 31, 0, 0, 0, 0, current.Location())

	ranges := make([]string, 0, 64)
	for !current.After(end) {
		label := LabelFor(g, current)
		if !slices.Contains(ranges, label) {
			ranges = append(ranges, label)
		}

		switch g {
		case Week:
			current = current.AddDate(0, 0, 7)
		case Month:
			current = current.AddDate(0, 1, 0)
		default:
			current = current.AddDate(1, 0, 0)
		}
	}

	return ranges
}

// DefaultRange picks the label for now when it is offered, otherwise the last
// label. It returns "" for an empty list.
func DefaultRange(g Granularity, ranges []string, now time.Time) string {
	if len(ranges) == 0 {
		return ""
	}
	if current := LabelFor(g, now); slices.Contains(ranges, current) {
		return current
	}
	return ranges[len(ranges)-1]
}

// DaysInMonthLabel returns the number of days of a "{year}-{mm}月" label.
func DaysInMonthLabel(label string) (int, error) {
	ym, ok := strings.CutSuffix(label, "月")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPeriodLabel, label)
	}

	yearPart, monthPart, ok := strings.Cut(ym, "-")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPeriodLabel, label)
	}

	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidPeriodLabel, err)
	}
	month, err := strconv.Atoi(monthPart)
	if err != nil || month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPeriodLabel, label)
	}

	// day 0 of the next month is the last day of this one
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day(), nil
}
