// Package overview buckets categorized transactions into calendar periods
// and sums amounts per (period, category).
package overview

import (
	"fmt"
	"strings"
	"time"
)

// Granularity is the calendar bucket size used for aggregation.
type Granularity string

const (
	Daily     Granularity = "daily"
	Weekly    Granularity = "weekly"
	Monthly   Granularity = "monthly"
	Quarterly Granularity = "quarterly"
	Yearly    Granularity = "yearly"
)

// Granularities lists all supported bucket sizes, smallest first.
var Granularities = []Granularity{Daily, Weekly, Monthly, Quarterly, Yearly}

// ParseGranularity parses a period name from configuration or flags.
func ParseGranularity(s string) (Granularity, error) {
	g := Granularity(strings.ToLower(s))
	for _, known := range Granularities {
		if g == known {
			return g, nil
		}
	}
	return "", fmt.Errorf("period %q not supported, use daily, weekly, monthly, quarterly or yearly", s)
}

// BucketLabel returns the period label a date falls into. Weekly buckets
// follow ISO weeks (Monday through Sunday) and are labelled with the week's
// date range, e.g. "2023-09-04/2023-09-10".
func (g Granularity) BucketLabel(t time.Time) string {
	switch g {
	case Daily:
		return t.Format("2006-01-02")
	case Weekly:
		monday := weekStart(t)
		return monday.Format("2006-01-02") + "/" + monday.AddDate(0, 0, 6).Format("2006-01-02")
	case Monthly:
		return t.Format("2006-01")
	case Quarterly:
		return fmt.Sprintf("%04d-Q%d", t.Year(), (int(t.Month())-1)/3+1)
	case Yearly:
		return t.Format("2006")
	}
	return t.Format("2006-01-02")
}

// bucketStart returns the first day of the bucket, used for chronological
// ordering of period labels.
func (g Granularity) bucketStart(t time.Time) time.Time {
	switch g {
	case Daily:
		return midnight(t)
	case Weekly:
		return weekStart(t)
	case Monthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	case Quarterly:
		firstMonth := time.Month((int(t.Month())-1)/3*3 + 1)
		return time.Date(t.Year(), firstMonth, 1, 0, 0, 0, 0, time.UTC)
	case Yearly:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return midnight(t)
}

// weekStart returns the Monday of t's ISO week.
func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return midnight(t).AddDate(0, 0, -offset)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
