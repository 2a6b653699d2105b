package overview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBucketLabel_Weekly(t *testing.T) {
	// 2023-09-10 is a Sunday: last day of the ISO week starting Monday
	// 2023-09-04. 2023-09-12 is the Tuesday of the next ISO week.
	sunday := date(2023, time.September, 10)
	tuesday := date(2023, time.September, 12)

	assert.Equal(t, "2023-09-04/2023-09-10", Weekly.BucketLabel(sunday))
	assert.Equal(t, "2023-09-11/2023-09-17", Weekly.BucketLabel(tuesday))
	assert.NotEqual(t, Weekly.BucketLabel(sunday), Weekly.BucketLabel(tuesday))
}

func TestBucketLabel_WeeklySameWeek(t *testing.T) {
	monday := date(2023, time.September, 4)
	sunday := date(2023, time.September, 10)
	assert.Equal(t, Weekly.BucketLabel(monday), Weekly.BucketLabel(sunday))
}

func TestBucketLabel_WeeklyAcrossYearBoundary(t *testing.T) {
	// The ISO week containing 2024-01-01 starts in 2024; the week
	// containing 2023-12-31 (Sunday) starts Monday 2023-12-25.
	assert.Equal(t, "2023-12-25/2023-12-31", Weekly.BucketLabel(date(2023, time.December, 31)))
	assert.Equal(t, "2024-01-01/2024-01-07", Weekly.BucketLabel(date(2024, time.January, 1)))
}

func TestBucketLabel_OtherGranularities(t *testing.T) {
	d := date(2023, time.September, 10)

	assert.Equal(t, "2023-09-10", Daily.BucketLabel(d))
	assert.Equal(t, "2023-09", Monthly.BucketLabel(d))
	assert.Equal(t, "2023-Q3", Quarterly.BucketLabel(d))
	assert.Equal(t, "2023", Yearly.BucketLabel(d))
}

func TestBucketLabel_QuarterBoundaries(t *testing.T) {
	assert.Equal(t, "2023-Q1", Quarterly.BucketLabel(date(2023, time.March, 31)))
	assert.Equal(t, "2023-Q2", Quarterly.BucketLabel(date(2023, time.April, 1)))
	assert.Equal(t, "2023-Q4", Quarterly.BucketLabel(date(2023, time.October, 1)))
}

func TestParseGranularity(t *testing.T) {
	g, err := ParseGranularity("Monthly")
	require.NoError(t, err)
	assert.Equal(t, Monthly, g)

	_, err = ParseGranularity("hourly")
	assert.Error(t, err)
}
