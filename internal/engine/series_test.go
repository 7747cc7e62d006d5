package engine

import (
	"testing"

	"github.com/MKhiriev/gumi-collection/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dv(date string, value int64, category models.ItemCategory, ip string) models.DatedValue {
	return models.DatedValue{Date: date, Value: decimal.NewFromInt(value), Category: category, IP: ip}
}

func strs(values []decimal.Decimal) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

func TestBucketize_Week(t *testing.T) {
	records := []models.DatedValue{
		dv("2024-01-03", 50, models.CategoryCD, "BTS"), // Wednesday
		dv("2024-01-07", 20, models.CategoryCD, "BTS"), // Sunday
		dv("2024-01-08", 99, models.CategoryCD, "BTS"), // next week
		dv("broken", 10, models.CategoryCD, "BTS"),
	}

	s, err := Bucketize(records, Week, "2024-01周")
	require.NoError(t, err)

	require.Len(t, s.Values, 7)
	assert.Equal(t, "周一", s.Names[0])
	assert.Equal(t, []string{"0", "0", "50", "0", "0", "0", "20"}, strs(s.Values))
}

func TestBucketize_Month(t *testing.T) {
	records := []models.DatedValue{
		dv("2024-02-01", 10, "", ""),
		dv("2024-02-29", 5, "", ""),
		dv("2024-02-29", 5, "", ""),
		dv("2024-03-01", 7, "", ""),
	}

	s, err := Bucketize(records, Month, "2024-02月")
	require.NoError(t, err)

	require.Len(t, s.Values, 29)
	assert.Equal(t, "01", s.Names[0])
	assert.Equal(t, "29", s.Names[28])
	assert.Equal(t, "10", s.Values[0].String())
	assert.Equal(t, "10", s.Values[28].String())

	_, err = Bucketize(records, Month, "2024年")
	assert.ErrorIs(t, err, ErrInvalidPeriodLabel)
}

func TestBucketize_Year(t *testing.T) {
	records := []models.DatedValue{
		dv("2023-01-15", 100, "", ""),
		dv("2023-12-01", 30, "", ""),
		dv("2022-12-01", 30, "", ""),
	}

	s, err := Bucketize(records, Year, "2023年")
	require.NoError(t, err)

	require.Len(t, s.Values, 12)
	assert.Equal(t, "1月", s.Names[0])
	assert.Equal(t, "12月", s.Names[11])
	assert.Equal(t, "100", s.Values[0].String())
	assert.Equal(t, "30", s.Values[11].String())
}

func TestSummarize(t *testing.T) {
	values := []decimal.Decimal{
		decimal.Zero, decimal.NewFromInt(10), decimal.Zero, decimal.NewFromInt(20),
	}

	sum := Summarize(values)
	assert.Equal(t, "30", sum.Total.String())
	assert.Equal(t, "15", sum.Average.String())
	assert.Equal(t, "20", sum.Max.String())

	empty := Summarize(make([]decimal.Decimal, 7))
	assert.True(t, empty.Total.IsZero())
	assert.True(t, empty.Average.IsZero())
	assert.True(t, empty.Max.IsZero())
}

func TestRank(t *testing.T) {
	records := []models.DatedValue{
		dv("2024-05-01", 30, models.CategoryBadge, ""),
		dv("2024-05-10", 70, models.CategoryCD, "BTS"),
		dv("2023-05-10", 500, models.CategoryCD, "BTS"),
	}

	t.Run("by category", func(t *testing.T) {
		got := Rank(records, Year, "2024年", ByCategory)
		require.Len(t, got, 2)
		assert.Equal(t, string(models.CategoryCD), got[0].Key)
		assert.Equal(t, 70.0, got[0].Percent)
		assert.Equal(t, string(models.CategoryBadge), got[1].Key)
		assert.Equal(t, 30.0, got[1].Percent)
	})

	t.Run("empty ip is grouped as other", func(t *testing.T) {
		got := Rank(records, Year, "2024年", ByIPKey)
		require.Len(t, got, 2)
		assert.Equal(t, "BTS", got[0].Key)
		assert.Equal(t, OtherKey, got[1].Key)
	})

	t.Run("percent rounds to one decimal", func(t *testing.T) {
		got := Rank([]models.DatedValue{
			dv("2024-05-01", 1, models.CategoryCD, ""),
			dv("2024-05-01", 2, models.CategoryBadge, ""),
		}, Month, "2024-05月", ByCategory)
		require.Len(t, got, 2)
		assert.Equal(t, 66.7, got[0].Percent)
		assert.Equal(t, 33.3, got[1].Percent)
	})

	t.Run("empty period", func(t *testing.T) {
		assert.Empty(t, Rank(records, Year, "2020年", ByCategory))
	})
}

func TestSortDistribution(t *testing.T) {
	entries := []models.DistributionEntry{
		{Key: "a", Count: 1, Amount: decimal.NewFromInt(500)},
		{Key: "b", Count: 5, Amount: decimal.NewFromInt(10)},
		{Key: "c", Count: 3, Amount: decimal.NewFromInt(50)},
	}

	byCount := SortDistribution(entries, false)
	assert.Equal(t, "b", byCount[0].Key)
	assert.Equal(t, "a", byCount[2].Key)

	byAmount := SortDistribution(entries, true)
	assert.Equal(t, "a", byAmount[0].Key)
	assert.Equal(t, "b", byAmount[2].Key)

	assert.Equal(t, "a", entries[0].Key)
}
