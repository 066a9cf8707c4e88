package submissions

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/prepit-kitchen/prepit/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(h, m, s int) time.Time {
	return time.Date(2025, time.November, 21, h, m, s, 0, time.UTC)
}

func item(id, station string, ts time.Time) models.SubmittedPrepItem {
	return models.SubmittedPrepItem{
		ID:          id,
		StationName: station,
		Date:        ts,
		PrepName:    "prep-" + id,
		UserSubmit:  "Sam",
	}
}

func ids(items []models.SubmittedPrepItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestRoundToMinute(t *testing.T) {
	in := time.Date(2025, time.November, 21, 12, 3, 41, 999_999_999, time.UTC)
	assert.Equal(t, at(12, 3, 0), RoundToMinute(in))
	assert.Equal(t, at(12, 3, 0), RoundToMinute(at(12, 3, 0)))
}

func TestBatchID_Stable(t *testing.T) {
	a := BatchID("Grill", at(12, 3, 5))
	b := BatchID("Grill", at(12, 3, 41))
	assert.Equal(t, a, b)
	assert.Equal(t, fmt.Sprintf("Grill|%d", at(12, 3, 0).Unix()), a)
	assert.NotEqual(t, a, BatchID("Fry", at(12, 3, 5)))
}

func TestGroup_Scenario(t *testing.T) {
	items := []models.SubmittedPrepItem{
		item("B", "Grill", at(12, 3, 41)),
		item("C", "Fry", at(12, 3, 5)),
		item("A", "Grill", at(12, 3, 5)),
	}

	batches := Group(items)
	require.Len(t, batches, 2)

	// same minute, ties broken by station name
	assert.Equal(t, "Fry", batches[0].StationName)
	assert.Equal(t, []string{"C"}, ids(batches[0].Items))

	assert.Equal(t, "Grill", batches[1].StationName)
	assert.Equal(t, at(12, 3, 0), batches[1].Date)
	assert.Equal(t, []string{"A", "B"}, ids(batches[1].Items))
	assert.Equal(t, BatchID("Grill", at(12, 3, 0)), batches[1].ID)
	assert.Equal(t, "Sam", batches[1].SubmittedBy)
}

func TestGroup_Empty(t *testing.T) {
	batches := Group(nil)
	assert.NotNil(t, batches)
	assert.Empty(t, batches)
}

func TestGroup_NewestFirst(t *testing.T) {
	items := []models.SubmittedPrepItem{
		item("1", "Grill", at(9, 0, 10)),
		item("2", "Grill", at(18, 30, 0)),
		item("3", "Grill", at(12, 15, 59)),
	}

	batches := Group(items)
	require.Len(t, batches, 3)
	assert.Equal(t, at(18, 30, 0), batches[0].Date)
	assert.Equal(t, at(12, 15, 0), batches[1].Date)
	assert.Equal(t, at(9, 0, 0), batches[2].Date)
}

func TestGroup_SameMinuteMerges(t *testing.T) {
	// two unrelated submissions inside one minute are one batch
	items := []models.SubmittedPrepItem{
		item("1", "Grill", at(12, 0, 1)),
		item("2", "Grill", at(12, 0, 58)),
	}
	batches := Group(items)
	require.Len(t, batches, 1)
	assert.Len(t, batches[0].Items, 2)
}

func randomItems(n int) []models.SubmittedPrepItem {
	r := rand.New(rand.NewSource(42))
	stations := []string{"Grill", "Fry", "Pantry", "Saute"}
	items := make([]models.SubmittedPrepItem, 0, n)
	for i := 0; i < n; i++ {
		ts := at(8, 0, 0).Add(time.Duration(r.Intn(6*3600)) * time.Second)
		items = append(items, item(fmt.Sprintf("%04d", i), stations[r.Intn(len(stations))], ts))
	}
	return items
}

func TestGroup_PartitionInvariant(t *testing.T) {
	items := randomItems(500)
	batches := Group(items)

	seen := make(map[string]int)
	for _, b := range batches {
		for i, it := range b.Items {
			seen[it.ID]++
			assert.Equal(t, b.StationName, it.StationName)
			assert.Equal(t, b.Date, RoundToMinute(it.Date))
			if i > 0 {
				assert.Less(t, b.Items[i-1].ID, it.ID)
			}
		}
	}

	assert.Len(t, seen, len(items))
	for _, it := range items {
		assert.Equal(t, 1, seen[it.ID], it.ID)
	}
}

func TestGroup_Idempotent(t *testing.T) {
	items := randomItems(200)

	first := Group(items)

	shuffled := append([]models.SubmittedPrepItem(nil), items...)
	rand.New(rand.NewSource(7)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	second := Group(shuffled)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, ids(first[i].Items), ids(second[i].Items))
	}
}

func TestGroupByDay(t *testing.T) {
	loc := time.FixedZone("kitchen", -5*3600)
	items := []models.SubmittedPrepItem{
		// 2025-11-21 03:00 UTC is still 2025-11-20 in the kitchen
		item("1", "Grill", time.Date(2025, time.November, 21, 3, 0, 0, 0, time.UTC)),
		item("2", "Grill", time.Date(2025, time.November, 21, 15, 0, 0, 0, time.UTC)),
		item("3", "Fry", time.Date(2025, time.November, 21, 20, 0, 0, 0, time.UTC)),
		item("4", "Fry", time.Date(2025, time.November, 19, 20, 0, 0, 0, time.UTC)),
	}

	days := GroupByDay(Group(items), loc)
	require.Len(t, days, 3)

	assert.Equal(t, time.Date(2025, time.November, 21, 0, 0, 0, 0, loc), days[0].Day)
	require.Len(t, days[0].Batches, 2)
	assert.Equal(t, "Fry", days[0].Batches[0].StationName)
	assert.Equal(t, "Grill", days[0].Batches[1].StationName)

	assert.Equal(t, time.Date(2025, time.November, 20, 0, 0, 0, 0, loc), days[1].Day)
	assert.Equal(t, []string{"1"}, ids(days[1].Batches[0].Items))

	assert.Equal(t, time.Date(2025, time.November, 19, 0, 0, 0, 0, loc), days[2].Day)
}

func TestGroupByDay_Empty(t *testing.T) {
	assert.Empty(t, GroupByDay(nil, time.UTC))
}

func TestFilters(t *testing.T) {
	batches := Group([]models.SubmittedPrepItem{
		item("1", "Grill", at(9, 0, 0)),
		item("2", "Fry", at(10, 0, 0)),
		item("3", "Grill", at(11, 0, 0)),
	})

	grill := ForStation(batches, "Grill")
	require.Len(t, grill, 2)
	assert.Equal(t, at(11, 0, 0), grill[0].Date)

	window := Between(batches, at(10, 0, 0), at(11, 0, 0))
	require.Len(t, window, 1)
	assert.Equal(t, "Fry", window[0].StationName)

	assert.Len(t, Between(batches, time.Time{}, time.Time{}), 3)

	found, ok := Find(batches, BatchID("Fry", at(10, 0, 30)))
	assert.True(t, ok)
	assert.Equal(t, []string{"2"}, ids(found.Items))

	_, ok = Find(batches, "nope")
	assert.False(t, ok)
}
