// Package submissions derives submission batches from completed prep items.
//
// A prep sheet submission writes one record per item with (nearly) the same timestamp and
// no ordering between the writes. Items are therefore batched by station and by the minute
// they were submitted in. Two unrelated submissions to the same station inside one minute
// cannot be told apart and end up in the same batch.
package submissions

import (
	"fmt"
	"sort"
	"time"

	"github.com/prepit-kitchen/prepit/internal/models"
)

type batchKey struct {
	station string
	minute  int64
}

// RoundToMinute drops the seconds and sub-second part of t.
func RoundToMinute(t time.Time) time.Time {
	return t.Truncate(time.Minute)
}

// BatchID returns the stable identity of the batch for station and minute.
func BatchID(station string, minute time.Time) string {
	return fmt.Sprintf("%s|%d", station, RoundToMinute(minute).Unix())
}

// Group partitions items into batches keyed by station and submission minute.
// Items inside a batch are ordered by id and batches are ordered newest first.
// Every item lands in exactly one batch; the input slice is not modified.
func Group(items []models.SubmittedPrepItem) []models.SubmissionBatch {
	buckets := make(map[batchKey][]models.SubmittedPrepItem)
	for _, item := range items {
		k := batchKey{station: item.StationName, minute: RoundToMinute(item.Date).Unix()}
		buckets[k] = append(buckets[k], item)
	}

	batches := make([]models.SubmissionBatch, 0, len(buckets))
	for k, members := range buckets {
		sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })

		minute := time.Unix(k.minute, 0).In(members[0].Date.Location())
		batches = append(batches, models.SubmissionBatch{
			ID:          BatchID(k.station, minute),
			StationName: k.station,
			Date:        minute,
			SubmittedBy: members[0].UserSubmit,
			Items:       members,
		})
	}

	sortNewestFirst(batches)
	return batches
}

// GroupByDay buckets batches by their calendar day in loc. Days are ordered most recent
// first and batches inside a day newest first.
func GroupByDay(batches []models.SubmissionBatch, loc *time.Location) []models.SubmissionDay {
	if loc == nil {
		loc = time.Local
	}

	index := make(map[time.Time]int)
	days := make([]models.SubmissionDay, 0)
	for _, b := range batches {
		local := b.Date.In(loc)
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

		i, ok := index[day]
		if !ok {
			i = len(days)
			index[day] = i
			days = append(days, models.SubmissionDay{Day: day})
		}
		days[i].Batches = append(days[i].Batches, b)
	}

	for i := range days {
		sortNewestFirst(days[i].Batches)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Day.After(days[j].Day) })
	return days
}

// ForStation keeps the batches of one station.
func ForStation(batches []models.SubmissionBatch, station string) []models.SubmissionBatch {
	out := make([]models.SubmissionBatch, 0, len(batches))
	for _, b := range batches {
		if b.StationName == station {
			out = append(out, b)
		}
	}
	return out
}

// Between keeps the batches whose minute is in [from, to). A zero bound is open.
func Between(batches []models.SubmissionBatch, from, to time.Time) []models.SubmissionBatch {
	out := make([]models.SubmissionBatch, 0, len(batches))
	for _, b := range batches {
		if !from.IsZero() && b.Date.Before(from) {
			continue
		}
		if !to.IsZero() && !b.Date.Before(to) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Find returns the batch with the given id.
func Find(batches []models.SubmissionBatch, id string) (models.SubmissionBatch, bool) {
	for _, b := range batches {
		if b.ID == id {
			return b, true
		}
	}
	return models.SubmissionBatch{}, false
}

func sortNewestFirst(batches []models.SubmissionBatch) {
	sort.Slice(batches, func(i, j int) bool {
		if !batches[i].Date.Equal(batches[j].Date) {
			return batches[i].Date.After(batches[j].Date)
		}
		return batches[i].StationName < batches[j].StationName
	})
}
