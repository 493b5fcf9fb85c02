// ABOUTME: Derived read-only views over the canonical collections
// ABOUTME: Recomputed on every call, never persisted
package store

import (
	"math"
	"sort"
	"time"

	"pipecrm/models"
)

// StageSummary aggregates the deals sitting in one pipeline stage.
type StageSummary struct {
	Stage models.PipelineStage
	Count int
	Value float64
}

// StageSummaries returns deal count and total value per stage, in funnel
// order. Stages with no deals are included with zero counts.
func (s *Store) StageSummaries() []StageSummary {
	out := make([]StageSummary, len(s.stages))
	for i, stage := range s.stages {
		out[i].Stage = stage
	}
	for _, d := range s.deals {
		for i := range out {
			if out[i].Stage.ID == d.Stage {
				out[i].Count++
				out[i].Value += d.Value
				break
			}
		}
	}
	return out
}

// Forecast returns the open deals (anything outside the two closed stages)
// ordered by probability, highest first, capped at limit.
func (s *Store) Forecast(limit int) []models.Deal {
	var open []models.Deal
	for _, d := range s.deals {
		if !d.IsClosed() {
			open = append(open, d)
		}
	}
	sort.SliceStable(open, func(i, j int) bool { return open[i].Probability > open[j].Probability })
	if limit > 0 && len(open) > limit {
		open = open[:limit]
	}
	return open
}

// RecentActivities returns activities ordered by creation time, newest
// first, capped at limit.
func (s *Store) RecentActivities(limit int) []models.Activity {
	feed := s.Activities()
	sort.SliceStable(feed, func(i, j int) bool { return feed[i].CreatedAt.After(feed[j].CreatedAt) })
	if limit > 0 && len(feed) > limit {
		feed = feed[:limit]
	}
	return feed
}

// RecentContacts returns contacts ordered by last-contacted time, newest
// first, capped at limit.
func (s *Store) RecentContacts(limit int) []models.Contact {
	feed := s.Contacts()
	sort.SliceStable(feed, func(i, j int) bool { return feed[i].LastContacted.After(feed[j].LastContacted) })
	if limit > 0 && len(feed) > limit {
		feed = feed[:limit]
	}
	return feed
}

// TrendBucket is one calendar month of deal flow.
type TrendBucket struct {
	Month     time.Time
	Label     string
	DealCount int
	Value     float64
	WonValue  float64
}

// MonthlyTrends buckets deals into the trailing six calendar months (the
// month containing now included) by creation time, with total and
// closed-won value per month.
func (s *Store) MonthlyTrends(now time.Time) []TrendBucket {
	out := make([]TrendBucket, 0, 6)
	for i := 5; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, 0)

		b := TrendBucket{Month: start, Label: start.Format("Jan 2006")}
		for _, d := range s.deals {
			if d.CreatedAt.Before(start) || !d.CreatedAt.Before(end) {
				continue
			}
			b.DealCount++
			b.Value += d.Value
			if d.Stage == models.StageClosedWon {
				b.WonValue += d.Value
			}
		}
		out = append(out, b)
	}
	return out
}

// SizeBucket is one fixed range of the deal-size histogram.
type SizeBucket struct {
	Label string
	Min   float64
	Max   float64
	Count int
	Value float64
}

// DealSizeHistogram buckets deals into four fixed value ranges. A deal
// lands in the bucket where Min <= value < Max.
func (s *Store) DealSizeHistogram() []SizeBucket {
	buckets := []SizeBucket{
		{Label: "<10k", Min: 0, Max: 10_000},
		{Label: "10k-50k", Min: 10_000, Max: 50_000},
		{Label: "50k-100k", Min: 50_000, Max: 100_000},
		{Label: ">100k", Min: 100_000, Max: math.Inf(1)},
	}
	for _, d := range s.deals {
		for i := range buckets {
			if d.Value >= buckets[i].Min && d.Value < buckets[i].Max {
				buckets[i].Count++
				buckets[i].Value += d.Value
				break
			}
		}
	}
	return buckets
}

// AcquisitionBucket is one calendar month of new contacts.
type AcquisitionBucket struct {
	Month time.Time
	Label string
	Count int
}

// ContactAcquisition buckets contacts into the trailing six calendar
// months by creation time.
func (s *Store) ContactAcquisition(now time.Time) []AcquisitionBucket {
	out := make([]AcquisitionBucket, 0, 6)
	for i := 5; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, 0)

		b := AcquisitionBucket{Month: start, Label: start.Format("Jan 2006")}
		for _, c := range s.contacts {
			if !c.CreatedAt.Before(start) && c.CreatedAt.Before(end) {
				b.Count++
			}
		}
		out = append(out, b)
	}
	return out
}
