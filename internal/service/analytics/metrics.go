package analytics

import (
	"context"
	"sort"
	"time"

	"support-chat-backend/internal/model"
)

const (
	DefaultWindowDays = 30
	MaxWindowDays     = 365

	shortSessionMaxSeconds  = 120
	mediumSessionMaxSeconds = 600

	topCategoryLimit = 5

	dateLayout = "2006-01-02"
)

type CategoryCount struct {
	Category string
	Count    int
}

type DailyStat struct {
	Date     string
	Sessions int
	Messages int
	Emails   int
}

type ResponseTimeStats struct {
	Avg float64
	Min int64
	Max int64
}

type UserEngagement struct {
	ShortSessions  int
	MediumSessions int
	LongSessions   int
}

type Summary struct {
	TotalSessions         int
	TotalMessages         int
	AvgMessagesPerSession float64
	AvgSessionDuration    float64
	EmailsSent            int
	TopFAQCategories      []CategoryCount
	DailyStats            []DailyStat
	ResponseTimeStats     ResponseTimeStats
	UserEngagement        UserEngagement
}

// Metrics aggregates the rolling window into the dashboard summary. One scan
// per table; every derived figure is computed in memory, so an empty store
// yields zeros rather than errors.
func (s *Service) Metrics(ctx context.Context, days int) (Summary, error) {
	if days < 1 || days > MaxWindowDays {
		days = DefaultWindowDays
	}

	now := s.now().UTC()
	since := now.AddDate(0, 0, -days)

	sessions, err := s.repo.SessionsSince(ctx, since)
	if err != nil {
		return Summary{}, newError(ErrorCodeInternal, "failed to load sessions", err)
	}
	messages, err := s.repo.MessagesSince(ctx, since)
	if err != nil {
		return Summary{}, newError(ErrorCodeInternal, "failed to load messages", err)
	}
	interactions, err := s.repo.FAQInteractionsSince(ctx, since)
	if err != nil {
		return Summary{}, newError(ErrorCodeInternal, "failed to load FAQ interactions", err)
	}
	transcripts, err := s.repo.TranscriptsSince(ctx, since)
	if err != nil {
		return Summary{}, newError(ErrorCodeInternal, "failed to load email transcripts", err)
	}

	summary := Summary{
		TotalSessions:     len(sessions),
		TotalMessages:     len(messages),
		TopFAQCategories:  topCategories(interactions),
		DailyStats:        dailyStats(now, days, sessions, messages, transcripts),
		ResponseTimeStats: responseTimes(messages),
		UserEngagement:    engagement(sessions),
	}

	if len(sessions) > 0 {
		var messageSum int64
		for _, session := range sessions {
			messageSum += session.MessageCount
		}
		summary.AvgMessagesPerSession = float64(messageSum) / float64(len(sessions))
	}

	var durationSum int64
	var durationCount int
	for _, session := range sessions {
		if session.DurationSeconds != nil {
			durationSum += *session.DurationSeconds
			durationCount++
		}
	}
	if durationCount > 0 {
		summary.AvgSessionDuration = float64(durationSum) / float64(durationCount)
	}

	for _, transcript := range transcripts {
		if transcript.Success {
			summary.EmailsSent++
		}
	}

	return summary, nil
}

// topCategories ranks by count descending; equal counts order alphabetically
// by category so the ranking is deterministic.
func topCategories(interactions []model.FAQInteractionItem) []CategoryCount {
	counts := make(map[string]int)
	for _, interaction := range interactions {
		counts[interaction.Category]++
	}

	ranked := make([]CategoryCount, 0, len(counts))
	for category, count := range counts {
		ranked = append(ranked, CategoryCount{Category: category, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Category < ranked[j].Category
	})

	if len(ranked) > topCategoryLimit {
		ranked = ranked[:topCategoryLimit]
	}
	return ranked
}

// dailyStats emits exactly one zero-filled entry per calendar day, oldest
// first, ending on the current UTC day.
func dailyStats(now time.Time, days int, sessions []model.ChatSessionItem, messages []model.ChatMessageItem, transcripts []model.EmailTranscriptItem) []DailyStat {
	stats := make([]DailyStat, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, -(days - 1 - i)).Format(dateLayout)
		stats[i] = DailyStat{Date: date}
		index[date] = i
	}

	for _, session := range sessions {
		if i, ok := index[dayOf(session.StartTime)]; ok {
			stats[i].Sessions++
		}
	}
	for _, message := range messages {
		if i, ok := index[dayOf(message.Timestamp)]; ok {
			stats[i].Messages++
		}
	}
	for _, transcript := range transcripts {
		if !transcript.Success {
			continue
		}
		if i, ok := index[dayOf(transcript.SentAt)]; ok {
			stats[i].Emails++
		}
	}

	return stats
}

func dayOf(timestamp string) string {
	if len(timestamp) < len(dateLayout) {
		return ""
	}
	return timestamp[:len(dateLayout)]
}

func responseTimes(messages []model.ChatMessageItem) ResponseTimeStats {
	var stats ResponseTimeStats
	var sum int64
	var count int

	for _, message := range messages {
		if message.Sender != model.SenderBot || message.ResponseTimeMs == nil {
			continue
		}
		v := *message.ResponseTimeMs
		if count == 0 || v < stats.Min {
			stats.Min = v
		}
		if v > stats.Max {
			stats.Max = v
		}
		sum += v
		count++
	}

	if count > 0 {
		stats.Avg = float64(sum) / float64(count)
	}
	return stats
}

// engagement buckets sessions by duration; sessions that never ended carry
// no duration and stay out of every bucket.
func engagement(sessions []model.ChatSessionItem) UserEngagement {
	var e UserEngagement
	for _, session := range sessions {
		if session.DurationSeconds == nil {
			continue
		}
		switch d := *session.DurationSeconds; {
		case d <= shortSessionMaxSeconds:
			e.ShortSessions++
		case d <= mediumSessionMaxSeconds:
			e.MediumSessions++
		default:
			e.LongSessions++
		}
	}
	return e
}
