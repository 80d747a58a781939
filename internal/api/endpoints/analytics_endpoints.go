package endpoints

import (
	"net/http"
	"strconv"

	"support-chat-backend/internal/dto"
	"support-chat-backend/internal/service/analytics"
)

type AnalyticsEndpoints interface {
	Metrics(http.ResponseWriter, *http.Request) error
}

type analyticsEndpoints struct {
	service *analytics.Service
}

func NewAnalyticsEndpoints(service *analytics.Service) AnalyticsEndpoints {
	return &analyticsEndpoints{
		service: service,
	}
}

func (h *analyticsEndpoints) Metrics(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodGet: h.handleMetrics,
	})
}

func (h *analyticsEndpoints) handleMetrics(w http.ResponseWriter, r *http.Request) error {
	days := parseDays(r.URL.Query().Get("days"))

	summary, err := h.service.Metrics(r.Context(), days)
	if err != nil {
		return &HTTPError{
			StatusCode: http.StatusInternalServerError,
			Message:    "Error fetching analytics",
			ErrorLog:   err,
		}
	}

	return WriteJSON(w, http.StatusOK, metricsResponse(summary))
}

// parseDays is deliberately forgiving: anything unusable falls back to the
// default window instead of erroring.
func parseDays(raw string) int {
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		return analytics.DefaultWindowDays
	}
	return days
}

func metricsResponse(s analytics.Summary) dto.MetricsResponse {
	categories := make([]dto.CategoryCountResponse, len(s.TopFAQCategories))
	for i, c := range s.TopFAQCategories {
		categories[i] = dto.CategoryCountResponse{Category: c.Category, Count: c.Count}
	}

	daily := make([]dto.DailyStatResponse, len(s.DailyStats))
	for i, d := range s.DailyStats {
		daily[i] = dto.DailyStatResponse{
			Date:     d.Date,
			Sessions: d.Sessions,
			Messages: d.Messages,
			Emails:   d.Emails,
		}
	}

	return dto.MetricsResponse{
		TotalSessions:         s.TotalSessions,
		TotalMessages:         s.TotalMessages,
		AvgMessagesPerSession: s.AvgMessagesPerSession,
		AvgSessionDuration:    s.AvgSessionDuration,
		EmailsSent:            s.EmailsSent,
		TopFAQCategories:      categories,
		DailyStats:            daily,
		ResponseTimeStats: dto.ResponseTimeStatsResponse{
			Avg: s.ResponseTimeStats.Avg,
			Min: s.ResponseTimeStats.Min,
			Max: s.ResponseTimeStats.Max,
		},
		UserEngagement: dto.UserEngagementResponse{
			ShortSessions:  s.UserEngagement.ShortSessions,
			MediumSessions: s.UserEngagement.MediumSessions,
			LongSessions:   s.UserEngagement.LongSessions,
		},
	}
}
