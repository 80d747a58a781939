package dto

type CategoryCountResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type DailyStatResponse struct {
	Date     string `json:"date"`
	Sessions int    `json:"sessions"`
	Messages int    `json:"messages"`
	Emails   int    `json:"emails"`
}

type ResponseTimeStatsResponse struct {
	Avg float64 `json:"avg"`
	Min int64   `json:"min"`
	Max int64   `json:"max"`
}

type UserEngagementResponse struct {
	ShortSessions  int `json:"shortSessions"`
	MediumSessions int `json:"mediumSessions"`
	LongSessions   int `json:"longSessions"`
}

type MetricsResponse struct {
	TotalSessions         int                       `json:"totalSessions"`
	TotalMessages         int                       `json:"totalMessages"`
	AvgMessagesPerSession float64                   `json:"avgMessagesPerSession"`
	AvgSessionDuration    float64                   `json:"avgSessionDuration"`
	EmailsSent            int                       `json:"emailsSent"`
	TopFAQCategories      []CategoryCountResponse   `json:"topFAQCategories"`
	DailyStats            []DailyStatResponse       `json:"dailyStats"`
	ResponseTimeStats     ResponseTimeStatsResponse `json:"responseTimeStats"`
	UserEngagement        UserEngagementResponse    `json:"userEngagement"`
}
