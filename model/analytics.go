package model

import "time"

// SearchEvent records a single executed search for analytics purposes.
type SearchEvent struct {
	IndexName string    `json:"index_name"`
	Query     string    `json:"query"`
	HitCount  int       `json:"hit_count"`
	TookMs    int64     `json:"took_ms"`
	Timestamp time.Time `json:"timestamp"`
}

// QueryCount pairs a query string with how often it was issued.
type QueryCount struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

// AnalyticsSummary aggregates the recent search activity of the host.
type AnalyticsSummary struct {
	TotalSearches   int            `json:"total_searches"`
	ZeroHitSearches int            `json:"zero_hit_searches"`
	AvgTookMs       float64        `json:"avg_took_ms"`
	PopularQueries  []QueryCount   `json:"popular_queries"`
	IndexUsage      map[string]int `json:"index_usage"`
}
