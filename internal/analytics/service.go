// Package analytics keeps a bounded in-memory window of recent search events
// and aggregates them for the host's analytics endpoint. Nothing is persisted.
package analytics

import (
	"sort"
	"sync"
	"time"

	"github.com/pagesift/go-page-search/model"
)

const (
	// maxEventsToKeep bounds memory; older events are dropped first.
	maxEventsToKeep = 10000

	maxPopularQueries = 10
)

// Service implements analytics tracking and reporting
type Service struct {
	mu     sync.RWMutex
	events []model.SearchEvent
}

// NewService creates a new analytics service
func NewService() *Service {
	return &Service{
		events: make([]model.SearchEvent, 0),
	}
}

// TrackSearch records an executed search.
func (s *Service) TrackSearch(indexName, query string, hitCount int, took time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, model.SearchEvent{
		IndexName: indexName,
		Query:     query,
		HitCount:  hitCount,
		TookMs:    took.Milliseconds(),
		Timestamp: time.Now(),
	})

	if len(s.events) > maxEventsToKeep {
		s.events = s.events[len(s.events)-maxEventsToKeep:]
	}
}

// Summary aggregates the retained events.
func (s *Service) Summary() model.AnalyticsSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := model.AnalyticsSummary{
		TotalSearches:  len(s.events),
		PopularQueries: []model.QueryCount{},
		IndexUsage:     make(map[string]int),
	}
	if len(s.events) == 0 {
		return summary
	}

	var totalTook int64
	queryCounts := make(map[string]int)
	for _, event := range s.events {
		totalTook += event.TookMs
		queryCounts[event.Query]++
		summary.IndexUsage[event.IndexName]++
		if event.HitCount == 0 {
			summary.ZeroHitSearches++
		}
	}
	summary.AvgTookMs = float64(totalTook) / float64(len(s.events))

	popular := make([]model.QueryCount, 0, len(queryCounts))
	for query, count := range queryCounts {
		popular = append(popular, model.QueryCount{Query: query, Count: count})
	}
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].Count != popular[j].Count {
			return popular[i].Count > popular[j].Count
		}
		return popular[i].Query < popular[j].Query
	})
	if len(popular) > maxPopularQueries {
		popular = popular[:maxPopularQueries]
	}
	summary.PopularQueries = popular

	return summary
}
