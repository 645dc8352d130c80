package services

import (
	"github.com/pagesift/go-page-search/config"
	"github.com/pagesift/go-page-search/model"
)

// DocumentFilter is a pure predicate over a candidate document. The search
// service calls it at most once per candidate document per search; a false
// return excludes the document before any score is accumulated for it.
type DocumentFilter func(model.Document) bool

// HitResult represents a single document in the search results.
type HitResult struct {
	ID       string         `json:"id"`
	Score    float64        `json:"score"`
	Document model.Document `json:"document"`
}

type SearchResult struct {
	Hits    []HitResult `json:"hits"`
	Total   int         `json:"total"`
	Took    int64       `json:"took"`     // milliseconds
	QueryID string      `json:"query_id"` // unique UUID for this search query
}

type SearchQuery struct {
	Query  string
	Filter DocumentFilter // optional
}

// IndexStats describes the current size of an index.
type IndexStats struct {
	DocumentCount         int     `json:"document_count"`
	TermCount             int     `json:"term_count"`
	AverageDocumentLength float64 `json:"average_document_length"`
}

// Indexer defines operations for adding data to an index
type Indexer interface {
	AddDocuments(docs []model.Document) error
}

// Searcher defines operations for querying an index
type Searcher interface {
	Search(query SearchQuery) (SearchResult, error)
}

// IndexManager manages the lifecycle of indices
type IndexManager interface {
	CreateIndex(settings config.IndexSettings) error
	GetIndex(name string) (IndexAccessor, error)
	GetIndexSettings(name string) (config.IndexSettings, error)
	DeleteIndex(name string) error
	ListIndexes() []string
}

type IndexAccessor interface {
	Indexer
	Searcher
	Stats() IndexStats
	Settings() config.IndexSettings
}
