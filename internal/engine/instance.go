package engine

import (
	"fmt"

	"github.com/pagesift/go-page-search/config"
	"github.com/pagesift/go-page-search/index"
	"github.com/pagesift/go-page-search/internal/indexing"
	"github.com/pagesift/go-page-search/internal/search"
	"github.com/pagesift/go-page-search/model"
	"github.com/pagesift/go-page-search/services"
	"github.com/pagesift/go-page-search/store"
)

// IndexInstance holds all components and services for a single search index.
// It implements the services.IndexAccessor interface.
type IndexInstance struct {
	settings      *config.IndexSettings
	InvertedIndex *index.InvertedIndex
	DocumentStore *store.DocumentStore
	indexer       *indexing.Service
	searcher      *search.Service
}

// NewIndexInstance creates and initializes a new IndexInstance.
func NewIndexInstance(settings config.IndexSettings) (*IndexInstance, error) {
	if settings.Name == "" {
		return nil, fmt.Errorf("index name cannot be empty in settings")
	}

	docStore := &store.DocumentStore{Docs: make(map[string]model.Document)}

	invIndex := &index.InvertedIndex{
		Postings: make(map[string]index.PostingSet),
		Lengths:  make(map[string]int),
		Settings: &settings,
	}

	indexerService, err := indexing.NewService(invIndex, docStore)
	if err != nil {
		return nil, fmt.Errorf("failed to create indexer service: %w", err)
	}

	searchService, err := search.NewService(invIndex, docStore, &settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create search service: %w", err)
	}

	return &IndexInstance{
		settings:      &settings,
		InvertedIndex: invIndex,
		DocumentStore: docStore,
		indexer:       indexerService,
		searcher:      searchService,
	}, nil
}

// AddDocuments delegates to the underlying Indexer service.
// This satisfies a part of the services.IndexAccessor interface.
func (i *IndexInstance) AddDocuments(docs []model.Document) error {
	return i.indexer.AddDocuments(docs)
}

// Search delegates to the underlying Searcher service.
// This satisfies a part of the services.IndexAccessor interface.
func (i *IndexInstance) Search(query services.SearchQuery) (services.SearchResult, error) {
	return i.searcher.Search(query)
}

// Stats returns the current size statistics of this index.
func (i *IndexInstance) Stats() services.IndexStats {
	i.DocumentStore.Mu.RLock()
	i.InvertedIndex.Mu.RLock()
	defer i.InvertedIndex.Mu.RUnlock()
	defer i.DocumentStore.Mu.RUnlock()

	return services.IndexStats{
		DocumentCount:         i.DocumentStore.Len(),
		TermCount:             len(i.InvertedIndex.Postings),
		AverageDocumentLength: i.InvertedIndex.AvgDocLength,
	}
}

// Settings returns the configuration settings for this index.
// This satisfies a part of the services.IndexAccessor interface.
func (i *IndexInstance) Settings() config.IndexSettings {
	return *i.settings
}
