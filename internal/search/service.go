package search

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pagesift/go-page-search/config"
	"github.com/pagesift/go-page-search/index"
	"github.com/pagesift/go-page-search/internal/tokenizer"
	"github.com/pagesift/go-page-search/internal/typoutil"
	"github.com/pagesift/go-page-search/services"
	"github.com/pagesift/go-page-search/store"
)

// Match-type penalty parameters. Prefix matches are favored over fuzzy ones,
// and indexed terms close in length to the query term are favored over long
// ones.
const (
	prefixPenaltyBase   = 0.375
	prefixLengthWeight  = 0.3
	fuzzyPenaltyBase    = 0.45
	fuzzyDistanceFactor = 0.35
	maxFuzzyDistance    = 6

	// WildcardQuery resolves to the configured initial results instead of
	// running the evaluator.
	WildcardQuery = "*"

	wildcardScore = 1.0
)

// Service implements the search logic for a single index.
// It fulfills the services.Searcher interface.
type Service struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
	settings      *config.IndexSettings
	scorer        *Scorer
}

// NewService creates a new search Service.
func NewService(invIndex *index.InvertedIndex, docStore *store.DocumentStore, settings *config.IndexSettings) (*Service, error) {
	if invIndex == nil {
		return nil, fmt.Errorf("inverted index cannot be nil")
	}
	if docStore == nil {
		return nil, fmt.Errorf("document store cannot be nil")
	}
	if settings == nil {
		return nil, fmt.Errorf("settings cannot be nil")
	}

	return &Service{
		invertedIndex: invIndex,
		documentStore: docStore,
		settings:      settings,
		scorer:        NewScorer(invIndex, docStore, settings),
	}, nil
}

// Search performs a search operation based on the query.
func (s *Service) Search(query services.SearchQuery) (services.SearchResult, error) {
	startTime := time.Now()

	if query.Query == WildcardQuery {
		return s.searchWildcard(query.Filter, startTime), nil
	}

	queryTerms := tokenizer.Tokenize(query.Query)
	if len(queryTerms) == 0 {
		return services.SearchResult{
			Hits:    []services.HitResult{},
			Total:   0,
			Took:    time.Since(startTime).Milliseconds(),
			QueryID: uuid.New().String(),
		}, nil
	}

	// Same lock order as the indexing path: store first, then index.
	s.documentStore.Mu.RLock()
	s.invertedIndex.Mu.RLock()
	defer s.invertedIndex.Mu.RUnlock()
	defer s.documentStore.Mu.RUnlock()

	accumulated := make(map[string]float64)
	// The filter predicate is pure, so its verdict is cached and it runs at
	// most once per candidate document per search.
	filterVerdicts := make(map[string]bool)

	for _, field := range s.settings.SearchableFields {
		if field == s.settings.CustomBoostFactorField {
			continue
		}

		for _, queryTerm := range queryTerms {
			queryLen := utf8.RuneCountInString(queryTerm)
			maxDistance := fuzzyDistanceCap(queryLen)

			for indexedTerm, docIDs := range s.invertedIndex.Postings {
				penalty, matched := matchPenalty(queryTerm, queryLen, indexedTerm, maxDistance)
				if !matched {
					continue
				}

				for docID := range docIDs {
					doc, found := s.documentStore.Docs[docID]
					if !found {
						continue
					}
					if query.Filter != nil {
						verdict, seen := filterVerdicts[docID]
						if !seen {
							verdict = query.Filter(doc)
							filterVerdicts[docID] = verdict
						}
						if !verdict {
							continue
						}
					}
					accumulated[docID] += s.scorer.Score(docID, indexedTerm, field, penalty)
				}
			}
		}
	}

	hits := make([]services.HitResult, 0, len(accumulated))
	for docID, score := range accumulated {
		if score <= s.settings.ScoreThreshold {
			continue
		}
		hits = append(hits, services.HitResult{
			ID:       docID,
			Score:    score,
			Document: s.documentStore.Docs[docID],
		})
	}

	// Score descending; equal scores fall back to id order so results are
	// deterministic across runs.
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].ID < hits[j].ID
	})

	if len(hits) > s.settings.MaxResults {
		hits = hits[:s.settings.MaxResults]
	}

	return services.SearchResult{
		Hits:    hits,
		Total:   len(hits),
		Took:    time.Since(startTime).Milliseconds(),
		QueryID: uuid.New().String(),
	}, nil
}

// searchWildcard resolves the wildcard query from the configured initial
// results: each listed id yields a unit-score hit, in configuration order,
// with no sort, no threshold, and no truncation. Ids absent from the store
// are skipped.
func (s *Service) searchWildcard(filter services.DocumentFilter, startTime time.Time) services.SearchResult {
	s.documentStore.Mu.RLock()
	defer s.documentStore.Mu.RUnlock()

	hits := make([]services.HitResult, 0, len(s.settings.InitialResults))
	for _, docID := range s.settings.InitialResults {
		doc, found := s.documentStore.Docs[docID]
		if !found {
			continue
		}
		if filter != nil && !filter(doc) {
			continue
		}
		hits = append(hits, services.HitResult{
			ID:       docID,
			Score:    wildcardScore,
			Document: doc,
		})
	}

	return services.SearchResult{
		Hits:    hits,
		Total:   len(hits),
		Took:    time.Since(startTime).Milliseconds(),
		QueryID: uuid.New().String(),
	}
}

// fuzzyDistanceCap returns the maximum Levenshtein distance tolerated for a
// query term of the given rune length.
func fuzzyDistanceCap(queryLen int) int {
	capped := int(math.Round(float64(queryLen) * fuzzyDistanceFactor))
	if capped > maxFuzzyDistance {
		return maxFuzzyDistance
	}
	return capped
}

// matchPenalty classifies an indexed term against a query term and returns
// the match-type penalty factor. A term that is neither a prefix extension of
// the query nor within the fuzzy distance cap does not match.
func matchPenalty(queryTerm string, queryLen int, indexedTerm string, maxDistance int) (float64, bool) {
	termLen := float64(utf8.RuneCountInString(indexedTerm))

	if strings.HasPrefix(indexedTerm, queryTerm) {
		lengthDelta := termLen - float64(queryLen)
		return prefixPenaltyBase * termLen / (termLen + prefixLengthWeight*lengthDelta), true
	}

	distance := typoutil.CalculateLevenshteinDistance(queryTerm, indexedTerm)
	if distance <= maxDistance {
		return fuzzyPenaltyBase * termLen / (termLen + float64(distance)), true
	}

	return 0, false
}
