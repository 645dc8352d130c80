package index

import (
	"sync"

	"github.com/pagesift/go-page-search/config"
)

// InvertedIndex maps a term to the set of documents containing that term and
// keeps the per-document length statistics the scorer depends on.
//
// Lengths holds, per document id, the sum of the rune counts of the document's
// indexed string fields. AvgDocLength is refreshed after every add so that
// scoring never divides by a stale (or zero) average.
type InvertedIndex struct {
	Mu           sync.RWMutex
	Postings     map[string]PostingSet
	Lengths      map[string]int
	TotalDocs    int
	TotalLength  int
	AvgDocLength float64
	Settings     *config.IndexSettings // Reference to settings for this index
}

// AddTerm records that the given document produced the given term.
// The caller must hold the write lock.
func (ii *InvertedIndex) AddTerm(term, docID string) {
	set, ok := ii.Postings[term]
	if !ok {
		set = make(PostingSet)
		ii.Postings[term] = set
	}
	set.Add(docID)
}

// RecordDocument stores the document's length and refreshes the corpus
// statistics. The caller must hold the write lock.
func (ii *InvertedIndex) RecordDocument(docID string, length int) {
	ii.Lengths[docID] = length
	ii.TotalDocs++
	ii.TotalLength += length
	ii.AvgDocLength = float64(ii.TotalLength) / float64(ii.TotalDocs)
}
