package search

import (
	"math"

	"github.com/pagesift/go-page-search/config"
	"github.com/pagesift/go-page-search/index"
	"github.com/pagesift/go-page-search/store"
)

// BM25+ parameters. k1 controls term-frequency saturation, lengthNorm how
// much document length discounts the score, and lowerBound is the BM25+ delta
// that keeps any present term worth a minimum amount.
const (
	k1         = 1.2
	lengthNorm = 0.7
	lowerBound = 0.5

	// customBoostWeight scales the additive contribution of the configured
	// custom boost factor field.
	customBoostWeight = 0.011
)

// Scorer computes the relevance contribution of a single
// (document, indexed term, field) candidate.
type Scorer struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
	settings      *config.IndexSettings
}

// NewScorer creates a new Scorer over the given index state.
func NewScorer(invIndex *index.InvertedIndex, docStore *store.DocumentStore, settings *config.IndexSettings) *Scorer {
	return &Scorer{
		invertedIndex: invIndex,
		documentStore: docStore,
		settings:      settings,
	}
}

// Score returns the boosted BM25+ presence score for the candidate.
// penalty is the match-type factor computed by the evaluator (prefix or
// fuzzy). The caller must hold read locks on the index and store.
//
// The scorer has no awareness of other contributions to the same document;
// accumulation across candidates is the evaluator's job.
func (sc *Scorer) Score(docID, indexedTerm, field string, penalty float64) float64 {
	postings := sc.invertedIndex.Postings[indexedTerm]

	tf := 0.0
	if postings.Contains(docID) {
		tf = 1.0
	}
	df := float64(postings.Len())
	totalDocs := float64(sc.invertedIndex.TotalDocs)

	idf := math.Log((totalDocs-df+0.5)/(df+0.5) + 1)

	norm := 1.0
	if sc.invertedIndex.AvgDocLength > 0 {
		docLength := float64(sc.invertedIndex.Lengths[docID])
		norm = 1 - lengthNorm + lengthNorm*(docLength/sc.invertedIndex.AvgDocLength)
	}

	freq := tf*(k1+1)/(tf+k1*norm) + lowerBound

	score := idf * freq * penalty

	if boost, ok := sc.settings.DocumentBoosts[docID]; ok {
		score *= boost
	}
	if boost, ok := sc.settings.FieldBoosts[field]; ok {
		score *= boost
	}

	if sc.settings.CustomBoostFactorField != "" {
		if doc, ok := sc.documentStore.Docs[docID]; ok {
			if cb, ok := doc.NumberValue(sc.settings.CustomBoostFactorField); ok {
				score += cb * customBoostWeight
			}
		}
	}

	return score
}
