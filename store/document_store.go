package store

import (
	"sync"

	"github.com/pagesift/go-page-search/model"
)

// DocumentStore maps a document id to its projected document: the subset of
// the source document restricted to the id field plus the configured
// searchable fields.
type DocumentStore struct {
	Mu   sync.RWMutex
	Docs map[string]model.Document
}

// Get returns the projected document for the given id.
// The caller must hold at least the read lock.
func (ds *DocumentStore) Get(docID string) (model.Document, bool) {
	doc, ok := ds.Docs[docID]
	return doc, ok
}

// Len returns the number of stored documents.
// The caller must hold at least the read lock.
func (ds *DocumentStore) Len() int {
	return len(ds.Docs)
}
