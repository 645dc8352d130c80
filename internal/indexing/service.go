package indexing

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/pagesift/go-page-search/index"
	internalErrors "github.com/pagesift/go-page-search/internal/errors"
	"github.com/pagesift/go-page-search/internal/tokenizer"
	"github.com/pagesift/go-page-search/model"
	"github.com/pagesift/go-page-search/store"
)

// Service implements the indexing logic for a single index.
// It fulfills the services.Indexer interface.
type Service struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
	// settings are accessible via invertedIndex.Settings
}

// NewService creates a new indexing Service.
// Nil posting, length, and document maps are initialized; a nil index, a nil
// store, or nil invertedIndex.Settings is an error.
func NewService(invertedIndex *index.InvertedIndex, documentStore *store.DocumentStore) (*Service, error) {
	if invertedIndex == nil {
		return nil, fmt.Errorf("inverted index cannot be nil")
	}
	if documentStore == nil {
		return nil, fmt.Errorf("document store cannot be nil")
	}
	if invertedIndex.Postings == nil {
		invertedIndex.Postings = make(map[string]index.PostingSet)
	}
	if invertedIndex.Lengths == nil {
		invertedIndex.Lengths = make(map[string]int)
	}
	if documentStore.Docs == nil {
		documentStore.Docs = make(map[string]model.Document)
	}
	if invertedIndex.Settings == nil {
		return nil, fmt.Errorf("inverted index settings cannot be nil")
	}
	return &Service{
		invertedIndex: invertedIndex,
		documentStore: documentStore,
	}, nil
}

// AddDocuments adds a batch of documents to the index.
// This satisfies the services.Indexer interface.
// The batch stops at the first failing document; documents added before the
// failure remain indexed.
func (s *Service) AddDocuments(docs []model.Document) error {
	s.documentStore.Mu.Lock()
	s.invertedIndex.Mu.Lock()
	defer s.documentStore.Mu.Unlock()
	defer s.invertedIndex.Mu.Unlock()

	for i, doc := range docs {
		if err := s.addSingleDocumentUnsafe(doc); err != nil {
			return fmt.Errorf("failed to add document at batch index %d: %w", i, err)
		}
	}
	return nil
}

// addSingleDocumentUnsafe handles the processing and indexing of a single document.
// It assumes that the caller already holds write locks on documentStore and invertedIndex.
func (s *Service) addSingleDocumentUnsafe(doc model.Document) error {
	settings := s.invertedIndex.Settings

	docID, err := resolveDocumentID(doc, settings.IDField)
	if err != nil {
		return err
	}

	// Re-adding an id would either leak postings or skew the corpus counters,
	// so it is rejected outright. Callers replace a corpus by building a new
	// index.
	if _, exists := s.documentStore.Docs[docID]; exists {
		return internalErrors.NewDuplicateDocumentError(docID)
	}

	// Projection: the id field plus every configured field present on the
	// input. Other keys are dropped.
	projected := make(model.Document, len(settings.SearchableFields)+1)
	projected[settings.IDField] = docID
	for _, fieldName := range settings.SearchableFields {
		if v, ok := doc[fieldName]; ok {
			projected[fieldName] = v
		}
	}

	// Tokenize string fields and accumulate the document length. Numeric
	// fields are stored for display and custom-boost lookup but contribute
	// neither terms nor length.
	totalLength := 0
	for _, fieldName := range settings.SearchableFields {
		text, ok := projected.StringValue(fieldName)
		if !ok {
			continue
		}
		totalLength += utf8.RuneCountInString(text)
		for _, term := range tokenizer.Tokenize(text) {
			s.invertedIndex.AddTerm(term, docID)
		}
	}

	s.documentStore.Docs[docID] = projected
	s.invertedIndex.RecordDocument(docID, totalLength)
	return nil
}

// resolveDocumentID extracts and stringifies the id field of a document.
// String values are used as-is; numeric values are formatted without a
// trailing ".0" for integral floats. Anything else is a caller error.
func resolveDocumentID(doc model.Document, idField string) (string, error) {
	v, ok := doc[idField]
	if !ok || v == nil {
		return "", internalErrors.NewMissingDocumentIDError(idField)
	}

	switch id := v.(type) {
	case string:
		if id == "" {
			return "", internalErrors.NewMissingDocumentIDError(idField)
		}
		return id, nil
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(id), 'f', -1, 32), nil
	case int:
		return strconv.Itoa(id), nil
	case int32:
		return strconv.FormatInt(int64(id), 10), nil
	case int64:
		return strconv.FormatInt(id, 10), nil
	default:
		return "", internalErrors.NewInvalidDocumentIDError(idField, v)
	}
}
