package engine

import (
	"errors"
	"testing"

	"github.com/pagesift/go-page-search/config"
	internalErrors "github.com/pagesift/go-page-search/internal/errors"
	"github.com/pagesift/go-page-search/model"
	"github.com/pagesift/go-page-search/services"
)

func newTestSettings(name string) config.IndexSettings {
	return config.IndexSettings{
		Name:             name,
		SearchableFields: []string{"title", "body"},
		IDField:          "path",
	}
}

func TestCreateIndex(t *testing.T) {
	eng := NewEngine()

	if err := eng.CreateIndex(newTestSettings("pages")); err != nil {
		t.Fatalf("CreateIndex() error = %v", err)
	}

	t.Run("duplicate name rejected", func(t *testing.T) {
		err := eng.CreateIndex(newTestSettings("pages"))
		if !errors.Is(err, internalErrors.ErrIndexAlreadyExists) {
			t.Errorf("CreateIndex() error = %v, want %v", err, internalErrors.ErrIndexAlreadyExists)
		}
	})

	t.Run("empty name rejected", func(t *testing.T) {
		err := eng.CreateIndex(newTestSettings(""))
		if !errors.Is(err, internalErrors.ErrInvalidInput) {
			t.Errorf("CreateIndex() error = %v, want %v", err, internalErrors.ErrInvalidInput)
		}
	})

	t.Run("invalid settings rejected", func(t *testing.T) {
		settings := newTestSettings("bad")
		settings.IDField = ""
		err := eng.CreateIndex(settings)
		if !errors.Is(err, internalErrors.ErrInvalidInput) {
			t.Errorf("CreateIndex() error = %v, want %v", err, internalErrors.ErrInvalidInput)
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		settings, err := eng.GetIndexSettings("pages")
		if err != nil {
			t.Fatalf("GetIndexSettings() error = %v", err)
		}
		if settings.ScoreThreshold != config.DefaultScoreThreshold {
			t.Errorf("ScoreThreshold = %v, want default %v", settings.ScoreThreshold, config.DefaultScoreThreshold)
		}
		if settings.MaxResults != config.DefaultMaxResults {
			t.Errorf("MaxResults = %v, want default %v", settings.MaxResults, config.DefaultMaxResults)
		}
	})
}

func TestGetIndex_NotFound(t *testing.T) {
	eng := NewEngine()
	if _, err := eng.GetIndex("missing"); !errors.Is(err, internalErrors.ErrIndexNotFound) {
		t.Errorf("GetIndex() error = %v, want %v", err, internalErrors.ErrIndexNotFound)
	}
}

func TestDeleteIndex(t *testing.T) {
	eng := NewEngine()
	if err := eng.CreateIndex(newTestSettings("pages")); err != nil {
		t.Fatalf("CreateIndex() error = %v", err)
	}

	if err := eng.DeleteIndex("pages"); err != nil {
		t.Fatalf("DeleteIndex() error = %v", err)
	}
	if _, err := eng.GetIndex("pages"); !errors.Is(err, internalErrors.ErrIndexNotFound) {
		t.Error("index still reachable after delete")
	}
	if err := eng.DeleteIndex("pages"); !errors.Is(err, internalErrors.ErrIndexNotFound) {
		t.Errorf("DeleteIndex() on missing index error = %v, want %v", err, internalErrors.ErrIndexNotFound)
	}
}

func TestListIndexes(t *testing.T) {
	eng := NewEngine()
	if got := eng.ListIndexes(); len(got) != 0 {
		t.Errorf("ListIndexes() = %v, want empty", got)
	}
	_ = eng.CreateIndex(newTestSettings("a"))
	_ = eng.CreateIndex(newTestSettings("b"))
	if got := eng.ListIndexes(); len(got) != 2 {
		t.Errorf("ListIndexes() = %v, want 2 names", got)
	}
}

func TestIndexInstance_AddSearchStats(t *testing.T) {
	eng := NewEngine()
	settings := newTestSettings("pages")
	settings.DocumentBoosts = map[string]float64{"/a": 20}
	if err := eng.CreateIndex(settings); err != nil {
		t.Fatalf("CreateIndex() error = %v", err)
	}

	accessor, err := eng.GetIndex("pages")
	if err != nil {
		t.Fatalf("GetIndex() error = %v", err)
	}

	docs := []model.Document{
		{"path": "/a", "title": "Hello", "body": "world"},
		{"path": "/b", "title": "Other", "body": "page"},
	}
	if err := accessor.AddDocuments(docs); err != nil {
		t.Fatalf("AddDocuments() error = %v", err)
	}

	stats := accessor.Stats()
	if stats.DocumentCount != 2 {
		t.Errorf("DocumentCount = %d, want 2", stats.DocumentCount)
	}
	if stats.TermCount == 0 {
		t.Error("TermCount = 0, want indexed terms")
	}
	// (5+5) and (5+4) runes across the two string fields.
	if stats.AverageDocumentLength != 9.5 {
		t.Errorf("AverageDocumentLength = %v, want 9.5", stats.AverageDocumentLength)
	}

	result, err := accessor.Search(services.SearchQuery{Query: "hello"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(result.Hits) != 1 || result.Hits[0].ID != "/a" {
		t.Errorf("Search() hits = %v, want boosted /a", result.Hits)
	}
}
