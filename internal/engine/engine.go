// Package engine wires the index, store, indexing, and search components into
// per-index facades and manages a set of named in-memory indexes for the host.
package engine

import (
	"strings"
	"sync"

	"github.com/pagesift/go-page-search/config"
	internalErrors "github.com/pagesift/go-page-search/internal/errors"
	"github.com/pagesift/go-page-search/services"
)

// Engine manages multiple in-memory search indexes.
// It implements the services.IndexManager interface.
type Engine struct {
	mu      sync.RWMutex
	indexes map[string]*IndexInstance
}

// NewEngine creates a new search engine orchestrator.
func NewEngine() *Engine {
	return &Engine{
		indexes: make(map[string]*IndexInstance),
	}
}

// CreateIndex creates a new index with the given settings.
// Settings are validated, defaulted, and immutable afterwards.
func (e *Engine) CreateIndex(settings config.IndexSettings) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if settings.Name == "" {
		return internalErrors.NewValidationError("name", "index name cannot be empty")
	}
	if _, exists := e.indexes[settings.Name]; exists {
		return internalErrors.NewIndexAlreadyExistsError(settings.Name)
	}

	settings.ApplyDefaults()
	if problems := settings.ValidateFieldNames(); len(problems) > 0 {
		return internalErrors.NewValidationError("settings", strings.Join(problems, "; "))
	}

	instance, err := NewIndexInstance(settings)
	if err != nil {
		return err
	}

	e.indexes[settings.Name] = instance
	return nil
}

// GetIndex retrieves an index by its name.
func (e *Engine) GetIndex(name string) (services.IndexAccessor, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	instance, exists := e.indexes[name]
	if !exists {
		return nil, internalErrors.NewIndexNotFoundError(name)
	}
	return instance, nil
}

// GetIndexSettings retrieves the settings for a specific index.
func (e *Engine) GetIndexSettings(name string) (config.IndexSettings, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	instance, exists := e.indexes[name]
	if !exists {
		return config.IndexSettings{}, internalErrors.NewIndexNotFoundError(name)
	}
	return *instance.settings, nil // Return a copy
}

// DeleteIndex removes an index by its name.
func (e *Engine) DeleteIndex(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.indexes[name]; !exists {
		return internalErrors.NewIndexNotFoundError(name)
	}
	delete(e.indexes, name)
	return nil
}

// ListIndexes returns a list of names of all existing indexes.
func (e *Engine) ListIndexes() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.indexes))
	for name := range e.indexes {
		names = append(names, name)
	}
	return names
}
