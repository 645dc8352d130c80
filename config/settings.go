// Package config provides configuration structures for the page search engine.
// It defines index settings, boost factors, and result-shaping options.
package config

import (
	"strings"
)

// IndexSettings contains all configuration options for a search index.
// Settings are immutable once an index has been created; result shaping
// (threshold, cap) defaults to the tuned production values via ApplyDefaults.
type IndexSettings struct {
	Name                   string             `json:"name"`                                // Unique name for the index
	SearchableFields       []string           `json:"searchable_fields"`                   // Fields to index and to iterate during search, in order (e.g., ["title", "breadcrumb", "description"])
	IDField                string             `json:"id_field"`                            // Field whose value identifies the document (e.g., "path")
	CustomBoostFactorField string             `json:"custom_boost_factor_field,omitempty"` // Optional numeric field whose value adds to scores; skipped during field iteration
	FieldBoosts            map[string]float64 `json:"field_boosts,omitempty"`              // Multiplicative boost per field name
	DocumentBoosts         map[string]float64 `json:"document_boosts,omitempty"`           // Multiplicative boost per document id
	InitialResults         []string           `json:"initial_results,omitempty"`           // Document ids returned, in order, for the wildcard query "*"
	ScoreThreshold         float64            `json:"score_threshold,omitempty"`           // Minimum (exclusive) score for a hit to be returned
	MaxResults             int                `json:"max_results,omitempty"`               // Maximum number of hits returned per search
}

// Result-shaping defaults. Tuned against short web-page metadata corpora;
// changing them changes observable ranking behavior.
const (
	DefaultScoreThreshold = 2.1
	DefaultMaxResults     = 34
)

// ValidateFieldNames validates field names and cross-references between
// configuration options. It returns one message per problem found.
func (settings *IndexSettings) ValidateFieldNames() []string {
	var conflicts []string

	conflicts = append(conflicts, checkDuplicates("searchable_fields", settings.SearchableFields)...)

	if strings.TrimSpace(settings.IDField) == "" {
		conflicts = append(conflicts, "id_field is required and cannot be empty")
	}

	allFields := make([]string, 0, len(settings.SearchableFields)+1)
	allFields = append(allFields, settings.SearchableFields...)
	if settings.CustomBoostFactorField != "" {
		allFields = append(allFields, settings.CustomBoostFactorField)
	}
	for _, field := range allFields {
		if strings.TrimSpace(field) == "" {
			conflicts = append(conflicts, "Field name cannot be empty or whitespace-only")
		}
	}

	conflicts = append(conflicts, settings.validateFieldReferences()...)

	return conflicts
}

// checkDuplicates checks for duplicate values in a slice and returns error messages
func checkDuplicates(fieldName string, fields []string) []string {
	var errors []string
	seen := make(map[string]bool)

	for _, field := range fields {
		if seen[field] {
			errors = append(errors, "Duplicate field '"+field+"' found in "+fieldName)
		}
		seen[field] = true
	}

	return errors
}

// validateFieldReferences validates that field references across configurations are valid
func (settings *IndexSettings) validateFieldReferences() []string {
	var errors []string

	searchableFieldsSet := make(map[string]bool)
	for _, field := range settings.SearchableFields {
		searchableFieldsSet[field] = true
	}

	for field := range settings.FieldBoosts {
		if !searchableFieldsSet[field] {
			errors = append(errors, "Field '"+field+"' in field_boosts is not in searchable_fields")
		}
	}

	// The custom boost factor field must be listed among the searchable fields
	// so that it survives document projection; search skips it at query time.
	if settings.CustomBoostFactorField != "" && !searchableFieldsSet[settings.CustomBoostFactorField] {
		errors = append(errors, "Field '"+settings.CustomBoostFactorField+"' in custom_boost_factor_field is not in searchable_fields")
	}

	return errors
}

// ApplyDefaults applies default values to the index settings
func (settings *IndexSettings) ApplyDefaults() {
	if settings.ScoreThreshold == 0 {
		settings.ScoreThreshold = DefaultScoreThreshold
	}
	if settings.MaxResults == 0 {
		settings.MaxResults = DefaultMaxResults
	}

	// Initialize empty collections if nil to prevent nil pointer issues
	if settings.SearchableFields == nil {
		settings.SearchableFields = []string{}
	}
	if settings.FieldBoosts == nil {
		settings.FieldBoosts = map[string]float64{}
	}
	if settings.DocumentBoosts == nil {
		settings.DocumentBoosts = map[string]float64{}
	}
	if settings.InitialResults == nil {
		settings.InitialResults = []string{}
	}
}
