package search

import (
	"strconv"
	"strings"

	"github.com/pagesift/go-page-search/model"
	"github.com/pagesift/go-page-search/services"
)

// FilterCondition represents a single filter condition against one document
// field.
type FilterCondition struct {
	Field    string      `json:"field"`
	Operator string      `json:"operator"`
	Value    interface{} `json:"value"`
}

// FilterExpression represents a filter expression with AND/OR logic and
// optional nested groups. An empty expression matches every document.
type FilterExpression struct {
	Operator string             `json:"operator"` // "AND" or "OR" (default OR)
	Filters  []FilterCondition  `json:"filters"`
	Groups   []FilterExpression `json:"groups"`
}

// CompileFilter turns a declarative filter expression into the document
// predicate the search service accepts. Hosts that cannot ship Go code (the
// HTTP API) express filters this way; library callers may pass any predicate
// directly.
func CompileFilter(expr *FilterExpression) services.DocumentFilter {
	if expr == nil {
		return nil
	}
	return func(doc model.Document) bool {
		return evaluateExpression(doc, *expr)
	}
}

// evaluateExpression evaluates a filter expression with AND/OR logic
func evaluateExpression(doc model.Document, expr FilterExpression) bool {
	results := make([]bool, 0, len(expr.Filters)+len(expr.Groups))
	for _, condition := range expr.Filters {
		results = append(results, evaluateCondition(doc, condition))
	}
	for _, group := range expr.Groups {
		results = append(results, evaluateExpression(doc, group))
	}

	if len(results) == 0 {
		return true
	}

	if strings.EqualFold(expr.Operator, "AND") {
		for _, r := range results {
			if !r {
				return false
			}
		}
		return true
	}

	// OR logic, also the default for unknown operators.
	for _, r := range results {
		if r {
			return true
		}
	}
	return false
}

// evaluateCondition evaluates a single filter condition
func evaluateCondition(doc model.Document, condition FilterCondition) bool {
	docFieldVal, exists := doc[condition.Field]
	if !exists {
		return false
	}

	switch condition.Operator {
	case "", "_exact":
		return compareValues(docFieldVal, condition.Value)
	case "_ne":
		return !compareValues(docFieldVal, condition.Value)
	case "_gt":
		return compareValuesWithOperator(docFieldVal, condition.Value, "gt")
	case "_gte":
		return compareValuesWithOperator(docFieldVal, condition.Value, "gte")
	case "_lt":
		return compareValuesWithOperator(docFieldVal, condition.Value, "lt")
	case "_lte":
		return compareValuesWithOperator(docFieldVal, condition.Value, "lte")
	case "_contains":
		return containsValue(docFieldVal, condition.Value)
	case "_ncontains":
		return !containsValue(docFieldVal, condition.Value)
	default:
		// Unknown operators degrade to equality.
		return compareValues(docFieldVal, condition.Value)
	}
}

// compareValues compares two values for equality
func compareValues(docVal, filterVal interface{}) bool {
	if docVal == filterVal {
		return true
	}

	if docStr, isDocStr := docVal.(string); isDocStr {
		if filterStr, isFilterStr := filterVal.(string); isFilterStr {
			return docStr == filterStr
		}
	}

	if docFloat, docOk := convertToFloat64(docVal); docOk {
		if filterFloat, filterOk := convertToFloat64(filterVal); filterOk {
			return docFloat == filterFloat
		}
	}

	return false
}

// compareValuesWithOperator compares two values with a specific ordering operator
func compareValuesWithOperator(docVal, filterVal interface{}, operator string) bool {
	if docFloat, docOk := convertToFloat64(docVal); docOk {
		if filterFloat, filterOk := convertToFloat64(filterVal); filterOk {
			switch operator {
			case "gt":
				return docFloat > filterFloat
			case "gte":
				return docFloat >= filterFloat
			case "lt":
				return docFloat < filterFloat
			case "lte":
				return docFloat <= filterFloat
			}
		}
	}

	if docStr, isDocStr := docVal.(string); isDocStr {
		if filterStr, isFilterStr := filterVal.(string); isFilterStr {
			switch operator {
			case "gt":
				return docStr > filterStr
			case "gte":
				return docStr >= filterStr
			case "lt":
				return docStr < filterStr
			case "lte":
				return docStr <= filterStr
			}
		}
	}

	return false
}

// containsValue checks whether a string field contains the filter value as a
// case-insensitive substring.
func containsValue(docVal, filterVal interface{}) bool {
	docStr, isDocStr := docVal.(string)
	filterStr, isFilterStr := filterVal.(string)
	if !isDocStr || !isFilterStr {
		return false
	}
	return strings.Contains(strings.ToLower(docStr), strings.ToLower(filterStr))
}

// convertToFloat64 converts various numeric types to float64
func convertToFloat64(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
