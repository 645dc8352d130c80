package search

import (
	"testing"

	"github.com/pagesift/go-page-search/model"
)

func TestCompileFilter_NilExpressionMeansNoFilter(t *testing.T) {
	if CompileFilter(nil) != nil {
		t.Error("CompileFilter(nil) should return a nil predicate")
	}
}

func TestCompileFilter_Conditions(t *testing.T) {
	doc := model.Document{
		"path":       "/docs/setup",
		"title":      "Setup Guide",
		"breadcrumb": "Docs / Getting Started",
		"weight":     7.0,
	}

	tests := []struct {
		name string
		expr FilterExpression
		want bool
	}{
		{
			name: "empty expression matches",
			expr: FilterExpression{},
			want: true,
		},
		{
			name: "exact string match",
			expr: FilterExpression{Filters: []FilterCondition{{Field: "title", Value: "Setup Guide"}}},
			want: true,
		},
		{
			name: "exact string mismatch",
			expr: FilterExpression{Filters: []FilterCondition{{Field: "title", Value: "Other"}}},
			want: false,
		},
		{
			name: "missing field fails",
			expr: FilterExpression{Filters: []FilterCondition{{Field: "nope", Value: "x"}}},
			want: false,
		},
		{
			name: "not equal",
			expr: FilterExpression{Filters: []FilterCondition{{Field: "title", Operator: "_ne", Value: "Other"}}},
			want: true,
		},
		{
			name: "numeric gte",
			expr: FilterExpression{Filters: []FilterCondition{{Field: "weight", Operator: "_gte", Value: 7.0}}},
			want: true,
		},
		{
			name: "numeric lt fails",
			expr: FilterExpression{Filters: []FilterCondition{{Field: "weight", Operator: "_lt", Value: 7.0}}},
			want: false,
		},
		{
			name: "contains is case-insensitive",
			expr: FilterExpression{Filters: []FilterCondition{{Field: "breadcrumb", Operator: "_contains", Value: "getting"}}},
			want: true,
		},
		{
			name: "ncontains",
			expr: FilterExpression{Filters: []FilterCondition{{Field: "breadcrumb", Operator: "_ncontains", Value: "blog"}}},
			want: true,
		},
		{
			name: "or takes any match",
			expr: FilterExpression{
				Operator: "OR",
				Filters: []FilterCondition{
					{Field: "title", Value: "Other"},
					{Field: "weight", Operator: "_gt", Value: 1.0},
				},
			},
			want: true,
		},
		{
			name: "and requires all",
			expr: FilterExpression{
				Operator: "AND",
				Filters: []FilterCondition{
					{Field: "title", Value: "Setup Guide"},
					{Field: "weight", Operator: "_gt", Value: 10.0},
				},
			},
			want: false,
		},
		{
			name: "nested group",
			expr: FilterExpression{
				Operator: "AND",
				Filters:  []FilterCondition{{Field: "title", Value: "Setup Guide"}},
				Groups: []FilterExpression{
					{
						Operator: "OR",
						Filters: []FilterCondition{
							{Field: "weight", Operator: "_lt", Value: 1.0},
							{Field: "breadcrumb", Operator: "_contains", Value: "docs"},
						},
					},
				},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			predicate := CompileFilter(&tt.expr)
			if got := predicate(doc); got != tt.want {
				t.Errorf("predicate(doc) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompileFilter_NumericTypeCoercion(t *testing.T) {
	doc := model.Document{"weight": 7} // int, as built in Go code

	expr := FilterExpression{Filters: []FilterCondition{{Field: "weight", Value: 7.0}}}
	if !CompileFilter(&expr)(doc) {
		t.Error("int document value should equal float filter value")
	}
}
