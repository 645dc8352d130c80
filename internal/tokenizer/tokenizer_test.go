package tokenizer

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", []string{}},
		{"simple lowercase", "hello world", []string{"hello", "world"}},
		{"uppercase folded", "Hello World", []string{"hello", "world"}},
		{"with punctuation", "hello, world!", []string{"hello", "world"}},
		{"with numbers", "item123 test", []string{"item123", "test"}},
		{"leading/trailing spaces", "  hello world  ", []string{"hello", "world"}},
		{"multiple spaces between words", "hello   world", []string{"hello", "world"}},
		{"string with hyphen", "state-of-the-art", []string{"state", "of", "the", "art"}},
		{"string with underscore", "my_variable_name", []string{"my", "variable", "name"}},
		{"only symbols", "!@#$%^", []string{}},
		{"ascii symbols outside \\p{P}", "a+b=c<d>e~f", []string{"a", "b", "c", "d", "e", "f"}},
		{"unicode punctuation", "foo—bar»baz", []string{"foo", "bar", "baz"}},
		{"unicode spaces", "foo bar baz", []string{"foo", "bar", "baz"}},
		{"accented letters survive", "café menü", []string{"café", "menü"}},
		{"slash splits non-html paths", "/docs/guide", []string{"docs", "guide"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenize_HTMLPathBypass(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain page path", "/dir/page.html", []string{"/dir/page.html"}},
		{"uppercase suffix folded", "/Dir/Page.HTML", []string{"/dir/page.html"}},
		{"deep path", "/a/b/c/index.html", []string{"/a/b/c/index.html"}},
		{"html suffix without slash splits", "page.html", []string{"page", "html"}},
		{"path not at end splits", "/dir/page.html extra", []string{"dir", "page", "html", "extra"}},
		{"htm suffix splits", "/dir/page.htm", []string{"dir", "page", "htm"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// Tokenizing any emitted term must yield that term back.
func TestTokenize_Idempotent(t *testing.T) {
	inputs := []string{
		"The quick, brown fox!",
		"/dir/page.html",
		"state-of-the-art café — menü",
		"API_v1.0-beta",
	}

	for _, input := range inputs {
		for _, term := range Tokenize(input) {
			if term == "" {
				t.Fatalf("Tokenize(%q) emitted an empty term", input)
			}
			again := Tokenize(term)
			if len(again) != 1 || again[0] != term {
				t.Errorf("Tokenize(%q) = %v, want [%q]", term, again, term)
			}
		}
	}
}
