package search_test

import (
	"reflect"
	"testing"

	"jobport/search-service/internal/search"
)

func TestTokenize_SplitsOnWhitespaceRuns(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"azure", []string{"azure"}},
		{"azure 89119", []string{"azure", "89119"}},
		{"  Acme   Solutions  ", []string{"Acme", "Solutions"}},
		{"one\ttwo\nthree", []string{"one", "two", "three"}},
	}
	for _, c := range cases {
		got := search.Tokenize(c.in)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestTokenize_BlankInputYieldsNoTerms(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		if got := search.Tokenize(in); len(got) != 0 {
			t.Errorf("Tokenize(%q) = %v, want no terms", in, got)
		}
	}
}
