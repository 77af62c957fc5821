package relang

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEval(t *testing.T, expression, word string) bool {
	t.Helper()
	got, err := Evaluate(expression, word)
	require.NoError(t, err, "expression %q word %q", expression, word)
	return got
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expression string
		word       string
		want       bool
	}{
		{"ab.", "ab", true},
		{"ab.", "a", true}, // a is a substring of ab
		{"ab.", "b", true},
		{"ab.", "ba", false},
		{"ab.", "c", false},
		{"ab+", "a", true},
		{"ab+", "b", true},
		{"ab+", "c", false},
		{"ab+", "ab", false}, // neither a nor b contains ab
		{"ba.ab.+", "ab", true},
		{"a1+b.", "b", true}, // (a|ε)b generates b itself
		{"a1+b.", "ab", true},
		{"a1+b.", "bb", false},
		{"ab.*", "ba", true}, // abab contains ba across a repetition seam
		{"ab.*", "bb", false},
		{"ab.c.", "bc", true},
	}
	for _, tt := range tests {
		if got := mustEval(t, tt.expression, tt.word); got != tt.want {
			t.Fatalf("evaluate %q on %q: want %v got %v", tt.expression, tt.word, tt.want, got)
		}
	}
}

func TestKleeneStarBounded(t *testing.T) {
	e := MustCompile("a*")
	for length := 1; length <= 8; length++ {
		word := strings.Repeat("a", length)
		ok, err := e.Evaluate(word)
		require.NoError(t, err)
		assert.True(t, ok, "a* should cover %q", word)
	}
	for _, word := range []string{"b", "ab", "aba"} {
		ok, err := e.Evaluate(word)
		require.NoError(t, err)
		assert.False(t, ok, "a* must not cover %q", word)
	}
}

func TestCompileErrors(t *testing.T) {
	for _, expression := range []string{"", "ad.", "a%", "xy+"} {
		_, err := Compile(expression)
		assert.ErrorIs(t, err, ErrMalformedInput, "expression %q", expression)
	}
	_, err := Compile("ab.*")
	assert.NoError(t, err)
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		word       string
	}{
		{"two leaves no operator", "ab", "a"},
		{"union before operands", "+a", "a"},
		{"star on empty stack", "*", "a"},
		{"concat with one operand", "a.", "a"},
		{"unknown symbol in word", "a*", "d"},
		{"epsilon symbol in word", "a", "1"},
		{"empty word", "a", ""},
	}
	for _, tt := range tests {
		_, err := Evaluate(tt.expression, tt.word)
		assert.ErrorIs(t, err, ErrMalformedInput, tt.name)
	}
}

func TestMustCompile(t *testing.T) {
	assert.Panics(t, func() { MustCompile("") })
	assert.Panics(t, func() { MustCompile("zz") })
	assert.NotNil(t, MustCompile("ab.c+*"))
}

func TestExpressionReuse(t *testing.T) {
	e := MustCompile("ab.*")
	words := []string{"ab", "ba", "abab", "bb", "a"}

	first := make([]bool, len(words))
	for i, w := range words {
		ok, err := e.Evaluate(w)
		require.NoError(t, err)
		first[i] = ok
	}
	for i, w := range words {
		ok, err := e.Evaluate(w)
		require.NoError(t, err)
		assert.Equal(t, first[i], ok, "evaluation of %q drifted on reuse", w)
	}
}
