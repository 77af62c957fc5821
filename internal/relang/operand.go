package relang

import "fmt"

// Epsilon is the symbol denoting the empty word in an expression.
const Epsilon = '1'

// alphabet lists the symbols a reference word may consist of. Epsilon is a
// valid expression leaf but never a valid word character.
const alphabet = "abc"

// Operand describes a regular language L as it relates to one fixed
// reference word W of length n. It stores just enough boundary information
// to decide, compositionally, whether W occurs as a substring of some
// string of L — without enumerating the (possibly infinite) language.
type Operand struct {
	// substr[i][l]: the window of W starting at i with length l is itself
	// a member of L. Rows are sized n+1 so l stays 1-based.
	substr [][]bool

	// epsilon: the empty word is in L.
	epsilon bool

	// matchesWord: W occurs as a substring of some string of L. This is
	// the predicate everything else exists to maintain.
	matchesWord bool

	// suffixPrefix[l]: some string of L ends with the length-l prefix of W.
	suffixPrefix []bool

	// prefixSuffix[l]: some string of L starts with the length-l suffix of W.
	prefixSuffix []bool

	n int // len(W)
}

// EmptyOperand returns the operand of the empty language for a reference
// word of the given length. It is the zero element for Union.
func EmptyOperand(wordLength int) Operand {
	substr := make([][]bool, wordLength+1)
	for i := range substr {
		substr[i] = make([]bool, wordLength+1)
	}
	return Operand{
		substr:       substr,
		suffixPrefix: make([]bool, wordLength+1),
		prefixSuffix: make([]bool, wordLength+1),
		n:            wordLength,
	}
}

// SymbolOperand returns the leaf operand for a single alphabet symbol, or
// for Epsilon the operand of the language {""}, relative to word.
func SymbolOperand(ch byte, word string) Operand {
	o := EmptyOperand(len(word))
	if ch == Epsilon {
		o.epsilon = true
		return o
	}
	if len(word) == 0 {
		return o
	}

	o.matchesWord = len(word) == 1 && word[0] == ch
	if word[0] == ch {
		o.suffixPrefix[1] = true
	}
	if word[len(word)-1] == ch {
		o.prefixSuffix[1] = true
	}
	for i := 0; i < o.n; i++ {
		if word[i] == ch {
			o.substr[i][1] = true
		}
	}
	return o
}

// MatchesWord reports whether the reference word occurs as a substring of
// some string of the operand's language.
func (o Operand) MatchesWord() bool { return o.matchesWord }

func (o Operand) String() string {
	return fmt.Sprintf("operand{n=%d epsilon=%t word=%t suffixPrefix=%v prefixSuffix=%v}",
		o.n, o.epsilon, o.matchesWord, o.suffixPrefix[1:], o.prefixSuffix[1:])
}

func (o Operand) clone() Operand {
	out := o
	out.substr = make([][]bool, len(o.substr))
	for i := range o.substr {
		out.substr[i] = append([]bool(nil), o.substr[i]...)
	}
	out.suffixPrefix = append([]bool(nil), o.suffixPrefix...)
	out.prefixSuffix = append([]bool(nil), o.prefixSuffix...)
	return out
}

/* ----------- Union ----------- */

// Union returns the operand of L1 ∪ L2: every tracked predicate is a
// pointwise OR. Both operands must have been built for the same word.
func (o Operand) Union(right Operand) Operand {
	if o.n != right.n {
		panic("relang: union of operands built for different words")
	}

	out := o.clone()
	for i := 0; i < o.n; i++ {
		for l := 1; l <= o.n-i; l++ {
			out.substr[i][l] = out.substr[i][l] || right.substr[i][l]
		}
	}
	for l := 1; l <= o.n; l++ {
		out.suffixPrefix[l] = out.suffixPrefix[l] || right.suffixPrefix[l]
		out.prefixSuffix[l] = out.prefixSuffix[l] || right.prefixSuffix[l]
	}
	out.epsilon = o.epsilon || right.epsilon
	out.matchesWord = o.matchesWord || right.matchesWord
	return out
}

/* ----------- Concatenation ----------- */

// Concat returns the operand of L1·L2. A window of W, or W itself, lies in
// the concatenation iff it is covered entirely by the left side, entirely
// by the right side, or split across the seam; each helper below
// enumerates exactly those splits for one of the tracked predicates.
func (o Operand) Concat(right Operand) Operand {
	if o.n != right.n {
		panic("relang: concatenation of operands built for different words")
	}

	out := EmptyOperand(o.n)
	o.concatWindows(&out, right)
	o.concatBoundaries(&out, right)
	return out
}

func (left Operand) concatWindows(out *Operand, right Operand) {
	n := left.n
	for start := 0; start < n; start++ {
		for length := 1; length <= n-start; length++ {
			member := false
			for k := 0; k <= length && !member; k++ {
				switch {
				case k == 0:
					// empty left part, so the whole window must sit in L2
					member = left.epsilon && right.substr[start][length]
				case k == length:
					member = right.epsilon && left.substr[start][length]
				default:
					member = left.substr[start][k] && right.substr[start+k][length-k]
				}
			}
			out.substr[start][length] = member
		}
	}
	out.epsilon = left.epsilon && right.epsilon
}

func (left Operand) concatBoundaries(out *Operand, right Operand) {
	n := left.n

	// W spans the seam: some string of L1 ends with a prefix of W and some
	// string of L2 starts with the matching suffix.
	out.matchesWord = left.matchesWord || right.matchesWord
	for p := 1; p < n; p++ {
		out.matchesWord = out.matchesWord ||
			(left.suffixPrefix[p] && right.prefixSuffix[n-p])
	}

	// A prefix of W at the end of L1·L2: taken whole from L2, taken whole
	// from L1 with L2 contributing nothing, or split — L1 ends with a
	// shorter prefix and L2 supplies the rest as a full member window.
	for p := 1; p < n; p++ {
		v := right.suffixPrefix[p] || (left.suffixPrefix[p] && right.epsilon)
		for q := 1; q < p && !v; q++ {
			v = left.suffixPrefix[q] && right.substr[q][p-q]
		}
		out.suffixPrefix[p] = v
	}

	// Mirror image for a suffix of W at the start of L1·L2.
	for s := 1; s < n; s++ {
		v := left.prefixSuffix[s] || (left.epsilon && right.prefixSuffix[s])
		for r := 1; r < s && !v; r++ {
			v = left.substr[n-s][s-r] && right.prefixSuffix[r]
		}
		out.prefixSuffix[s] = v
	}
}
