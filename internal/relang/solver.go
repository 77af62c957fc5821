package relang

// Solver finds the longest contiguous substring of a word that occurs as a
// substring of some string in a compiled expression's language.
type Solver struct {
	expr *Expression
	word string
}

func NewSolver(expr *Expression, word string) *Solver {
	return &Solver{expr: expr, word: word}
}

// Solve enumerates every window of the word and re-evaluates the
// expression with that window as the reference word. The operand tables
// are relative to the reference word, so no state survives between trials.
// Returns 0 when no window matches.
func (s *Solver) Solve() (int, error) {
	if err := checkWord(s.word); err != nil {
		return 0, err
	}

	best := 0
	for start := 0; start < len(s.word); start++ {
		for length := 1; length <= len(s.word)-start; length++ {
			ok, err := s.expr.Evaluate(s.word[start : start+length])
			if err != nil {
				return 0, err
			}
			if ok && length > best {
				best = length
			}
		}
	}
	return best, nil
}

// LongestMatchingSubstring compiles the expression and solves for one word.
func LongestMatchingSubstring(expression, word string) (int, error) {
	expr, err := Compile(expression)
	if err != nil {
		return 0, err
	}
	return NewSolver(expr, word).Solve()
}
