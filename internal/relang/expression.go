package relang

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

/* ----------- Token grammar ----------- */

// A postfix expression is a flat run of alphabet symbols and operators;
// all the structure lives in the stack machine below, the grammar only
// classifies tokens and pins down their positions.
type exprToken struct {
	Pos lexer.Position

	Symbol *string `parser:"@Symbol"`
	Op     *string `parser:"| @Operator"`
}

type postfixExpr struct {
	Tokens []exprToken `parser:"@@+"`
}

var (
	exprLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Symbol", Pattern: `[abc1]`},
		{Name: "Operator", Pattern: `[+.*]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	exprParser = participle.MustBuild[postfixExpr](
		participle.Lexer(exprLexer),
		participle.Elide("Whitespace"),
	)
)

/* ----------- Compilation ----------- */

// Expression is a compiled postfix expression. It is immutable: every
// Evaluate call runs on its own stack, so one Expression may be reused
// across any number of reference words.
type Expression struct {
	source string
	tokens []exprToken
}

// Compile tokenizes a postfix expression over the alphabet a b c, the
// epsilon symbol and the operators + . *.
func Compile(expression string) (*Expression, error) {
	if expression == "" {
		return nil, malformedf("empty expression")
	}
	parsed, err := exprParser.ParseString("", expression)
	if err != nil {
		return nil, malformedf("bad expression %q: %v", expression, err)
	}
	return &Expression{source: expression, tokens: parsed.Tokens}, nil
}

func MustCompile(expression string) *Expression {
	e, err := Compile(expression)
	if err != nil {
		panic(err)
	}
	return e
}

/* ----------- Evaluation ----------- */

// Evaluate reports whether word occurs as a substring of some string in
// the expression's language. The operand tables are indexed relative to
// word, so each call rebuilds them from scratch.
func (e *Expression) Evaluate(word string) (bool, error) {
	if err := checkWord(word); err != nil {
		return false, err
	}

	var stack []Operand
	for _, tok := range e.tokens {
		switch {
		case tok.Symbol != nil:
			stack = append(stack, SymbolOperand((*tok.Symbol)[0], word))
		case tok.Op != nil:
			var err error
			stack, err = applyOperator(stack, (*tok.Op)[0], tok.Pos, word)
			if err != nil {
				return false, err
			}
		}
	}

	if len(stack) != 1 {
		return false, malformedf("unbalanced expression %q: %d operands left",
			e.source, len(stack))
	}
	return stack[0].MatchesWord(), nil
}

// Evaluate compiles the expression and evaluates it against one word.
func Evaluate(expression, word string) (bool, error) {
	e, err := Compile(expression)
	if err != nil {
		return false, err
	}
	return e.Evaluate(word)
}

func applyOperator(stack []Operand, op byte, pos lexer.Position, word string) ([]Operand, error) {
	if op == '*' {
		if len(stack) < 1 {
			return nil, malformedf("operator %q at column %d: missing operand", op, pos.Column)
		}
		stack[len(stack)-1] = kleeneStar(stack[len(stack)-1], word)
		return stack, nil
	}

	if len(stack) < 2 {
		return nil, malformedf("operator %q at column %d: missing operands", op, pos.Column)
	}
	right := stack[len(stack)-1]
	left := stack[len(stack)-2]
	stack = stack[:len(stack)-2]

	switch op {
	case '+':
		stack = append(stack, left.Union(right))
	case '.':
		stack = append(stack, left.Concat(right))
	default:
		return nil, malformedf("unknown operator %q at column %d", op, pos.Column)
	}
	return stack, nil
}

/* ----------- Kleene star ----------- */

// starUnrollBound is how many powers of e get folded into the finite
// approximation of e* for a reference word of the given length. Every
// boundary fact about a word of length L is introduced by a power of
// length at most L, so after 2L+2 rounds no tracked predicate can change.
func starUnrollBound(wordLength int) int { return 2*wordLength + 2 }

// kleeneStar approximates e* = e⁰ + e¹ + e² + … by accumulating powers of
// e up to the unroll bound, starting from the epsilon leaf as e⁰.
func kleeneStar(e Operand, word string) Operand {
	pow := SymbolOperand(Epsilon, word)
	acc := pow
	for i := 0; i < starUnrollBound(len(word)); i++ {
		pow = pow.Concat(e)
		acc = acc.Union(pow)
	}
	return acc
}

/* ----------- Word validation ----------- */

// checkWord enforces the alphabet contract: a reference word is non-empty
// and consists of a b c only. The epsilon symbol is an expression leaf,
// never a word character.
func checkWord(word string) error {
	if word == "" {
		return malformedf("empty word")
	}
	for i := 0; i < len(word); i++ {
		if !isAlphabetSymbol(word[i]) {
			return malformedf("unknown symbol %q in word %q", word[i], word)
		}
	}
	return nil
}

func isAlphabetSymbol(ch byte) bool {
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == ch {
			return true
		}
	}
	return false
}
