package relang

import "github.com/pkg/errors"

// ErrMalformedInput is the single error kind this package reports: any
// violated input rule (empty expression or word, unknown symbol, operator
// with too few operands, leftover operands) wraps it with a message naming
// the rule. Test for it with errors.Is.
var ErrMalformedInput = errors.New("malformed input")

func malformedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedInput, format, args...)
}
