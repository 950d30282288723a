// Package inputparse turns free text into validated sequences. It is
// the gatekeeper in front of the prediction engine: the engine never
// sees non-finite values or fewer than the minimum number of terms.
package inputparse

import (
	"math"
	"strconv"
	"strings"

	"seqsense/domain/sequence"
	"seqsense/internal/errors"
)

// Parser implements ports.SequenceParser over comma, semicolon or
// whitespace separated text.
type Parser struct{}

// New creates a parser.
func New() *Parser {
	return &Parser{}
}

// Parse tokenizes text and validates the envelope: every token numeric
// and finite, at least sequence.MinLength values, truncated to the
// first sequence.MaxLength.
func (p *Parser) Parse(text string) (sequence.Sequence, error) {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(tokens) == 0 {
		return nil, errors.InvalidInput("no numbers found in input")
	}
	seq := make(sequence.Sequence, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, errors.InvalidInput("%q is not a number", tok)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.InvalidInput("%q is not a finite number", tok)
		}
		seq = append(seq, v)
		if len(seq) == sequence.MaxLength {
			break
		}
	}
	if len(seq) < sequence.MinLength {
		return nil, errors.InvalidInput("need at least %d numbers, got %d",
			sequence.MinLength, len(seq))
	}
	return seq, nil
}
