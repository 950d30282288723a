package ports

import (
	"seqsense/domain/sequence"
)

// SequenceParser turns free text into a validated sequence: numeric
// tokens only, every value finite, at least sequence.MinLength terms,
// truncated to the first sequence.MaxLength. The engine never sees
// input that fails these checks.
type SequenceParser interface {
	Parse(text string) (sequence.Sequence, error)
}
