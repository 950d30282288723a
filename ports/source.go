package ports

import (
	"context"

	"seqsense/domain/sequence"
)

// SequenceSource yields candidate sequences from an external file or
// stream for batch prediction. Rows that fail validation are reported
// per-row rather than aborting the batch.
type SequenceSource interface {
	ReadSequences(ctx context.Context) ([]SourceRow, error)
}

// SourceRow is one candidate row from a SequenceSource. Err is non-nil
// when the row could not be parsed into a valid sequence.
type SourceRow struct {
	Line     int
	Raw      string
	Sequence sequence.Sequence
	Err      error
}
