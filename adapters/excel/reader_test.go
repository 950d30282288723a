package excel

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqsense/domain/sequence"
	"seqsense/internal/errors"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sequences.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadSequences_CSV(t *testing.T) {
	path := writeCSV(t, "1,2,3,4\n2,4,8\n\nnot,numbers,here\n5,7\n")
	rows, err := NewSequenceReader(path).ReadSequences(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 4, "blank rows are skipped")

	assert.Equal(t, 1, rows[0].Line)
	require.NoError(t, rows[0].Err)
	assert.Equal(t, sequence.Sequence{1, 2, 3, 4}, rows[0].Sequence)

	require.NoError(t, rows[1].Err)
	assert.Equal(t, sequence.Sequence{2, 4, 8}, rows[1].Sequence)

	assert.Error(t, rows[2].Err, "non-numeric row carries its error")
	assert.Equal(t, "not numbers here", rows[2].Raw)

	assert.Error(t, rows[3].Err, "short row carries its error")
	assert.Equal(t, 4, rows[3].Line)
}

func TestReadSequences_MissingFile(t *testing.T) {
	_, err := NewSequenceReader("/nonexistent/sequences.xlsx").ReadSequences(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeFileRead, errors.GetCode(err))
}

func TestReadSequences_CancelledContext(t *testing.T) {
	path := writeCSV(t, "1,2,3\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSequenceReader(path).ReadSequences(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewSequenceReader_TypeFromExtension(t *testing.T) {
	assert.Equal(t, "csv", NewSequenceReader("data.CSV").fileType)
	assert.Equal(t, "xlsx", NewSequenceReader("data.xlsx").fileType)
	assert.Equal(t, "xlsx", NewSequenceReader("data").fileType)
}
