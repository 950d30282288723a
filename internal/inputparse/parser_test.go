package inputparse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqsense/domain/sequence"
	"seqsense/internal/errors"
)

func TestParse_Separators(t *testing.T) {
	p := New()
	cases := []struct {
		name string
		text string
		want sequence.Sequence
	}{
		{"commas", "1,2,3", sequence.Sequence{1, 2, 3}},
		{"semicolons", "1;2;3", sequence.Sequence{1, 2, 3}},
		{"spaces", "1 2 3", sequence.Sequence{1, 2, 3}},
		{"mixed with newlines", "1, 2;\t3\n4", sequence.Sequence{1, 2, 3, 4}},
		{"decimals and negatives", "-1.5, 0, 2.25", sequence.Sequence{-1.5, 0, 2.25}},
		{"scientific notation", "1e2 2e2 3e2", sequence.Sequence{100, 200, 300}},
		{"leading and trailing separators", " ,1 2 3, ", sequence.Sequence{1, 2, 3}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := p.Parse(c.text)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestParse_Rejections(t *testing.T) {
	p := New()
	cases := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"only separators", " ,; \t"},
		{"non-numeric token", "1, two, 3"},
		{"not a number", "1 2 NaN"},
		{"infinite", "1 2 +Inf"},
		{"too few values", "5, 7"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := p.Parse(c.text)
			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
		})
	}
}

func TestParse_TruncatesToMaxLength(t *testing.T) {
	tokens := make([]string, sequence.MaxLength+5)
	for i := range tokens {
		tokens[i] = "1"
	}
	got, err := New().Parse(strings.Join(tokens, " "))
	require.NoError(t, err)
	assert.Len(t, got, sequence.MaxLength)
}
