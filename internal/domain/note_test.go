package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundNoteValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		note    RoundNote
		wantErr string
	}{
		{name: "valid", note: RoundNote{ID: "1", Round: "Round 1", Side: SideGov}},
		{name: "missing id", note: RoundNote{Round: "Round 1"}, wantErr: "id is required"},
		{name: "blank round", note: RoundNote{ID: "1", Round: "  "}, wantErr: "round is required"},
		{name: "bad side", note: RoundNote{ID: "1", Round: "R1", Side: "bench"}, wantErr: "unsupported side"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.note.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidNote)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestParseSide(t *testing.T) {
	t.Parallel()

	side, err := ParseSide("Proposition")
	require.NoError(t, err)
	assert.Equal(t, SideGov, side)

	side, err = ParseSide(" neg ")
	require.NoError(t, err)
	assert.Equal(t, SideOpp, side)

	side, err = ParseSide("")
	require.NoError(t, err)
	assert.Equal(t, SideNone, side)

	_, err = ParseSide("judge")
	assert.ErrorIs(t, err, ErrInvalidNote)
}

func TestCompactLinesDropsBlank(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b"}, CompactLines([]string{" a ", "", "   ", "b"}))
}

func TestNextNumericID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1", NextNumericID(nil))
	assert.Equal(t, "4", NextNumericID([]string{"1", "3", "x", "2"}))
	assert.Equal(t, "1", NextNumericID([]string{"abc", "-5"}))
}

func TestCompactLinesNilWhenEmpty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, CompactLines([]string{" ", ""}))
	assert.Nil(t, CompactLines(nil))
}
