package quantum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasisLabel(t *testing.T) {
	tests := []struct {
		outcomes []Result
		want     string
	}{
		{[]Result{One, Zero, One}, "|101>"},
		{[]Result{Zero, One, One}, "|110>"},
		{[]Result{One, Zero, Zero}, "|001>"},
		{[]Result{Zero}, "|0>"},
		{[]Result{}, "|>"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BasisLabel(tt.outcomes), "outcomes %v", tt.outcomes)
	}
}

func TestFormatBasisLabelLowestQubitFirst(t *testing.T) {
	assert.Equal(t, "|011>", FormatBasisLabel([]Result{Zero, One, One}, LowestQubitFirst))
	assert.Equal(t, "|110>", FormatBasisLabel([]Result{Zero, One, One}, HighestQubitFirst))
}

func TestLabelMatchesBinaryIndex(t *testing.T) {
	for idx := 0; idx < 16; idx++ {
		results, err := ResultsFromIndex(idx, 4)
		require.NoError(t, err)
		assert.Equal(t, idx, BasisIndex(results))

		label := BasisLabel(results)
		var parsed int
		for _, ch := range label[1 : len(label)-1] {
			parsed = parsed<<1 | int(ch-'0')
		}
		assert.Equal(t, idx, parsed, "label %s", label)
	}
}

func TestResultsFromIndexErrors(t *testing.T) {
	_, err := ResultsFromIndex(8, 3)
	assert.ErrorIs(t, err, ErrIndex)
	_, err = ResultsFromIndex(0, 0)
	assert.ErrorIs(t, err, ErrQubitCount)
}

func TestFormatResults(t *testing.T) {
	assert.Equal(t, "[Zero,One,One]", FormatResults([]Result{Zero, One, One}))
	assert.Equal(t, "[]", FormatResults(nil))
}
