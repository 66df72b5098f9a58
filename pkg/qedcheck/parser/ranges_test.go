package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/models"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		in   string
		want models.Area
	}{
		{"A1:Z99", models.Area{R1: 1, C1: 1, R2: 99, C2: 26}},
		{"$A$1:$S$49", models.Area{R1: 1, C1: 1, R2: 49, C2: 19}},
		{"F42", models.Area{R1: 42, C1: 6, R2: 42, C2: 6}},
		{"D10:B2", models.Area{R1: 2, C1: 2, R2: 10, C2: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRange(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRangeInvalid(t *testing.T) {
	for _, in := range []string{"", "A1:B2:C3", "1A", "A1:ZZZZ1"} {
		_, err := ParseRange(in)
		assert.Error(t, err, in)
	}
}

func TestFormatRange(t *testing.T) {
	assert.Equal(t, "A1:S49", FormatRange(models.Area{R1: 1, C1: 1, R2: 49, C2: 19}))
}

func TestSplitReference(t *testing.T) {
	sheet, cell := SplitReference("'Dual income'!$F$43")
	assert.Equal(t, "Dual income", sheet)
	assert.Equal(t, "F43", cell)

	sheet, cell = SplitReference("F42")
	assert.Empty(t, sheet)
	assert.Equal(t, "F42", cell)
}
