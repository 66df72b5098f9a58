package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/models"
)

func ptr(v float64) *float64 { return &v }

func sampleResults() []models.Result {
	return []models.Result{
		{
			ScenarioName:   "Scenario 6: Young Couple, Entry Level",
			WorkbookResult: ptr(400000),
			AppResult:      425720,
			ExpectedMin:    650000,
			ExpectedMax:    750000,
			WorksheetUsed:  "Dual income",
			ResultCell:     "F43",
		},
		{
			ScenarioName:   "Scenario 1: Single, Low Income, Owner-Occupied",
			WorkbookResult: ptr(320000),
			AppResult:      312530,
			ExpectedMin:    300000,
			ExpectedMax:    400000,
			WorksheetUsed:  "Single income",
			ResultCell:     "F42",
		},
		{
			ScenarioName:  "Scenario 2: Single, Medium Income, Investment",
			AppResult:     502553,
			ExpectedMin:   600000,
			ExpectedMax:   700000,
			WorksheetUsed: "Single income",
		},
	}
}

func TestResultsToJSON(t *testing.T) {
	data, err := ResultsToJSON(sampleResults()[:1], false)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Scenario 6: Young Couple, Entry Level", decoded[0]["scenario_name"])
	assert.Equal(t, 400000.0, decoded[0]["qed_result"])
	assert.Equal(t, 425720.0, decoded[0]["our_app_result"])
	assert.Equal(t, 650000.0, decoded[0]["expected_min"])
	assert.Equal(t, 750000.0, decoded[0]["expected_max"])
	assert.Equal(t, "Dual income", decoded[0]["worksheet_used"])
	assert.NotContains(t, decoded[0], "fallback")
}

func TestResultsToJSONNullResult(t *testing.T) {
	data, err := ResultsToJSON(sampleResults()[2:], false)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"qed_result":null`)

	empty, err := ResultsToJSON(nil, false)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}

func TestWriteFileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs", "results.json")
	require.NoError(t, WriteFile(path, []byte("[]")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestSummarize(t *testing.T) {
	s, err := Summarize(sampleResults(), 5)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Compared)
	assert.Equal(t, 1, s.Matches)
	assert.Equal(t, 1, s.InRange)
	assert.Equal(t, 1, s.WithoutValue)
	assert.InDelta(t, 6.43, s.MaxAbs, 0.001)
	assert.InDelta(t, (6.43+2.334)/2, s.MeanAbs, 0.001)
}

func TestSummarizeEmpty(t *testing.T) {
	s, err := Summarize(nil, 5)
	require.NoError(t, err)
	assert.Zero(t, s.Compared)
	assert.Zero(t, s.MeanAbs)
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(sampleResults(), 5)

	assert.Contains(t, out, "Scenario 6: Young Couple, Entr")
	assert.NotContains(t, out, "Entry Level")
	assert.Contains(t, out, "$400,000")
	assert.Contains(t, out, "$425,720")
	assert.Contains(t, out, "+6.4%")
	assert.Contains(t, out, "-2.3%")
	assert.Contains(t, out, "VARIANCE")
	assert.Contains(t, out, "MATCH")
	assert.Contains(t, out, "NO RESULT")
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, "run-1", sampleResults(), 10))

	out := buf.String()
	assert.Contains(t, out, "run run-1, tolerance 10%")
	assert.Contains(t, out, "2/2 within tolerance")
	assert.Contains(t, out, "1 without workbook value")
}
