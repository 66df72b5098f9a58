package qedcheck

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/fixtures"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/models"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/workbook"
	"github.com/xuri/excelize/v2"
)

// writeCalculator creates a workbook laid out like the serviceability
// calculator, with simple formulas standing in for the real assessment.
func writeCalculator(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Single income"))
	_, err := f.NewSheet("Dual income")
	require.NoError(t, err)

	for _, sheet := range []string{"Single income", "Dual income"} {
		require.NoError(t, f.SetCellValue(sheet, "A1", "Serviceability calculator"))
		require.NoError(t, f.SetCellValue(sheet, "D3", "Dependents"))
		require.NoError(t, f.SetCellValue(sheet, "A7", "Interest rate"))
		require.NoError(t, f.SetCellValue(sheet, "E8", "Gross income"))
		require.NoError(t, f.SetCellValue(sheet, "E33", "Current rent"))
		require.NoError(t, f.SetCellValue(sheet, "G20", 150000))
	}
	require.NoError(t, f.SetCellValue("Single income", "E42", "MAX Loan"))
	require.NoError(t, f.SetCellFormula("Single income", "F42", "F8*6"))
	require.NoError(t, f.SetCellValue("Dual income", "E43", "MAX Loan"))
	require.NoError(t, f.SetCellFormula("Dual income", "F43", "(F8+I8)*5"))

	path := filepath.Join(t.TempDir(), "calculator.xlsm")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestAnalyze(t *testing.T) {
	path := writeCalculator(t)

	a, err := Analyze(path, DefaultAnalyzeOptions())
	require.NoError(t, err)

	assert.Equal(t, "calculator.xlsm", a.BookName)
	assert.Equal(t, []string{"Single income", "Dual income"}, a.Worksheets)
	assert.Equal(t, "Single income", a.Sheet)

	require.Contains(t, a.InputCells, "income")
	assert.Equal(t, "E8", a.InputCells["income"].Cell)
	assert.Equal(t, "D3", a.InputCells["dependents"].Cell)
	assert.Equal(t, "A7", a.InputCells["rate"].Cell)
	assert.Equal(t, "E33", a.InputCells["rent"].Cell)

	require.Contains(t, a.OutputCells, "loan")
	assert.Equal(t, "E42", a.OutputCells["loan"].Cell)

	require.Len(t, a.PotentialResults, 1)
	assert.Equal(t, "G20", a.PotentialResults[0].Cell)
	assert.Equal(t, "$150,000", a.PotentialResults[0].Formatted)
}

func TestAnalyzeNamedSheet(t *testing.T) {
	path := writeCalculator(t)

	opts := DefaultAnalyzeOptions()
	opts.Sheet = "Dual income"
	a, err := Analyze(path, opts)
	require.NoError(t, err)
	assert.Equal(t, "E43", a.OutputCells["loan"].Cell)

	opts.Sheet = "Nope"
	_, err = Analyze(path, opts)
	var ae *AnalysisError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Nope", ae.SheetName)
}

func TestAnalyzeMissingWorkbook(t *testing.T) {
	_, err := Analyze(filepath.Join(t.TempDir(), "missing.xlsm"), DefaultAnalyzeOptions())
	assert.ErrorIs(t, err, ErrWorkbookNotFound)
}

func TestCheckFileVariant(t *testing.T) {
	path := writeCalculator(t)
	opts := DefaultOptions(path)

	report, err := Check(context.Background(), opts, fixtures.Default(), nil)
	require.NoError(t, err)
	require.Empty(t, report.Failures)
	require.Len(t, report.Results, 6)

	first := report.Results[0]
	assert.Equal(t, "Single income", first.WorksheetUsed)
	require.NotNil(t, first.WorkbookResult)
	assert.Equal(t, 390000.0, *first.WorkbookResult)
	assert.Equal(t, "F42", first.ResultCell)

	last := report.Results[5]
	assert.Equal(t, "Dual income", last.WorksheetUsed)
	require.NotNil(t, last.WorkbookResult)
	assert.Equal(t, 675000.0, *last.WorkbookResult)
	assert.True(t, last.InExpectedRange())

	assert.FileExists(t, workbook.TempPath(path))
	assert.Equal(t, 5.0, opts.EffectiveTolerance())
}

func TestCheckLiveVariant(t *testing.T) {
	path := writeCalculator(t)
	opts := DefaultOptions(path)
	opts.Variant = VariantLive
	opts.SettleDelay = time.Millisecond

	report, err := Check(context.Background(), opts, fixtures.Default()[:1], nil)
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	require.NotNil(t, report.Results[0].WorkbookResult)
	assert.Equal(t, 390000.0, *report.Results[0].WorkbookResult)
	assert.Equal(t, models.StatusVariance, report.Results[0].Status(opts.EffectiveTolerance()))
	assert.Equal(t, 10.0, opts.EffectiveTolerance())

	assert.NoFileExists(t, workbook.TempPath(path))
}

func TestCheckMissingWorkbook(t *testing.T) {
	opts := DefaultOptions(filepath.Join(t.TempDir(), "missing.xlsm"))

	_, err := Check(context.Background(), opts, fixtures.Default(), nil)
	assert.ErrorIs(t, err, ErrWorkbookNotFound)
}

func TestCheckInvalidVariant(t *testing.T) {
	opts := DefaultOptions("calculator.xlsm")
	opts.Variant = "com"

	_, err := Check(context.Background(), opts, fixtures.Default(), nil)
	assert.ErrorIs(t, err, ErrInvalidVariant)
}

func TestVariantTolerance(t *testing.T) {
	assert.Equal(t, 5.0, VariantFile.DefaultTolerance())
	assert.Equal(t, 10.0, VariantLive.DefaultTolerance())
	assert.True(t, VariantLive.Valid())
	assert.False(t, Variant("com").Valid())

	opts := DefaultOptions("x.xlsm")
	opts.Tolerance = 7.5
	assert.Equal(t, 7.5, opts.EffectiveTolerance())
}
