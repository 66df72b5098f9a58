package workbook

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// newCalculator writes a workbook with a single income sheet whose F42 is
// derived from F8 and B7.
func newCalculator(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Single income"))
	_, err := f.NewSheet("Dual income")
	require.NoError(t, err)

	require.NoError(t, f.SetCellValue("Single income", "E8", "Primary income"))
	require.NoError(t, f.SetCellValue("Single income", "F8", 0))
	require.NoError(t, f.SetCellValue("Single income", "B7", 0.055))
	require.NoError(t, f.SetCellFormula("Single income", "F42", "F8*6"))

	path := filepath.Join(t.TempDir(), "calculator.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestTempPath(t *testing.T) {
	assert.Equal(t, filepath.Join("dir", "calc.temp.xlsm"), TempPath(filepath.Join("dir", "calc.xlsm")))
	assert.Equal(t, "calc.temp.xlsx", TempPath("calc.xlsx"))
}

func TestFileOpenerMissingWorkbook(t *testing.T) {
	_, err := FileOpener{}.Open(context.Background(), filepath.Join(t.TempDir(), "missing.xlsm"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFileBookRecalculate(t *testing.T) {
	path := newCalculator(t)

	wb, err := FileOpener{}.Open(context.Background(), path)
	require.NoError(t, err)
	defer wb.Close()

	require.NoError(t, wb.SetCell("Single income", "F8", 65000))
	require.NoError(t, wb.Recalculate(context.Background()))

	v, err := wb.GetCell("Single income", "F42")
	require.NoError(t, err)
	assert.Equal(t, "390000", v)

	label, err := wb.GetCell("Single income", "E8")
	require.NoError(t, err)
	assert.Equal(t, "Primary income", label)

	assert.FileExists(t, TempPath(path))

	// The source workbook keeps its original inputs.
	src, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer src.Close()
	orig, err := src.GetCellValue("Single income", "F8")
	require.NoError(t, err)
	assert.Equal(t, "0", orig)
}

func TestBookUnknownSheet(t *testing.T) {
	path := newCalculator(t)

	wb, err := FileOpener{}.Open(context.Background(), path)
	require.NoError(t, err)
	defer wb.Close()

	_, err = wb.GetCell("Triple income", "F42")
	assert.ErrorIs(t, err, ErrSheetNotFound)
	assert.ErrorIs(t, wb.SetCell("Triple income", "F8", 1), ErrSheetNotFound)
}

func TestLiveBookEvaluatesWithoutSaving(t *testing.T) {
	path := newCalculator(t)

	wb, err := LiveOpener{SettleDelay: time.Millisecond}.Open(context.Background(), path)
	require.NoError(t, err)

	require.NoError(t, wb.SetCell("Single income", "F8", 100000))
	require.NoError(t, wb.Recalculate(context.Background()))

	v, err := wb.GetCell("Single income", "F42")
	require.NoError(t, err)
	assert.Equal(t, "600000", v)
	require.NoError(t, wb.Close())

	assert.NoFileExists(t, TempPath(path))
}

func TestLiveBookRecalculateHonoursContext(t *testing.T) {
	path := newCalculator(t)

	wb, err := LiveOpener{SettleDelay: time.Hour}.Open(context.Background(), path)
	require.NoError(t, err)
	defer wb.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, wb.Recalculate(ctx), context.Canceled)
}
