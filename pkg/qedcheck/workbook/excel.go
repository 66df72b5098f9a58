package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// book implements cell access over an excelize file.
type book struct {
	f      *excelize.File
	logger *zap.Logger
	// evaluate makes GetCell compute formula cells instead of returning
	// the cached value stored in the file.
	evaluate bool
}

func (b *book) checkSheet(sheet string) error {
	idx, err := b.f.GetSheetIndex(sheet)
	if err != nil {
		return err
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}
	return nil
}

func (b *book) GetCell(sheet, cell string) (string, error) {
	if err := b.checkSheet(sheet); err != nil {
		return "", err
	}
	if b.evaluate {
		formula, err := b.f.GetCellFormula(sheet, cell)
		if err != nil {
			return "", err
		}
		if formula != "" {
			v, err := b.f.CalcCellValue(sheet, cell, excelize.Options{RawCellValue: true})
			if err == nil {
				return v, nil
			}
			b.logger.Debug("formula evaluation failed, using cached value",
				zap.String("sheet", sheet),
				zap.String("cell", cell),
				zap.Error(err))
		}
	}
	return b.f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
}

func (b *book) SetCell(sheet, cell string, value interface{}) error {
	if err := b.checkSheet(sheet); err != nil {
		return err
	}
	return b.f.SetCellValue(sheet, cell, value)
}

func (b *book) close() error {
	if b.f == nil {
		return nil
	}
	err := b.f.Close()
	b.f = nil
	return err
}

func loggerOrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
