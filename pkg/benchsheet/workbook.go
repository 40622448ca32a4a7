package benchsheet

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/parser"
	"github.com/xuri/excelize/v2"
)

// Init prepares a workbook to receive results: it creates the file when it
// does not exist, adds sheetName, and writes a bold header row.
func Init(path, sheetName string) error {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		f, err := excelize.OpenFile(path)
		if err != nil {
			return errors.Wrapf(err, "open workbook %s", path)
		}
		defer f.Close()

		if idx, _ := f.GetSheetIndex(sheetName); idx >= 0 {
			return errors.Wrapf(ErrSheetExists, "%s in %s", sheetName, path)
		}
		if _, err := f.NewSheet(sheetName); err != nil {
			return errors.Wrapf(err, "add sheet %s", sheetName)
		}
		if err := writeHeader(f, sheetName); err != nil {
			return err
		}
		if err := f.Save(); err != nil {
			return errors.Wrapf(err, "save workbook %s", path)
		}
		return nil

	case errors.Is(statErr, fs.ErrNotExist):
		f := excelize.NewFile()
		defer f.Close()

		if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
			return errors.Wrapf(err, "rename sheet to %s", sheetName)
		}
		if err := writeHeader(f, sheetName); err != nil {
			return err
		}
		if err := f.SaveAs(path); err != nil {
			return errors.Wrapf(err, "save workbook %s", path)
		}
		return nil

	default:
		return errors.Wrapf(statErr, "stat %s", path)
	}
}

func writeHeader(f *excelize.File, sheetName string) error {
	header := make([]interface{}, len(models.Header))
	for i, h := range models.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return errors.Wrap(err, "write header")
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "create header style")
	}
	if err := f.SetRowStyle(sheetName, 1, 1, style); err != nil {
		return errors.Wrap(err, "style header")
	}

	lastCol, err := excelize.ColumnNumberToName(models.ColumnCount)
	if err != nil {
		return err
	}
	return f.SetColWidth(sheetName, "A", lastCol, 16)
}

// Inspect reads a worksheet back, returning rows from fromRow onward.
func Inspect(path, sheetName string, fromRow int) (*models.SheetView, error) {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}

	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, errors.Wrapf(ErrSheetNotFound, "%s in %s", sheetName, path)
	}

	maxRow, err := parser.MaxRow(f, sheetName)
	if err != nil {
		return nil, errors.Wrap(err, "read sheet")
	}
	usedRange, err := parser.UsedRange(f, sheetName)
	if err != nil {
		return nil, errors.Wrap(err, "read sheet")
	}
	rows, err := parser.ExtractRows(f, sheetName, fromRow)
	if err != nil {
		return nil, errors.Wrap(err, "read sheet")
	}

	return &models.SheetView{
		BookName:  filepath.Base(path),
		SheetName: sheetName,
		UsedRange: usedRange,
		MaxRow:    maxRow,
		Rows:      rows,
	}, nil
}
