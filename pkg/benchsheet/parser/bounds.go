package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// LastUsedRow returns the 1-based number of the last row holding a
// non-empty cell, or 0 for an empty sheet. Rows holding only styling are
// not counted.
func LastUsedRow(f *excelize.File, sheetName string) (int, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return 0, err
	}

	_, maxRow, _, _ := findDataBounds(rows)
	return maxRow + 1, nil
}

// MaxRow is LastUsedRow clamped to 1, the way spreadsheet tools report
// the dimension of an empty sheet.
func MaxRow(f *excelize.File, sheetName string) (int, error) {
	last, err := LastUsedRow(f, sheetName)
	if err != nil {
		return 0, err
	}
	if last < 1 {
		return 1, nil
	}
	return last, nil
}

// UsedRange returns the bounding range of non-empty cells (e.g. "A1:K10"),
// or "" for an empty sheet.
func UsedRange(f *excelize.File, sheetName string) (string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return "", err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return "", nil
	}

	startCell, err := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	if err != nil {
		return "", err
	}
	endCell, err := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s:%s", startCell, endCell), nil
}

// findDataBounds finds the 0-based bounding box of non-empty cells.
// All bounds are -1 when no cell holds data.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
