package parser

import (
	"strconv"

	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"
	"github.com/xuri/excelize/v2"
)

// ExtractRows reads the non-empty rows of a sheet starting at fromRow (1-based).
// Values keep their column position; numeric text is parsed.
func ExtractRows(f *excelize.File, sheetName string, fromRow int) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	if fromRow < 1 {
		fromRow = 1
	}

	var result []models.CellRow
	for rowIdx := fromRow - 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		values := make([]interface{}, len(row))
		hasData := false

		for colIdx, cellValue := range row {
			if cellValue != "" {
				hasData = true
			}
			values[colIdx] = parseValue(cellValue)
		}

		if hasData {
			result = append(result, models.CellRow{
				R: rowIdx + 1,
				V: values,
			})
		}
	}

	return result, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if s == "" {
		return s
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
