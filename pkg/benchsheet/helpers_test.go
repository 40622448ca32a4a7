package benchsheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const scenarioRecord = `{"clients":10,"rate":100,"count":1000,"shortest":1,"average":5,"longest":20,` +
	`"50th_percentile":4,"90th_percentile":8,"99th_percentile":15}`

// newWorkbook saves a workbook holding sheetName with a single header row.
func newWorkbook(t *testing.T, dir, sheetName string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", sheetName))
	require.NoError(t, f.SetCellValue(sheetName, "A1", "No"))
	require.NoError(t, f.SetCellValue(sheetName, "B1", "Clients"))

	path := filepath.Join(dir, "Load_Test_WS.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func writeInput(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "ws_output.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readRows(t *testing.T, path, sheetName string) [][]string {
	t.Helper()

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	return rows
}

func mustOpen(t *testing.T, path string) *excelize.File {
	t.Helper()

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	return f
}
