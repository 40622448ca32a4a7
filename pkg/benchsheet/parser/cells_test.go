package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// newTestFile saves a workbook with a header in row 1 and a data row in row 3.
func newTestFile(t *testing.T) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "No")
	f.SetCellValue(sheetName, "B1", "Clients")
	f.SetCellValue(sheetName, "A3", 3)
	f.SetCellValue(sheetName, "B3", 200.5)
	f.SetCellValue(sheetName, "D3", "None")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { f2.Close() })
	return f2
}

func TestExtractRows(t *testing.T) {
	f := newTestFile(t)

	rows, err := ExtractRows(f, "Sheet1", 1)
	if err != nil {
		t.Fatalf("ExtractRows failed: %v", err)
	}

	// Row 2 is blank and must be left out
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].R != 1 || rows[1].R != 3 {
		t.Errorf("Expected rows 1 and 3, got %d and %d", rows[0].R, rows[1].R)
	}
	if rows[0].V[0] != "No" {
		t.Errorf("Expected 'No', got %v", rows[0].V[0])
	}

	data := rows[1].V
	if data[0] != int64(3) {
		t.Errorf("Expected int64(3), got %v (type: %T)", data[0], data[0])
	}
	if data[1] != 200.5 {
		t.Errorf("Expected 200.5, got %v", data[1])
	}
	if data[2] != "" {
		t.Errorf("Expected empty C3, got %v", data[2])
	}
	if data[3] != "None" {
		t.Errorf("Expected 'None', got %v", data[3])
	}

	rows, err = ExtractRows(f, "Sheet1", 2)
	if err != nil {
		t.Fatalf("ExtractRows failed: %v", err)
	}
	if len(rows) != 1 || rows[0].R != 3 {
		t.Errorf("Expected only row 3 from row 2 onward, got %+v", rows)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}
