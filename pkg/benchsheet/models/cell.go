package models

// CellRow represents a single non-empty worksheet row.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// V holds the cell values from column A onward; numeric text is
	// returned as int64 or float64, empty cells as "".
	V []interface{} `json:"v"`
}

// SheetView is a read-back of a worksheet.
type SheetView struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the worksheet name.
	SheetName string `json:"sheet_name"`
	// UsedRange is the bounding range of non-empty cells (e.g. "A1:K12").
	UsedRange string `json:"used_range,omitempty"`
	// MaxRow is the last row holding data, never less than 1.
	MaxRow int `json:"max_row"`
	// Rows contains rows at or after the requested start row.
	Rows []CellRow `json:"rows,omitempty"`
}
