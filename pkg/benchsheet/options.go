// Package benchsheet appends load-test benchmark results to an xlsx workbook.
package benchsheet

const (
	// DefaultInputPath is the JSON file written by the load-test client.
	DefaultInputPath = "ws_output.json"
	// DefaultOutputPath is the workbook that receives the rows.
	DefaultOutputPath = "Load_Test_WS.xlsx"
	// DefaultSheetName is the worksheet rows are appended to.
	DefaultSheetName = "WS_OPT"
)

// Options configures an append run.
type Options struct {
	// InputPath is the JSON array of load-test records.
	InputPath string
	// OutputPath is an existing workbook; it is overwritten on save.
	OutputPath string
	// SheetName is the worksheet that receives the rows.
	SheetName string
	// SaveAs, when set, writes the result to a different path and leaves
	// OutputPath untouched.
	SaveAs string
	// DryRun maps and writes rows in memory without saving.
	DryRun bool
	// Strict refuses to save when any element failed.
	Strict bool
}

// DefaultOptions returns options pointing at the default file names.
func DefaultOptions() Options {
	return Options{
		InputPath:  DefaultInputPath,
		OutputPath: DefaultOutputPath,
		SheetName:  DefaultSheetName,
	}
}

func (o Options) sheetName() string {
	if o.SheetName == "" {
		return DefaultSheetName
	}
	return o.SheetName
}

func (o Options) savePath() string {
	if o.SaveAs != "" {
		return o.SaveAs
	}
	return o.OutputPath
}
