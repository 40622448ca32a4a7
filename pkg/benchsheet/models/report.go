package models

// Failure describes an input element that produced no row.
type Failure struct {
	// Position is the 0-based position of the element in the input array.
	Position int `json:"position"`
	// Row is the worksheet row the element was assigned.
	Row int `json:"row,omitempty"`
	// Stage is "mapping" or "append".
	Stage string `json:"stage"`
	// Fields lists the offending JSON fields, when known.
	Fields []string `json:"fields,omitempty"`
	// Reason is the error text.
	Reason string `json:"reason"`
}

// LatencySummary aggregates the rows appended in one batch.
type LatencySummary struct {
	Rows          int     `json:"rows"`
	TotalRequests float64 `json:"total_requests"`
	MeanAverage   float64 `json:"mean_average"`
	MedianAverage float64 `json:"median_average"`
	MinShortest   float64 `json:"min_shortest"`
	MaxLongest    float64 `json:"max_longest"`
	MaxP99        float64 `json:"max_p99"`
}

// BatchReport is the outcome of one append run.
type BatchReport struct {
	RunID  string `json:"run_id"`
	Input  string `json:"input"`
	Output string `json:"output"`
	Sheet  string `json:"sheet"`
	// SeparatorRow is the blank row left before the new data.
	SeparatorRow int `json:"separator_row"`
	// FirstRow is the row number assigned to the first data row.
	FirstRow int `json:"first_row"`
	// Appended is the number of rows written.
	Appended int `json:"appended"`
	// Skipped holds input positions of empty elements.
	Skipped  []int     `json:"skipped,omitempty"`
	Failures []Failure `json:"failures,omitempty"`
	// Saved reports whether the workbook was written to disk.
	Saved   bool            `json:"saved"`
	Summary *LatencySummary `json:"summary,omitempty"`
}

// Complete reports whether every non-empty element produced a row.
func (r *BatchReport) Complete() bool {
	return len(r.Failures) == 0
}

// Status returns "succeeded" or "partial".
func (r *BatchReport) Status() string {
	if r.Complete() {
		return "succeeded"
	}
	return "partial"
}
