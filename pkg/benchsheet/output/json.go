// Package output serializes reports and sheet views.
package output

import (
	"encoding/json"

	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"
)

// ReportJSON is a BatchReport with its derived status.
type ReportJSON struct {
	Status string `json:"status"`
	*models.BatchReport
}

// ReportToJSON serializes a batch report.
func ReportToJSON(r *models.BatchReport, pretty bool) ([]byte, error) {
	return marshal(ReportJSON{Status: r.Status(), BatchReport: r}, pretty)
}

// SheetToJSON serializes a sheet view.
func SheetToJSON(v *models.SheetView, pretty bool) ([]byte, error) {
	return marshal(v, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
