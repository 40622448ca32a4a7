package benchsheet

import (
	"encoding/json"

	"github.com/go-faster/errors"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/parser"
)

// MapRow projects one input element onto the sheet's column layout.
// It returns a *MappingError when a required field is absent, null or not numeric;
// its Position is -1 and is set by Append.
func MapRow(index int, raw json.RawMessage) (models.Row, error) {
	rec, err := parser.DecodeRecord(raw)
	if err != nil {
		merr := &MappingError{Position: -1, Index: index, Err: err}
		var recErr *parser.RecordError
		if errors.As(err, &recErr) {
			merr.Fields = recErr.Fields
		}
		return models.Row{}, merr
	}

	return models.Row{
		Index:      index,
		Clients:    *rec.Clients,
		Rate:       *rec.Rate,
		Count:      *rec.Count,
		Shortest:   *rec.Shortest,
		Average:    *rec.Average,
		Longest:    *rec.Longest,
		P50:        *rec.P50,
		P90:        *rec.P90,
		P99:        *rec.P99,
		SchemaPack: models.ParseFlag(rec.SchemaPack),
	}, nil
}
