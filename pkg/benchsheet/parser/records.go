// Package parser provides input decoding and worksheet reading utilities.
package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON names instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// RecordError reports why an input element could not be decoded.
type RecordError struct {
	// Fields lists offending JSON field names; empty when the element
	// itself is malformed.
	Fields []string
	Reason string
}

func (e *RecordError) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, strings.Join(e.Fields, ", "))
}

// LoadRecords reads a JSON array from path and returns its elements undecoded.
// An empty or whitespace-only file is treated as an empty array.
func LoadRecords(path string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// IsEmpty reports whether an element is falsy: null, false, 0, "", [] or {}.
func IsEmpty(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return true
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}

	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case float64:
		return t == 0
	case string:
		return t == ""
	case []interface{}:
		return len(t) == 0
	case map[string]interface{}:
		return len(t) == 0
	}

	return false
}

// DecodeRecord decodes and validates a single element.
// Missing, null and non-numeric fields are all reported in one RecordError.
func DecodeRecord(raw json.RawMessage) (models.Record, error) {
	var rec models.Record

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return rec, &RecordError{Reason: "element is not a JSON object"}
	}

	var invalid []string
	for _, nf := range numericFields(&rec) {
		value, ok := fields[nf.name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, nf.dst); err != nil {
			invalid = append(invalid, nf.name)
		}
	}
	if len(invalid) > 0 {
		return rec, &RecordError{Fields: invalid, Reason: "non-numeric value"}
	}

	if v, ok := fields["schemapack"]; ok {
		rec.SchemaPack = v
	}

	if err := validate.Struct(&rec); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return rec, &RecordError{Reason: err.Error()}
		}
		missing := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			missing = append(missing, fe.Field())
		}
		return rec, &RecordError{Fields: missing, Reason: "missing field"}
	}

	return rec, nil
}

type numericField struct {
	name string
	dst  **decimal.Decimal
}

// numericFields lists the required numeric fields in column order.
func numericFields(rec *models.Record) []numericField {
	return []numericField{
		{"clients", &rec.Clients},
		{"rate", &rec.Rate},
		{"count", &rec.Count},
		{"shortest", &rec.Shortest},
		{"average", &rec.Average},
		{"longest", &rec.Longest},
		{"50th_percentile", &rec.P50},
		{"90th_percentile", &rec.P90},
		{"99th_percentile", &rec.P99},
	}
}
