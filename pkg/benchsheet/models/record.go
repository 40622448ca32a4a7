// Package models defines data structures for benchmark-to-sheet conversion.
package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Record is one load-test result as written by the benchmark client.
// Numeric fields accept JSON numbers and numeric strings ("5.000").
type Record struct {
	// Clients is the number of connected clients.
	Clients *decimal.Decimal `json:"clients" validate:"required"`
	// Rate is the configured request rate.
	Rate *decimal.Decimal `json:"rate" validate:"required"`
	// Count is the number of successful requests.
	Count *decimal.Decimal `json:"count" validate:"required"`
	// Shortest is the shortest round trip in milliseconds.
	Shortest *decimal.Decimal `json:"shortest" validate:"required"`
	// Average is the mean round trip in milliseconds.
	Average *decimal.Decimal `json:"average" validate:"required"`
	// Longest is the longest round trip in milliseconds.
	Longest *decimal.Decimal `json:"longest" validate:"required"`
	// P50 is the 50th percentile latency.
	P50 *decimal.Decimal `json:"50th_percentile" validate:"required"`
	// P90 is the 90th percentile latency.
	P90 *decimal.Decimal `json:"90th_percentile" validate:"required"`
	// P99 is the 99th percentile latency.
	P99 *decimal.Decimal `json:"99th_percentile" validate:"required"`
	// SchemaPack is kept raw so that an absent field can be told apart
	// from an explicit null.
	SchemaPack json.RawMessage `json:"schemapack,omitempty"`
}
