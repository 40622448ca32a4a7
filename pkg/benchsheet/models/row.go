package models

import "github.com/shopspring/decimal"

// ColumnCount is the number of cells written per row.
const ColumnCount = 11

// Header holds the column titles of the results sheet.
var Header = []string{
	"No",
	"Clients",
	"Rate",
	"Count",
	"Shortest",
	"Average",
	"Longest",
	"50th Percentile",
	"90th Percentile",
	"99th Percentile",
	"Schemapack",
}

// Row is a record projected onto the sheet's column layout.
type Row struct {
	// Index is the worksheet row number the data is written to (1-based).
	Index      int
	Clients    decimal.Decimal
	Rate       decimal.Decimal
	Count      decimal.Decimal
	Shortest   decimal.Decimal
	Average    decimal.Decimal
	Longest    decimal.Decimal
	P50        decimal.Decimal
	P90        decimal.Decimal
	P99        decimal.Decimal
	SchemaPack Flag
}

// Values returns the cell values in column order.
// Integral numbers that fit in int64 are returned as int64, the rest as float64.
func (r Row) Values() []interface{} {
	return []interface{}{
		r.Index,
		cellNumber(r.Clients),
		cellNumber(r.Rate),
		cellNumber(r.Count),
		cellNumber(r.Shortest),
		cellNumber(r.Average),
		cellNumber(r.Longest),
		cellNumber(r.P50),
		cellNumber(r.P90),
		cellNumber(r.P99),
		string(r.SchemaPack),
	}
}

func cellNumber(d decimal.Decimal) interface{} {
	if d.IsInteger() && d.BigInt().IsInt64() {
		return d.IntPart()
	}
	return d.InexactFloat64()
}
