package report

import "context"

// Row is one line of a generated report. Each generator owns a concrete row
// type (usually AggregatedEmployeeRecord) and maps it through its hooks.
type Row any

// Dataset is what a generator's GetData returns: the full row set plus
// control totals over exactly those rows.
type Dataset struct {
	Rows   []Row
	Totals Totals
}

// Generator is the contract every concrete report form implements. The
// serialization mechanics are shared; forms vary only in their query and
// aggregation step and in how a row maps onto output cells.
type Generator interface {
	Definition() Definition

	// GetData runs the query and aggregation for the window described by
	// params and returns rows with control totals. Rows for employees lacking
	// the statutory ID the form requires are excluded, not nulled.
	GetData(ctx context.Context, tenant TenantContext, params Params) (*Dataset, error)

	// GetSummary returns only the control totals.
	GetSummary(ctx context.Context, tenant TenantContext, params Params) (*Totals, error)

	// ExcelRow maps one row to spreadsheet cells. seq is the 1-based row
	// number within the current invocation; it is passed explicitly so that
	// concurrent generations never share numbering state. The same mapping
	// feeds the CSV serializer.
	ExcelRow(row Row, seq int) []any
}

// TotalsMapper is the optional hook for forms that render a control-totals
// row under the data rows. Forms without it get a bare "TOTAL" label row.
type TotalsMapper interface {
	ExcelTotals(totals Totals) []any
}

// DATEncoder is the optional capability a form implements when the agency
// accepts a pipe-delimited electronic submission file. Field slices are
// joined and sanitized by the DAT serializer.
type DATEncoder interface {
	// DATHeader returns the fields of the single H record, or nil when the
	// form has no header record.
	DATHeader(tenant TenantContext, year int) []string

	// DATRow returns the fields of one detail record.
	DATRow(row Row, seq int) []string

	// DATTrailer returns the fields of the single control-totals C record,
	// or nil when the form has no trailer.
	DATTrailer(totals Totals, year int) []string
}

// FixedWidthEncoder is the optional capability for positional text formats.
type FixedWidthEncoder interface {
	// RecordLength is the exact required length of every output line.
	RecordLength() int

	// FixedWidthRow encodes one row as a positional line of RecordLength
	// characters.
	FixedWidthRow(row Row) (string, error)
}

// Supports reports whether the generator declares the format and actually
// implements the capability it requires. This replaces probing a method and
// catching a not-implemented failure.
func Supports(g Generator, f Format) bool {
	if !g.Definition().Supports(f) {
		return false
	}
	switch f {
	case FormatDAT:
		_, ok := g.(DATEncoder)
		return ok
	case FormatFixedWidth:
		_, ok := g.(FixedWidthEncoder)
		return ok
	}
	return true
}
