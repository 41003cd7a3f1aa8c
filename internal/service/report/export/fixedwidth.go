package export

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/talentohr/hris-backend-go/internal/domain/report"
)

// FixedWidth renders a positional text file, one CRLF-terminated line per
// row. Every line must come back from the generator at exactly the declared
// record length; a short or long line is a bug in the field layout and fails
// the whole export.
func FixedWidth(g report.Generator, tenant report.TenantContext, ds *report.Dataset, params report.Params) (*report.File, error) {
	def := g.Definition()
	enc, ok := g.(report.FixedWidthEncoder)
	if !ok {
		return nil, &report.UnsupportedExportError{Code: def.Code, Format: report.FormatFixedWidth}
	}

	want := enc.RecordLength()
	var b strings.Builder
	for i, row := range ds.Rows {
		line, err := enc.FixedWidthRow(row)
		if err != nil {
			return nil, fmt.Errorf("encode row %d: %w", i+1, err)
		}
		if len(line) != want {
			return nil, fmt.Errorf("row %d: line length %d, want %d", i+1, len(line), want)
		}
		b.WriteString(line)
		b.WriteString("\r\n")
	}

	return &report.File{
		Content:     []byte(b.String()),
		Name:        Filename(def, report.FormatFixedWidth, params.PeriodSlug(def.Granularity)),
		ContentType: report.FormatFixedWidth.ContentType(),
	}, nil
}

// PadRight space-pads s to width, truncating when too long.
func PadRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// AlphaOnly upper-cases s and strips everything but A-Z and spaces. Name
// fields in positional bank-tellering formats accept nothing else.
func AlphaOnly(s string) string {
	s = strings.ToUpper(s)
	return strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || r == ' ' {
			return r
		}
		return -1
	}, s)
}

// ZeroPadAmount encodes a money value as amount x 100 with no decimal point,
// zero-padded to width: 1250.50 over width 10 -> "0000125050".
func ZeroPadAmount(d decimal.Decimal, width int) string {
	cents := d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if cents < 0 {
		cents = 0
	}
	return fmt.Sprintf("%0*d", width, cents)
}
