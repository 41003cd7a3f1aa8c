package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/talentohr/hris-backend-go/internal/domain/report"
)

// CSV renders the header row plus one line per record using the same field
// mapping as the Excel serializer. No totals row is appended.
func CSV(g report.Generator, tenant report.TenantContext, ds *report.Dataset, params report.Params) (*report.File, error) {
	def := g.Definition()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(def.Headers); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for i, row := range ds.Rows {
		cells := g.ExcelRow(row, i+1)
		record := make([]string, len(cells))
		for c, v := range cells {
			record[c] = cellString(v)
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return &report.File{
		Content:     buf.Bytes(),
		Name:        Filename(def, report.FormatCSV, params.PeriodSlug(def.Granularity)),
		ContentType: report.FormatCSV.ContentType(),
	}, nil
}
