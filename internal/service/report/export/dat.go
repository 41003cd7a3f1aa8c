package export

import (
	"strings"

	"github.com/talentohr/hris-backend-go/internal/domain/report"
)

// DAT renders the pipe-delimited electronic submission file: an optional
// single H header record, one detail record per row, and an optional single
// C control-totals record. Lines are CRLF-terminated. Field values are
// sanitized before joining: embedded pipes and line breaks would corrupt the
// record structure, so they are stripped rather than escaped (the agency
// formats define no escaping).
func DAT(g report.Generator, tenant report.TenantContext, ds *report.Dataset, params report.Params) (*report.File, error) {
	def := g.Definition()
	enc, ok := g.(report.DATEncoder)
	if !ok {
		return nil, &report.UnsupportedExportError{Code: def.Code, Format: report.FormatDAT}
	}

	var b strings.Builder
	writeRecord := func(fields []string) {
		for i, f := range fields {
			if i > 0 {
				b.WriteByte('|')
			}
			b.WriteString(sanitizeDATField(f))
		}
		b.WriteString("\r\n")
	}

	if h := enc.DATHeader(tenant, params.Year); h != nil {
		writeRecord(h)
	}
	for i, row := range ds.Rows {
		writeRecord(enc.DATRow(row, i+1))
	}
	if t := enc.DATTrailer(ds.Totals, params.Year); t != nil {
		writeRecord(t)
	}

	return &report.File{
		Content:     []byte(b.String()),
		Name:        Filename(def, report.FormatDAT, params.PeriodSlug(def.Granularity)),
		ContentType: report.FormatDAT.ContentType(),
	}, nil
}

func sanitizeDATField(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '|', '\r', '\n':
			return -1
		}
		return r
	}, s)
}

// DigitsOnly strips everything but 0-9; used for TINs and agency numbers in
// electronic submission records.
func DigitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
